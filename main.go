//go:build !lambda

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/filipondios/kotcalc/internal/calculator"
)

type cliOptions struct {
	configPath string
	lang       string
	log        *slog.Logger
	app        *app
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:           "kotcalc",
		Short:         "Ritual gem calculator",
		Long:          `kotcalc solves the gem value needed to reach a ritual objective and the bonused, capped ritual total.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.log = newLogger(stderr, Verbose)

			path := configPath(opts.configPath)
			a, err := loadApp(path)
			if err != nil {
				return err
			}
			opts.app = a
			opts.log.Debug("config loaded", "path", path, "languages", a.table.Languages())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to YAML config (default $KOTCALC_CONFIG or "+defaultConfigPath+")")
	root.PersistentFlags().StringVar(&opts.lang, "lang", "", "Output language, e.g. en, es-AR")
	root.PersistentFlags().BoolVar(&Verbose, "verbose", false, "Print debug logs to stderr")

	root.AddCommand(newCalcCmd(opts), newLanguagesCmd(opts))
	return root
}

func newCalcCmd(opts *cliOptions) *cobra.Command {
	var (
		in      calculator.Input
		x, y, z string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the required gem value and ritual total",
		Long: `Compute a ritual. Gems left empty are unknown; when any gem is unknown the
value every unknown gem needs to reach the objective is solved first.`,
		Example: `  kotcalc calc --x 500000 --totem
  kotcalc calc --x 300000 --y 300000 --z 300000 --guild 35 --objective min
  kotcalc calc --objective custom --custom 45000 --lang es`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Gems = []string{x, y, z}

			out, err := opts.app.evaluate(in, opts.lang, opts.log)
			if err != nil {
				return err
			}

			if jsonOut {
				return WriteJSON(cmd.OutOrStdout(), out)
			}
			FormatReport(cmd.OutOrStdout(), out)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&x, "x", "", "First gem value (empty = unknown)")
	flags.StringVar(&y, "y", "", "Second gem value (empty = unknown)")
	flags.StringVar(&z, "z", "", "Third gem value (empty = unknown)")
	flags.StringVar(&in.Guild, "guild", "", "Guild bonus percentage (0-35)")
	flags.BoolVar(&in.Festival, "festival", false, "Festival bonus")
	flags.BoolVar(&in.Totem, "totem", false, "Golden totem bonus")
	flags.BoolVar(&in.Universal, "universal", false, "Universal wizard bonus")
	flags.BoolVar(&in.GemWizard, "gem-wizard", false, "Gem wizard bonus")
	flags.StringVar(&in.Objective, "objective", "max", "Objective: max, min or custom")
	flags.StringVar(&in.Custom, "custom", "", "Custom objective value, used with --objective custom")
	flags.BoolVar(&jsonOut, "json", false, "Output results as JSON")
	return cmd
}

func newLanguagesCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the supported output languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			def := opts.app.table.Default()
			for _, lang := range opts.app.table.Languages() {
				marker := ""
				if lang == def {
					marker = " (default)"
				}
				title := opts.app.table.T(lang, "page_title", nil)
				fmt.Fprintf(cmd.OutOrStdout(), "%-4s %s%s\n", lang, title, marker)
			}
			return nil
		},
	}
}

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", strings.TrimSpace(err.Error()))
		os.Exit(1)
	}
}
