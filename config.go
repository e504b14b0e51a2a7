package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/filipondios/kotcalc/internal/calculator"
	"github.com/filipondios/kotcalc/internal/config"
	"github.com/filipondios/kotcalc/internal/errors"
	"github.com/filipondios/kotcalc/internal/i18n"
)

// defaultConfigPath is read when no --config flag or KOTCALC_CONFIG is set.
const defaultConfigPath = "kotcalc.yaml"

// Verbose controls whether debug logs are printed to stderr.
var Verbose bool

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// app is everything a front end needs to answer calculation requests.
type app struct {
	cfg   config.Config
	table *i18n.Table
	calc  *calculator.Calculator
}

// loadApp reads the config at path and the translation table it names.
func loadApp(path string) (*app, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "loading config")
	}

	var table *i18n.Table
	if cfg.I18NPath != "" {
		table, err = i18n.Load(cfg.I18NPath)
	} else {
		table, err = i18n.Builtin()
	}
	if err != nil {
		return nil, errors.Wrap(err, "loading translations")
	}

	return &app{
		cfg:   cfg,
		table: table,
		calc:  calculator.New(cfg.Rates),
	}, nil
}

// configPath returns flagValue, then $KOTCALC_CONFIG, then the default.
func configPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("KOTCALC_CONFIG"); env != "" {
		return env
	}
	return defaultConfigPath
}

// evaluate runs one request through the calculator and renders it in lang,
// falling back to the configured language.
func (a *app) evaluate(in calculator.Input, lang string, log *slog.Logger) (Output, error) {
	state, err := calculator.ParseInput(in)
	if err != nil {
		return Output{}, err
	}

	if lang == "" {
		lang = a.cfg.Language
	}
	loc := a.table.Localizer(lang)

	vm := a.calc.Recompute(state)
	log.Debug("ritual computed",
		"status", vm.Status,
		"objective", vm.Objective,
		"rate", vm.Rate,
		"needed", vm.NeededCount,
		"lang", loc.Lang())

	return Output{
		Language: loc.Lang(),
		View:     vm,
		Report:   calculator.NewRenderer(loc).Render(vm),
		labels:   reportLabels(loc),
	}, nil
}
