package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/filipondios/kotcalc/internal/calculator"
	"github.com/filipondios/kotcalc/internal/i18n"
)

// Output is the result of one calculation as served by every front end.
type Output struct {
	Language string               `json:"language"`
	View     calculator.ViewModel `json:"view"`
	Report   calculator.Report    `json:"report"`

	labels map[string]string
}

var labelKeys = []string{
	"result_input_values",
	"result_applied_bonuses",
	"result_objective",
	"result_required_values",
	"result_bonus_amount",
	"result_total_with_bonuses",
}

func reportLabels(tr i18n.Translator) map[string]string {
	labels := make(map[string]string, len(labelKeys))
	for _, key := range labelKeys {
		labels[key] = tr.T(key, nil)
	}
	return labels
}

// FormatReport renders out as an aligned text block.
func FormatReport(w io.Writer, out Output) {
	rep := out.Report
	rows := []struct {
		key, value, note string
	}{
		{"result_input_values", rep.InputValues, ""},
		{"result_applied_bonuses", rep.Bonuses, ""},
		{"result_objective", rep.Objective, ""},
		{"result_required_values", rep.TValue, rep.TExplanation},
		{"result_bonus_amount", rep.BonusObtained, rep.BonusExplanation},
		{"result_total_with_bonuses", rep.Total, rep.TotalExplanation},
	}

	for _, row := range rows {
		label := out.labels[row.key]
		if label == "" {
			label = row.key
		}
		fmt.Fprintf(w, "%-24s %s\n", label, row.value)
		if row.note != "" {
			fmt.Fprintf(w, "%-24s %s\n", "", row.note)
		}
	}
}

// WriteJSON encodes out with indentation.
func WriteJSON(w io.Writer, out Output) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
