package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/filipondios/kotcalc/internal/i18n"
	"github.com/filipondios/kotcalc/internal/ritual"
)

// Placeholder is shown for values that do not apply.
const Placeholder = "-"

// Report holds the localized text of every result field.
type Report struct {
	InputValues      string `json:"inputValues"`
	Bonuses          string `json:"bonuses"`
	Objective        string `json:"objective"`
	TValue           string `json:"tValue"`
	TExplanation     string `json:"tExplanation"`
	BonusObtained    string `json:"bonusObtained"`
	BonusExplanation string `json:"bonusExplanation"`
	Total            string `json:"total"`
	TotalExplanation string `json:"totalExplanation"`
}

// Renderer turns view models into localized reports.
type Renderer struct {
	tr i18n.Translator
}

// NewRenderer returns a Renderer that translates through tr.
func NewRenderer(tr i18n.Translator) *Renderer {
	return &Renderer{tr: tr}
}

var bonusLabelKeys = map[ritual.BonusKind]string{
	ritual.BonusGuild:           "bonus_guild_label",
	ritual.BonusFestival:        "bonus_festival_short",
	ritual.BonusTotem:           "bonus_totem_short",
	ritual.BonusUniversalWizard: "bonus_universal_short",
	ritual.BonusGemWizard:       "bonus_gem_wizard_short",
}

// Render localizes vm.
func (r *Renderer) Render(vm ViewModel) Report {
	rep := Report{
		InputValues:   r.inputValues(vm.Gems),
		Bonuses:       r.bonuses(vm.Rate, vm.Bonuses),
		Objective:     r.tr.Number(vm.Objective),
		TValue:        Placeholder,
		BonusObtained: Placeholder,
		Total:         Placeholder,
	}

	switch vm.Status {
	case StatusAllProvided:
		rep.TExplanation = r.tr.T("all_gems_provided", nil)
	case StatusUnreachable:
		rep.TExplanation = r.tr.T("cannot_reach_objective", i18n.Vars{
			"objective": r.tr.Number(vm.Objective),
		})
		return rep
	case StatusExceedsObjective:
		t := *vm.T
		rep.TValue = r.tr.Number(t)
		rep.TExplanation = r.tr.T("delta_exceeds_objective", i18n.Vars{
			"delta":  r.tr.Number(t),
			"excess": r.tr.Number(-t),
		})
	case StatusExcess:
		t := *vm.T
		rep.TValue = r.tr.Number(t)
		rep.TExplanation = r.tr.T("excess_per_gem", i18n.Vars{
			"excess": r.tr.Number(-t),
			"total":  r.tr.Number(-t * vm.NeededCount),
			"count":  strconv.Itoa(vm.NeededCount),
		})
	case StatusNeeded:
		t := *vm.T
		rep.TValue = r.tr.Number(t)
		if vm.NeededCount == 1 {
			rep.TExplanation = r.tr.T("needed_gems_one", i18n.Vars{"value": r.tr.Number(t)})
		} else {
			rep.TExplanation = r.tr.T("needed_gems_many", i18n.Vars{
				"count": strconv.Itoa(vm.NeededCount),
				"value": r.tr.Number(t),
			})
		}
	}

	if vm.Ritual != nil {
		r.ritual(&rep, *vm.Ritual, vm.EffectiveRate)
	}
	return rep
}

func (r *Renderer) ritual(rep *Report, res ritual.Result, rate float64) {
	percent := strconv.Itoa(Percent(rate))

	rep.BonusObtained = r.tr.Number(res.CappedBonus)
	if res.WasAdjusted {
		rep.BonusExplanation = r.tr.T("bonus_adjusted", i18n.Vars{
			"percent": percent,
			"base":    r.tr.Number(res.BaseSum),
			"bonus":   r.tr.Number(res.BonusAmount),
			"capped":  r.tr.Number(res.CappedBonus),
		})
	} else {
		rep.BonusExplanation = r.tr.T("bonus_standard", i18n.Vars{
			"percent": percent,
			"base":    r.tr.Number(res.BaseSum),
			"bonus":   r.tr.Number(res.BonusAmount),
		})
	}

	rep.Total = r.tr.Number(res.FinalTotal)
	rep.TotalExplanation = fmt.Sprintf("%s + %s%% = %s",
		r.tr.Number(res.BaseSum), percent, r.tr.Number(res.FinalTotal))
}

func (r *Renderer) inputValues(gems [3]ritual.Gem) string {
	parts := make([]string, len(gems))
	for i, g := range gems {
		if g.Set {
			parts[i] = r.tr.Number(g.Value)
		} else {
			parts[i] = r.tr.T("value_na", nil)
		}
	}
	return strings.Join(parts, ", ")
}

func (r *Renderer) bonuses(rate float64, parts []ritual.BonusPart) string {
	out := fmt.Sprintf("%d%%", Percent(rate))
	if len(parts) == 0 {
		return out
	}

	labels := make([]string, len(parts))
	for i, p := range parts {
		labels[i] = fmt.Sprintf("%s: %d%%", r.tr.T(bonusLabelKeys[p.Kind], nil), p.Percent)
	}
	return out + " (" + strings.Join(labels, ", ") + ")"
}

// Percent converts a bonus rate to a whole percentage.
func Percent(rate float64) int {
	return int(math.Round(rate * 100))
}
