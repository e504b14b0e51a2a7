package calculator

import (
	"strconv"
	"strings"

	"github.com/filipondios/kotcalc/internal/errors"
	"github.com/filipondios/kotcalc/internal/ritual"
)

// Input is a calculation request as typed by a user: gem fields are free
// text, and an empty gem field means the gem is unknown.
type Input struct {
	Gems      []string `json:"gems"`
	Guild     string   `json:"guild"`
	Festival  bool     `json:"festival"`
	Totem     bool     `json:"totem"`
	Universal bool     `json:"universal"`
	GemWizard bool     `json:"gemWizard"`
	Objective string   `json:"objective"`
	Custom    string   `json:"custom"`
}

// State is a fully sanitized calculation request.
type State struct {
	Gems      [3]ritual.Gem
	Bonuses   ritual.BonusSet
	Objective ritual.Objective
}

// ParseInput sanitizes in. Free-text numbers are never rejected, only
// stripped of non-digits and clamped; a request is invalid only when it
// names more than three gems or an unknown objective.
func ParseInput(in Input) (State, error) {
	vb := errors.NewValidationBuilder()

	var s State
	if len(in.Gems) > len(s.Gems) {
		vb.Fieldf("gems", "at most %d values allowed, got %d", len(s.Gems), len(in.Gems))
	}
	for i := 0; i < len(in.Gems) && i < len(s.Gems); i++ {
		s.Gems[i] = ParseGem(in.Gems[i])
	}

	s.Bonuses = ritual.BonusSet{
		Guild:           ParseGuild(in.Guild),
		Festival:        in.Festival,
		Totem:           in.Totem,
		UniversalWizard: in.Universal,
		GemWizard:       in.GemWizard,
	}

	kind, ok := ritual.ParseObjectiveKind(in.Objective)
	if !ok {
		vb.Fieldf("objective", "unknown objective %q, want max, min or custom", in.Objective)
	}
	s.Objective = ritual.Objective{Kind: kind}
	if kind == ritual.ObjectiveCustom {
		s.Objective.Custom = ParseCustomObjective(in.Custom)
	}

	if err := vb.Build(); err != nil {
		return State{}, err
	}
	return s, nil
}

// ParseGem reads a gem field. Non-digits are dropped, an empty field is an
// absent gem, and values are clamped to ritual.MaxBaseValue.
func ParseGem(raw string) ritual.Gem {
	v, ok := parseDigits(raw, ritual.MaxBaseValue)
	if !ok {
		return ritual.None()
	}
	return ritual.Some(v)
}

// ParseGuild reads the guild percentage, clamped to ritual.MaxGuildBonus.
func ParseGuild(raw string) int {
	v, _ := parseDigits(raw, ritual.MaxGuildBonus)
	return v
}

// ParseCustomObjective reads a custom objective. Empty input becomes
// ritual.MinObjective.
func ParseCustomObjective(raw string) int {
	v, ok := parseDigits(raw, ritual.MaxGemValue)
	if !ok {
		return ritual.MinObjective
	}
	return ritual.ClampObjective(v)
}

// parseDigits keeps only ASCII digits and clamps the result to limit. It
// reports false when no digit was present.
func parseDigits(raw string, limit int) (int, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if digits == "" {
		return 0, false
	}

	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return 0, true
	}
	if len(digits) > len(strconv.Itoa(limit)) {
		return limit, true
	}

	v, err := strconv.Atoi(digits)
	if err != nil {
		return limit, true
	}
	return min(v, limit), true
}
