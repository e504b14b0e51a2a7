// Package calculator turns a sanitized request into everything a front end
// displays: the solved gem value, the ritual outcome and their explanations.
package calculator

import (
	"github.com/filipondios/kotcalc/internal/ritual"
)

// Status classifies the outcome of a recomputation.
type Status int

const (
	// StatusAllProvided means all three gems were known and evaluated as is.
	StatusAllProvided Status = iota
	// StatusNeeded means the unknown gems each need T.
	StatusNeeded
	// StatusExcess means even empty unknown gems overshoot once bonuses apply.
	StatusExcess
	// StatusExceedsObjective means the known gems alone meet the objective.
	StatusExceedsObjective
	// StatusUnreachable means T would exceed what a single gem can hold.
	StatusUnreachable
)

func (s Status) String() string {
	switch s {
	case StatusAllProvided:
		return "all_provided"
	case StatusNeeded:
		return "needed"
	case StatusExcess:
		return "excess"
	case StatusExceedsObjective:
		return "exceeds_objective"
	case StatusUnreachable:
		return "unreachable"
	}
	return "unknown"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// MaxSolvedValue is the largest T a gem slot can hold. Anything above it is
// reported as unreachable.
const MaxSolvedValue = ritual.MaxBaseValue

// ViewModel is the result of one recomputation.
type ViewModel struct {
	Status        Status             `json:"status"`
	Gems          [3]ritual.Gem      `json:"gems"`
	Tiers         [3]int             `json:"tiers"`
	Objective     int                `json:"objective"`
	ObjectiveTier int                `json:"objectiveTier"`
	Rate          float64            `json:"rate"`
	EffectiveRate float64            `json:"effectiveRate"`
	Bonuses       []ritual.BonusPart `json:"bonuses"`
	T             *int               `json:"t,omitempty"`
	NeededCount   int                `json:"neededCount"`
	Ritual        *ritual.Result     `json:"ritual,omitempty"`
}

// Calculator recomputes view models under a fixed set of bonus rates.
type Calculator struct {
	rates ritual.Rates
}

// New returns a Calculator using rates for the fixed bonuses.
func New(rates ritual.Rates) *Calculator {
	return &Calculator{rates: rates}
}

// Recompute evaluates s from scratch. Known gems are evaluated directly when
// all three are present; otherwise the solver picks T, which is substituted
// into the unknown slots. When T is negative the unknown slots hold zero; the
// bonus still applies unless the known gems alone meet the objective.
func (c *Calculator) Recompute(s State) ViewModel {
	objective := s.Objective.Value()
	rate := s.Bonuses.Rate(c.rates)

	vm := ViewModel{
		Gems:          s.Gems,
		Objective:     objective,
		ObjectiveTier: ritual.Tier(ritual.Some(objective)),
		Rate:          rate,
		Bonuses:       s.Bonuses.Parts(c.rates),
	}
	for i, g := range s.Gems {
		vm.Tiers[i] = ritual.Tier(g)
	}

	count, _ := ritual.Provided(s.Gems)
	if count == len(s.Gems) {
		g := ritual.Fill(s.Gems, 0)
		res := ritual.Evaluate(g[0], g[1], g[2], rate, objective)
		vm.Status = StatusAllProvided
		vm.EffectiveRate = rate
		vm.Ritual = &res
		return vm
	}

	sol := ritual.Solve(s.Gems, rate, objective)
	vm.T = &sol.T
	vm.NeededCount = len(s.Gems) - count

	switch {
	case sol.T > MaxSolvedValue:
		vm.Status = StatusUnreachable
		return vm
	case sol.DisableBonuses:
		vm.Status = StatusExceedsObjective
	case sol.T < 0:
		vm.Status = StatusExcess
	default:
		vm.Status = StatusNeeded
	}

	fill, effective := sol.T, rate
	switch vm.Status {
	case StatusExceedsObjective:
		fill, effective = 0, 0
	case StatusExcess:
		fill = 0
	}

	g := ritual.Fill(s.Gems, fill)
	res := ritual.Evaluate(g[0], g[1], g[2], effective, objective)
	vm.EffectiveRate = effective
	vm.Ritual = &res
	return vm
}
