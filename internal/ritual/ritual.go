// Package ritual computes gem ritual outcomes: the capped total of three gems
// after percentage bonuses, and the repeated value the unknown gems need to
// reach an objective.
package ritual

import (
	"encoding/json"
	"math"
)

const (
	// MaxBaseValue is the highest value a single gem slot accepts, and the
	// result cap for rituals whose raw sum stays within it.
	MaxBaseValue = 999999
	// MaxGemValue is the highest total a ritual can produce.
	MaxGemValue = 2999997
	// MinObjective is the lowest custom objective accepted.
	MinObjective = 300
	// MaxGuildBonus is the highest guild bonus percentage.
	MaxGuildBonus = 35
)

// Gem is one ritual slot. An absent gem is distinct from a gem of value zero.
type Gem struct {
	Value int
	Set   bool
}

// Some returns a present gem holding v.
func Some(v int) Gem { return Gem{Value: v, Set: true} }

// None returns an absent gem.
func None() Gem { return Gem{} }

// MarshalJSON encodes an absent gem as null.
func (g Gem) MarshalJSON() ([]byte, error) {
	if !g.Set {
		return []byte("null"), nil
	}
	return json.Marshal(g.Value)
}

// Result is the outcome of a ritual over three concrete gem values.
type Result struct {
	BaseSum     int  `json:"baseSum"`
	BonusAmount int  `json:"bonusAmount"`
	CappedBonus int  `json:"cappedBonus"`
	FinalTotal  int  `json:"finalTotal"`
	WasAdjusted bool `json:"wasAdjusted"`
}

// Solution is the value every unknown slot must hold to best approach the
// objective. T is negative when the known gems already overshoot and may
// exceed MaxBaseValue when the objective is out of reach.
type Solution struct {
	T              int  `json:"t"`
	DisableBonuses bool `json:"disableBonuses"`
}

// ResultCap returns the highest total a ritual with the given raw sum may reach.
func ResultCap(baseSum int) int {
	if baseSum <= MaxBaseValue {
		return MaxBaseValue
	}
	return MaxGemValue
}

// Evaluate runs the ritual for three gem values. Bonuses are suppressed once
// the raw sum already meets the objective, and never lift the total past the
// cap for the sum's bracket.
func Evaluate(gem1, gem2, gem3 int, rate float64, objective int) Result {
	baseSum := gem1 + gem2 + gem3
	if baseSum >= objective {
		return Result{BaseSum: baseSum, FinalTotal: baseSum}
	}

	bonusAmount := int(math.Floor(float64(baseSum) * rate))
	cappedBonus := min(bonusAmount, ResultCap(baseSum)-baseSum)

	return Result{
		BaseSum:     baseSum,
		BonusAmount: bonusAmount,
		CappedBonus: cappedBonus,
		FinalTotal:  baseSum + cappedBonus,
		WasAdjusted: cappedBonus != bonusAmount,
	}
}

// Solve finds the value t that the absent gems must all hold so the bonused
// total lands closest to objective. With no absent gem there is nothing to
// solve: T is the remaining distance to the objective.
func Solve(gems [3]Gem, rate float64, objective int) Solution {
	count, providedSum := Provided(gems)
	neededCount := len(gems) - count

	if providedSum >= objective {
		return Solution{T: objective - providedSum, DisableBonuses: true}
	}
	if neededCount == 0 {
		return Solution{T: objective - providedSum}
	}

	multiplier := 1 + rate
	targetBeforeBonus := int(math.Floor(float64(objective) / multiplier))
	t := floorDiv(targetBeforeBonus-providedSum, neededCount)

	final := func(candidate int) int {
		testSum := providedSum + candidate*neededCount
		return int(math.Floor(float64(testSum) * multiplier))
	}

	// Ties keep the lower candidate.
	if abs(final(t+1)-objective) < abs(final(t)-objective) {
		t++
	}
	return Solution{T: t}
}

// Provided returns how many gems are present and their sum.
func Provided(gems [3]Gem) (count, sum int) {
	for _, g := range gems {
		if g.Set {
			count++
			sum += g.Value
		}
	}
	return count, sum
}

// Fill substitutes v into every absent slot.
func Fill(gems [3]Gem, v int) [3]int {
	var out [3]int
	for i, g := range gems {
		if g.Set {
			out[i] = g.Value
		} else {
			out[i] = v
		}
	}
	return out
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
