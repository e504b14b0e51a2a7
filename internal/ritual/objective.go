package ritual

// ObjectiveKind selects a preset objective or a custom value.
type ObjectiveKind int

const (
	ObjectiveMax ObjectiveKind = iota
	ObjectiveMin
	ObjectiveCustom
)

func (k ObjectiveKind) String() string {
	switch k {
	case ObjectiveMax:
		return "max"
	case ObjectiveMin:
		return "min"
	case ObjectiveCustom:
		return "custom"
	}
	return "unknown"
}

// ParseObjectiveKind maps a CLI or request name to its kind.
func ParseObjectiveKind(s string) (ObjectiveKind, bool) {
	switch s {
	case "max", "":
		return ObjectiveMax, true
	case "min":
		return ObjectiveMin, true
	case "custom":
		return ObjectiveCustom, true
	}
	return ObjectiveMax, false
}

// Objective is the total a ritual aims for. Custom is only read when Kind is
// ObjectiveCustom.
type Objective struct {
	Kind   ObjectiveKind
	Custom int
}

// Value returns the objective total.
func (o Objective) Value() int {
	switch o.Kind {
	case ObjectiveMin:
		return MaxBaseValue
	case ObjectiveCustom:
		return ClampObjective(o.Custom)
	}
	return MaxGemValue
}

// ClampObjective bounds a custom objective to [MinObjective, MaxGemValue].
func ClampObjective(v int) int {
	return max(MinObjective, min(v, MaxGemValue))
}

var tierThresholds = [...]int{300, 1000, 3000, 10000, 30000, 100000, 300000, 1000000}

// PerfectTier is the tier of a gem at MaxGemValue.
const PerfectTier = len(tierThresholds) + 2

// Tier returns the display tier of a gem, from 1 (absent or below the first
// threshold) to PerfectTier.
func Tier(g Gem) int {
	if !g.Set || g.Value < tierThresholds[0] {
		return 1
	}
	if g.Value >= MaxGemValue {
		return PerfectTier
	}
	for i := len(tierThresholds) - 1; i >= 0; i-- {
		if g.Value >= tierThresholds[i] {
			return i + 2
		}
	}
	return 2
}
