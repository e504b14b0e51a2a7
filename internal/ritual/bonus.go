package ritual

// BonusKind identifies one source of ritual bonus.
type BonusKind int

const (
	BonusGuild BonusKind = iota
	BonusFestival
	BonusTotem
	BonusUniversalWizard
	BonusGemWizard
)

func (k BonusKind) String() string {
	switch k {
	case BonusGuild:
		return "guild"
	case BonusFestival:
		return "festival"
	case BonusTotem:
		return "totem"
	case BonusUniversalWizard:
		return "universal"
	case BonusGemWizard:
		return "gem_wizard"
	}
	return "unknown"
}

func (k BonusKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Rates holds the fixed percentage of each toggleable bonus.
type Rates struct {
	Festival        int `yaml:"festival" json:"festival"`
	Totem           int `yaml:"totem" json:"totem"`
	UniversalWizard int `yaml:"universal_wizard" json:"universalWizard"`
	GemWizard       int `yaml:"gem_wizard" json:"gemWizard"`
}

// DefaultRates returns the in-game bonus percentages.
func DefaultRates() Rates {
	return Rates{
		Festival:        25,
		Totem:           20,
		UniversalWizard: 20,
		GemWizard:       20,
	}
}

// BonusSet is the bonus configuration of one ritual. Guild is a percentage in
// [0, MaxGuildBonus]; the flags enable fixed-rate bonuses.
type BonusSet struct {
	Guild           int  `json:"guild"`
	Festival        bool `json:"festival"`
	Totem           bool `json:"totem"`
	UniversalWizard bool `json:"universal"`
	GemWizard       bool `json:"gemWizard"`
}

// BonusPart is a single active contribution to the bonus rate.
type BonusPart struct {
	Kind    BonusKind `json:"kind"`
	Percent int       `json:"percent"`
}

// Parts lists the active bonuses in display order. The guild bonus is only
// listed when positive.
func (b BonusSet) Parts(rates Rates) []BonusPart {
	var parts []BonusPart
	if b.Guild > 0 {
		parts = append(parts, BonusPart{Kind: BonusGuild, Percent: b.Guild})
	}
	if b.Festival {
		parts = append(parts, BonusPart{Kind: BonusFestival, Percent: rates.Festival})
	}
	if b.Totem {
		parts = append(parts, BonusPart{Kind: BonusTotem, Percent: rates.Totem})
	}
	if b.UniversalWizard {
		parts = append(parts, BonusPart{Kind: BonusUniversalWizard, Percent: rates.UniversalWizard})
	}
	if b.GemWizard {
		parts = append(parts, BonusPart{Kind: BonusGemWizard, Percent: rates.GemWizard})
	}
	return parts
}

// Rate returns the summed bonus as a fraction, e.g. 0.45 for 45%.
func (b BonusSet) Rate(rates Rates) float64 {
	fixed := 0.0
	for _, p := range b.Parts(rates) {
		if p.Kind != BonusGuild {
			fixed += float64(p.Percent) / 100
		}
	}
	return float64(b.Guild)/100 + fixed
}
