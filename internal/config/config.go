package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/filipondios/kotcalc/internal/ritual"
)

// Config holds calculator settings shared by the CLI and the Lambda handler.
type Config struct {
	// Language requested when a call does not name one. Empty uses the
	// translation table's default.
	Language string `yaml:"language"`

	// I18NPath points at a translation table replacing the built-in one.
	I18NPath string `yaml:"i18n_path"`

	// Rates are the fixed bonus percentages.
	Rates ritual.Rates `yaml:"rates"`
}

// Default returns the in-game settings with the built-in translations.
func Default() Config {
	return Config{
		Rates: ritual.DefaultRates(),
	}
}

// Load reads config from a YAML file. A missing file yields defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects negative bonus rates.
func (c Config) Validate() error {
	for _, r := range []struct {
		name  string
		value int
	}{
		{"festival", c.Rates.Festival},
		{"totem", c.Rates.Totem},
		{"universal_wizard", c.Rates.UniversalWizard},
		{"gem_wizard", c.Rates.GemWizard},
	} {
		if r.value < 0 {
			return fmt.Errorf("rates.%s must not be negative, got %d", r.name, r.value)
		}
	}
	return nil
}
