package cmd

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	sim "github.com/inference-sim/salon-sim/sim"
)

// Settings holds the run settings that may come from a --config file.
// Only pacing and reporting are configurable; the salon's business rules are fixed.
type Settings struct {
	Pace      string        `yaml:"pace"`       // realtime | instant
	TickDelay time.Duration `yaml:"tick_delay"` // wall-clock duration of one tick under realtime pacing
	LogLevel  string        `yaml:"log_level"`
	Summary   bool          `yaml:"summary"`
}

// DefaultSettings returns the settings used when neither a config file nor flags override them.
func DefaultSettings() Settings {
	return Settings{
		Pace:      string(sim.PaceRealTime),
		TickDelay: sim.DefaultTickDelay,
		LogLevel:  "warn",
	}
}

// LoadSettings parses a settings YAML file on top of DefaultSettings.
// Uses strict field checking: unknown keys are errors.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings file %s: %w", path, err)
	}
	settings := DefaultSettings()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&settings); err != nil {
		return Settings{}, fmt.Errorf("parsing settings file %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("settings file %s: %w", path, err)
	}
	return settings, nil
}

// Validate checks the pace mode, tick delay and log level.
func (s Settings) Validate() error {
	if !sim.IsValidPaceMode(s.Pace) {
		return fmt.Errorf("unknown pace mode %q", s.Pace)
	}
	if s.TickDelay < 0 {
		return fmt.Errorf("tick delay must be non-negative, got %s", s.TickDelay)
	}
	if _, err := logrus.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}
