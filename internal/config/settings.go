package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings are the runtime options of one run. They come from command-line
// flags, DETECTIVE_* environment variables, or an optional detective.yaml.
type Settings struct {
	LogLevel   string `mapstructure:"loglevel"`
	Scenario   string `mapstructure:"scenario"`
	ClueChance int    `mapstructure:"clue-chance"` // Negative keeps the scenario's own chance
	Seed       int64  `mapstructure:"seed"`        // Zero means seed from the clock
}

// LoadSettings resolves Settings from v. Flags should already be bound to v.
func LoadSettings(v *viper.Viper) (*Settings, error) {
	v.SetConfigName("detective")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("loglevel", "info")
	v.SetDefault("scenario", "")
	v.SetDefault("clue-chance", -1)
	v.SetDefault("seed", 0)

	v.SetEnvPrefix("DETECTIVE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &s, nil
}

// ResolveScenario loads the configured scenario, or the built-in one, and
// returns it with the clue chance to play it at.
func (s *Settings) ResolveScenario() (*Scenario, int, error) {
	scenario := Default()
	if s.Scenario != "" {
		var err error
		if scenario, err = Load(s.Scenario); err != nil {
			return nil, 0, err
		}
	}
	chance := scenario.ClueChance
	if s.ClueChance >= 0 {
		if s.ClueChance > 100 {
			return nil, 0, fmt.Errorf("%w: clue chance %d outside [0,100]", ErrInvalidScenario, s.ClueChance)
		}
		chance = s.ClueChance
	}
	return scenario, chance, nil
}
