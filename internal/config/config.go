package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidScenario is returned when a scenario fails validation.
var ErrInvalidScenario = errors.New("invalid scenario")

//go:embed default_scenario.json
var defaultScenario []byte

// ClueLink ties a clue text to the suspect it implicates.
type ClueLink struct {
	Clue    string `json:"clue" yaml:"clue"`
	Suspect string `json:"suspect" yaml:"suspect"`
}

// RoomSpec describes one room of the mansion layout. Left and Right name
// child rooms; an empty name means there is no room that way.
type RoomSpec struct {
	Name  string `json:"name" yaml:"name"`
	Left  string `json:"left,omitempty" yaml:"left,omitempty"`
	Right string `json:"right,omitempty" yaml:"right,omitempty"`
	Clue  string `json:"clue,omitempty" yaml:"clue,omitempty"`
}

// Scenario holds the static definitions for one mansion mystery.
type Scenario struct {
	Title          string     `json:"title" yaml:"title"`
	Suspects       []string   `json:"suspects" yaml:"suspects"`
	Clues          []ClueLink `json:"clues" yaml:"clues"`
	Rooms          []RoomSpec `json:"rooms" yaml:"rooms"`
	ClueChance     int        `json:"clue_chance" yaml:"clue_chance"`
	UnknownSuspect string     `json:"unknown_suspect" yaml:"unknown_suspect"`
}

// Default returns the built-in twelve-room mansion.
func Default() *Scenario {
	s, err := parse(defaultScenario, ".json")
	if err != nil {
		panic(fmt.Sprintf("config: built-in scenario is broken: %v", err))
	}
	return s
}

// Load reads, parses, and validates a scenario file. The format is picked
// from the extension: .yaml and .yml are YAML, anything else is JSON.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

func parse(data []byte, ext string) (*Scenario, error) {
	var s Scenario
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
	}
	if s.UnknownSuspect == "" {
		s.UnknownSuspect = "Desconhecido"
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the roster, the clue table and the clue chance. The room
// layout itself is checked by the mansion builder.
func (s *Scenario) Validate() error {
	if len(s.Suspects) == 0 {
		return fmt.Errorf("%w: no suspects", ErrInvalidScenario)
	}
	if len(s.Clues) == 0 {
		return fmt.Errorf("%w: no clues", ErrInvalidScenario)
	}
	if len(s.Rooms) == 0 {
		return fmt.Errorf("%w: no rooms", ErrInvalidScenario)
	}
	if s.ClueChance < 0 || s.ClueChance > 100 {
		return fmt.Errorf("%w: clue chance %d outside [0,100]", ErrInvalidScenario, s.ClueChance)
	}
	seen := make(map[string]struct{}, len(s.Clues))
	for _, link := range s.Clues {
		if link.Clue == "" {
			return fmt.Errorf("%w: empty clue text", ErrInvalidScenario)
		}
		if _, dup := seen[link.Clue]; dup {
			return fmt.Errorf("%w: clue %q listed twice", ErrInvalidScenario, link.Clue)
		}
		seen[link.Clue] = struct{}{}
	}
	return nil
}

// SuspectFor looks up the suspect a clue implicates.
func (s *Scenario) SuspectFor(clue string) (string, bool) {
	for _, link := range s.Clues {
		if link.Clue == clue {
			return link.Suspect, true
		}
	}
	return "", false
}

// ClueTexts returns the clue texts in table order.
func (s *Scenario) ClueTexts() []string {
	texts := make([]string, len(s.Clues))
	for i, link := range s.Clues {
		texts[i] = link.Clue
	}
	return texts
}

// SuspectAt resolves a 1-based roster position.
func (s *Scenario) SuspectAt(n int) (string, bool) {
	if n < 1 || n > len(s.Suspects) {
		return "", false
	}
	return s.Suspects[n-1], true
}

// DeepCopy creates a new Scenario with all slices copied to prevent shared state.
func (s *Scenario) DeepCopy() *Scenario {
	c := *s
	c.Suspects = make([]string, len(s.Suspects))
	copy(c.Suspects, s.Suspects)
	c.Clues = make([]ClueLink, len(s.Clues))
	copy(c.Clues, s.Clues)
	c.Rooms = make([]RoomSpec, len(s.Rooms))
	copy(c.Rooms, s.Rooms)
	return &c
}
