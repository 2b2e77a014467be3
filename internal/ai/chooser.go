package ai

import (
	"math/rand"
	"slices"
)

// Chooser defines an interface for selecting a single option from a list.
// This allows us to swap out random and deterministic selection strategies.
type Chooser interface {
	Choose(options []string) string
}

// --- Implementations ---

// RandomChooser implements the Chooser interface by picking an element randomly.
type RandomChooser struct {
	rand *rand.Rand
}

// NewRandomChooser creates a new random chooser.
func NewRandomChooser(rand *rand.Rand) *RandomChooser {
	return &RandomChooser{rand: rand}
}

func (r *RandomChooser) Choose(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[r.rand.Intn(len(options))]
}

// DeterministicChooser implements the Chooser interface by always picking the
// first option alphabetically. This is used for predictable testing.
type DeterministicChooser struct{}

func (d *DeterministicChooser) Choose(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return slices.Min(options)
}
