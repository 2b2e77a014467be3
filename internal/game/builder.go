package game

import (
	"fmt"
	"math/rand"

	"example.com/detective/internal/config"
	"example.com/detective/internal/events"
	"example.com/detective/internal/mansion"
	"example.com/detective/internal/suspicion"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Builder provides a step-by-step API for constructing a Session.
type Builder struct {
	scenario     *config.Scenario
	eventManager *events.Manager
	log          *logrus.Logger
	rand         *rand.Rand
	clueChance   int
	distribute   bool
}

// NewBuilder creates a new Builder with its required dependencies.
func NewBuilder(scenario *config.Scenario, logger *logrus.Logger, rand *rand.Rand) *Builder {
	return &Builder{
		scenario:     scenario,
		log:          logger,
		rand:         rand,
		clueChance:   scenario.ClueChance,
		distribute:   true,
		eventManager: events.NewManager(),
	}
}

// EventManager is a public getter for the unexported field.
func (b *Builder) EventManager() *events.Manager {
	return b.eventManager
}

// WithClueChance overrides the scenario's clue chance (percent).
func (b *Builder) WithClueChance(percent int) *Builder {
	b.clueChance = percent
	return b
}

// WithoutDistribution keeps the clues written in the layout instead of
// placing them at random.
func (b *Builder) WithoutDistribution() *Builder {
	b.distribute = false
	return b
}

// Build constructs the Session after all options have been configured.
func (b *Builder) Build() (*Session, error) {
	if b.clueChance < 0 || b.clueChance > 100 {
		return nil, fmt.Errorf("clue chance %d outside [0,100]", b.clueChance)
	}
	scenario := b.scenario.DeepCopy()

	// 1. Lay out the mansion
	root, rooms, err := mansion.Build(scenario.Rooms)
	if err != nil {
		return nil, fmt.Errorf("failed to build mansion: %w", err)
	}

	id := uuid.NewString()
	log := b.log.WithField("session", id[:8])

	// 2. Place the clues
	if b.distribute {
		mansion.DistributeClues(rooms, scenario.ClueTexts(), b.clueChance, b.rand)
	}
	for _, r := range rooms {
		if r.HasClue() {
			log.Debugf("Clue in %s: %q", r.Name, r.Clue)
		}
	}

	s := &Session{
		ID:           id,
		Scenario:     scenario,
		EventManager: b.eventManager,
		root:         root,
		current:      root,
		index:        suspicion.New(),
		phase:        PhaseExploring,
		log:          log,
	}

	b.eventManager.Publish(events.SessionStartedEvent{SessionID: id, Title: scenario.Title, Entrance: root.Name})
	return s, nil
}
