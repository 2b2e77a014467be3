package ai

import (
	"io"
	"math/rand"
	"testing"

	"example.com/detective/internal/accusation"
	"example.com/detective/internal/events"
	"example.com/detective/internal/mansion"
	"example.com/detective/internal/player"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// setupTestDetective creates a clean detective with a silent logger.
func setupTestDetective() *Detective {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewDetective("Sherlock", log, &DeterministicChooser{})
}

func TestChooseDirection(t *testing.T) {
	t.Run("it stops when there is no way forward", func(t *testing.T) {
		d := setupTestDetective()
		_, ok := d.ChooseDirection(player.RoomView{Name: "Closet"})
		assert.False(t, ok)
	})

	t.Run("it takes the only door", func(t *testing.T) {
		d := setupTestDetective()
		dir, ok := d.ChooseDirection(player.RoomView{Name: "Sala de Estar", Right: "Banheiro"})
		assert.True(t, ok)
		assert.Equal(t, mansion.Right, dir)
	})

	t.Run("it prefers a room it has never entered", func(t *testing.T) {
		// GIVEN a detective that already walked into Biblioteca
		d := setupTestDetective()
		d.HandleEvent(events.RoomEnteredEvent{Room: "Biblioteca"})

		// WHEN both doors are open
		dir, ok := d.ChooseDirection(player.RoomView{Name: "Hall", Left: "Cozinha", Right: "Biblioteca"})

		// THEN it goes towards the unvisited Cozinha
		assert.True(t, ok)
		assert.Equal(t, mansion.Left, dir)
	})

	t.Run("it lets the chooser break ties", func(t *testing.T) {
		d := setupTestDetective()
		dir, _ := d.ChooseDirection(player.RoomView{Name: "Hall", Left: "Zebra", Right: "Alpha"})
		assert.Equal(t, mansion.Right, dir)
	})
}

func TestChooseSuspect(t *testing.T) {
	roster := []string{"Mordomo", "Jardineiro", "Cozinheira"}

	t.Run("it accuses a ranking leader", func(t *testing.T) {
		d := setupTestDetective()
		ranking := accusation.Ranking{Leaders: []string{"Mordomo", "Jardineiro"}, Top: 2}
		assert.Equal(t, "Jardineiro", d.ChooseSuspect(roster, ranking))
		assert.Equal(t, []string{"Mordomo", "Jardineiro"}, ranking.Leaders, "leaders must not be reordered")
	})

	t.Run("it guesses from the roster when nobody is implicated", func(t *testing.T) {
		d := setupTestDetective()
		assert.Equal(t, "Cozinheira", d.ChooseSuspect(roster, accusation.Ranking{}))
		assert.Equal(t, []string{"Mordomo", "Jardineiro", "Cozinheira"}, roster)
	})
}

func TestHandleEvent_Notebook(t *testing.T) {
	d := setupTestDetective()
	d.HandleEvent(events.SessionStartedEvent{Entrance: "Hall"})
	d.HandleEvent(events.ClueRecordedEvent{Clue: "Copo quebrado na cozinha.", Suspect: "Cozinheira"})
	d.HandleEvent(events.ClueRecordedEvent{Clue: "Marcas de faca na mesa.", Suspect: "Cozinheira"})

	assert.Equal(t, map[string][]string{"Cozinheira": {"Copo quebrado na cozinha.", "Marcas de faca na mesa."}}, d.Notebook())
	assert.Equal(t, 1, d.RoomsVisited())

	t.Run("a new session starts a fresh notebook but keeps the visited rooms", func(t *testing.T) {
		d.HandleEvent(events.RoomEnteredEvent{Room: "Cozinha"})
		d.HandleEvent(events.SessionStartedEvent{Entrance: "Hall"})
		assert.Empty(t, d.Notebook())
		assert.Equal(t, 2, d.RoomsVisited())
	})
}

func TestChoosers(t *testing.T) {
	assert.Equal(t, "", (&DeterministicChooser{}).Choose(nil))
	assert.Equal(t, "", NewRandomChooser(rand.New(rand.NewSource(1))).Choose(nil))

	options := []string{"c", "a", "b"}
	assert.Equal(t, "a", (&DeterministicChooser{}).Choose(options))
	assert.Equal(t, []string{"c", "a", "b"}, options)

	picked := NewRandomChooser(rand.New(rand.NewSource(1))).Choose(options)
	assert.Contains(t, options, picked)
}
