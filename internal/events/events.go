package events

import (
	"example.com/detective/internal/accusation"
)

// Event is a marker interface for all event types.
type Event interface{}

// Listener defines an interface for any component that wants to react to events.
type Listener interface {
	HandleEvent(e Event)
}

// Manager (or Event Bus) manages listeners and dispatches events.
type Manager struct {
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}

func (em *Manager) Subscribe(l Listener) {
	em.listeners = append(em.listeners, l)
}

func (em *Manager) Publish(e Event) {
	for _, l := range em.listeners {
		l.HandleEvent(e)
	}
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(e Event)

func (f ListenerFunc) HandleEvent(e Event) { f(e) }

// --- Exploration events ---

// SessionStartedEvent is published once the mansion is built and clues are placed.
type SessionStartedEvent struct {
	SessionID string
	Title     string
	Entrance  string
}

type RoomEnteredEvent struct {
	Room  string
	Left  string // Empty if there is no room that way
	Right string
}

type ClueRecordedEvent struct {
	Room    string
	Clue    string
	Suspect string
	Mapped  bool // False when the suspect is the unknown fallback
}

type ClueRevisitedEvent struct {
	Room string
	Clue string
}

type EmptyRoomEvent struct {
	Room string
}

type DeadEndEvent struct {
	Room      string
	Direction string
}

type ExplorationEndedEvent struct {
	Room          string
	CluesRecorded int
}

// --- Accusation events ---

type RankingEvent struct {
	Ranking accusation.Ranking
}

type AccusationEvent struct {
	Verdict accusation.Verdict
}

// SessionOverEvent carries the end-of-run report.
type SessionOverEvent struct {
	Clues   []string
	Entries []Entry
}

// Entry is one clue → suspect pair in the end-of-run report.
type Entry struct {
	Clue    string
	Suspect string
}
