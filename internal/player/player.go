package player

import (
	"example.com/detective/internal/accusation"
	"example.com/detective/internal/events"
	"example.com/detective/internal/mansion"
)

// RoomView is what an investigator can see from the current room.
type RoomView struct {
	Name    string
	Left    string // Empty if there is no room that way
	Right   string
	HasClue bool
}

// Investigator is the interface for anything that can play a session
// without the interactive menus. It also implements events.Listener to
// follow what happens during the session.
type Investigator interface {
	events.Listener

	Name() string
	// ChooseDirection picks the next move. Returning false ends exploration.
	ChooseDirection(view RoomView) (mansion.Direction, bool)
	ChooseSuspect(roster []string, ranking accusation.Ranking) string
}
