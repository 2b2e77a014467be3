package ai

import (
	"slices"

	"example.com/detective/internal/accusation"
	"example.com/detective/internal/events"
	"example.com/detective/internal/mansion"
	"example.com/detective/internal/player"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Detective is an automated investigator. It prefers rooms it has never
// entered, remembering them across every session it plays, and accuses
// whoever the ranking points to.
type Detective struct {
	name     string
	chooser  Chooser
	log      logrus.FieldLogger
	visited  mapset.Set[string]
	notebook map[string][]string
	games    int
}

var _ player.Investigator = (*Detective)(nil)

// NewDetective is the constructor for the automated investigator.
func NewDetective(name string, logger *logrus.Logger, chooser Chooser) *Detective {
	return &Detective{
		name:     name,
		chooser:  chooser,
		log:      logger.WithField("detective", name),
		visited:  mapset.New[string](),
		notebook: make(map[string][]string),
	}
}

func (d *Detective) Name() string { return d.name }

// RoomsVisited is the number of distinct rooms entered over all sessions.
func (d *Detective) RoomsVisited() int { return d.visited.Size() }

// Notebook returns the clues recorded in the current session, by suspect.
func (d *Detective) Notebook() map[string][]string {
	out := make(map[string][]string, len(d.notebook))
	for suspect, clues := range d.notebook {
		out[suspect] = slices.Clone(clues)
	}
	return out
}

func (d *Detective) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.SessionStartedEvent:
		d.games++
		clear(d.notebook)
		d.visited.Put(event.Entrance)
		d.log.Debugf("Starting session %d in %s.", d.games, event.Entrance)
	case events.RoomEnteredEvent:
		d.visited.Put(event.Room)
	case events.ClueRecordedEvent:
		d.notebook[event.Suspect] = append(d.notebook[event.Suspect], event.Clue)
		d.log.Debugf("Noted %q against %s.", event.Clue, event.Suspect)
	}
}

// ChooseDirection heads for an unvisited child when there is one.
func (d *Detective) ChooseDirection(view player.RoomView) (mansion.Direction, bool) {
	doors := map[string]mansion.Direction{}
	var fresh, known []string
	for dir, name := range map[mansion.Direction]string{mansion.Left: view.Left, mansion.Right: view.Right} {
		if name == "" {
			continue
		}
		doors[name] = dir
		if d.visited.Has(name) {
			known = append(known, name)
		} else {
			fresh = append(fresh, name)
		}
	}
	options := fresh
	if len(options) == 0 {
		options = known
	}
	if len(options) == 0 {
		return 0, false
	}
	// Map iteration order is random; sort so a seeded chooser repeats.
	slices.Sort(options)
	next := d.chooser.Choose(options)
	return doors[next], true
}

// ChooseSuspect accuses one of the ranking leaders, or anyone on the
// roster when no clue implicates a suspect.
func (d *Detective) ChooseSuspect(roster []string, ranking accusation.Ranking) string {
	if ranking.Implicated() {
		suspect := d.chooser.Choose(slices.Clone(ranking.Leaders))
		d.log.Infof("Accusing %s, who leads with %d clue(s).", suspect, ranking.Top)
		return suspect
	}
	suspect := d.chooser.Choose(slices.Clone(roster))
	d.log.Infof("No clues against anyone; guessing %s.", suspect)
	return suspect
}
