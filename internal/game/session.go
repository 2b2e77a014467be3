package game

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"example.com/detective/internal/accusation"
	"example.com/detective/internal/clues"
	"example.com/detective/internal/config"
	"example.com/detective/internal/events"
	"example.com/detective/internal/mansion"
	"example.com/detective/internal/player"
	"example.com/detective/internal/suspicion"

	"github.com/sirupsen/logrus"
)

// ErrWrongPhase is returned when an action is not allowed in the current phase.
var ErrWrongPhase = errors.New("action not allowed in this phase")

// Phase is the stage of a session. Phases only move forward.
type Phase int

const (
	PhaseExploring Phase = iota
	PhaseAccusing
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseExploring:
		return "exploring"
	case PhaseAccusing:
		return "accusing"
	case PhaseFinished:
		return "finished"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Outcome describes what happened on arrival in a room.
type Outcome int

const (
	OutcomeEmptyRoom Outcome = iota
	OutcomeClueRecorded
	OutcomeClueRevisited
)

// MoveResult is the result of a successful move.
type MoveResult struct {
	Room    *mansion.Room
	Outcome Outcome
	Clue    string
	Suspect string // Set only for OutcomeClueRecorded
}

// Report is the end-of-run summary.
type Report struct {
	Clues   []string
	Entries []events.Entry
}

// Session represents the state of one investigation.
type Session struct {
	ID           string
	Scenario     *config.Scenario
	EventManager *events.Manager

	root    *mansion.Room
	current *mansion.Room
	found   clues.Set
	index   *suspicion.Index
	phase   Phase
	moves   int
	log     logrus.FieldLogger
}

func (s *Session) Root() *mansion.Room    { return s.root }
func (s *Session) Current() *mansion.Room { return s.current }
func (s *Session) Phase() Phase           { return s.phase }
func (s *Session) Moves() int             { return s.moves }

// View describes the current room for an investigator.
func (s *Session) View() player.RoomView {
	return viewOf(s.current)
}

func viewOf(r *mansion.Room) player.RoomView {
	v := player.RoomView{Name: r.Name, HasClue: r.HasClue()}
	if r.Left() != nil {
		v.Left = r.Left().Name
	}
	if r.Right() != nil {
		v.Right = r.Right().Name
	}
	return v
}

// CluesFound yields the collected clues in ascending order.
func (s *Session) CluesFound() iter.Seq[string] { return s.found.All() }

// Entries yields every indexed (clue, suspect) pair in table order.
func (s *Session) Entries() iter.Seq2[string, string] { return s.index.All() }

func (s *Session) require(p Phase, action string) error {
	if s.phase != p {
		return fmt.Errorf("%s while %s: %w", action, s.phase, ErrWrongPhase)
	}
	return nil
}

// Move walks one room in direction d. When there is no room that way the
// cursor stays put and the error wraps mansion.ErrNoRoom.
func (s *Session) Move(d mansion.Direction) (MoveResult, error) {
	if err := s.require(PhaseExploring, "move"); err != nil {
		return MoveResult{}, err
	}

	next, err := s.current.Next(d)
	if err != nil {
		s.log.Debugf("Dead end going %s from %s.", d, s.current.Name)
		s.EventManager.Publish(events.DeadEndEvent{Room: s.current.Name, Direction: d.String()})
		return MoveResult{Room: s.current}, fmt.Errorf("%s from %q: %w", d, s.current.Name, err)
	}

	s.current = next
	s.moves++
	v := viewOf(next)
	s.EventManager.Publish(events.RoomEnteredEvent{Room: v.Name, Left: v.Left, Right: v.Right})
	return s.inspect(), nil
}

// inspect records the clue in the current room if it has not been seen.
func (s *Session) inspect() MoveResult {
	room := s.current
	result := MoveResult{Room: room, Clue: room.Clue}

	switch {
	case !room.HasClue():
		result.Outcome = OutcomeEmptyRoom
		s.EventManager.Publish(events.EmptyRoomEvent{Room: room.Name})
	case s.found.Contains(room.Clue):
		result.Outcome = OutcomeClueRevisited
		s.log.Debugf("Clue %q in %s was already recorded.", room.Clue, room.Name)
		s.EventManager.Publish(events.ClueRevisitedEvent{Room: room.Name, Clue: room.Clue})
	default:
		s.found.Insert(room.Clue)
		suspect, mapped := s.Scenario.SuspectFor(room.Clue)
		if !mapped {
			suspect = s.Scenario.UnknownSuspect
			s.log.Warnf("Clue %q has no suspect in the scenario; filing it under %q.", room.Clue, suspect)
		}
		s.index.Insert(room.Clue, suspect)
		s.log.Debugf("Recorded %q in %s against %s.", room.Clue, room.Name, suspect)

		result.Outcome = OutcomeClueRecorded
		result.Suspect = suspect
		s.EventManager.Publish(events.ClueRecordedEvent{Room: room.Name, Clue: room.Clue, Suspect: suspect, Mapped: mapped})
	}
	return result
}

// EndExploration leaves the map. There is no way back.
func (s *Session) EndExploration() error {
	if err := s.require(PhaseExploring, "end exploration"); err != nil {
		return err
	}
	s.phase = PhaseAccusing
	s.log.Infof("Exploration ended in %s after %d moves with %d clues (clue tree height %d).",
		s.current.Name, s.moves, s.found.Len(), s.found.Height())
	s.EventManager.Publish(events.ExplorationEndedEvent{Room: s.current.Name, CluesRecorded: s.found.Len()})
	return nil
}

// Rank ranks the roster by clue count.
func (s *Session) Rank() (accusation.Ranking, error) {
	if err := s.require(PhaseAccusing, "rank"); err != nil {
		return accusation.Ranking{}, err
	}
	r := accusation.Rank(s.Scenario.Suspects, s.index)
	for _, name := range s.index.Suspects() {
		if !slices.Contains(s.Scenario.Suspects, name) {
			s.log.Warnf("%d clue(s) point to %q, who is not on the roster and is left out of the ranking.", s.index.CountFor(name), name)
		}
	}
	s.EventManager.Publish(events.RankingEvent{Ranking: r})
	return r, nil
}

// CluesFor yields the clues implicating suspect.
func (s *Session) CluesFor(suspect string) (iter.Seq[string], error) {
	if err := s.require(PhaseAccusing, "list clues"); err != nil {
		return nil, err
	}
	return s.index.ListFor(suspect), nil
}

// Accuse judges an accusation. The player may accuse more than once.
func (s *Session) Accuse(suspect string) (accusation.Verdict, error) {
	if err := s.require(PhaseAccusing, "accuse"); err != nil {
		return accusation.Verdict{}, err
	}
	v := accusation.Accuse(suspect, s.index)
	s.log.Infof("Accused %s with %d clue(s): correct=%t.", v.Suspect, v.Count, v.Correct)
	s.EventManager.Publish(events.AccusationEvent{Verdict: v})
	return v, nil
}

// Finish closes the accusation phase and returns the end-of-run report.
func (s *Session) Finish() (Report, error) {
	if err := s.require(PhaseAccusing, "finish"); err != nil {
		return Report{}, err
	}
	s.phase = PhaseFinished

	report := Report{Clues: slices.Collect(s.found.All())}
	for clue, suspect := range s.index.All() {
		report.Entries = append(report.Entries, events.Entry{Clue: clue, Suspect: suspect})
	}
	s.EventManager.Publish(events.SessionOverEvent{Clues: report.Clues, Entries: report.Entries})
	return report, nil
}

// Close releases the collected clues and the index.
func (s *Session) Close() {
	s.index.Clear()
	s.found.Reset()
}
