package game

import (
	"errors"

	"example.com/detective/internal/accusation"
	"example.com/detective/internal/mansion"
	"example.com/detective/internal/player"
)

// RunSimulation is a headless session loop. The investigator explores
// until it stops, reaches a room with no way forward, or runs out of
// attempts; then it accuses one suspect and the session is finished.
func (s *Session) RunSimulation(inv player.Investigator, maxAttempts int) (accusation.Verdict, error) {
	for attempt := 0; attempt < maxAttempts && !s.current.IsLeaf(); attempt++ {
		d, ok := inv.ChooseDirection(s.View())
		if !ok {
			break
		}
		if _, err := s.Move(d); err != nil && !errors.Is(err, mansion.ErrNoRoom) {
			return accusation.Verdict{}, err
		}
	}

	if err := s.EndExploration(); err != nil {
		return accusation.Verdict{}, err
	}
	ranking, err := s.Rank()
	if err != nil {
		return accusation.Verdict{}, err
	}
	verdict, err := s.Accuse(inv.ChooseSuspect(s.Scenario.Suspects, ranking))
	if err != nil {
		return accusation.Verdict{}, err
	}
	if _, err := s.Finish(); err != nil {
		return accusation.Verdict{}, err
	}
	return verdict, nil
}
