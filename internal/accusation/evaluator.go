package accusation

// GuiltThreshold is the number of clues that makes an accusation stick.
const GuiltThreshold = 2

// Counter is the part of the suspicion index the evaluator needs.
type Counter interface {
	CountFor(suspect string) int
}

// Ranking is the result of ranking a roster.
type Ranking struct {
	// Counts holds one count per roster suspect, in roster order.
	Counts []SuspectCount
	// Leaders are the suspects sharing the highest non-zero count, in roster order.
	Leaders []string
	// Top is the highest count.
	Top int
}

// SuspectCount pairs a suspect with the number of clues against them.
type SuspectCount struct {
	Suspect string
	Count   int
}

// Implicated reports whether any suspect has at least one clue.
func (r Ranking) Implicated() bool { return r.Top > 0 }

// Rank counts clues for every roster suspect and picks the leaders.
func Rank(roster []string, index Counter) Ranking {
	r := Ranking{Counts: make([]SuspectCount, 0, len(roster))}
	for _, suspect := range roster {
		n := index.CountFor(suspect)
		r.Counts = append(r.Counts, SuspectCount{Suspect: suspect, Count: n})
		r.Top = max(r.Top, n)
	}
	if r.Top == 0 {
		return r
	}
	for _, sc := range r.Counts {
		if sc.Count == r.Top {
			r.Leaders = append(r.Leaders, sc.Suspect)
		}
	}
	return r
}

// Verdict is the outcome of accusing one suspect.
type Verdict struct {
	Suspect string
	Count   int
	Correct bool
}

// Accuse judges an accusation against suspect.
func Accuse(suspect string, index Counter) Verdict {
	n := index.CountFor(suspect)
	return Verdict{Suspect: suspect, Count: n, Correct: n >= GuiltThreshold}
}
