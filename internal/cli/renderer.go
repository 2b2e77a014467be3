package cli

import (
	"fmt"
	"io"

	"example.com/detective/internal/accusation"
	"example.com/detective/internal/events"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// SessionRenderer implements the events.Listener interface to print session state to the console.
type SessionRenderer struct {
	out io.Writer
}

func NewSessionRenderer(out io.Writer) *SessionRenderer {
	return &SessionRenderer{out: out}
}

// HandleEvent is the central dispatcher for rendering events.
func (r *SessionRenderer) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.SessionStartedEvent:
		C.Header.Fprintf(r.out, "\n--- %s ---\n", event.Title)
		C.Info.Fprintf(r.out, "You stand in the %s. Look for clues and find the culprit.\n", event.Entrance)
	case events.RoomEnteredEvent:
		C.Info.Fprintf(r.out, "\nYou entered: %s\n", event.Room)
	case events.ClueRecordedEvent:
		fmt.Fprintf(r.out, "Visible clue: %s\n", C.Clue.Sprint(event.Clue))
		C.Yes.Fprintf(r.out, "Clue recorded. It points to %s.\n", ColorizeSuspect(event.Suspect))
	case events.ClueRevisitedEvent:
		fmt.Fprintf(r.out, "Visible clue: %s\n", C.Clue.Sprint(event.Clue))
		C.Info.Fprintln(r.out, "You have already recorded this clue.")
	case events.EmptyRoomEvent:
		C.Info.Fprintln(r.out, "No clue in this room.")
	case events.DeadEndEvent:
		C.Warn.Fprintf(r.out, "There is no room to the %s.\n", event.Direction)
	case events.ExplorationEndedEvent:
		C.Info.Fprintf(r.out, "\nYou leave the map from the %s with %d clue(s).\n", event.Room, event.CluesRecorded)
	case events.RankingEvent:
		r.renderRanking(event.Ranking)
	case events.AccusationEvent:
		r.renderVerdict(event.Verdict)
	case events.SessionOverEvent:
		r.renderReport(event)
	}
}

func (r *SessionRenderer) renderRanking(ranking accusation.Ranking) {
	if !ranking.Implicated() {
		C.Warn.Fprintln(r.out, "\nNo clues collected. Nobody is implicated yet.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.AppendHeader(table.Row{"Suspect", "Clues"})
	for _, sc := range ranking.Counts {
		t.AppendRow(table.Row{ColorizeSuspect(sc.Suspect), sc.Count})
	}
	t.SetStyle(table.StyleLight)
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	t.Render()

	C.Header.Fprintf(r.out, "Most implicated, with %d clue(s):\n", ranking.Top)
	for _, name := range ranking.Leaders {
		fmt.Fprintf(r.out, " - %s\n", ColorizeSuspect(name))
	}
}

func (r *SessionRenderer) renderVerdict(v accusation.Verdict) {
	C.Header.Fprintf(r.out, "\nYou accused: %s\n", ColorizeSuspect(v.Suspect))
	fmt.Fprintf(r.out, "Clues against this suspect: %d\n", v.Count)
	if v.Correct {
		C.Yes.Fprintln(r.out, "Result: CORRECT! The evidence backs your accusation.")
	} else {
		C.No.Fprintf(r.out, "Result: WRONG. An accusation needs at least %d clues.\n", accusation.GuiltThreshold)
	}
}

func (r *SessionRenderer) renderReport(event events.SessionOverEvent) {
	C.Header.Fprintln(r.out, "\n===== Clues found (sorted) =====")
	if len(event.Clues) == 0 {
		C.Warn.Fprintln(r.out, "(none collected)")
	}
	for _, clue := range event.Clues {
		fmt.Fprintf(r.out, " - %s\n", C.Clue.Sprint(clue))
	}

	C.Header.Fprintln(r.out, "\n===== Clue table (clue -> suspect) =====")
	if len(event.Entries) == 0 {
		C.Warn.Fprintln(r.out, "(table empty)")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.AppendHeader(table.Row{"Clue", "Suspect"})
	for _, e := range event.Entries {
		t.AppendRow(table.Row{e.Clue, ColorizeSuspect(e.Suspect)})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
