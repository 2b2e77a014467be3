package cli

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"example.com/detective/internal/config"
	"example.com/detective/internal/suspicion"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/schollz/closestmatch"
)

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Yes, No, Info, Warn, Header, Prompt, Clue *color.Color
}{
	Yes:    color.New(color.FgGreen),
	No:     color.New(color.FgRed),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
	Clue:   color.New(color.FgYellow, color.Italic),
}

var suspectPalette = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgYellow),
	color.New(color.FgGreen),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgHiCyan),
}

// ColorizeSuspect returns a suspect name in a stable per-name color.
func ColorizeSuspect(name string) string {
	return suspectPalette[suspicion.Hash(name)%len(suspectPalette)].Sprint(name)
}

func orNone(name string) string {
	if name == "" {
		return "none"
	}
	return name
}

// --- Prompting and Usage ---

// readLine prints prompt and reads one trimmed line.
func (c *CLI) readLine(prompt string) (string, error) {
	C.Prompt.Fprint(c.out, prompt)
	input, err := c.line.Prompt("")
	if err != nil {
		return "", err
	}
	trimmed := strings.TrimSpace(input)
	if trimmed != "" {
		c.line.AppendHistory(trimmed)
	}
	return trimmed, nil
}

// suspectMatcher resolves menu input to a roster name: a 1-based number,
// a case-insensitive name, or the closest fuzzy match.
type suspectMatcher struct {
	roster  *config.Scenario
	byLower map[string]string
	fuzzy   *closestmatch.ClosestMatch
}

func newSuspectMatcher(s *config.Scenario) *suspectMatcher {
	m := &suspectMatcher{roster: s, byLower: make(map[string]string, len(s.Suspects))}
	lowered := make([]string, 0, len(s.Suspects))
	for _, name := range s.Suspects {
		low := strings.ToLower(name)
		m.byLower[low] = name
		lowered = append(lowered, low)
	}
	m.fuzzy = closestmatch.New(lowered, []int{2, 3})
	return m
}

// resolve returns the suspect and whether the match was fuzzy.
func (m *suspectMatcher) resolve(input string) (name string, fuzzy bool, ok bool) {
	if input == "" {
		return "", false, false
	}
	if n, err := strconv.Atoi(input); err == nil {
		name, ok = m.roster.SuspectAt(n)
		return name, false, ok
	}
	low := strings.ToLower(input)
	if name, ok = m.byLower[low]; ok {
		return name, false, true
	}
	if guess := m.fuzzy.Closest(low); guess != "" && sharedPrefix(low, guess) >= minFuzzyPrefix {
		return m.byLower[guess], true, true
	}
	return "", false, false
}

// minFuzzyPrefix is how many leading runes a fuzzy guess must share with the input.
const minFuzzyPrefix = 3

func sharedPrefix(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n := 0
	for n < len(ra) && n < len(rb) && ra[n] == rb[n] {
		n++
	}
	return n
}

func (c *CLI) promptForSuspect(m *suspectMatcher, prompt string) (string, bool, error) {
	C.Header.Fprintln(c.out, "\n"+prompt)
	for i, name := range m.roster.Suspects {
		fmt.Fprintf(c.out, " %d) %s\n", i+1, ColorizeSuspect(name))
	}
	input, err := c.readLine("Enter number or name: ")
	if err != nil {
		return "", false, err
	}
	name, fuzzy, ok := m.resolve(input)
	if !ok {
		C.Warn.Fprintln(c.out, "Invalid selection.")
		return "", false, nil
	}
	if fuzzy {
		C.Info.Fprintf(c.out, "Taking '%s' to mean %s.\n", input, ColorizeSuspect(name))
	}
	return name, true, nil
}

func (c *CLI) printMap(room, left, right string) {
	C.Header.Fprintln(c.out, "\n===== Mansion Map =====")
	fmt.Fprintf(c.out, "You are in: %s\n\n", room)
	fmt.Fprintf(c.out, "l - go left   [%s]\n", orNone(left))
	fmt.Fprintf(c.out, "r - go right  [%s]\n", orNone(right))
	fmt.Fprintln(c.out, "q - leave the map (go to the suspects menu)")
	C.Header.Fprintln(c.out, "=======================")
}

func (c *CLI) printFinalMenu() {
	C.Header.Fprintln(c.out, "\n===== FINAL MENU =====")
	fmt.Fprintln(c.out, "1 - Most implicated suspect(s)")
	fmt.Fprintln(c.out, "2 - Clues by suspect")
	fmt.Fprintln(c.out, "3 - Accuse a suspect")
	fmt.Fprintln(c.out, "4 - Exit")
	C.Header.Fprintln(c.out, "======================")
}

func (c *CLI) printClues(suspect string, clues iter.Seq[string]) {
	found := false
	for clue := range clues {
		if !found {
			C.Header.Fprintf(c.out, "\nClues pointing to %s:\n", ColorizeSuspect(suspect))
			found = true
		}
		fmt.Fprintf(c.out, " - %s\n", C.Clue.Sprint(clue))
	}
	if !found {
		C.Warn.Fprintf(c.out, "No clues point to %s.\n", ColorizeSuspect(suspect))
	}
}

// RenderScenario displays a scenario's roster, clue table and layout.
func RenderScenario(w io.Writer, s *config.Scenario) {
	C.Header.Fprintf(w, "\n--- %s ---\n", s.Title)
	fmt.Fprintf(w, "Clue chance: %d%%   Unknown suspect: %s\n", s.ClueChance, s.UnknownSuspect)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Suspects")
	t.AppendHeader(table.Row{"#", "Suspect"})
	for i, name := range s.Suspects {
		t.AppendRow(table.Row{i + 1, ColorizeSuspect(name)})
	}
	t.SetStyle(table.StyleLight)
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
	t.Render()

	t = table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Clues")
	t.AppendHeader(table.Row{"Clue", "Suspect", "Bucket"})
	for _, link := range s.Clues {
		t.AppendRow(table.Row{link.Clue, ColorizeSuspect(link.Suspect), suspicion.Hash(link.Clue)})
	}
	t.SetStyle(table.StyleLight)
	t.Render()

	t = table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Rooms")
	t.AppendHeader(table.Row{"Room", "Left", "Right", "Fixed clue"})
	for _, r := range s.Rooms {
		t.AppendRow(table.Row{r.Name, orNone(r.Left), orNone(r.Right), r.Clue})
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.Render()
}
