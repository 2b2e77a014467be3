package cli

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"math/rand"
	"os"
	"slices"
	"strings"

	"example.com/detective/internal/ai"
	"example.com/detective/internal/config"
	"example.com/detective/internal/game"
	"example.com/detective/internal/mansion"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// LineReader is the part of liner.State the menus need.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// CLI manages all command-line interactions.
type CLI struct {
	log  *logrus.Logger
	line LineReader
	out  io.Writer
}

// NewCLI creates a command-line interface reading from the terminal.
func NewCLI(log *logrus.Logger) *CLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return New(log, line, os.Stdout)
}

// New creates a CLI over any line source and output writer.
func New(log *logrus.Logger, line LineReader, out io.Writer) *CLI {
	return &CLI{log: log, line: line, out: out}
}

// Close restores the terminal when the line source needs it.
func (c *CLI) Close() error {
	if closer, ok := c.line.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func isEndOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted)
}

// Play runs one interactive session: exploration, then the final menu, then the report.
func (c *CLI) Play(scenario *config.Scenario, rng *rand.Rand, clueChance int) error {
	builder := game.NewBuilder(scenario, c.log, rng).WithClueChance(clueChance)
	builder.EventManager().Subscribe(NewSessionRenderer(c.out))

	s, err := builder.Build()
	if err != nil {
		return fmt.Errorf("failed to build session: %w", err)
	}
	defer s.Close()

	if err := c.explore(s); err != nil {
		return err
	}
	if err := s.EndExploration(); err != nil {
		return err
	}
	if err := c.accuse(s); err != nil {
		return err
	}
	_, err = s.Finish()
	return err
}

func (c *CLI) explore(s *game.Session) error {
	for {
		view := s.View()
		c.printMap(view.Name, view.Left, view.Right)

		input, err := c.readLine("Your choice: ")
		if err != nil {
			if isEndOfInput(err) {
				C.Info.Fprintln(c.out, "\nLeaving the map.")
				return nil
			}
			return fmt.Errorf("error reading line: %w", err)
		}
		if input == "" {
			continue
		}

		if strings.EqualFold(input[:1], "q") {
			C.Info.Fprintln(c.out, "Leaving the map.")
			return nil
		}
		d, ok := mansion.ParseDirection(input)
		if !ok {
			C.Warn.Fprintf(c.out, "Unknown option '%s'. Use l, r or q.\n", input)
			continue
		}

		if _, err := s.Move(d); err != nil && !errors.Is(err, mansion.ErrNoRoom) {
			return err
		}
	}
}

func (c *CLI) accuse(s *game.Session) error {
	matcher := newSuspectMatcher(s.Scenario)
	for {
		c.printFinalMenu()
		input, err := c.readLine("Your choice: ")
		if err != nil {
			if isEndOfInput(err) {
				C.Info.Fprintln(c.out, "\nClosing the case.")
				return nil
			}
			return fmt.Errorf("error reading line: %w", err)
		}
		if input == "" {
			continue
		}

		switch input[:1] {
		case "1":
			if _, err := s.Rank(); err != nil {
				return err
			}
		case "2":
			name, ok, err := c.promptForSuspect(matcher, "Whose clues do you want to see?")
			if err != nil {
				if isEndOfInput(err) {
					return nil
				}
				return fmt.Errorf("error reading line: %w", err)
			}
			if !ok {
				continue
			}
			clues, err := s.CluesFor(name)
			if err != nil {
				return err
			}
			c.printClues(name, clues)
		case "3":
			name, ok, err := c.promptForSuspect(matcher, "Who do you accuse?")
			if err != nil {
				if isEndOfInput(err) {
					return nil
				}
				return fmt.Errorf("error reading line: %w", err)
			}
			if !ok {
				continue
			}
			if _, err := s.Accuse(name); err != nil {
				return err
			}
		case "4":
			C.Info.Fprintln(c.out, "Closing the case.")
			return nil
		default:
			C.Warn.Fprintf(c.out, "Unknown option '%s'. Choose 1 to 4.\n", input)
		}
	}
}

// SimulationSummary totals a batch of headless games.
type SimulationSummary struct {
	Games        int
	Correct      int
	Accused      map[string]int
	RoomsVisited int
}

// Simulate plays games headless sessions with one automated detective and
// prints the results.
func (c *CLI) Simulate(scenario *config.Scenario, rng *rand.Rand, clueChance, games int) (SimulationSummary, error) {
	C.Header.Fprintf(c.out, "--- Running %d simulated investigation(s) ---\n", games)

	detective := ai.NewDetective("Auto", c.log, ai.NewRandomChooser(rng))
	summary := SimulationSummary{Accused: make(map[string]int)}
	maxAttempts := 2 * len(scenario.Rooms)

	for i := 0; i < games; i++ {
		builder := game.NewBuilder(scenario, c.log, rng).WithClueChance(clueChance)
		builder.EventManager().Subscribe(detective)
		s, err := builder.Build()
		if err != nil {
			return summary, fmt.Errorf("failed to build session %d: %w", i+1, err)
		}
		verdict, err := s.RunSimulation(detective, maxAttempts)
		s.Close()
		if err != nil {
			return summary, fmt.Errorf("session %d: %w", i+1, err)
		}

		summary.Games++
		summary.Accused[verdict.Suspect]++
		if verdict.Correct {
			summary.Correct++
		}
	}
	summary.RoomsVisited = detective.RoomsVisited()

	c.renderSummary(scenario.Suspects, summary)
	c.renderNotebook(detective.Name(), detective.Notebook())
	return summary, nil
}

// renderNotebook shows the clues the detective noted in its last session.
func (c *CLI) renderNotebook(name string, notebook map[string][]string) {
	C.Header.Fprintf(c.out, "\n--- Notes for %s (last investigation) ---\n", name)
	if len(notebook) == 0 {
		C.Warn.Fprintln(c.out, "(no clues noted)")
		return
	}
	suspects := slices.Sorted(maps.Keys(notebook))
	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.AppendHeader(table.Row{"Suspect", "Clue"})
	for _, suspect := range suspects {
		for _, clue := range notebook[suspect] {
			t.AppendRow(table.Row{ColorizeSuspect(suspect), clue})
		}
	}
	t.SetStyle(table.StyleLight)
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, AutoMerge: true}})
	t.Render()
}

func (c *CLI) renderSummary(roster []string, summary SimulationSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.SetTitle("Accusations")
	t.AppendHeader(table.Row{"Suspect", "Accused"})
	for _, name := range roster {
		t.AppendRow(table.Row{ColorizeSuspect(name), summary.Accused[name]})
	}
	rate := 0.0
	if summary.Games > 0 {
		rate = 100 * float64(summary.Correct) / float64(summary.Games)
	}
	t.AppendFooter(table.Row{"Correct", fmt.Sprintf("%d/%d (%.1f%%)", summary.Correct, summary.Games, rate)})
	t.SetStyle(table.StyleRounded)
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight}})
	t.Render()
	C.Info.Fprintf(c.out, "Distinct rooms visited: %d\n", summary.RoomsVisited)
}

// ShowScenario prints the scenario tables.
func (c *CLI) ShowScenario(scenario *config.Scenario) {
	RenderScenario(c.out, scenario)
}
