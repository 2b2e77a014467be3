package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"example.com/detective/internal/cli"
	"example.com/detective/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	settings *config.Settings
	games    int
	log      = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "detective",
	Short: "Explore a mansion, collect clues and accuse the culprit",
	Long:  "A text mystery: walk the rooms of a mansion, record the clues you find and accuse the suspect they point to.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := viper.New()
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		var err error
		if settings, err = config.LoadSettings(v); err != nil {
			return err
		}

		level, err := logrus.ParseLevel(settings.LogLevel)
		if err != nil {
			level = logrus.InfoLevel
		}
		log.SetLevel(level)
		return nil
	},
	SilenceUsage: true,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play an interactive investigation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, chance, err := settings.ResolveScenario()
		if err != nil {
			return err
		}
		ui := cli.NewCLI(log)
		defer ui.Close()
		return ui.Play(scenario, newRand(), chance)
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless investigations with an automated detective",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if games < 1 {
			return fmt.Errorf("--games must be at least 1, got %d", games)
		}
		scenario, chance, err := settings.ResolveScenario()
		if err != nil {
			return err
		}
		ui := cli.New(log, nil, os.Stdout)
		_, err = ui.Simulate(scenario, newRand(), chance, games)
		return err
	},
}

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Show the active scenario",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, _, err := settings.ResolveScenario()
		if err != nil {
			return err
		}
		cli.RenderScenario(os.Stdout, scenario)
		return nil
	},
}

func init() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})

	flags := rootCmd.PersistentFlags()
	flags.String("loglevel", "info", "Set logging level (debug, info, warn, error)")
	flags.String("scenario", "", "scenario file, JSON or YAML (default is the built-in mansion)")
	flags.Int("clue-chance", -1, "percent chance a room holds a clue (default is the scenario's)")
	flags.Int64("seed", 0, "random seed (default is the current time)")

	simulateCmd.Flags().IntVar(&games, "games", 100, "number of investigations to run")
}

func newRand() *rand.Rand {
	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debugf("Random seed: %d", seed)
	return rand.New(rand.NewSource(seed))
}

func main() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scenarioCmd)

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("Command execution failed")
		os.Exit(1)
	}
}
