package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/casse-briques/internal/core"
	"github.com/vovakirdan/casse-briques/internal/games/breakout"
	"github.com/vovakirdan/casse-briques/internal/platform"
)

var (
	flagFrames int
	flagWidth  int
	flagHeight int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game driven by the autopilot",
	Long: `Runs the simulation without a display. The autopilot starts rounds
and follows the ball with the paddle. Game events are logged to stderr
and a summary with the final snapshot hash is printed at the end.

Two runs with the same frame count and playfield size print the same hash.

Examples:
  briques sim
  briques sim --frames 20000 --width 1024 --height 768
  briques sim --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagWidth, "width", 800, "Playfield width in world units")
	simCmd.Flags().IntVar(&flagHeight, "height", 600, "Playfield height in world units")
}

func runSim(cmd *cobra.Command, args []string) {
	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level, err := log.ParseLevel(settings.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "briques-sim",
		Level:           level,
	})

	game := breakout.New()
	game.Reset(core.RuntimeConfig{
		ScreenW:  flagWidth,
		ScreenH:  flagHeight,
		CellW:    1,
		CellH:    1,
		TickRate: settings.Display.TickRate,
	})
	if game.Snapshot().Viewport.Width < breakout.MinViewportW || game.Snapshot().Viewport.Height < breakout.MinViewportH {
		fmt.Fprintf(os.Stderr, "Error: playfield %dx%d is smaller than %.0fx%.0f\n",
			flagWidth, flagHeight, breakout.MinViewportW, breakout.MinViewportH)
		os.Exit(1)
	}

	logger.Info("simulation started", "frames", flagFrames, "width", flagWidth, "height", flagHeight)

	state := game.State()
	rounds := 0
	for range flagFrames {
		result := game.Step(breakout.Autopilot(game.Snapshot()))
		if !state.Playing && result.State.Playing {
			rounds++
		}
		platform.LogTransition(logger, state, result.State)
		state = result.State
	}

	snap := game.Snapshot()
	logger.Info("simulation finished", "rounds", rounds, "phase", snap.Phase)

	fmt.Printf("Frames:      %d\n", flagFrames)
	fmt.Printf("Rounds:      %d\n", rounds)
	fmt.Printf("Phase:       %s\n", snap.Phase)
	fmt.Printf("Score:       %d\n", snap.Score)
	fmt.Printf("Lives:       %d\n", snap.Lives)
	fmt.Printf("Bricks left: %d\n", len(snap.Bricks))
	fmt.Printf("Hash:        %016x\n", snap.Hash())
}
