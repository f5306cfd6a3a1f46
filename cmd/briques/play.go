package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/casse-briques/internal/config"
	"github.com/vovakirdan/casse-briques/internal/core"
	"github.com/vovakirdan/casse-briques/internal/games/breakout"
	"github.com/vovakirdan/casse-briques/internal/platform"
	"github.com/vovakirdan/casse-briques/internal/platform/cellterm"
	"github.com/vovakirdan/casse-briques/internal/platform/tui"
	"github.com/vovakirdan/casse-briques/internal/platform/window"
	"github.com/vovakirdan/casse-briques/internal/registry"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to breakout.

Controls:
  Left/A, Right/D  - Move the paddle
  Space/Enter      - Start a round
  R                - Restart after game over
  P/Esc            - Pause
  Q/Ctrl+C         - Quit

Backends:
  tui     - Bubble Tea terminal UI (default)
  tcell   - Direct tcell terminal output
  window  - Desktop window with real key-release handling

Terminals report key presses but not releases, so in the terminal
backends a press keeps the paddle moving for input.hold_ticks ticks.

Examples:
  briques play
  briques play breakout --backend tcell
  briques play --backend window --fps 120
  briques play --config ./my-briques.yaml --log-file briques.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Host backend: tui, tcell, window")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "breakout"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'briques list' to see available games.")
		os.Exit(1)
	}

	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := platform.NewLogger(settings.Log.File, settings.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig(settings)

	var runErr error
	switch flagBackend {
	case "tui":
		runErr = tui.Run(game, cfg, tui.Options{
			HoldTicks: settings.Input.HoldTicks,
			Logger:    logger,
		})

	case "tcell":
		runErr = runCellTerm(game, cfg, settings, logger)

	case "window":
		bg, ok := game.(*breakout.Game)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: game %q has no window backend\n", gameID)
			os.Exit(1)
		}
		runErr = window.Run(bg, window.Options{
			TickRate: settings.Display.TickRate,
			Logger:   logger,
		})

	default:
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q (want tui, tcell or window)\n", flagBackend)
		os.Exit(1)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	state := game.State()
	fmt.Printf("Final score: %d\n", state.Score)
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig(settings config.BriquesConfig) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		CellW:    settings.Display.CellWidth,
		CellH:    settings.Display.CellHeight,
		TickRate: settings.Display.TickRate,
	}
}

func runCellTerm(game registry.Game, cfg core.RuntimeConfig, settings config.BriquesConfig, logger *log.Logger) error {
	screen, err := cellterm.Open()
	if err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	d := cellterm.New(screen, game, cfg, cellterm.Options{
		HoldTicks: settings.Input.HoldTicks,
		Logger:    logger,
	})
	return d.Run(ctx)
}
