// briques is a brick breaker for the terminal and the desktop.
//
// Usage:
//
//	briques list                         - List available games
//	briques play [game]                  - Play (default: breakout)
//	briques play --backend tcell         - Play on the tcell backend
//	briques play --backend window        - Play in a desktop window
//	briques sim --frames 3600            - Run a headless autopilot game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--config <path>       - Use a custom config file
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file while playing
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/casse-briques/internal/config"
	"github.com/vovakirdan/casse-briques/internal/games/breakout"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "briques",
	Short: "Casse-Briques - break bricks in your terminal",
	Long: `Casse-Briques is a single-screen brick breaker. Move the paddle,
keep the ball in play and clear the wall of bricks.

Available commands:
  list     - Show all available games
  play     - Play in the terminal or in a window
  sim      - Run a headless game driven by the autopilot

Examples:
  briques list
  briques play
  briques play --backend window
  briques sim --frames 10000 --log-level debug`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (default: from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for interactive play (default: from config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
}

// loadSettings loads the config, applies command-line overrides and
// installs the configured theme.
func loadSettings() (config.BriquesConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	theme, err := breakout.ThemeFromConfig(cfg.Display.Theme)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	breakout.SetTheme(theme)

	return cfg, nil
}
