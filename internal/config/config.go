// Package config provides YAML-based configuration loading for the
// Casse-Briques hosts. Gameplay constants are fixed in the game package;
// this package only covers how a game is displayed and driven.
package config

import (
	"errors"
	"fmt"
)

// BriquesConfig contains all host configuration.
type BriquesConfig struct {
	Display DisplayConfig `yaml:"display"`
	Input   InputConfig   `yaml:"input"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig defines frame rate, world-to-cell scaling and theme.
type DisplayConfig struct {
	TickRate   int         `yaml:"tick_rate"`
	CellWidth  float64     `yaml:"cell_width"`  // World units per terminal column
	CellHeight float64     `yaml:"cell_height"` // World units per terminal row
	Theme      ThemeConfig `yaml:"theme"`
}

// ThemeConfig defines glyphs and color names for character hosts.
// Empty values keep the built-in look.
type ThemeConfig struct {
	Paddle      string   `yaml:"paddle"`
	Ball        string   `yaml:"ball"`
	Rows        []string `yaml:"rows"`
	BrickGlyphs string   `yaml:"brick_glyphs"`
}

// InputConfig defines input handling for hosts without key-release events.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a movement key stays held after a press
}

// LogConfig defines the logger level and destination.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty discards logs in interactive hosts
}

// ErrInvalid is returned by Validate for out-of-range values.
var ErrInvalid = errors.New("invalid config")

// Validate checks that every numeric setting is usable.
func (c BriquesConfig) Validate() error {
	if c.Display.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate %d: %w", c.Display.TickRate, ErrInvalid)
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		return fmt.Errorf("config: cell size %vx%v: %w", c.Display.CellWidth, c.Display.CellHeight, ErrInvalid)
	}
	if c.Input.HoldTicks < 1 {
		return fmt.Errorf("config: hold_ticks %d: %w", c.Input.HoldTicks, ErrInvalid)
	}
	return nil
}
