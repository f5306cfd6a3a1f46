package config

import (
	_ "embed"
)

//go:embed defaults/briques.yaml
var defaultBriquesYAML []byte

// DefaultBriquesConfig returns the default host configuration.
// A 80x24 terminal maps to an 800x600 playfield.
func DefaultBriquesConfig() BriquesConfig {
	return BriquesConfig{
		Display: DisplayConfig{
			TickRate:   60,
			CellWidth:  10,
			CellHeight: 25,
		},
		Input: InputConfig{
			HoldTicks: 6,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBriquesYAML
}
