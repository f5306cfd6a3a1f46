package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML BriquesConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	def := DefaultBriquesConfig()
	if fromYAML.Display.TickRate != def.Display.TickRate ||
		fromYAML.Display.CellWidth != def.Display.CellWidth ||
		fromYAML.Display.CellHeight != def.Display.CellHeight ||
		fromYAML.Input.HoldTicks != def.Input.HoldTicks ||
		fromYAML.Log.Level != def.Log.Level {
		t.Errorf("embedded defaults %+v differ from hardcoded %+v", fromYAML, def)
	}
	if err := fromYAML.Validate(); err != nil {
		t.Errorf("embedded defaults invalid: %v", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Display.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.Display.TickRate)
	}
	if len(cfg.Display.Theme.Rows) != 5 {
		t.Errorf("Theme.Rows = %v, expected five embedded colors", cfg.Display.Theme.Rows)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "custom.yaml", "display:\n  tick_rate: 30\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Display.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.Display.TickRate)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Display.CellHeight != 25 || cfg.Input.HoldTicks != 6 {
		t.Errorf("partial file lost defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		invalid bool
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), false},
		{"broken yaml", writeFile(t, dir, "broken.yaml", "display: [\n"), false},
		{"zero tick rate", writeFile(t, dir, "zero.yaml", "display:\n  tick_rate: 0\n"), true},
		{"negative cell", writeFile(t, dir, "cell.yaml", "display:\n  cell_width: -1\n"), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if got := errors.Is(err, ErrInvalid); got != tc.invalid {
				t.Errorf("errors.Is(err, ErrInvalid) = %v, expected %v (err: %v)", got, tc.invalid, err)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, work, filepath.Join("configs", FileName), "display:\n  tick_rate: 45\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Display.TickRate != 45 {
		t.Errorf("TickRate = %d, expected local config 45", cfg.Display.TickRate)
	}

	writeFile(t, home, filepath.Join(".briques", "configs", FileName), "display:\n  tick_rate: 20\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Display.TickRate != 20 {
		t.Errorf("TickRate = %d, expected user config 20 to win", cfg.Display.TickRate)
	}
}

func TestLoadSkipsBrokenSearchFile(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, home, filepath.Join(".briques", "configs", FileName), "display:\n  tick_rate: -5\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Display.TickRate != 60 {
		t.Errorf("TickRate = %d, expected fallback to 60", cfg.Display.TickRate)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BriquesConfig)
		valid  bool
	}{
		{"defaults", func(*BriquesConfig) {}, true},
		{"zero tick rate", func(c *BriquesConfig) { c.Display.TickRate = 0 }, false},
		{"zero cell height", func(c *BriquesConfig) { c.Display.CellHeight = 0 }, false},
		{"zero hold ticks", func(c *BriquesConfig) { c.Input.HoldTicks = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBriquesConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.valid {
				t.Errorf("Validate() = %v, expected valid=%v", err, tc.valid)
			}
		})
	}
}
