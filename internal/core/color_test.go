package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"red", ColorRed, false},
		{" Orange ", ColorOrange, false},
		{"grey", ColorGray, false},
		{"ultraviolet", ColorDefault, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestColorANSI(t *testing.T) {
	if ColorDefault.ANSI() != "" {
		t.Error("default color should have no ANSI code")
	}
	if ColorOrange.ANSI() != "208" {
		t.Errorf("ColorOrange.ANSI() = %q, expected 208", ColorOrange.ANSI())
	}
}

func TestColorsCoverNames(t *testing.T) {
	seen := make(map[Color]bool)
	for _, c := range Colors() {
		seen[c] = true
	}
	for name, c := range colorNames {
		if !seen[c] {
			t.Errorf("color %q missing from Colors()", name)
		}
	}
}

func TestColorRGBOpaque(t *testing.T) {
	for _, c := range Colors() {
		if c.RGB().A != 255 {
			t.Errorf("color %d is not opaque", c)
		}
	}
	if ColorRed.RGB() == ColorBlue.RGB() {
		t.Error("distinct colors should map to distinct pixels")
	}
}
