package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 5, Y: 5, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 15, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 0, Y: 15, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "touching edges",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 10, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "contained box",
			a:        RectF{X: 0, Y: 0, W: 20, H: 20},
			b:        RectF{X: 5, Y: 5, W: 5, H: 5},
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 9.5, Y: 9.5, W: 10, H: 10},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCircleBounds(t *testing.T) {
	c := Circle{X: 100, Y: 110, R: 10}
	b := c.Bounds()

	if b.X != 90 || b.Y != 100 || b.W != 20 || b.H != 20 {
		t.Errorf("Bounds() = %+v, expected {90 100 20 20}", b)
	}
}

func TestCircleIntersectsRect(t *testing.T) {
	brick := RectF{X: 100, Y: 100, W: 50, H: 20}

	tests := []struct {
		name     string
		c        Circle
		expected bool
	}{
		{"center inside", Circle{X: 120, Y: 110, R: 10}, true},
		{"edge overlap left", Circle{X: 95, Y: 110, R: 10}, true},
		{"touching left", Circle{X: 90, Y: 110, R: 10}, false},
		{"corner square overlap", Circle{X: 93, Y: 93, R: 10}, true},
		{"far below", Circle{X: 120, Y: 200, R: 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.IntersectsRect(brick); got != tc.expected {
				t.Errorf("IntersectsRect() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	f := RectF{X: 127.5, Y: 150, W: 50, H: 20}
	if f.Right() != 177.5 || f.Bottom() != 170 {
		t.Errorf("RectF edges = (%v, %v), expected (177.5, 170)", f.Right(), f.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
