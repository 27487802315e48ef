package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 6).Inset(2)
	if r.X != 2 || r.Y != 2 || r.W != 6 || r.H != 2 {
		t.Errorf("Inset(2) = %+v, expected {2 2 6 2}", r)
	}

	tiny := NewRect(0, 0, 2, 2).Inset(3)
	if tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inset past size should collapse to zero, got %+v", tiny)
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
	if got := ClampF(-5.5, 0, 10); got != 0 {
		t.Errorf("ClampF below = %f, expected 0", got)
	}
	if got := ClampF(15.5, 0, 10); got != 10 {
		t.Errorf("ClampF above = %f, expected 10", got)
	}
	if got := ClampF(5.5, 0, 10); got != 5.5 {
		t.Errorf("ClampF inside = %f, expected 5.5", got)
	}
}

func TestManhattan(t *testing.T) {
	if d := Manhattan(0, 0, 3, -4); d != 7 {
		t.Errorf("Manhattan() = %d, expected 7", d)
	}
	if d := Manhattan(5, 5, 5, 5); d != 0 {
		t.Errorf("Manhattan() same cell = %d, expected 0", d)
	}
}

func TestLerp(t *testing.T) {
	if v := Lerp(0, 16, 0.5); v != 8 {
		t.Errorf("Lerp(0, 16, 0.5) = %f, expected 8", v)
	}
	if v := Lerp(32, 16, 1); v != 16 {
		t.Errorf("Lerp(32, 16, 1) = %f, expected 16", v)
	}
}
