package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "vehicle on small boulder",
			a:        NewRect(100, 340, 40, 20),
			b:        NewRect(120, 340, 20, 20),
			expected: true,
		},
		{
			name:     "projectile inside large boulder",
			a:        NewRect(150, 350, 10, 4),
			b:        NewRect(140, 320, 40, 40),
			expected: true,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(100, 340, 40, 20),
			b:        NewRect(140, 340, 20, 20),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(100, 320, 40, 20),
			b:        NewRect(100, 340, 20, 20),
			expected: false,
		},
		{
			name:     "airborne vehicle above boulder",
			a:        NewRect(100, 250, 40, 20),
			b:        NewRect(110, 340, 20, 20),
			expected: false,
		},
		{
			name:     "single unit overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
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

func TestRectOverlapsX(t *testing.T) {
	vehicle := NewRect(100, 340, 40, 20)

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"crater under vehicle", NewRect(90, 360, 60, 30), true},
		{"crater ends at vehicle nose", NewRect(60, 360, 40, 30), false},
		{"crater starts at vehicle tail", NewRect(140, 360, 40, 30), false},
		{"crater far ahead", NewRect(700, 360, 40, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := vehicle.OverlapsX(tc.other); got != tc.expected {
				t.Errorf("OverlapsX() = %v, expected %v", got, tc.expected)
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
}
