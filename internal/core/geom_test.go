package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestMod(t *testing.T) {
	tests := []struct {
		a, n, expected int
	}{
		{5, 32, 5},
		{32, 32, 0},
		{33, 32, 1},
		{-1, 32, 31},
		{-32, 32, 0},
		{-33, 32, 31},
	}

	for _, tc := range tests {
		if got := Mod(tc.a, tc.n); got != tc.expected {
			t.Errorf("Mod(%d, %d) = %d, expected %d", tc.a, tc.n, got, tc.expected)
		}
	}
}
