package gamemath

import "testing"

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.25, 2.5},
		{1, 0.35, 1, 0.35},
	}
	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-0.5, 0, 1); got != 0 {
		t.Errorf("Clamp below = %v, want 0", got)
	}
	if got := Clamp(1.5, 0, 1); got != 1 {
		t.Errorf("Clamp above = %v, want 1", got)
	}
	if got := Clamp(0.3, 0, 1); got != 0.3 {
		t.Errorf("Clamp inside = %v, want 0.3", got)
	}
}

func TestInvLerp(t *testing.T) {
	if got := InvLerp(0, 200, 50); got != 0.25 {
		t.Errorf("InvLerp = %v, want 0.25", got)
	}
	if got := InvLerp(3, 3, 3); got != 0 {
		t.Errorf("InvLerp on an empty range = %v, want 0", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name        string
		x, lo, span float64
		want        float64
	}{
		{"inside", 10, -50, 100, 10},
		{"at upper bound", 50, -50, 100, -50},
		{"above", 70, -50, 100, -30},
		{"below", -60, -50, 100, 40},
		{"no span", 7, 0, 0, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.x, tt.lo, tt.span); got != tt.want {
				t.Errorf("Wrap(%v, %v, %v) = %v, want %v", tt.x, tt.lo, tt.span, got, tt.want)
			}
		})
	}
}
