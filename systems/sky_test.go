package systems

import "testing"

func TestWrapCloudX(t *testing.T) {
	tests := []struct {
		name     string
		x, w     float64
		width    float64
		expected float64
	}{
		{"inside", 100, 50, 1000, 100},
		{"just off the right edge", 1000, 50, 1000, -50},
		{"past the right edge", 1020, 50, 1000, -30},
		{"partly off the left edge", -20, 50, 1000, -20},
		{"fully off the left edge", -60, 50, 1000, 990},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapCloudX(tt.x, tt.w, tt.width); got != tt.expected {
				t.Errorf("wrapCloudX(%v, %v, %v) = %v, want %v", tt.x, tt.w, tt.width, got, tt.expected)
			}
		})
	}
}

func TestLerp8(t *testing.T) {
	if got := lerp8(0, 200, 0.5); got != 100 {
		t.Errorf("lerp8 midpoint = %d, want 100", got)
	}
	if got := lerp8(200, 0, 1); got != 0 {
		t.Errorf("lerp8 end = %d, want 0", got)
	}
}
