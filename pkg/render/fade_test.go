package render

import (
	"math"
	"testing"
)

func TestAlpha(t *testing.T) {
	tests := []struct {
		name        string
		distance    int
		maxDistance int
		want        float64
	}{
		{"start is opaque", 0, 4, 1},
		{"halfway", 2, 4, 0.5},
		{"floor at max", 4, 4, MinAlpha},
		{"floor before max", 3, 4, MinAlpha},
		{"zero max treated as one", 0, 0, 1},
		{"zero max at distance one", 1, 0, MinAlpha},
		{"negative max treated as one", 0, -3, 1},
		{"single hop", 1, 1, MinAlpha},
		{"ten hops", 1, 10, 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Alpha(tt.distance, tt.maxDistance); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Alpha(%d, %d) = %v, want %v", tt.distance, tt.maxDistance, got, tt.want)
			}
		})
	}
}

func TestFadeAlphaBounds(t *testing.T) {
	for limit := 0; limit < 8; limit++ {
		prev := 2.0
		for d := 0; d <= limit+1; d++ {
			a := FadeAlpha(d, limit, 0.25)
			if a < 0.25 || a > 1 {
				t.Errorf("FadeAlpha(%d, %d) = %v out of [0.25, 1]", d, limit, a)
			}
			if a > prev {
				t.Errorf("FadeAlpha not monotone at d=%d limit=%d", d, limit)
			}
			prev = a
		}
	}
}
