package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateFinalPrice(t *testing.T) {
	cases := []struct {
		name     string
		base     float64
		fraction float64
		want     float64
	}{
		{"no discount", 1500, 0, 1500},
		{"ten percent", 1500, 0.10, 1350},
		{"rounds to cents", 99.99, 0.15, 84.99},
		{"full discount floors at one", 1500, 1, 1},
		{"tiny base floors at one", 0.5, 0, 1},
		{"fraction above one is clamped", 200, 1.5, 1},
		{"negative fraction is ignored", 200, -0.2, 200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CalculateFinalPrice(tc.base, tc.fraction))
		})
	}
}

func TestCalculateFinalPrice_MatchesFormula(t *testing.T) {
	for _, base := range []float64{1, 7.5, 120, 999.99, 1500, 25000} {
		for pct := 1; pct <= 100; pct++ {
			d := float64(pct) / 100
			want := math.Round(math.Max(base*(1-d), 1)*100) / 100
			got := CalculateFinalPrice(base, d)
			if got != want {
				t.Fatalf("base=%v d=%v: expected %v, got %v", base, d, want, got)
			}
			if got > base && base >= 1 {
				t.Fatalf("discounted price %v above base %v", got, base)
			}
		}
	}
}
