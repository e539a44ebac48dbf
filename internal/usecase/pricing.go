package usecase

import "math"

// MinChargeAmount is the lowest unit price ever sent to the processor; a
// zero or negative amount is rejected by the checkout API.
const MinChargeAmount = 1.0

// CalculateFinalPrice applies a discount fraction to base, floors the result
// at MinChargeAmount and rounds it to cents.
func CalculateFinalPrice(base, discountFraction float64) float64 {
	if discountFraction < 0 {
		discountFraction = 0
	}
	if discountFraction > 1 {
		discountFraction = 1
	}
	final := base * (1 - discountFraction)
	if final < MinChargeAmount {
		final = MinChargeAmount
	}
	return roundCents(final)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
