package usecase

import "math/rand"

// GenerateHistory builds a synthetic daily price series ending at current,
// random-walking backwards with moves of up to ±2% per day. The chart needs
// a trend to draw; the quote endpoint only gives a single point.
func GenerateHistory(rng *rand.Rand, current float64, days int) []float64 {
	if days <= 0 {
		return nil
	}
	prices := make([]float64, days)
	prices[days-1] = current
	for i := days - 2; i >= 0; i-- {
		change := rng.Float64()*4 - 2
		prices[i] = prices[i+1] * (1 + change/100)
	}
	return prices
}
