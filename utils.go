package scatter

import (
	"math/rand"
	"time"
)

// randf returns a random float in [min, max)
func randf(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// timeSeed is used when the caller doesn't give us a seed
func timeSeed() int64 {
	return time.Now().UnixNano()
}

// maxint returns the highest of two ints
func maxint(a, b int) int {
	if a > b {
		return a
	}
	return b
}
