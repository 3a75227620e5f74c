package util

import "math"

// SafeFloat maps NaN and infinities to 0 so values marshal to valid JSON.
func SafeFloat(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Round2 rounds to two decimal places.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}
