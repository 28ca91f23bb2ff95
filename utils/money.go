package utils

import "math"

// Round2 rounds a money amount to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds a rating to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
