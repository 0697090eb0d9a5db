// Package view projects raw result payloads into presentation models. Every
// optional or nested field is independently absent-tolerant: a missing block
// degrades to the omission of that section, never to a failure.
package view

import (
	"fmt"
	"math"
)

// Percent converts a fractional score in [0,1] to a whole percentage.
func Percent(score float64) int {
	return int(math.Round(score * 100))
}

// Pixels rounds a pixel distance to the nearest whole pixel.
func Pixels(d float64) int {
	return int(math.Round(d))
}

// RatioLabel formats a crop ratio with exactly two decimal digits, e.g.
// "1.50:1".
func RatioLabel(ratio float64) string {
	return fmt.Sprintf("%.2f:1", ratio)
}

// Ordinal decorates podium ranks. rank is 1-based; ranks beyond the top
// three get no decoration.
func Ordinal(rank int) string {
	switch rank {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return ""
	}
}
