package game

import (
	"cmp"
	"math"
)

func clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

// round1 rounds to one decimal place for snapshots
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
