package stats

import (
	"math"

	"git.lost.host/meutraa/rdstats/internal/hits"
)

// nearMultiple reports whether x lies within hits.Tolerance of a multiple of 1/d.
func nearMultiple(x, d float64) bool {
	return math.Abs(x*d-math.Round(x*d)) <= hits.Tolerance
}

// TickWeight is the irregularity one tick adds at a position holding count hits.
func TickWeight(tick float64, count int) float64 {
	n := float64(count)
	switch {
	case tick == 1:
		return 0
	case tick == 0:
		return 10
	case tick == 0.5:
		return 8 * n * 0.5
	case nearMultiple(tick, 3):
		return 12 * n * 0.75
	case nearMultiple(tick, 4):
		return 16 * n
	default:
		return (4 / tick) * n * 1.25
	}
}

// Irregularity sums the tick weights of every position but the last.
// Points must be sorted by beat.
func Irregularity(points []*hits.Point) float64 {
	total := 0.0
	for i := 0; i < len(points)-1; i++ {
		for _, tick := range points[i].Ticks {
			total += TickWeight(tick, points[i].Count)
		}
	}
	return total
}
