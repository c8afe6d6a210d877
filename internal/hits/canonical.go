package hits

import "math"

// Tolerance is how far a beat may sit from a grid line and still snap to it.
const Tolerance = 0.05

// Denominators are tried in order; the first grid within Tolerance wins.
var Denominators = [...]float64{1, 2, 3, 4}

// Canonicalize snaps a beat onto the coarsest of the whole, half, third or
// quarter beat grids that lies within Tolerance. Beats near none of them are
// returned unchanged.
func Canonicalize(beat float64) float64 {
	for _, d := range Denominators {
		scaled := beat * d
		nearest := math.Round(scaled)
		if math.Abs(scaled-nearest) <= Tolerance {
			return nearest / d
		}
	}
	return beat
}
