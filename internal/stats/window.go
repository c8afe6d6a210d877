package stats

import "git.lost.host/meutraa/rdstats/internal/hits"

// WindowSpan is the widest beat distance between the first and last
// position of a density window.
const WindowSpan = 4

func weight(p *hits.Point) int {
	if p.Jump() {
		return 2
	}
	return 1
}

// Density returns the largest weight gathered by a window sliding right
// over the positions, spanning at most WindowSpan beats. The window only
// gathers positions after the first, yet drops the first position's weight
// when it moves past it, so the result is a true window total less the
// first position's weight. Points must be sorted by beat.
func Density(points []*hits.Point) int {
	left := 0
	current, best := 0, 0
	for right := 1; right < len(points); right++ {
		current += weight(points[right])
		for points[right].Beat-points[left].Beat > WindowSpan {
			current -= weight(points[left])
			left++
		}
		if current > best {
			best = current
		}
	}
	return best
}
