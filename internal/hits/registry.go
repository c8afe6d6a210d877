package hits

import "git.lost.host/meutraa/rdstats/internal/util"

// Point is every hit registered at one canonical beat.
type Point struct {
	Beat  float64
	Count int
	Ticks []float64 // one per registration, in registration order
}

// Jump is true once two or more hits share the position.
func (p *Point) Jump() bool {
	return p.Count > 1
}

// Registry accumulates hits during a timeline pass. It only grows.
type Registry struct {
	points map[float64]*Point

	total  int
	unique int
	jumps  int
}

func NewRegistry() *Registry {
	return &Registry{points: map[float64]*Point{}}
}

// Register records one hit near beat with the given tick offset.
func (r *Registry) Register(beat, tick float64) {
	beat = Canonicalize(beat)

	if p, ok := r.points[beat]; ok {
		if p.Count == 1 {
			r.jumps++
		}
		p.Count++
		p.Ticks = append(p.Ticks, tick)
	} else {
		r.points[beat] = &Point{Beat: beat, Count: 1, Ticks: []float64{tick}}
		r.unique++
	}
	r.total++
}

func (r *Registry) Total() int  { return r.total }
func (r *Registry) Unique() int { return r.unique }
func (r *Registry) Jumps() int  { return r.jumps }

// At returns the point at an already canonical beat.
func (r *Registry) At(beat float64) (*Point, bool) {
	p, ok := r.points[beat]
	return p, ok
}

// Points returns every position sorted by beat.
func (r *Registry) Points() []*Point {
	beats := util.SortedKeys(r.points)
	points := make([]*Point, len(beats))
	for i, beat := range beats {
		points[i] = r.points[beat]
	}
	return points
}
