package freetime

import (
	"errors"
	"fmt"

	"git.lost.host/meutraa/rdstats/internal/util"
)

// Pulse values. A freetime beat is hit when its pulse reaches Hit.
const (
	Hit       = 6
	BeforeHit = Hit - 1
)

type Action string

const (
	Custom    Action = "Custom"
	Increment Action = "Increment"
	Decrement Action = "Decrement"
	Remove    Action = "Remove"
)

var ErrUnknownAction = errors.New("unknown freetime action")

// Registrar receives the hits of resolved intervals.
type Registrar interface {
	Register(beat, tick float64)
}

// Interval is a freetime beat that has been opened but not yet hit.
type Interval struct {
	Row             int
	Pulse           int
	TotalDifference int // pulse distance travelled, starting at the opening pulse
	StartBeat       float64
}

// Tick is the tick value registered when the interval resolves.
func (i *Interval) Tick() float64 {
	return float64(i.TotalDifference) / 7
}

// Tracker holds the open intervals of each row in creation order.
type Tracker struct {
	rows map[int][]*Interval
}

func NewTracker() *Tracker {
	return &Tracker{rows: map[int][]*Interval{}}
}

func (t *Tracker) Open(row, pulse int, beat float64) {
	t.rows[row] = append(t.rows[row], &Interval{
		Row:             row,
		Pulse:           pulse,
		TotalDifference: pulse,
		StartBeat:       beat,
	})
}

// Row returns the open intervals of a row.
func (t *Tracker) Row(row int) []*Interval {
	return t.rows[row]
}

// Pulse applies a pulse action at beat to every interval open on row.
// Intervals opened at beat are not resolved or removed by it.
func (t *Tracker) Pulse(row int, action Action, customPulse int, beat float64, hits Registrar) error {
	switch action {
	case Custom:
		if customPulse == Hit {
			t.keep(row, func(i *Interval) bool {
				if i.StartBeat == beat {
					return true
				}
				hits.Register(beat, i.Tick())
				return false
			})
			return nil
		}
		for _, i := range t.rows[row] {
			i.TotalDifference += abs(i.Pulse - customPulse)
			i.Pulse = customPulse
		}
	case Increment:
		t.keep(row, func(i *Interval) bool {
			if i.Pulse != BeforeHit {
				i.Pulse++
				i.TotalDifference++
				return true
			}
			if i.StartBeat == beat {
				return true
			}
			hits.Register(beat, i.Tick())
			return false
		})
	case Decrement:
		for _, i := range t.rows[row] {
			if i.Pulse > 0 {
				i.Pulse--
			}
			i.TotalDifference++
		}
	case Remove:
		t.keep(row, func(i *Interval) bool {
			return i.StartBeat == beat
		})
	default:
		return fmt.Errorf("%w %q on row %d", ErrUnknownAction, action, row)
	}
	return nil
}

// keep visits the row's intervals in order and drops those f rejects.
func (t *Tracker) keep(row int, f func(i *Interval) bool) {
	intervals := t.rows[row]
	kept := intervals[:0]
	for _, i := range intervals {
		if f(i) {
			kept = append(kept, i)
		}
	}
	if len(kept) == 0 {
		delete(t.rows, row)
		return
	}
	t.rows[row] = kept
}

// Len is the number of intervals still open across all rows.
func (t *Tracker) Len() int {
	n := 0
	for _, intervals := range t.rows {
		n += len(intervals)
	}
	return n
}

// Unresolved returns a copy of every open interval, ordered by row then
// creation.
func (t *Tracker) Unresolved() []Interval {
	var open []Interval
	for _, row := range util.SortedKeys(t.rows) {
		for _, i := range t.rows[row] {
			open = append(open, *i)
		}
	}
	return open
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
