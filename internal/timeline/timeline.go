package timeline

import (
	"log"

	"git.lost.host/meutraa/rdstats/internal/freetime"
	"git.lost.host/meutraa/rdstats/internal/hits"
	"git.lost.host/meutraa/rdstats/internal/level"
)

// Option configures a Timeline.
type Option func(t *Timeline)

// WithLogger sets where non-fatal warnings go.
func WithLogger(logger *log.Logger) Option {
	return func(t *Timeline) {
		t.logger = logger
	}
}

// WithStrictFreetime makes freetime beats still open at the end of the level
// an incomplete timeline instead of a warning.
func WithStrictFreetime(strict bool) Option {
	return func(t *Timeline) {
		t.strict = strict
	}
}

// Timeline folds the events of one level into hits and tempo state.
// It is used for a single forward pass and is not safe for concurrent use.
type Timeline struct {
	settings  level.Settings
	state     State
	hits      *hits.Registry
	freetimes *freetime.Tracker

	logger *log.Logger
	strict bool
}

func New(settings level.Settings, opts ...Option) *Timeline {
	t := &Timeline{
		settings:  settings,
		state:     newState(),
		hits:      hits.NewRegistry(),
		freetimes: freetime.NewTracker(),
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// State returns a copy of the current bookkeeping.
func (t *Timeline) State() State {
	return t.state
}

func (t *Timeline) Hits() *hits.Registry {
	return t.hits
}

// Apply interprets one event. Events must be applied in descriptor order.
func (t *Timeline) Apply(e *level.Event) error {
	if e.Disabled() {
		return nil
	}

	s := &t.state
	bar := e.Bar - 1
	start := s.StartBeat(bar, e.Beat-1)

	switch e.Type {
	case level.PlaySong:
		if e.BPM <= 0 {
			return t.settings.Incomplete("%s at bar %d has tempo %v", e.Type, e.Bar, e.BPM)
		}
		s.setTempo(e.BPM)
	case level.SetBeatsPerMinute:
		if e.BeatsPerMinute <= 0 {
			return t.settings.Incomplete("%s at bar %d has tempo %v", e.Type, e.Bar, e.BeatsPerMinute)
		}
		s.setTempo(e.BeatsPerMinute)
		// elapsed beats are timed at the tempo just set
		s.Seconds += (start - s.LastTempoChange) * 60 / s.BPM
		s.LastTempoChange = start
	case level.SetCrochetsPerBar:
		if e.CrochetsPerBar <= 0 {
			return t.settings.Incomplete("%s at bar %d has %d beats per bar", e.Type, e.Bar, e.CrochetsPerBar)
		}
		s.BeatCounter += float64((bar - s.LastCrochetChangeBar) * s.CrochetsPerBar)
		s.LastCrochetChangeBar = bar
		s.CrochetsPerBar = e.CrochetsPerBar
	case level.AddClassicBeat:
		t.hits.Register(start+6*e.Tick, e.Tick)
	case level.AddOneshotBeat:
		t.hits.Register(start+e.Tick, e.Tick)
		for i := 1; i <= e.Loops; i++ {
			t.hits.Register(start+e.Tick+float64(i)*e.Interval, e.Interval)
		}
	case level.AddFreeTimeBeat:
		if e.Pulse == freetime.Hit {
			t.hits.Register(start, 0)
		} else {
			t.freetimes.Open(e.Row, e.Pulse, start)
		}
	case level.PulseFreeTimeBeat:
		err := t.freetimes.Pulse(e.Row, freetime.Action(e.Action), e.CustomPulse, start, t.hits)
		if nil != err {
			t.logger.Printf("%s - %s: bar %d beat %v: %v", t.settings.Song, t.settings.Author, e.Bar, e.Beat, err)
		}
	case level.FinishLevel:
		s.Finishes++
		if s.Finishes != RequiredFinishes {
			break
		}
		if !s.HasTempo {
			return t.settings.Incomplete("level finishes at bar %d before any tempo is set", e.Bar)
		}
		s.TotalBeats = start
		s.LevelLength = s.Seconds + (s.TotalBeats-s.LastTempoChange)*60/s.BPM
	}
	return nil
}

// Result is a finished pass over one level.
type Result struct {
	Settings   level.Settings
	Stats      level.Stats
	Hits       *hits.Registry
	Unresolved []freetime.Interval // excluded from the hit statistics
}

// Finish closes the pass and returns its aggregates.
func (t *Timeline) Finish() (*Result, error) {
	s := &t.state
	if !s.Finished() {
		return nil, t.settings.Incomplete("found %d of %d finish markers", s.Finishes, RequiredFinishes)
	}

	unresolved := t.freetimes.Unresolved()
	if len(unresolved) > 0 {
		if t.strict {
			return nil, t.settings.Incomplete("%d freetime beats never resolved", len(unresolved))
		}
		t.logger.Printf("%s - %s: ignoring %d unresolved freetime beats", t.settings.Song, t.settings.Author, len(unresolved))
	}

	return &Result{
		Settings: t.settings,
		Stats: level.Stats{
			MinBPM:         s.MinBPM,
			MaxBPM:         s.MaxBPM,
			TotalBPMChange: s.TotalBPMChange,
			TotalHits:      t.hits.Total(),
			UniqueHits:     t.hits.Unique(),
			TotalJumps:     t.hits.Jumps(),
			TotalBeats:     s.TotalBeats,
			LevelLength:    s.LevelLength,
		},
		Hits:       t.hits,
		Unresolved: unresolved,
	}, nil
}

// Simulate runs a complete pass over a level.
func Simulate(lvl *level.Level, opts ...Option) (*Result, error) {
	if err := lvl.Settings.Validate(); nil != err {
		return nil, err
	}
	t := New(lvl.Settings, opts...)
	for i := range lvl.Events {
		if err := t.Apply(&lvl.Events[i]); nil != err {
			return nil, err
		}
	}
	return t.Finish()
}
