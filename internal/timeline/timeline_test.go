package timeline

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"git.lost.host/meutraa/rdstats/internal/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settings = level.Settings{
	Song:            "Samurai Techno",
	Author:          "auth",
	Difficulty:      "Medium",
	RankMaxMistakes: []float64{20, 15, 10, 5},
}

func event(t level.EventType, bar int, beat float64) level.Event {
	return level.Event{Type: t, Bar: bar, Beat: beat}
}

func tempo(bar int, beat, bpm float64) level.Event {
	e := event(level.SetBeatsPerMinute, bar, beat)
	e.BeatsPerMinute = bpm
	return e
}

func song(bpm float64) level.Event {
	e := event(level.PlaySong, 1, 1)
	e.BPM = bpm
	return e
}

func classic(bar int, beat, tick float64) level.Event {
	e := event(level.AddClassicBeat, bar, beat)
	e.Tick = tick
	return e
}

func oneshot(bar int, beat, tick float64, loops int, interval float64) level.Event {
	e := event(level.AddOneshotBeat, bar, beat)
	e.Tick = tick
	e.Loops = loops
	e.Interval = interval
	return e
}

func finish(bar int, beat float64) []level.Event {
	e := event(level.FinishLevel, bar, beat)
	return []level.Event{e, e, e}
}

func simulate(t *testing.T, events ...level.Event) *Result {
	t.Helper()
	res, err := Simulate(&level.Level{Settings: settings, Events: events})
	require.NoError(t, err)
	return res
}

func TestSingleClassicBeat(t *testing.T) {
	events := append([]level.Event{song(120), classic(1, 1, 1)}, finish(1, 8)...)
	res := simulate(t, events...)

	assert := assert.New(t)
	assert.Equal(7.0, res.Stats.TotalBeats)
	assert.Equal(3.5, res.Stats.LevelLength)
	assert.Equal(1, res.Stats.TotalHits)
	assert.Equal(1, res.Stats.UniqueHits)
	assert.Equal(0, res.Stats.TotalJumps)
	assert.Equal(120.0, res.Stats.MinBPM)
	assert.Equal(120.0, res.Stats.MaxBPM)

	p, ok := res.Hits.At(6)
	require.True(t, ok)
	assert.Equal([]float64{1}, p.Ticks)
}

func TestFinishOnNextBar(t *testing.T) {
	events := append([]level.Event{song(120), classic(1, 1, 1)}, finish(2, 1)...)
	res := simulate(t, events...)

	assert.Equal(t, 8.0, res.Stats.TotalBeats)
	assert.Equal(t, 4.0, res.Stats.LevelLength)
}

func TestTempoChangesIntegrateSeconds(t *testing.T) {
	events := append([]level.Event{song(100), tempo(2, 1, 200)}, finish(3, 1)...)
	res := simulate(t, events...)

	assert := assert.New(t)
	assert.Equal(100.0, res.Stats.MinBPM)
	assert.Equal(200.0, res.Stats.MaxBPM)
	assert.Equal(100.0, res.Stats.TotalBPMChange)
	assert.Equal(16.0, res.Stats.TotalBeats)
	// 8 beats timed at 200 before the change, 8 after
	assert.InDelta(4.8, res.Stats.LevelLength, 1e-9)
}

func TestSetCrochetsPerBar(t *testing.T) {
	tl := New(settings)
	require.NoError(t, tl.Apply(&level.Event{Type: level.SetCrochetsPerBar, Bar: 3, Beat: 1, CrochetsPerBar: 4}))

	s := tl.State()
	assert := assert.New(t)
	assert.Equal(16.0, s.BeatCounter)
	assert.Equal(2, s.LastCrochetChangeBar)
	assert.Equal(4, s.CrochetsPerBar)
	assert.Equal(25.0, s.StartBeat(4, 1))

	require.NoError(t, tl.Apply(&level.Event{Type: level.SetCrochetsPerBar, Bar: 5, Beat: 1, CrochetsPerBar: 3}))
	s = tl.State()
	assert.Equal(24.0, s.BeatCounter)
	assert.Equal(4, s.LastCrochetChangeBar)
	assert.Equal(30.0, s.StartBeat(6, 0))
}

func TestOneshotLoops(t *testing.T) {
	events := append([]level.Event{song(120), oneshot(1, 1, 1, 2, 0.5)}, finish(2, 1)...)
	res := simulate(t, events...)

	points := res.Hits.Points()
	require.Len(t, points, 3)

	assert := assert.New(t)
	assert.Equal([]float64{1, 1.5, 2}, []float64{points[0].Beat, points[1].Beat, points[2].Beat})
	assert.Equal([]float64{1}, points[0].Ticks)
	assert.Equal([]float64{0.5}, points[1].Ticks)
	assert.Equal([]float64{0.5}, points[2].Ticks)
}

func TestOneshotsOnSameBeatJump(t *testing.T) {
	events := append([]level.Event{song(120), oneshot(1, 3, 1, 0, 0), oneshot(1, 3, 1, 0, 0)}, finish(2, 1)...)
	res := simulate(t, events...)

	assert := assert.New(t)
	assert.Equal(2, res.Stats.TotalHits)
	assert.Equal(1, res.Stats.UniqueHits)
	assert.Equal(1, res.Stats.TotalJumps)

	p, ok := res.Hits.At(3)
	require.True(t, ok)
	assert.Equal(2, p.Count)
}

func TestDisabledEvents(t *testing.T) {
	off, on := false, true
	skipped := classic(1, 1, 1)
	skipped.Active = &off
	kept := classic(1, 2, 1)
	kept.Active = &on

	events := append([]level.Event{song(120), skipped, kept}, finish(2, 1)...)
	res := simulate(t, events...)

	assert.Equal(t, 1, res.Stats.TotalHits)
	_, ok := res.Hits.At(7)
	assert.True(t, ok)
}

func TestFreetimeEvents(t *testing.T) {
	open := event(level.AddFreeTimeBeat, 1, 1)
	open.Row = 1
	open.Pulse = 2
	immediate := event(level.AddFreeTimeBeat, 1, 2)
	immediate.Pulse = 6
	pulse := event(level.PulseFreeTimeBeat, 1, 5)
	pulse.Row = 1
	pulse.Action = "Custom"
	pulse.CustomPulse = 6

	events := append([]level.Event{song(120), open, immediate, pulse}, finish(2, 1)...)
	res := simulate(t, events...)

	assert := assert.New(t)
	assert.Equal(2, res.Stats.TotalHits)
	assert.Empty(res.Unresolved)

	p, ok := res.Hits.At(1)
	require.True(t, ok)
	assert.Equal([]float64{0}, p.Ticks)
	p, ok = res.Hits.At(4)
	require.True(t, ok)
	assert.Equal([]float64{2.0 / 7}, p.Ticks)
}

func TestUnresolvedFreetime(t *testing.T) {
	open := event(level.AddFreeTimeBeat, 1, 1)
	open.Pulse = 3
	events := append([]level.Event{song(120), classic(1, 1, 1), open}, finish(2, 1)...)
	lvl := &level.Level{Settings: settings, Events: events}

	var buf bytes.Buffer
	res, err := Simulate(lvl, WithLogger(log.New(&buf, "", 0)))
	require.NoError(t, err)
	assert.Len(t, res.Unresolved, 1)
	assert.Equal(t, 1, res.Stats.TotalHits)
	assert.Contains(t, buf.String(), "1 unresolved freetime beats")

	_, err = Simulate(lvl, WithStrictFreetime(true), WithLogger(log.New(&buf, "", 0)))
	assert.True(t, errors.Is(err, level.ErrIncomplete))
}

func TestUnknownPulseActionWarns(t *testing.T) {
	pulse := event(level.PulseFreeTimeBeat, 1, 2)
	pulse.Action = "Shake"
	events := append([]level.Event{song(120), classic(1, 1, 1), pulse}, finish(2, 1)...)

	var buf bytes.Buffer
	_, err := Simulate(&level.Level{Settings: settings, Events: events}, WithLogger(log.New(&buf, "", 0)))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `unknown freetime action "Shake"`)
}

func TestIncompleteTimelines(t *testing.T) {
	tests := map[string][]level.Event{
		"two finish markers": append([]level.Event{song(120), classic(1, 1, 1)}, finish(2, 1)[:2]...),
		"no tempo":           append([]level.Event{classic(1, 1, 1)}, finish(2, 1)...),
		"zero tempo":         append([]level.Event{song(120), tempo(1, 2, 0)}, finish(2, 1)...),
	}

	for name, events := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Simulate(&level.Level{Settings: settings, Events: events})
			require.Error(t, err)
			assert.True(t, errors.Is(err, level.ErrIncomplete))

			var incomplete *level.IncompleteError
			require.True(t, errors.As(err, &incomplete))
			assert.Equal(t, settings.Song, incomplete.Song)
			assert.Equal(t, settings.Author, incomplete.Author)
		})
	}
}

func TestInvalidSettings(t *testing.T) {
	s := settings
	s.RankMaxMistakes = []float64{1, 2, 3}
	_, err := Simulate(&level.Level{Settings: s, Events: finish(2, 1)})
	assert.True(t, errors.Is(err, level.ErrIncomplete))
}

func TestExtraFinishMarkersIgnored(t *testing.T) {
	events := append([]level.Event{song(120), classic(1, 1, 1)}, finish(2, 1)...)
	events = append(events, finish(4, 1)...)
	res := simulate(t, events...)

	assert.Equal(t, 8.0, res.Stats.TotalBeats)
}
