package stats

import (
	"errors"
	"strconv"

	"git.lost.host/meutraa/rdstats/internal/hits"
	"git.lost.host/meutraa/rdstats/internal/level"
	pkgerrors "github.com/pkg/errors"
)

var (
	ErrUndefinedLength = errors.New("level length is not positive")
	ErrNoHits          = errors.New("level has no hits")
)

type Ratings struct {
	Stream  int `json:"stream"`
	Voltage int `json:"voltage"`
	Air     int `json:"air"`
	Chaos   int `json:"chaos"`
}

// Report holds everything derived for one level.
type Report struct {
	Settings level.Settings
	Stats    level.Stats

	MaxDensity         int
	IrregularTotal     float64
	IrregularityDegree float64

	Raw         Ratings
	Ratings     Ratings
	RankMargins []int // percent of total hits, one per rank threshold
}

// BPM is the tempo range, a single value when the tempo never changes.
func (r *Report) BPM() string {
	bpm := strconv.FormatFloat(r.Stats.MinBPM, 'f', -1, 64)
	if r.Stats.MinBPM == r.Stats.MaxBPM {
		return bpm
	}
	return bpm + "-" + strconv.FormatFloat(r.Stats.MaxBPM, 'f', -1, 64)
}

// Analyze computes the ratings of a finished timeline.
func Analyze(settings level.Settings, st level.Stats, reg *hits.Registry) (*Report, error) {
	if !(st.LevelLength > 0) {
		return nil, pkgerrors.Wrapf(ErrUndefinedLength, "%s - %s", settings.Song, settings.Author)
	}
	if st.TotalHits <= 0 {
		return nil, pkgerrors.Wrapf(ErrNoHits, "%s - %s", settings.Song, settings.Author)
	}

	points := reg.Points()
	length := st.LevelLength

	r := &Report{
		Settings:       settings,
		Stats:          st,
		MaxDensity:     Density(points),
		IrregularTotal: Irregularity(points),
	}
	r.IrregularityDegree = r.IrregularTotal * (1 + (60*st.TotalBPMChange/length)/1500)

	r.Raw = Ratings{
		Stream:  round(60 * float64(st.UniqueHits) / length),
		Voltage: round((60 * st.TotalBeats / length) * float64(r.MaxDensity) / 4),
		Air:     round(60 * float64(st.TotalJumps) / length),
		Chaos:   round(100 * r.IrregularityDegree / length),
	}
	r.Ratings = Ratings{
		Stream:  StreamScale.Rate(r.Raw.Stream),
		Voltage: VoltageScale.Rate(r.Raw.Voltage),
		Air:     AirScale.Rate(r.Raw.Air),
		Chaos:   ChaosScale.Rate(r.Raw.Chaos),
	}

	r.RankMargins = make([]int, len(settings.RankMaxMistakes))
	for i, mistakes := range settings.RankMaxMistakes {
		r.RankMargins[i] = round(mistakes / float64(st.TotalHits) * 100)
	}
	return r, nil
}
