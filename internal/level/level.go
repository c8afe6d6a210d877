package level

// Level is a parsed level descriptor.
type Level struct {
	Settings Settings `json:"settings"`
	Events   []Event  `json:"events"`
}

type Settings struct {
	Version         int       `json:"version"`
	Song            string    `json:"song"`
	Author          string    `json:"author"`
	Difficulty      string    `json:"difficulty"`
	RankMaxMistakes []float64 `json:"rankMaxMistakes"` // mistakes allowed per rank, best rank first
}

// RankCount is the number of rank mistake thresholds a level carries.
const RankCount = 4

// Validate reports settings the engine cannot produce a report for.
func (s *Settings) Validate() error {
	if len(s.RankMaxMistakes) != RankCount {
		return s.Incomplete("rankMaxMistakes has %d entries, want %d", len(s.RankMaxMistakes), RankCount)
	}
	return nil
}

// Stats are the timeline aggregates handed to the stats engine.
type Stats struct {
	MinBPM         float64
	MaxBPM         float64
	TotalBPMChange float64 // sum of absolute tempo deltas

	TotalHits  int
	UniqueHits int
	TotalJumps int // positions with two or more hits

	TotalBeats  float64
	LevelLength float64 // seconds
}
