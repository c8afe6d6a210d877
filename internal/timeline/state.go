package timeline

// DefaultCrochetsPerBar is the beats-per-bar a level starts with.
const DefaultCrochetsPerBar = 8

// RequiredFinishes is the finish marker occurrence that fixes the level
// length. Descriptors repeat the marker.
const RequiredFinishes = 3

// State is the tempo and position bookkeeping of one pass.
type State struct {
	BPM            float64 // current tempo, valid once HasTempo
	HasTempo       bool
	MinBPM, MaxBPM float64
	TotalBPMChange float64

	Seconds         float64 // elapsed up to LastTempoChange
	LastTempoChange float64 // beat of the last SetBeatsPerMinute

	CrochetsPerBar       int
	LastCrochetChangeBar int     // 0-indexed
	BeatCounter          float64 // beats in bars before LastCrochetChangeBar

	Finishes    int
	TotalBeats  float64
	LevelLength float64 // seconds, valid once Finishes >= RequiredFinishes
}

func newState() State {
	return State{CrochetsPerBar: DefaultCrochetsPerBar}
}

// StartBeat converts a 0-indexed bar and beat into beats since the level start.
func (s *State) StartBeat(bar int, beat float64) float64 {
	return s.BeatCounter + float64((bar-s.LastCrochetChangeBar)*s.CrochetsPerBar) + beat
}

func (s *State) setTempo(bpm float64) {
	if !s.HasTempo || bpm < s.MinBPM {
		s.MinBPM = bpm
	}
	if !s.HasTempo || bpm > s.MaxBPM {
		s.MaxBPM = bpm
	}
	if s.HasTempo {
		s.TotalBPMChange += abs(bpm - s.BPM)
	}
	s.BPM = bpm
	s.HasTempo = true
}

// Finished reports whether the level length is known.
func (s *State) Finished() bool {
	return s.Finishes >= RequiredFinishes
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
