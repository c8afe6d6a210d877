package level

type EventType string

const (
	PlaySong          EventType = "PlaySong"
	SetBeatsPerMinute EventType = "SetBeatsPerMinute"
	SetCrochetsPerBar EventType = "SetCrochetsPerBar"
	AddClassicBeat    EventType = "AddClassicBeat"
	AddOneshotBeat    EventType = "AddOneshotBeat"
	AddFreeTimeBeat   EventType = "AddFreeTimeBeat"
	PulseFreeTimeBeat EventType = "PulseFreeTimeBeat"
	FinishLevel       EventType = "FinishLevel"
)

// Known reports whether the timeline interprets events of this type.
func (t EventType) Known() bool {
	switch t {
	case PlaySong, SetBeatsPerMinute, SetCrochetsPerBar,
		AddClassicBeat, AddOneshotBeat,
		AddFreeTimeBeat, PulseFreeTimeBeat,
		FinishLevel:
		return true
	}
	return false
}

// Event is one timeline event. Bar and Beat are 1-indexed as in the descriptor.
type Event struct {
	Type   EventType `json:"type"`
	Bar    int       `json:"bar"`
	Beat   float64   `json:"beat"`
	Active *bool     `json:"active,omitempty"`
	Row    int       `json:"row"`

	BPM            float64 `json:"bpm"`            // PlaySong
	BeatsPerMinute float64 `json:"beatsPerMinute"` // SetBeatsPerMinute
	CrochetsPerBar int     `json:"crochetsPerBar"` // SetCrochetsPerBar

	Tick     float64 `json:"tick"`
	Loops    int     `json:"loops"`
	Interval float64 `json:"interval"`

	Action      string `json:"action"`
	Pulse       int    `json:"pulse"`
	CustomPulse int    `json:"customPulse"`
}

// Disabled is true only for an explicit "active": false.
func (e *Event) Disabled() bool {
	return e.Active != nil && !*e.Active
}
