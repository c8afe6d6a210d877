package stats

import "math"

// round rounds halves up, as the published ratings always have.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Scale maps a raw value onto a published rating. Raw values above
// Breakpoint use Above, the rest Below.
type Scale struct {
	Breakpoint int
	Above      func(raw float64) float64
	Below      func(raw float64) float64
}

func (s Scale) Rate(raw int) int {
	if raw > s.Breakpoint {
		return round(s.Above(float64(raw)))
	}
	return round(s.Below(float64(raw)))
}

var (
	StreamScale = Scale{
		Breakpoint: 300,
		Above:      func(raw float64) float64 { return (raw - 139) * 100 / 161 },
		Below:      func(raw float64) float64 { return raw / 3 },
	}
	VoltageScale = Scale{
		Breakpoint: 600,
		Above:      func(raw float64) float64 { return (raw + 594) * 100 / 1194 },
		Below:      func(raw float64) float64 { return raw / 6 },
	}
	AirScale = Scale{
		Breakpoint: 55,
		Above:      func(raw float64) float64 { return (raw + 36) * 100 / 91 },
		Below:      func(raw float64) float64 { return raw * 20 / 11 },
	}
	ChaosScale = Scale{
		Breakpoint: 2000,
		Above:      func(raw float64) float64 { return (raw + 16628) * 100 / 18628 },
		Below:      func(raw float64) float64 { return raw / 20 },
	}
)
