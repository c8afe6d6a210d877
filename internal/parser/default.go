package parser

import (
	"bytes"
	"encoding/json"
	"os"

	"git.lost.host/meutraa/rdstats/internal/level"
	"github.com/pkg/errors"
	"github.com/tailscale/hujson"
)

var bom = []byte("\xef\xbb\xbf")

// Settings fields a descriptor must carry.
var requiredSettings = [...]string{"song", "author", "difficulty", "rankMaxMistakes"}

type DefaultParser struct{}

type descriptor struct {
	Settings json.RawMessage   `json:"settings"`
	Events   []json.RawMessage `json:"events"`
}

type header struct {
	Type   level.EventType `json:"type"`
	Bar    int             `json:"bar"`
	Beat   float64         `json:"beat"`
	Active *bool           `json:"active"`
}

func (p *DefaultParser) Parse(file string) (*level.Level, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, errors.Wrap(err, "unable to read level")
	}
	return p.Decode(data)
}

// Decode reads a level descriptor. Descriptors are JSON with comments,
// trailing commas and unescaped whitespace inside strings.
func (p *DefaultParser) Decode(data []byte) (*level.Level, error) {
	data = stripStringWhitespace(bytes.TrimPrefix(data, bom))
	value, err := hujson.Parse(data)
	if nil != err {
		return nil, errors.Wrap(err, "unable to parse level")
	}
	value.Standardize()

	var d descriptor
	if err := json.Unmarshal(value.Pack(), &d); nil != err {
		return nil, errors.Wrap(err, "unable to decode level")
	}

	lvl := &level.Level{}
	if len(d.Settings) == 0 || string(d.Settings) == "null" {
		return nil, &level.IncompleteError{Reason: "level has no settings"}
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(d.Settings, &fields); nil != err {
		return nil, errors.Wrap(err, "unable to decode settings")
	}
	if err := json.Unmarshal(d.Settings, &lvl.Settings); nil != err {
		return nil, errors.Wrap(err, "unable to decode settings")
	}
	for _, key := range requiredSettings {
		if _, ok := fields[key]; !ok {
			return nil, lvl.Settings.Incomplete("settings has no %s", key)
		}
	}
	if nil == d.Events {
		return nil, lvl.Settings.Incomplete("level has no events")
	}

	lvl.Events = make([]level.Event, 0, len(d.Events))
	for i, raw := range d.Events {
		var h header
		if err := json.Unmarshal(raw, &h); nil != err && h.Type.Known() {
			return nil, errors.Wrapf(err, "%s - %s: unable to decode event %d", lvl.Settings.Song, lvl.Settings.Author, i)
		}
		if !h.Type.Known() {
			// other event types are only kept for their position
			lvl.Events = append(lvl.Events, level.Event{Type: h.Type, Bar: h.Bar, Beat: h.Beat, Active: h.Active})
			continue
		}
		var e level.Event
		if err := json.Unmarshal(raw, &e); nil != err {
			return nil, errors.Wrapf(err, "%s - %s: unable to decode %s event %d", lvl.Settings.Song, lvl.Settings.Author, h.Type, i)
		}
		lvl.Events = append(lvl.Events, e)
	}
	return lvl, nil
}

// stripStringWhitespace drops raw carriage returns, newlines and tabs that
// appear inside string literals.
func stripStringWhitespace(data []byte) []byte {
	out := make([]byte, 0, len(data))
	inString, escaped := false, false
	for _, c := range data {
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			case c == '\r', c == '\n', c == '\t':
				continue
			}
		} else if c == '"' {
			inString = true
		}
		out = append(out, c)
	}
	return out
}
