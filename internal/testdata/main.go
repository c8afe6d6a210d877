package testdata

// Descriptor returns a small level in the editor's on-disk form.
func Descriptor() []byte {
	return []byte(descriptor)
}

// Report is the rendered report of Descriptor.
const Report = "Battleworn Insomniac by kyctarniq\n" +
	"=================================\n" +
	"Difficulty: Hard\tBPM: 120-150\n" +
	"Stream: 16\n" +
	"Voltage: 19\n" +
	"Air: 16\n" +
	"Chaos: 14\n" +
	"=================================\n" +
	"Total hits: 6\n" +
	"Rank margins: [333%, 250%, 167%, 83%]"

// Unfinished has a single finish marker.
const Unfinished = `{
	"settings": { "song": "Unfinished", "author": "nobody", "difficulty": "Easy", "rankMaxMistakes": [1, 2, 3, 4] },
	"events": [
		{ "bar": 1, "beat": 1, "type": "PlaySong", "bpm": 100 },
		{ "bar": 1, "beat": 1, "type": "AddClassicBeat", "row": 0, "tick": 1 },
		{ "bar": 3, "beat": 1, "type": "FinishLevel" },
	]
}`

const descriptor = "\xef\xbb\xbf" + `{
	"settings":
	{
		"version": 45,
		"artist": "Fizzd",
		"song": "Battleworn Insomniac",
		"author": "kyctarniq",
		"difficulty": "Hard",
		"description": "a night shift
that never ends",
		"tags": "",
		"seizureWarning": false,
		"rankMaxMistakes": [20, 15, 10, 5],
	},
	"rows":
	[
		{ "character": "Samurai", "rowType": "Classic", "row": 0, "rooms": [0] },
		{ "character": "Nurse", "rowType": "Oneshot", "row": 1, "rooms": [0] },
	],
	"events":
	[
		// intro
		{ "bar": 1, "beat": 1, "y": 0, "type": "PlaySong", "filename": "battleworn.ogg", "volume": 100, "pitch": 100, "pan": 0, "offset": 0, "bpm": 120, "loop": false },
		{ "bar": 1, "beat": 1, "y": 1, "type": "SetCrochetsPerBar", "crochetsPerBar": 4 },
		{ "bar": 1, "beat": 1, "y": 0, "type": "AddClassicBeat", "row": 0, "tick": 1, "swing": 0, "hold": 0 },
		{ "bar": 2, "beat": 1, "y": 0, "type": "AddClassicBeat", "row": 0, "tick": 0.5, "swing": 0, "hold": 0 },
		{ "bar": 2, "beat": 3, "y": 1, "type": "AddOneshotBeat", "row": 1, "tick": 1, "loops": 1, "interval": 1 },
		{ "bar": 3, "beat": 1, "y": 1, "type": "AddOneshotBeat", "row": 1, "tick": 1, "active": false },

		/* freetime section */
		{ "bar": 3, "beat": 1, "y": 2, "type": "AddFreeTimeBeat", "row": 2, "pulse": 0, "hold": 0 },
		{ "bar": 3, "beat": 2, "y": 2, "type": "PulseFreeTimeBeat", "row": 2, "action": "Increment", "customPulse": 0, "hold": 0 },
		{ "bar": 3, "beat": 3, "y": 2, "type": "PulseFreeTimeBeat", "row": 2, "action": "Custom", "customPulse": 5, "hold": 0 },
		{ "bar": 3, "beat": 4, "y": 2, "type": "PulseFreeTimeBeat", "row": 2, "action": "Increment", "customPulse": 0, "hold": 0 },

		{ "bar": 4, "beat": 1, "y": 3, "type": "SetBeatsPerMinute", "beatsPerMinute": 150 },
		{ "bar": 4, "beat": 1, "y": 2, "type": "AddFreeTimeBeat", "row": 2, "pulse": 6, "hold": 0 },
		{ "bar": 4, "beat": 2, "y": 4, "type": "MoveRow", "row": 0, "target": "Character", "rowPosition": [50, 50], "duration": 1, "ease": "Linear" },
		{ "bar": 4, "beat": 2, "y": 5, "type": "Comment", "tab": "Actions", "text": "tabbed	out", "bpm": "fast" },

		{ "bar": 5, "beat": 1, "y": 0, "type": "FinishLevel" },
		{ "bar": 5, "beat": 1, "y": 1, "type": "FinishLevel" },
		{ "bar": 5, "beat": 1, "y": 2, "type": "FinishLevel" },
	],
}
`
