package store

import (
	"time"

	"git.lost.host/meutraa/rdstats/internal/stats"
	"github.com/google/uuid"
)

type Store interface {
	Init() error
	Deinit()

	// Save records a computed report
	Save(entry *Entry) error

	// Load every report recorded for a descriptor, oldest first
	Load(sum string) ([]Entry, error)

	// Recent reports, newest first
	Recent(limit int) ([]Entry, error)
}

// Entry is one stored report. Run groups the entries of a single analyze
// invocation or request.
type Entry struct {
	ID         int64         `json:"id"`
	Run        string        `json:"run"`
	Sum        string        `json:"sum"`
	Song       string        `json:"song"`
	Author     string        `json:"author"`
	Difficulty string        `json:"difficulty"`
	BPM        string        `json:"bpm"`
	Ratings    stats.Ratings `json:"ratings"`
	TotalHits  int           `json:"totalHits"`
	CreatedAt  time.Time     `json:"createdAt"`
}

func NewEntry(run uuid.UUID, sum string, r *stats.Report) *Entry {
	return &Entry{
		Run:        run.String(),
		Sum:        sum,
		Song:       r.Settings.Song,
		Author:     r.Settings.Author,
		Difficulty: r.Settings.Difficulty,
		BPM:        r.BPM(),
		Ratings:    r.Ratings,
		TotalHits:  r.Stats.TotalHits,
	}
}
