package render

import (
	"testing"

	"git.lost.host/meutraa/rdstats/internal/level"
	"git.lost.host/meutraa/rdstats/internal/stats"
	"git.lost.host/meutraa/rdstats/internal/testdata"
	"git.lost.host/meutraa/rdstats/internal/theme"
	"github.com/stretchr/testify/assert"
)

func descriptorReport() *stats.Report {
	return &stats.Report{
		Settings: level.Settings{
			Song:            "Battleworn Insomniac",
			Author:          "kyctarniq",
			Difficulty:      "Hard",
			RankMaxMistakes: []float64{20, 15, 10, 5},
		},
		Stats:       level.Stats{MinBPM: 120, MaxBPM: 150, TotalHits: 6},
		Ratings:     stats.Ratings{Stream: 16, Voltage: 19, Air: 16, Chaos: 14},
		RankMargins: []int{333, 250, 167, 83},
	}
}

func TestReport(t *testing.T) {
	var r Renderer = &DefaultRenderer{}
	assert.Equal(t, testdata.Report, r.Report(descriptorReport()))
}

func TestReportSingleTempo(t *testing.T) {
	report := descriptorReport()
	report.Stats.MaxBPM = 120
	var r Renderer = &DefaultRenderer{}
	assert.Contains(t, r.Report(report), "Difficulty: Hard\tBPM: 120\n")
}

func TestSummary(t *testing.T) {
	report := descriptorReport()

	plain := &DefaultRenderer{Theme: &theme.DefaultTheme{}}
	assert.Equal(t, "Battleworn Insomniac by kyctarniq  Stream 16  Voltage 19  Air 16  Chaos 14", plain.Summary(report))

	colored := &DefaultRenderer{Theme: &theme.DefaultTheme{}, Color: true}
	summary := colored.Summary(report)
	assert.Contains(t, summary, "\033[38;2;0;236;128mStream 16\033[0m")
	assert.Contains(t, summary, "\033[38;2;0;236;128mVoltage 19\033[0m")
}

func TestDocument(t *testing.T) {
	var r Renderer = &DefaultRenderer{}
	assert.Equal(t, "", r.Document(nil))
	assert.Equal(t, "a"+Separator+"b"+Separator, r.Document([]string{"a", "b"}))
}
