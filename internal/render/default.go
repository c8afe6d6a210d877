package render

import (
	"image/color"
	"strconv"
	"strings"

	"git.lost.host/meutraa/rdstats/internal/stats"
	"git.lost.host/meutraa/rdstats/internal/theme"
)

const (
	rule      = "================================="
	Separator = "\n-----------------------------------------\n"
)

type DefaultRenderer struct {
	Theme theme.Theme
	// Color enables 24 bit escape sequences in summaries.
	Color bool
}

func (r *DefaultRenderer) Report(report *stats.Report) string {
	var b strings.Builder
	b.WriteString(report.Settings.Song)
	b.WriteString(" by ")
	b.WriteString(report.Settings.Author)
	b.WriteString("\n" + rule + "\n")
	b.WriteString("Difficulty: ")
	b.WriteString(report.Settings.Difficulty)
	b.WriteString("\tBPM: ")
	b.WriteString(report.BPM())
	b.WriteString("\n")
	for _, rating := range ratings(report) {
		b.WriteString(rating.name)
		b.WriteString(": ")
		b.WriteString(strconv.Itoa(rating.value))
		b.WriteString("\n")
	}
	b.WriteString(rule + "\n")
	b.WriteString("Total hits: ")
	b.WriteString(strconv.Itoa(report.Stats.TotalHits))
	b.WriteString("\nRank margins: [")
	for i, margin := range report.RankMargins {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(margin))
		b.WriteString("%")
	}
	b.WriteString("]")
	return b.String()
}

func (r *DefaultRenderer) Summary(report *stats.Report) string {
	var b strings.Builder
	b.WriteString(report.Settings.Song)
	b.WriteString(" by ")
	b.WriteString(report.Settings.Author)
	for _, rating := range ratings(report) {
		b.WriteString("  ")
		text := rating.name + " " + strconv.Itoa(rating.value)
		if r.Color && nil != r.Theme {
			r.writeColor(&b, r.Theme.RatingColor(rating.value), text)
		} else {
			b.WriteString(text)
		}
	}
	return b.String()
}

func (r *DefaultRenderer) Document(reports []string) string {
	var b strings.Builder
	for _, report := range reports {
		b.WriteString(report)
		b.WriteString(Separator)
	}
	return b.String()
}

func (r *DefaultRenderer) writeColor(b *strings.Builder, c color.RGBA, message string) {
	b.WriteString("\033[38;2;")
	b.WriteString(strconv.FormatInt(int64(c.R), 10))
	b.WriteString(";")
	b.WriteString(strconv.FormatInt(int64(c.G), 10))
	b.WriteString(";")
	b.WriteString(strconv.FormatInt(int64(c.B), 10))
	b.WriteString("m")
	b.WriteString(message)
	b.WriteString("\033[0m")
}

type rating struct {
	name  string
	value int
}

func ratings(report *stats.Report) [4]rating {
	return [...]rating{
		{"Stream", report.Ratings.Stream},
		{"Voltage", report.Ratings.Voltage},
		{"Air", report.Ratings.Air},
		{"Chaos", report.Ratings.Chaos},
	}
}
