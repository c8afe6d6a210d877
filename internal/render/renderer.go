package render

import "git.lost.host/meutraa/rdstats/internal/stats"

type Renderer interface {
	// Report is the plain text report of one level.
	Report(r *stats.Report) string
	// Summary is a single line naming the level and its four ratings.
	Summary(r *stats.Report) string
	// Document joins reports into the batch output.
	Document(reports []string) string
}
