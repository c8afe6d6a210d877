package server

import "git.lost.host/meutraa/rdstats/internal/stats"

type AnalyzeResponse struct {
	Run         string        `json:"run,omitempty"`
	Sum         string        `json:"sum"`
	Song        string        `json:"song"`
	Author      string        `json:"author"`
	Difficulty  string        `json:"difficulty"`
	BPM         string        `json:"bpm"`
	Ratings     stats.Ratings `json:"ratings"`
	Raw         stats.Ratings `json:"raw"`
	TotalHits   int           `json:"totalHits"`
	RankMargins []int         `json:"rankMargins"`
	Text        string        `json:"text"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
