package parser

import "git.lost.host/meutraa/rdstats/internal/level"

type Parser interface {
	Parse(file string) (*level.Level, error)
	Decode(data []byte) (*level.Level, error)
}
