package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"git.lost.host/meutraa/rdstats/internal/batch"
	"git.lost.host/meutraa/rdstats/internal/config"
	"git.lost.host/meutraa/rdstats/internal/parser"
	"git.lost.host/meutraa/rdstats/internal/render"
	"git.lost.host/meutraa/rdstats/internal/server"
	"git.lost.host/meutraa/rdstats/internal/store"
	"git.lost.host/meutraa/rdstats/internal/theme"
	"git.lost.host/meutraa/rdstats/internal/timeline"
	"github.com/google/uuid"
	"golang.org/x/term"
)

type Program struct {
	Parser   parser.Parser
	Renderer render.Renderer
	Theme    theme.Theme
	Store    store.Store

	out     io.Writer
	options []timeline.Option
}

func (p *Program) Init() error {
	// Ensure our Default implementations are used as interfaces
	p.Parser = &parser.DefaultParser{}
	p.Theme = &theme.DefaultTheme{}
	if nil == p.out {
		p.out = os.Stdout
	}
	color := false
	if f, ok := p.out.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	p.Renderer = &render.DefaultRenderer{Theme: p.Theme, Color: color}
	p.options = []timeline.Option{timeline.WithStrictFreetime(*config.Strict)}

	if !*config.NoStore {
		s := &store.DefaultStore{Path: *config.Database}
		if err := s.Init(); nil != err {
			return err
		}
		p.Store = s
	}
	return nil
}

func (p *Program) Deinit() {
	if nil != p.Store {
		p.Store.Deinit()
	}
}

// Analyze rates every level in the configured directory, prints a summary
// line for each and writes the combined document.
func (p *Program) Analyze(ctx context.Context) error {
	b := &batch.Batch{
		Parser:    p.Parser,
		Renderer:  p.Renderer,
		LevelFile: *config.LevelFile,
		Workers:   *config.Workers,
		Options:   p.options,
	}
	outcomes, err := b.Run(ctx, *config.Directory)
	if nil != err {
		return err
	}

	run := uuid.New()
	analysed := 0
	for _, o := range outcomes {
		if nil != o.Err {
			continue
		}
		analysed++
		fmt.Fprintln(p.out, p.Renderer.Summary(o.Report))
		if nil != p.Store {
			if err := p.Store.Save(store.NewEntry(run, o.Sum, o.Report)); nil != err {
				log.Println(err)
			}
		}
	}

	if err := os.WriteFile(*config.Output, []byte(b.Document(outcomes)), 0644); nil != err {
		return fmt.Errorf("unable to write %v: %w", *config.Output, err)
	}
	log.Printf("Analysed %d of %d levels into %v\n", analysed, len(outcomes), *config.Output)
	return nil
}

func (p *Program) Serve(ctx context.Context) error {
	s := &server.Server{
		Parser:   p.Parser,
		Renderer: &render.DefaultRenderer{},
		Store:    p.Store,
		Options:  p.options,
	}
	return s.ListenAndServe(ctx, *config.Listen)
}

// History prints recorded reports, newest first unless a descriptor sum is
// given.
func (p *Program) History() error {
	if nil == p.Store {
		return errors.New("history needs the report database")
	}
	var entries []store.Entry
	var err error
	if *config.Sum != "" {
		entries, err = p.Store.Load(*config.Sum)
	} else {
		entries, err = p.Store.Recent(*config.Limit)
	}
	if nil != err {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(p.out, "%v  %3v %3v %3v %3v  %v by %v (%v, %v BPM)\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.Ratings.Stream, e.Ratings.Voltage, e.Ratings.Air, e.Ratings.Chaos,
			e.Song, e.Author, e.Difficulty, e.BPM,
		)
	}
	return nil
}
