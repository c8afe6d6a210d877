package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"git.lost.host/meutraa/rdstats/internal/config"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

func run(args []string) error {
	command, err := config.Parse(args)
	if nil != err {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := &Program{}
	if err := p.Init(); nil != err {
		return fmt.Errorf("unable to initialise: %w", err)
	}
	defer p.Deinit()

	switch command {
	case config.AnalyzeCommand:
		return p.Analyze(ctx)
	case config.ServeCommand:
		return p.Serve(ctx)
	case config.HistoryCommand:
		return p.History()
	}
	return fmt.Errorf("unknown command %v", command)
}
