package batch

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"git.lost.host/meutraa/rdstats/internal/level"
	"git.lost.host/meutraa/rdstats/internal/parser"
	"git.lost.host/meutraa/rdstats/internal/render"
	"git.lost.host/meutraa/rdstats/internal/stats"
	"git.lost.host/meutraa/rdstats/internal/timeline"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Outcome is the result of analysing one level folder. Exactly one of
// Report and Err is set.
type Outcome struct {
	Folder string
	Path   string
	Sum    string
	Report *stats.Report
	Text   string
	Err    error
}

type Batch struct {
	Parser   parser.Parser
	Renderer render.Renderer
	Logger   *log.Logger

	// LevelFile is the descriptor name inside each level folder.
	LevelFile string
	// Workers bounds the number of levels analysed at once, 0 uses every CPU.
	Workers int
	Options []timeline.Option
}

// Folders lists the level folders of dir in name order.
func Folders(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if nil != err {
		return nil, errors.Wrap(err, "unable to list levels")
	}
	folders := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			folders = append(folders, entry.Name())
		}
	}
	return folders, nil
}

// Run analyses every level folder in dir. A failing level is logged and
// recorded on its outcome; only cancellation stops the batch.
func (b *Batch) Run(ctx context.Context, dir string) ([]*Outcome, error) {
	folders, err := Folders(dir)
	if nil != err {
		return nil, err
	}

	workers := b.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	outcomes := make([]*Outcome, len(folders))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, folder := range folders {
		i, folder := i, folder
		g.Go(func() error {
			if err := ctx.Err(); nil != err {
				return err
			}
			o := b.Level(folder, filepath.Join(dir, folder, b.LevelFile))
			if nil != o.Err {
				b.logger().Println(o.Err)
			}
			outcomes[i] = o
			return nil
		})
	}
	if err := g.Wait(); nil != err {
		return nil, err
	}
	return outcomes, nil
}

// Level analyses a single descriptor.
func (b *Batch) Level(folder, path string) *Outcome {
	o := &Outcome{Folder: folder, Path: path}
	data, err := os.ReadFile(path)
	if nil != err {
		o.Err = errors.Wrapf(err, "%s: unable to read level", folder)
		return o
	}
	o.Sum = Sum(data)

	lvl, err := b.Parser.Decode(data)
	if nil != err {
		var incomplete *level.IncompleteError
		if errors.As(err, &incomplete) && (incomplete.Song != "" || incomplete.Author != "") {
			o.Err = err
		} else {
			o.Err = errors.Wrap(err, folder)
		}
		return o
	}
	report, err := Analyze(lvl, b.Options...)
	if nil != err {
		o.Err = err
		return o
	}
	o.Report = report
	o.Text = b.Renderer.Report(report)
	return o
}

// Document joins the reports of the successful outcomes.
func (b *Batch) Document(outcomes []*Outcome) string {
	reports := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		if nil == o.Err {
			reports = append(reports, o.Text)
		}
	}
	return b.Renderer.Document(reports)
}

func (b *Batch) logger() *log.Logger {
	if nil == b.Logger {
		return log.Default()
	}
	return b.Logger
}

// Analyze runs the timeline over a level and rates the result.
func Analyze(lvl *level.Level, opts ...timeline.Option) (*stats.Report, error) {
	result, err := timeline.Simulate(lvl, opts...)
	if nil != err {
		return nil, err
	}
	return stats.Analyze(result.Settings, result.Stats, result.Hits)
}

// Sum identifies a descriptor by its contents.
func Sum(data []byte) string {
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}
