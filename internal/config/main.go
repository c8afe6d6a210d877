package config

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	AnalyzeCommand = "analyze"
	ServeCommand   = "serve"
	HistoryCommand = "history"
)

var (
	app = kingpin.New("rdstats", "Difficulty statistics for Rhythm Doctor levels")

	Database  = app.Flag("database", "Report history database").Default("./stats.db").Short('D').String()
	NoStore   = app.Flag("no-store", "Do not record reports").Default("false").Bool()
	Strict    = app.Flag("strict", "Reject levels with unresolved freetime beats").Default("false").Bool()
	LevelFile = app.Flag("level-file", "Descriptor name inside each level folder").Default("main.rdlevel").String()

	analyze   = app.Command(AnalyzeCommand, "Analyze every level folder in a directory")
	Directory = analyze.Arg("directory", "Directory of level folders").Required().ExistingDir()
	Output    = analyze.Flag("output", "Combined report file").Default("stats.txt").Short('o').String()
	Workers   = analyze.Flag("workers", "Levels analysed at once, 0 for one per CPU").Default("0").Short('w').Int()

	serve  = app.Command(ServeCommand, "Serve level analysis over HTTP")
	Listen = serve.Flag("listen", "Listen address").Default(":8080").Short('l').String()

	history = app.Command(HistoryCommand, "List recorded reports")
	Limit   = history.Flag("limit", "Number of reports, 0 for all").Default("20").Short('n').Int()
	Sum     = history.Flag("sum", "Only reports of this descriptor").Default("").String()
)

func init() {
	app.Version("0.1.0")
	app.HelpFlag.Short('h')
}

// Parse reads the command line and returns the selected command.
func Parse(args []string) (string, error) {
	return app.Parse(args)
}
