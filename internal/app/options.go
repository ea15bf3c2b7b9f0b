package app

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/genshinsim/gcsim/apps/artifact_odds/internal/config"
)

type Options struct {
	ConfigPath string
	Lang       string
	Workers    int
	OutputDir  string
	LogLevel   string
	Verbose    bool

	List  bool
	Batch bool

	Set          string
	Piece        string
	MainStat     string
	SubstatCount string
	Substats     string

	Within     int
	Confidence float64

	Stdout io.Writer
	Stderr io.Writer
	Now    func() time.Time

	env config.Env
}

// ParseOptions reads environment defaults and then flags from args.
func ParseOptions(fs *flag.FlagSet, args []string) (Options, error) {
	e, err := config.ParseEnv()
	if err != nil {
		return Options{}, err
	}
	opts := Options{env: e, LogLevel: e.LogLevel}

	fs.StringVar(&opts.ConfigPath, "config", e.ConfigPath, "path to odds_config.yaml (default: search cwd and parents)")
	fs.StringVar(&opts.Lang, "lang", "", "breakdown language: en or ru (overrides config and env)")
	fs.IntVar(&opts.Workers, "workers", 0, "scenarios evaluated at once in -batch mode (overrides config and env)")
	fs.StringVar(&opts.OutputDir, "out", "", "output directory for -batch exports (overrides config and env)")
	fs.BoolVar(&opts.Verbose, "v", false, "debug logging")

	fs.BoolVar(&opts.List, "list", false, "list pieces, main stats, substats and modes, then exit")
	fs.BoolVar(&opts.Batch, "batch", false, "evaluate every scenario in the config and export xlsx/json")

	fs.StringVar(&opts.Set, "set", "either", "artifact set: 1, 2 or either")
	fs.StringVar(&opts.Piece, "piece", "flower", "artifact piece (flower, plume, sands, goblet, circlet or full name)")
	fs.StringVar(&opts.MainStat, "main", "", "main stat (full name or key such as atk%, cr, pyro%)")
	fs.StringVar(&opts.SubstatCount, "subs-count", "any", "starting substats: any, 3 or 4")
	fs.StringVar(&opts.Substats, "subs", "", "comma separated desired substats (ignored when -subs-count=any)")

	fs.IntVar(&opts.Within, "within", 0, "also print the chance of success within this many runs")
	fs.Float64Var(&opts.Confidence, "confidence", 0, "also print the runs needed to reach this chance, in (0, 1)")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func (o *Options) setDefaults() {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Verbose {
		o.LogLevel = "debug"
	}
}
