// internal/bamgencli/options.go
package bamgencli

import (
	"errors"
	"flag"
	"time"

	"github.com/ChromatinCloud/Bamboozler/internal/clibase"
)

// Options holds the bam subcommand's flags.
type Options struct {
	Reference    string
	OutputDir    string
	SampleName   string
	Depth        int
	MutationRate float64
	ReadLen      int
	Seed         int64
	SeedSet      bool
	Timeout      time.Duration
	Quiet        bool
}

func NewFlagSet() *flag.FlagSet {
	return clibase.NewFlagSet("bamboozler bam", "simulate reads and build a sorted, indexed BAM")
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Reference, "reference", "", "reference FASTA to simulate from [*]")
	fs.StringVar(&opt.OutputDir, "output-dir", ".", "directory for the generated BAM [.]")
	fs.StringVar(&opt.SampleName, "sample-name", "", "base name for the generated files [*]")
	fs.IntVar(&opt.Depth, "depth", 10000, "number of read pairs to simulate [10000]")
	fs.Float64Var(&opt.MutationRate, "mutation-rate", 0.001, "wgsim substitution rate [0.001]")
	fs.IntVar(&opt.ReadLen, "read-length", 100, "simulated read length [100]")
	fs.Int64Var(&opt.Seed, "seed", 0, "simulation seed; omit for nondeterministic reads")
	fs.DurationVar(&opt.Timeout, "timeout", 0, "per-step time limit, e.g. 30m (0 = none) [0]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress logging [false]")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opt.SeedSet = true
		}
	})

	if err := clibase.RequireFile("reference", opt.Reference); err != nil {
		return opt, err
	}
	if err := clibase.RequireNonEmpty("sample-name", opt.SampleName); err != nil {
		return opt, err
	}
	if opt.Depth < 1 {
		return opt, errors.New("--depth must be ≥ 1")
	}
	if err := clibase.Fraction("mutation-rate", opt.MutationRate); err != nil {
		return opt, err
	}
	if opt.ReadLen < 1 {
		return opt, errors.New("--read-length must be ≥ 1")
	}
	if opt.Timeout < 0 {
		return opt, errors.New("--timeout must be ≥ 0")
	}
	return opt, nil
}
