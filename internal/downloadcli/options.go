// internal/downloadcli/options.go
package downloadcli

import (
	"errors"
	"flag"

	"github.com/ChromatinCloud/Bamboozler/internal/clibase"
)

// Options holds the download subcommand's flags.
type Options struct {
	Species    string
	Build      string
	Chromosome string
	Start      int
	End        int // 0 = through the end of the chromosome
	Output     string
	Force      bool
	Quiet      bool
}

func NewFlagSet() *flag.FlagSet {
	return clibase.NewFlagSet("bamboozler download", "download and slice a reference chromosome from Ensembl")
}

// ParseArgs registers and parses all flags, then validates.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Species, "species", "", "species name, e.g. human [*]")
	fs.StringVar(&opt.Build, "build", "", "genome build, e.g. hg38 [*]")
	fs.StringVar(&opt.Chromosome, "chromosome", "", "chromosome, e.g. 1 or chr1 [*]")
	fs.IntVar(&opt.Start, "start", 1, "1-based start coordinate [1]")
	fs.IntVar(&opt.End, "end", 0, "1-based end coordinate, inclusive (0 = chromosome end) [0]")
	fs.StringVar(&opt.Output, "output", "", "output FASTA path [*]")
	fs.BoolVar(&opt.Force, "force-download", false, "redownload even if a local copy is present [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress logging [false]")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}

	if err := clibase.RequireNonEmpty("species", opt.Species); err != nil {
		return opt, err
	}
	if err := clibase.RequireNonEmpty("build", opt.Build); err != nil {
		return opt, err
	}
	if err := clibase.RequireNonEmpty("chromosome", opt.Chromosome); err != nil {
		return opt, err
	}
	if err := clibase.RequireNonEmpty("output", opt.Output); err != nil {
		return opt, err
	}
	if opt.Start < 1 {
		return opt, errors.New("--start must be ≥ 1")
	}
	if opt.End != 0 && opt.End < opt.Start {
		return opt, errors.New("--end must be 0 or ≥ --start")
	}
	return opt, nil
}
