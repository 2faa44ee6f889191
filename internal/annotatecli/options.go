// internal/annotatecli/options.go
package annotatecli

import (
	"flag"

	"github.com/ChromatinCloud/Bamboozler/internal/clibase"
)

// Options holds the annotate subcommand's flags.
type Options struct {
	Source  string // URL or local path of a GFF/GTF file
	Output  string
	Feature string
	Gene    string
	Quiet   bool
}

func NewFlagSet() *flag.FlagSet {
	return clibase.NewFlagSet("bamboozler annotate", "retrieve and subset gene annotation files")
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Source, "annotation-source", "", "URL or local path of a GFF/GTF annotation [*]")
	fs.StringVar(&opt.Output, "output", "", "output annotation path [*]")
	fs.StringVar(&opt.Feature, "feature", "", "keep only this feature type, e.g. gene")
	fs.StringVar(&opt.Gene, "gene", "", "keep only lines whose attributes mention this gene")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress logging [false]")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}

	if err := clibase.RequireNonEmpty("annotation-source", opt.Source); err != nil {
		return opt, err
	}
	if err := clibase.RequireNonEmpty("output", opt.Output); err != nil {
		return opt, err
	}
	return opt, nil
}
