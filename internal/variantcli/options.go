// internal/variantcli/options.go
package variantcli

import (
	"flag"
	"time"

	"github.com/ChromatinCloud/Bamboozler/internal/clibase"

	"bamboozler-core/variant"
)

// Options holds the variant subcommand's flags. Deep validation (file
// readability, fraction ranges) is left to variant.Request.Validate so the
// CLI and any programmatic caller reject the same inputs the same way.
type Options struct {
	BAM           string
	BAMIndex      string
	Reference     string
	VariantSource string
	OutputDir     string
	OutputName    string
	Backend       string
	ToolParamFile string
	Timeout       time.Duration
	Quiet         bool

	alleleFrequency float64
	readMix         float64
	afSet           bool
	mixSet          bool
}

func NewFlagSet() *flag.FlagSet {
	return clibase.NewFlagSet("bamboozler variant", "insert variants into a BAM via NEAT, VarSim or BAMSurgeon")
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.BAM, "bam", "", "input BAM [*]")
	fs.StringVar(&opt.BAMIndex, "bai", "", "index (.bai) for the input BAM [*]")
	fs.StringVar(&opt.Reference, "reference", "", "reference FASTA [*]")
	fs.StringVar(&opt.VariantSource, "variant-source", "", "VCF (or engine-specific list) of variants to insert [*]")
	fs.StringVar(&opt.OutputDir, "output-dir", ".", "directory for engine outputs [.]")
	fs.StringVar(&opt.OutputName, "output-name", "", "output BAM name, without .bam [*]")
	fs.StringVar(&opt.Backend, "variant-tool", "", "engine to run: neat, varsim or bamsurgeon [*]")
	fs.StringVar(&opt.ToolParamFile, "tool-param-file", "", "YAML file with engine-specific parameter overrides")
	fs.Float64Var(&opt.alleleFrequency, "allele-frequency", 0, "target allele frequency in [0,1]; omit for the engine default")
	fs.Float64Var(&opt.readMix, "read-mix", 0, "fraction of reads drawn from the edited pool, in [0,1]")
	fs.DurationVar(&opt.Timeout, "timeout", 0, "engine time limit, e.g. 90m (0 = default) [0]")
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
		switch f.Name {
		case "allele-frequency":
			opt.afSet = true
		case "read-mix":
			opt.mixSet = true
		}
	})
	return opt, nil
}

// Request translates parsed flags into the canonical engine request.
func (o Options) Request() variant.Request {
	req := variant.Request{
		BAM:           o.BAM,
		BAMIndex:      o.BAMIndex,
		Reference:     o.Reference,
		VariantSource: o.VariantSource,
		OutputDir:     o.OutputDir,
		OutputName:    o.OutputName,
		Backend:       o.Backend,
		ToolParamFile: o.ToolParamFile,
		Timeout:       o.Timeout,
	}
	if o.afSet {
		af := o.alleleFrequency
		req.AlleleFrequency = &af
	}
	if o.mixSet {
		mix := o.readMix
		req.ReadMix = &mix
	}
	return req
}
