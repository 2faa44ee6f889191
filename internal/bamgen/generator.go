// internal/bamgen/generator.go
// Package bamgen synthesizes a sorted, indexed BAM from a reference FASTA by
// chaining wgsim (read simulation), bwa mem (alignment) and samtools
// (conversion, sorting, indexing).
package bamgen

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"bamboozler-core/execx"
)

// Executor runs one external command; satisfied by *execx.Runner.
type Executor interface {
	Run(ctx context.Context, spec execx.Spec) (execx.Result, error)
}

// Options describe one synthesis run.
type Options struct {
	Reference  string
	OutputDir  string
	SampleName string

	// Depth is the number of read pairs wgsim simulates (-N).
	Depth int
	// MutationRate is wgsim's substitution rate (-R).
	MutationRate float64
	ReadLen      int

	// Seed, when non-nil, makes the simulation reproducible.
	Seed *int64

	// Timeout bounds each pipeline step individually. 0 = no limit.
	Timeout time.Duration
}

// Generator drives the pipeline.
type Generator struct {
	Exec Executor
	Log  *slog.Logger
}

func New(log *slog.Logger) *Generator {
	if log == nil {
		log = slog.Default()
	}
	return &Generator{Exec: &execx.Runner{}, Log: log}
}

// Generate runs the full pipeline and returns the sorted, indexed BAM path.
// Intermediate FASTQ/SAM/unsorted-BAM files are removed on success.
func (g *Generator) Generate(ctx context.Context, o Options) (string, error) {
	if err := os.MkdirAll(o.OutputDir, 0o755); err != nil {
		return "", err
	}

	name := o.SampleName
	fq1 := filepath.Join(o.OutputDir, name+"_1.fq")
	fq2 := filepath.Join(o.OutputDir, name+"_2.fq")
	sam := filepath.Join(o.OutputDir, name+".sam")
	bam := filepath.Join(o.OutputDir, name+".bam")
	sorted := filepath.Join(o.OutputDir, name+"_sorted.bam")

	wgsimArgs := []string{
		"-N", strconv.Itoa(o.Depth),
		"-R", strconv.FormatFloat(o.MutationRate, 'g', -1, 64),
		"-1", strconv.Itoa(o.ReadLen),
		"-2", strconv.Itoa(o.ReadLen),
	}
	if o.Seed != nil {
		wgsimArgs = append(wgsimArgs, "-S", strconv.FormatInt(*o.Seed, 10))
	}
	wgsimArgs = append(wgsimArgs, o.Reference, fq1, fq2)

	steps := []struct {
		desc string
		spec execx.Spec
	}{
		{"simulating reads", execx.Spec{Exe: "wgsim", Args: wgsimArgs}},
		{"aligning reads", execx.Spec{Exe: "bwa", Args: []string{"mem", o.Reference, fq1, fq2}, StdoutFile: sam}},
		{"converting SAM to BAM", execx.Spec{Exe: "samtools", Args: []string{"view", "-bS", sam}, StdoutFile: bam}},
		{"sorting BAM", execx.Spec{Exe: "samtools", Args: []string{"sort", bam, "-o", sorted}}},
		{"indexing BAM", execx.Spec{Exe: "samtools", Args: []string{"index", sorted}}},
	}

	for _, step := range steps {
		step.spec.Timeout = o.Timeout
		g.Log.Info(step.desc, "exe", step.spec.Exe)
		res, err := g.Exec.Run(ctx, step.spec)
		if err != nil {
			return "", fmt.Errorf("%s: %w", step.desc, err)
		}
		if res.Class != execx.Succeeded {
			return "", fmt.Errorf("%s: %s %s (exit %d): %s",
				step.desc, step.spec.Exe, res.Class, res.ExitCode, res.Stderr)
		}
	}

	for _, f := range []string{sam, bam, fq1, fq2} {
		if err := os.Remove(f); err != nil && !os.IsNotExist(err) {
			g.Log.Warn("could not remove intermediate", "path", f, "err", err)
		}
	}

	g.Log.Info("generated BAM", "path", sorted)
	return sorted, nil
}
