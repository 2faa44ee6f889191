// internal/bamgenapp/app.go
// Package bamgenapp implements the bam subcommand, a thin shell around the
// bamgen pipeline.
package bamgenapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/ChromatinCloud/Bamboozler/internal/bamgen"
	"github.com/ChromatinCloud/Bamboozler/internal/bamgencli"
	"github.com/ChromatinCloud/Bamboozler/internal/clibase"
)

// Run is the subcommand entry point.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return run(ctx, argv, stdout, stderr, nil)
}

// run lets tests substitute a prebuilt generator.
func run(ctx context.Context, argv []string, stdout, stderr io.Writer, g *bamgen.Generator) int {
	fs := bamgencli.NewFlagSet()
	fs.SetOutput(stderr)
	opt, err := bamgencli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}
	log := clibase.NewLogger(stderr, opt.Quiet)
	if g == nil {
		g = bamgen.New(log)
	}

	bo := bamgen.Options{
		Reference:    opt.Reference,
		OutputDir:    opt.OutputDir,
		SampleName:   opt.SampleName,
		Depth:        opt.Depth,
		MutationRate: opt.MutationRate,
		ReadLen:      opt.ReadLen,
		Timeout:      opt.Timeout,
	}
	if opt.SeedSet {
		seed := opt.Seed
		bo.Seed = &seed
	}

	sorted, err := g.Generate(ctx, bo)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	fmt.Fprintln(stdout, sorted)
	return 0
}
