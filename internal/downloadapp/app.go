// internal/downloadapp/app.go
// Package downloadapp implements the download subcommand: fetch a chromosome
// FASTA from Ensembl (reusing a local copy when present) and write the
// requested slice as a new single-record FASTA.
package downloadapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ChromatinCloud/Bamboozler/internal/clibase"
	"github.com/ChromatinCloud/Bamboozler/internal/downloadcli"
	"github.com/ChromatinCloud/Bamboozler/internal/ensembl"
	"github.com/ChromatinCloud/Bamboozler/internal/fetch"

	"bamboozler-core/fasta"
)

type fetchFunc func(ctx context.Context, url, dest string) (int64, error)

// Run is the subcommand entry point; exit codes follow the toolkit
// convention (0 ok, 1 runtime failure, 2 usage).
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return run(ctx, argv, stdout, stderr, fetch.Download)
}

func run(ctx context.Context, argv []string, stdout, stderr io.Writer, dl fetchFunc) int {
	fs := downloadcli.NewFlagSet()
	fs.SetOutput(stderr)
	opt, err := downloadcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}
	log := clibase.NewLogger(stderr, opt.Quiet)

	chrom := ensembl.Chromosome{Species: opt.Species, Build: opt.Build, Name: opt.Chromosome}
	local := filepath.Join(filepath.Dir(opt.Output), chrom.FileName())

	if _, err := os.Stat(local); opt.Force || err != nil {
		log.Info("downloading chromosome", "url", chrom.URL())
		n, err := dl(ctx, chrom.URL(), local)
		if err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 1
		}
		log.Info("download complete", "path", local, "bytes", n)
	} else {
		log.Info("reusing local copy", "path", local)
	}

	reg := fasta.Region{Chrom: chrom.Bare(), Start: opt.Start, End: opt.End}
	seq, err := fasta.ExtractRegion(local, reg)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	out, err := os.Create(opt.Output)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	header := fmt.Sprintf("%s (%s, %s)", reg, opt.Species, opt.Build)
	werr := fasta.WriteRecord(out, header, seq)
	if cerr := out.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		fmt.Fprintln(stderr, "Error:", werr)
		return 1
	}

	log.Info("wrote slice", "path", opt.Output, "bases", len(seq))
	fmt.Fprintf(stdout, "%s\t%d bases\n", opt.Output, len(seq))
	return 0
}
