// internal/annotateapp/app.go
// Package annotateapp implements the annotate subcommand: retrieve a GFF/GTF
// annotation (remote URL or local path) and optionally subset it by feature
// type and gene.
package annotateapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ChromatinCloud/Bamboozler/internal/annotatecli"
	"github.com/ChromatinCloud/Bamboozler/internal/clibase"
	"github.com/ChromatinCloud/Bamboozler/internal/fetch"

	"bamboozler-core/gff"
)

type fetchFunc func(ctx context.Context, url, dest string) (int64, error)

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Run is the subcommand entry point.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return run(ctx, argv, stdout, stderr, fetch.Download)
}

func run(ctx context.Context, argv []string, stdout, stderr io.Writer, dl fetchFunc) int {
	fs := annotatecli.NewFlagSet()
	fs.SetOutput(stderr)
	opt, err := annotatecli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}
	log := clibase.NewLogger(stderr, opt.Quiet)

	// Without filters the retrieved file is the deliverable; with filters we
	// stage it beside the output and subset from there.
	filter := gff.Filter{Feature: opt.Feature, Gene: opt.Gene}
	filtered := opt.Feature != "" || opt.Gene != ""

	src := opt.Source
	if isURL(src) {
		dest := opt.Output
		if filtered {
			dest = opt.Output + ".full"
		}
		log.Info("downloading annotation", "url", src)
		if _, err := dl(ctx, src, dest); err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 1
		}
		src = dest
	}

	if !filtered {
		if src != opt.Output {
			if _, err := fetch.CopyFile(src, opt.Output); err != nil {
				fmt.Fprintln(stderr, "Error:", err)
				return 1
			}
		}
		log.Info("wrote annotation", "path", opt.Output)
		fmt.Fprintln(stdout, opt.Output)
		return 0
	}

	kept, err := gff.SubsetFile(src, opt.Output, filter)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	if src != opt.Source {
		_ = os.Remove(src)
	}

	log.Info("wrote annotation subset", "path", opt.Output, "features", kept)
	fmt.Fprintf(stdout, "%s\t%d features\n", opt.Output, kept)
	return 0
}
