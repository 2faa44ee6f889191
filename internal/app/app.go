// internal/app/app.go
// Package app dispatches the bamboozler subcommands.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/ChromatinCloud/Bamboozler/internal/annotateapp"
	"github.com/ChromatinCloud/Bamboozler/internal/bamgenapp"
	"github.com/ChromatinCloud/Bamboozler/internal/downloadapp"
	"github.com/ChromatinCloud/Bamboozler/internal/variantapp"
	"github.com/ChromatinCloud/Bamboozler/internal/version"
)

const usage = `bamboozler %s — build benchmark BAMs with known, engineered variants

Usage:
  bamboozler <command> [flags]

Commands:
  download   download and slice a reference chromosome from Ensembl
  annotate   retrieve and subset gene annotation files
  bam        simulate reads and build a sorted, indexed BAM
  variant    insert variants into a BAM via NEAT, VarSim or BAMSurgeon
  version    print the toolkit version

Run "bamboozler <command> -h" for command flags.
`

// Run routes argv[0] to its subcommand and returns the process exit code.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		fmt.Fprintf(stderr, usage, version.Version)
		return 2
	}

	cmd, rest := argv[0], argv[1:]
	switch cmd {
	case "download":
		return downloadapp.Run(ctx, rest, stdout, stderr)
	case "annotate":
		return annotateapp.Run(ctx, rest, stdout, stderr)
	case "bam":
		return bamgenapp.Run(ctx, rest, stdout, stderr)
	case "variant":
		return variantapp.Run(ctx, rest, stdout, stderr)
	case "version", "--version", "-v":
		fmt.Fprintln(stdout, "bamboozler", version.Version)
		return 0
	case "help", "--help", "-h":
		fmt.Fprintf(stdout, usage, version.Version)
		return 0
	default:
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", cmd)
		fmt.Fprintf(stderr, usage, version.Version)
		return 2
	}
}
