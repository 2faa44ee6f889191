// internal/variantapp/app.go
// Package variantapp implements the variant subcommand: it translates flags
// into a canonical engine request, hands it to the orchestrator, and renders
// the outcome.
package variantapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ChromatinCloud/Bamboozler/internal/clibase"
	"github.com/ChromatinCloud/Bamboozler/internal/variantcli"

	"bamboozler-core/variant"
)

// Run is the subcommand entry point.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return run(ctx, argv, stdout, stderr, nil)
}

// run lets tests substitute an orchestrator with stubbed execution.
func run(ctx context.Context, argv []string, stdout, stderr io.Writer, orch *variant.Orchestrator) int {
	fs := variantcli.NewFlagSet()
	fs.SetOutput(stderr)
	opt, err := variantcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}
	log := clibase.NewLogger(stderr, opt.Quiet)
	if orch == nil {
		orch = variant.New(log)
	}

	outcome, err := orch.Process(ctx, opt.Request())
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		if tail := engineLog(err); tail != "" {
			fmt.Fprintln(stderr, "Engine output:")
			fmt.Fprintln(stderr, tail)
		}
		return exitCode(err)
	}

	fmt.Fprintf(stdout, "run\t%s\n", outcome.RunID)
	fmt.Fprintf(stdout, "backend\t%s\n", outcome.Backend)
	fmt.Fprintf(stdout, "output\t%s\n", outcome.OutputBAM)
	fmt.Fprintf(stdout, "duration\t%s\n", outcome.Duration)
	for _, k := range sortedKeys(outcome.Effective) {
		fmt.Fprintf(stdout, "param\t%s=%s\n", k, outcome.Effective[k])
	}
	for _, n := range outcome.Notes {
		fmt.Fprintf(stdout, "note\t%s\n", n)
	}
	return 0
}

// exitCode maps request-shaped failures to the usage code and everything that
// happened after a well-formed request to the runtime code.
func exitCode(err error) int {
	switch variant.KindOf(err) {
	case variant.KindInvalidParameter, variant.KindUnsupportedBackend:
		return 2
	default:
		return 1
	}
}

func engineLog(err error) string {
	var ve *variant.Error
	if errors.As(err, &ve) {
		return strings.TrimSpace(ve.Log)
	}
	return ""
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
