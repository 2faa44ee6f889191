// internal/clibase/common.go
// Package clibase carries the flag-set plumbing and validation helpers shared
// by every bamboozler subcommand.
package clibase

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ChromatinCloud/Bamboozler/internal/version"
)

// NewFlagSet returns a FlagSet with the toolkit's usage template.
func NewFlagSet(name, about string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `%s: %s

Part of bamboozler %s

Usage of %s:
`, name, about, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// NewLogger builds the stderr logger used by all subcommands. quiet raises
// the level so only warnings and errors get through.
func NewLogger(stderr io.Writer, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

// RequireFile fails when a flag that must name a readable file does not.
func RequireFile(flagName, path string) error {
	if path == "" {
		return fmt.Errorf("--%s is required", flagName)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("--%s: %v", flagName, err)
	}
	return f.Close()
}

// RequireNonEmpty fails when a mandatory string flag was left unset.
func RequireNonEmpty(flagName, v string) error {
	if v == "" {
		return fmt.Errorf("--%s is required", flagName)
	}
	return nil
}

// Fraction validates a [0,1] flag value.
func Fraction(flagName string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("--%s must be within [0.0, 1.0], got %g", flagName, v)
	}
	return nil
}
