// core/execx/runner.go
// Package execx runs one external process per call with a hard timeout,
// process-group cleanup, and bounded output capture.
package execx

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// Class is the coarse outcome of a process run.
type Class int

const (
	Succeeded Class = iota
	Failed
	TimedOut
)

func (c Class) String() string {
	switch c {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case TimedOut:
		return "timed_out"
	}
	return "unknown"
}

// Spec describes exactly one subordinate process call.
type Spec struct {
	Exe  string
	Args []string
	Dir  string

	// Timeout bounds the wall-clock run time. 0 means no limit.
	Timeout time.Duration

	// StdoutFile, when non-empty, streams stdout to this file instead of
	// capturing it in memory. Needed for tools that emit bulk data
	// (e.g. bwa writing SAM) rather than diagnostics on stdout.
	StdoutFile string
}

// Result is immutable once returned.
type Result struct {
	Class     Class
	ExitCode  int
	Stdout    string
	Stderr    string
	Truncated bool
	Duration  time.Duration
}

const (
	// DefaultGrace is how long a timed-out process gets between SIGTERM
	// and SIGKILL.
	DefaultGrace = 5 * time.Second

	// DefaultMaxCapture bounds each captured stream.
	DefaultMaxCapture = 64 * 1024
)

// Runner executes Specs. The zero value is usable.
type Runner struct {
	Grace      time.Duration
	MaxCapture int
}

func (r *Runner) grace() time.Duration {
	if r.Grace > 0 {
		return r.Grace
	}
	return DefaultGrace
}

func (r *Runner) maxCapture() int {
	if r.MaxCapture > 0 {
		return r.MaxCapture
	}
	return DefaultMaxCapture
}

// Run spawns the process described by spec and waits for it, the timeout, or
// ctx cancellation, whichever comes first. A non-zero exit is reported in the
// Result, not as an error; the error return is reserved for failures to spawn
// at all (executable missing, unreadable working directory, ...).
//
// On timeout the whole process group receives SIGTERM, then SIGKILL after the
// grace period. Run does not return until the process has been reaped, so a
// returned Result of class TimedOut implies the process is gone.
func (r *Runner) Run(ctx context.Context, spec Spec) (Result, error) {
	cmd := exec.Command(spec.Exe, spec.Args...)
	cmd.Dir = spec.Dir
	// Own process group so the kill reaches children (pipelines, wrappers).
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	outBuf := &boundedBuffer{max: r.maxCapture()}
	errBuf := &boundedBuffer{max: r.maxCapture()}
	cmd.Stderr = errBuf

	var outFile *os.File
	if spec.StdoutFile != "" {
		f, err := os.Create(spec.StdoutFile)
		if err != nil {
			return Result{}, fmt.Errorf("create stdout file: %w", err)
		}
		outFile = f
		cmd.Stdout = f
	} else {
		cmd.Stdout = outBuf
	}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		if outFile != nil {
			_ = outFile.Close()
		}
		return Result{}, fmt.Errorf("start %s: %w", spec.Exe, err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	var deadline <-chan time.Time
	if spec.Timeout > 0 {
		t := time.NewTimer(spec.Timeout)
		defer t.Stop()
		deadline = t.C
	}

	timedOut := false
	var waitErr error
	select {
	case waitErr = <-done:
	case <-deadline:
		timedOut = true
		waitErr = r.kill(cmd, done)
	case <-ctx.Done():
		// Caller-driven cancellation is handled like the timeout: the
		// process must not outlive the call.
		timedOut = true
		waitErr = r.kill(cmd, done)
	}

	if outFile != nil {
		_ = outFile.Close()
	}

	res := Result{
		Stdout:    outBuf.String(),
		Stderr:    errBuf.String(),
		Truncated: outBuf.truncated() || errBuf.truncated(),
		Duration:  time.Since(start),
	}

	switch {
	case timedOut:
		res.Class = TimedOut
		res.ExitCode = -1
	case waitErr == nil:
		res.Class = Succeeded
	default:
		ee, ok := waitErr.(*exec.ExitError)
		if !ok {
			return res, fmt.Errorf("wait %s: %w", spec.Exe, waitErr)
		}
		res.Class = Failed
		res.ExitCode = ee.ExitCode()
	}
	return res, nil
}

// kill terminates the process group: cooperative signal first, forced kill
// after the grace period. Blocks until Wait has returned.
func (r *Runner) kill(cmd *exec.Cmd, done <-chan error) error {
	pgid := -cmd.Process.Pid
	_ = syscall.Kill(pgid, syscall.SIGTERM)
	select {
	case err := <-done:
		return err
	case <-time.After(r.grace()):
		_ = syscall.Kill(pgid, syscall.SIGKILL)
		return <-done
	}
}
