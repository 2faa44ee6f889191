// core/variant/orchestrator.go
package variant

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"bamboozler-core/execx"
)

// Executor runs one invocation plan as a subordinate process. Satisfied by
// *execx.Runner; tests substitute spies and stubs.
type Executor interface {
	Run(ctx context.Context, spec execx.Spec) (execx.Result, error)
}

// Outcome is the single user-facing result of a run. It is created once per
// Process call and never mutated afterwards.
type Outcome struct {
	RunID   string
	Backend string

	// OutputBAM is the primary alignment artifact; Outputs lists all
	// verified artifacts.
	OutputBAM string
	Outputs   []string

	// Effective holds the parameter values actually applied, including
	// backend defaults; Notes explains anything the chosen engine could
	// not express.
	Effective map[string]string
	Notes     []string

	Duration time.Duration
	// Log is the bounded tail of the engine's captured output.
	Log string
}

// Orchestrator sequences one run: validating → resolving → planning →
// executing → verifying. A failure at any stage short-circuits; no stage
// after the failing one executes, so no process is ever spawned for a request
// that fails validation or backend resolution.
type Orchestrator struct {
	Registry *Registry
	Exec     Executor
	Verify   func(Plan) error
	Log      *slog.Logger
}

// New returns an orchestrator wired with the built-in registry, the real
// process runner, and structural output verification.
func New(log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{
		Registry: NewRegistry(),
		Exec:     &execx.Runner{},
		Verify:   VerifyOutputs,
		Log:      log,
	}
}

// Process is the single synchronous entry point. It never retries: engine
// runs are expensive and their partial outputs are not safely repeatable.
func (o *Orchestrator) Process(ctx context.Context, req Request) (Outcome, error) {
	out := Outcome{RunID: uuid.NewString(), Backend: req.Backend}
	log := o.Log.With("run", out.RunID, "backend", req.Backend)

	log.Info("validating request", "bam", req.BAM, "variants", req.VariantSource)
	if err := req.Validate(); err != nil {
		return out, err
	}

	adapter, err := o.Registry.Resolve(req.Backend)
	if err != nil {
		return out, err
	}
	out.Backend = adapter.ID()

	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return out, invalidParam("output_dir", "%v", err)
	}

	plan, err := adapter.Plan(req)
	if err != nil {
		return out, err
	}
	out.Effective = plan.Effective
	out.Notes = plan.Notes
	log.Info("planned invocation", "exe", plan.Exe, "args", strings.Join(plan.Args, " "), "timeout", plan.Timeout)

	res, err := o.Exec.Run(ctx, execx.Spec{
		Exe:     plan.Exe,
		Args:    plan.Args,
		Dir:     plan.Dir,
		Timeout: plan.Timeout,
	})
	out.Duration = res.Duration
	out.Log = res.Stderr
	if err != nil {
		return out, &Error{
			Kind:    KindExecution,
			Stage:   StageExecuting,
			Backend: plan.Backend,
			Msg:     "engine could not be started",
			Err:     err,
		}
	}
	log.Info("engine finished", "class", res.Class.String(), "exit", res.ExitCode, "duration", res.Duration)

	switch res.Class {
	case execx.TimedOut:
		return out, &Error{
			Kind:    KindTimeout,
			Stage:   StageExecuting,
			Backend: plan.Backend,
			Msg:     "exceeded timeout " + plan.Timeout.String(),
			Log:     res.Stderr,
		}
	case execx.Failed:
		return out, &Error{
			Kind:    KindExecution,
			Stage:   StageExecuting,
			Backend: plan.Backend,
			Msg:     "engine exited with status " + strconv.Itoa(res.ExitCode),
			Log:     res.Stderr,
		}
	}

	if err := o.Verify(plan); err != nil {
		return out, err
	}

	out.Outputs = plan.ExpectedOutputs
	if len(plan.ExpectedOutputs) > 0 {
		out.OutputBAM = plan.ExpectedOutputs[0]
	}
	log.Info("run complete", "output", out.OutputBAM)
	return out, nil
}
