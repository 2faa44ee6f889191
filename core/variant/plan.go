// core/variant/plan.go
package variant

import (
	"fmt"
	"time"
)

// Plan is a fully resolved description of one external engine call. It is
// produced by an Adapter, consumed once by the execution step, and never
// shared across runs.
type Plan struct {
	Backend string

	Exe  string
	Args []string
	Dir  string

	// ExpectedOutputs are the artifact paths the engine is contracted to
	// produce; the first entry is the primary alignment output.
	ExpectedOutputs []string

	Timeout time.Duration

	// Effective records the parameter values actually in force after
	// canonical-field translation and override merging.
	Effective map[string]string

	// Notes surface anything the translation could not express in this
	// engine's terms (ignored canonical fields, backend-applied defaults,
	// unrecognized override keys).
	Notes []string
}

func (p *Plan) note(format string, args ...any) {
	p.Notes = append(p.Notes, fmt.Sprintf(format, args...))
}

func (p *Plan) set(key, value string) {
	if p.Effective == nil {
		p.Effective = map[string]string{}
	}
	p.Effective[key] = value
}
