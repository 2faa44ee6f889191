// core/variant/registry.go
package variant

import (
	"sort"
	"strings"
)

// Adapter translates the canonical Request into one engine's invocation
// conventions.
type Adapter interface {
	// ID is the backend identifier users select with --variant-tool.
	ID() string
	// Plan derives the engine-specific invocation. It may read the variant
	// source and write derived inputs under the request's output directory,
	// but must not spawn anything.
	Plan(req Request) (Plan, error)
}

// Registry maps backend identifiers to their adapters. Resolution happens
// before any file is touched or process spawned, so an unknown identifier
// fails fast and cheaply.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry returns a registry pre-populated with the supported engines.
func NewRegistry() *Registry {
	r := &Registry{adapters: map[string]Adapter{}}
	r.Register(NEAT{})
	r.Register(VarSim{})
	r.Register(BAMSurgeon{})
	return r
}

// Register adds or replaces an adapter (last wins).
func (r *Registry) Register(a Adapter) {
	r.adapters[strings.ToLower(a.ID())] = a
}

// Resolve returns the adapter for id, case-insensitively.
func (r *Registry) Resolve(id string) (Adapter, error) {
	a, ok := r.adapters[strings.ToLower(id)]
	if !ok {
		return nil, &Error{
			Kind:    KindUnsupportedBackend,
			Stage:   StageResolving,
			Backend: id,
			Msg:     "supported backends: " + strings.Join(r.Backends(), ", "),
		}
	}
	return a, nil
}

// Backends lists the registered identifiers, sorted.
func (r *Registry) Backends() []string {
	out := make([]string, 0, len(r.adapters))
	for id := range r.adapters {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
