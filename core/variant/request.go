// core/variant/request.go
// Package variant inserts or edits variants in an existing BAM by driving one
// of several interchangeable external engines (NEAT, VarSim, BAMSurgeon)
// behind a single canonical parameter model.
package variant

import (
	"os"
	"time"
)

// DefaultTimeout bounds an engine run when the request does not set one.
const DefaultTimeout = 2 * time.Hour

// Request is the canonical, tool-agnostic description of one
// variant-insertion run. It is owned by the caller and never mutated here.
type Request struct {
	BAM           string // input alignment
	BAMIndex      string // .bai for BAM
	Reference     string // reference FASTA
	VariantSource string // VCF, or an engine-specific variant list

	OutputDir  string
	OutputName string // output BAM name, no .bam extension

	// AlleleFrequency and ReadMix are fractions in [0,1]. nil means "let
	// the backend apply its own default".
	AlleleFrequency *float64
	ReadMix         *float64

	Backend       string // one of the registered backend identifiers
	ToolParamFile string // optional YAML override file

	// Timeout bounds the engine process. 0 selects DefaultTimeout.
	Timeout time.Duration
}

// EffectiveTimeout resolves the run timeout.
func (r Request) EffectiveTimeout() time.Duration {
	if r.Timeout > 0 {
		return r.Timeout
	}
	return DefaultTimeout
}

// Validate checks the request field by field and reports the first violation
// as an invalid_parameter Error naming the field. It performs no I/O beyond
// existence/readability checks; nothing is spawned for a request that fails
// here.
func (r Request) Validate() error {
	required := []struct {
		field, path string
	}{
		{"bam", r.BAM},
		{"bai", r.BAMIndex},
		{"reference", r.Reference},
		{"variant_source", r.VariantSource},
	}
	for _, in := range required {
		if in.path == "" {
			return invalidParam(in.field, "required path is empty")
		}
		if err := readable(in.path); err != nil {
			return invalidParam(in.field, "%v", err)
		}
	}
	if r.OutputDir == "" {
		return invalidParam("output_dir", "required path is empty")
	}
	if r.OutputName == "" {
		return invalidParam("output_name", "required name is empty")
	}
	if err := fraction("allele_frequency", r.AlleleFrequency); err != nil {
		return err
	}
	if err := fraction("read_mix", r.ReadMix); err != nil {
		return err
	}
	if r.Backend == "" {
		return invalidParam("backend", "no backend selected")
	}
	if r.ToolParamFile != "" {
		if err := readable(r.ToolParamFile); err != nil {
			return invalidParam("tool_param_file", "%v", err)
		}
	}
	if r.Timeout < 0 {
		return invalidParam("timeout", "must not be negative")
	}
	return nil
}

func readable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}

func fraction(field string, v *float64) error {
	if v == nil {
		return nil
	}
	if *v < 0 || *v > 1 {
		return invalidParam(field, "must be within [0.0, 1.0], got %g", *v)
	}
	return nil
}
