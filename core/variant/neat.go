// core/variant/neat.go
package variant

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// NEAT adapts the canonical request to the NEAT read simulator, which
// synthesizes variant-bearing reads from the reference and a VCF and emits a
// golden alignment.
type NEAT struct {
	// Exe overrides the neat-genreads entry point.
	Exe string
}

const neatDefaultExe = "neat-genreads.py"

func (NEAT) ID() string { return "neat" }

func (n NEAT) Plan(req Request) (Plan, error) {
	if !isVCF(req.VariantSource) {
		return Plan{}, translationErr(n.ID(), "neat requires a VCF variant source, got %s", req.VariantSource)
	}
	ov, err := loadOverrides(n.ID(), req.ToolParamFile)
	if err != nil {
		return Plan{}, err
	}

	p := Plan{Backend: n.ID(), Timeout: req.EffectiveTimeout()}

	prefix := filepath.Join(req.OutputDir, req.OutputName)
	args := []string{
		"-R", req.Reference,
		"-o", prefix,
		"-v", req.VariantSource,
	}

	af, afSource := resolveAF(req, ov, "vaf")
	if afSource == sourceEngineDefault {
		p.note("allele_frequency not set; neat applies its own VAF model")
		p.set("allele_frequency", sourceEngineDefault)
	} else {
		// NEAT has no single-VAF flag; pinning min and max fixes it.
		v := strconv.FormatFloat(af, 'g', -1, 64)
		args = append(args, "--min_vaf", v, "--max_vaf", v)
		p.set("allele_frequency", fmt.Sprintf("%g (%s)", af, afSource))
	}

	if c, ok := ov.str("coverage"); ok {
		args = append(args, "-c", c)
		p.set("coverage", c)
	}
	if rl, ok := ov.str("read_length"); ok {
		args = append(args, "-r", rl)
		p.set("read_length", rl)
	}
	if em, ok := ov.str("error_model"); ok {
		args = append(args, "--error", em)
		p.set("error_model", em)
	}
	if ov.flag("paired_end") {
		args = append(args, "--pe")
		p.set("paired_end", "true")
	}

	if req.ReadMix != nil {
		p.note("read_mix %g has no neat equivalent; omitted", *req.ReadMix)
	}
	noteUnknown(&p, ov, "vaf", "coverage", "read_length", "error_model", "paired_end")

	exe := n.Exe
	if exe == "" {
		exe = neatDefaultExe
	}
	p.Exe = exe
	p.Args = args
	p.Dir = req.OutputDir
	// NEAT names its ground-truth alignment <prefix>_golden.bam.
	p.ExpectedOutputs = []string{prefix + "_golden.bam"}
	return p, nil
}
