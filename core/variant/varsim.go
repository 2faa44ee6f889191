// core/variant/varsim.go
package variant

import "path/filepath"

// VarSim adapts the canonical request to the VarSim whole-genome simulation
// framework.
type VarSim struct {
	// Exe overrides the varsim entry point.
	Exe string
}

const varsimDefaultExe = "varsim"

func (VarSim) ID() string { return "varsim" }

func (v VarSim) Plan(req Request) (Plan, error) {
	if !isVCF(req.VariantSource) {
		return Plan{}, translationErr(v.ID(), "varsim requires a VCF variant source, got %s", req.VariantSource)
	}
	ov, err := loadOverrides(v.ID(), req.ToolParamFile)
	if err != nil {
		return Plan{}, err
	}

	p := Plan{Backend: v.ID(), Timeout: req.EffectiveTimeout()}

	args := []string{
		"simulate",
		"--reference", req.Reference,
		"--out_dir", req.OutputDir,
		"--id", req.OutputName,
		"--vcfs", req.VariantSource,
	}
	if c, ok := ov.str("coverage"); ok {
		args = append(args, "--coverage", c)
		p.set("coverage", c)
	}

	// VarSim simulates whole-sample variants; per-locus fractions are not
	// part of its surface.
	if req.AlleleFrequency != nil {
		p.note("allele_frequency %g has no varsim equivalent; engine default applies", *req.AlleleFrequency)
		p.set("allele_frequency", sourceEngineDefault)
	}
	if req.ReadMix != nil {
		p.note("read_mix %g has no varsim equivalent; omitted", *req.ReadMix)
	}
	noteUnknown(&p, ov, "coverage")

	exe := v.Exe
	if exe == "" {
		exe = varsimDefaultExe
	}
	p.Exe = exe
	p.Args = args
	p.Dir = req.OutputDir
	p.ExpectedOutputs = []string{filepath.Join(req.OutputDir, req.OutputName+".bam")}
	return p, nil
}
