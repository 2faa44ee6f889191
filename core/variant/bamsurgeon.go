// core/variant/bamsurgeon.go
package variant

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// BAMSurgeon adapts the canonical request to BAMSurgeon's addsnv.py, which
// edits variant-supporting reads directly into an existing BAM.
type BAMSurgeon struct {
	// Python and Script locate the interpreter and addsnv entry point.
	// Zero values select the conventional install layout.
	Python string
	Script string
}

const (
	bamsurgeonDefaultPython = "python3"
	bamsurgeonDefaultScript = "/opt/bamsurgeon/bin/addsnv.py"

	// addsnv.py's own default when --af is not passed.
	bamsurgeonDefaultAF = 0.5
)

func (BAMSurgeon) ID() string { return "bamsurgeon" }

// Plan builds the addsnv.py invocation. BAMSurgeon consumes a per-variant
// text list, not a VCF: a VCF variant source is converted to a varfile of
// single-nucleotide substitutions, and a VCF that cannot be expressed that
// way (indels, MNVs, multi-allelic sites) fails the translation.
func (b BAMSurgeon) Plan(req Request) (Plan, error) {
	ov, err := loadOverrides(b.ID(), req.ToolParamFile)
	if err != nil {
		return Plan{}, err
	}

	p := Plan{Backend: b.ID(), Timeout: req.EffectiveTimeout()}

	af, afSource := resolveAF(req, ov, "allele_freq")
	if afSource == sourceEngineDefault {
		af = bamsurgeonDefaultAF
	}

	varfile := req.VariantSource
	if isVCF(req.VariantSource) {
		varfile = filepath.Join(req.OutputDir, req.OutputName+".varfile.txt")
		if err := convertVCF(req.VariantSource, varfile, af); err != nil {
			return Plan{}, translationErr(b.ID(), "bamsurgeon needs a per-variant text list and the VCF could not be converted: %v", err)
		}
		p.note("converted VCF %s to varfile %s", req.VariantSource, varfile)
	}
	p.set("variant_list", varfile)

	outBAM := filepath.Join(req.OutputDir, req.OutputName+".bam")

	python := b.Python
	if python == "" {
		python = bamsurgeonDefaultPython
	}
	script := b.Script
	if script == "" {
		script = bamsurgeonDefaultScript
	}

	args := []string{
		"-O", script,
		"-v", varfile,
		"-f", req.BAM,
		"-r", req.Reference,
		"-o", outBAM,
	}

	switch afSource {
	case sourceEngineDefault:
		p.note("allele_frequency not set; addsnv.py applies its default %g", bamsurgeonDefaultAF)
	default:
		args = append(args, "--af", strconv.FormatFloat(af, 'g', -1, 64))
	}
	p.set("allele_frequency", fmt.Sprintf("%g (%s)", af, afSource))

	if seed, ok := ov.str("seed"); ok {
		args = append(args, "--seed", seed)
		p.set("seed", seed)
	}
	aligner := "bwa"
	if a, ok := ov.str("aligner"); ok {
		aligner = a
	}
	args = append(args, "--aligner", aligner)
	p.set("aligner", aligner)

	if inslib, ok := ov.str("inslib"); ok {
		args = append(args, "--inslib", inslib)
		p.set("inslib", inslib)
	}
	if ov.flag("keepsecondary") {
		args = append(args, "--keepsecondary")
		p.set("keepsecondary", "true")
	}

	if req.ReadMix != nil {
		p.note("read_mix %g has no bamsurgeon equivalent; omitted", *req.ReadMix)
	}
	noteUnknown(&p, ov, "allele_freq", "seed", "aligner", "inslib", "keepsecondary")

	p.Exe = python
	p.Args = args
	p.Dir = req.OutputDir
	p.ExpectedOutputs = []string{outBAM}
	return p, nil
}

// convertVCF writes the SNVs of vcfPath as a BAMSurgeon varfile.
func convertVCF(vcfPath, outPath string, vaf float64) error {
	snvs, err := readSNVs(vcfPath, vaf)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	werr := writeVarfile(bufio.NewWriter(f), snvs)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	return werr
}
