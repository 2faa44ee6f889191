// core/variant/adapters_test.go
package variant

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func argString(p Plan) string { return strings.Join(p.Args, " ") }

func hasNote(p Plan, substr string) bool {
	for _, n := range p.Notes {
		if strings.Contains(n, substr) {
			return true
		}
	}
	return false
}

func TestBAMSurgeonPlanConvertsVCF(t *testing.T) {
	dir := t.TempDir()
	req := validRequest(t, dir)
	req.AlleleFrequency = fp(0.2)

	p, err := BAMSurgeon{}.Plan(req)
	require.NoError(t, err)

	assert.Equal(t, "python3", p.Exe)
	args := argString(p)
	assert.Contains(t, args, "-O /opt/bamsurgeon/bin/addsnv.py")
	assert.Contains(t, args, "--af 0.2")
	assert.Contains(t, args, "--aligner bwa")
	assert.Contains(t, args, "-f "+req.BAM)

	varfile := filepath.Join(req.OutputDir, "edited.varfile.txt")
	assert.Contains(t, args, "-v "+varfile)
	data, err := os.ReadFile(varfile)
	require.NoError(t, err)
	assert.Equal(t, "chr1\t2\t2\t0.2\tT\n", string(data))

	require.Len(t, p.ExpectedOutputs, 1)
	assert.Equal(t, filepath.Join(req.OutputDir, "edited.bam"), p.ExpectedOutputs[0])
	assert.Equal(t, DefaultTimeout, p.Timeout)
}

func TestBAMSurgeonPlanTextListPassthrough(t *testing.T) {
	dir := t.TempDir()
	req := validRequest(t, dir)
	list := writeTmp(t, "vars.txt", "chr1\t2\t2\t0.5\tT\n")
	req.VariantSource = list

	p, err := BAMSurgeon{}.Plan(req)
	require.NoError(t, err)
	assert.Contains(t, argString(p), "-v "+list)
	assert.False(t, hasNote(p, "converted VCF"))
}

func TestBAMSurgeonPlanUntranslatableVCF(t *testing.T) {
	dir := t.TempDir()
	req := validRequest(t, dir)
	req.VariantSource = writeTmp(t, "indel.vcf", "chr1\t5\t.\tACGT\tA\t50\tPASS\t.\n")

	_, err := BAMSurgeon{}.Plan(req)
	require.Error(t, err)
	assert.Equal(t, KindAdapterTranslation, KindOf(err))
	assert.Equal(t, StagePlanning, err.(*Error).Stage)
}

func TestBAMSurgeonPlanOverridesWin(t *testing.T) {
	dir := t.TempDir()
	req := validRequest(t, dir)
	req.AlleleFrequency = fp(0.2)
	req.ToolParamFile = writeTmp(t, "p.yaml", "allele_freq: 0.7\nseed: 13\nkeepsecondary: true\nbogus_knob: 1\n")

	p, err := BAMSurgeon{}.Plan(req)
	require.NoError(t, err)
	args := argString(p)
	assert.Contains(t, args, "--af 0.7")
	assert.NotContains(t, args, "--af 0.2")
	assert.Contains(t, args, "--seed 13")
	assert.Contains(t, args, "--keepsecondary")
	assert.Contains(t, p.Effective["allele_frequency"], "0.7")
	assert.True(t, hasNote(p, `"bogus_knob"`))
}

func TestBAMSurgeonPlanDefaultsAndReadMixNote(t *testing.T) {
	dir := t.TempDir()
	req := validRequest(t, dir)
	req.ReadMix = fp(0.4)

	p, err := BAMSurgeon{}.Plan(req)
	require.NoError(t, err)
	assert.NotContains(t, argString(p), "--af")
	assert.True(t, hasNote(p, "addsnv.py applies its default"))
	assert.True(t, hasNote(p, "read_mix"))
}

func TestNEATPlan(t *testing.T) {
	dir := t.TempDir()
	req := validRequest(t, dir)
	req.Backend = "neat"
	req.AlleleFrequency = fp(0.3)
	req.ToolParamFile = writeTmp(t, "p.yaml", "coverage: 40\nread_length: 150\npaired_end: true\n")

	p, err := NEAT{}.Plan(req)
	require.NoError(t, err)
	assert.Equal(t, "neat-genreads.py", p.Exe)
	args := argString(p)
	assert.Contains(t, args, "-R "+req.Reference)
	assert.Contains(t, args, "--min_vaf 0.3 --max_vaf 0.3")
	assert.Contains(t, args, "-c 40")
	assert.Contains(t, args, "-r 150")
	assert.Contains(t, args, "--pe")

	want := filepath.Join(req.OutputDir, "edited_golden.bam")
	assert.Equal(t, []string{want}, p.ExpectedOutputs)
}

func TestNEATPlanVAFOverrideWins(t *testing.T) {
	dir := t.TempDir()
	req := validRequest(t, dir)
	req.AlleleFrequency = fp(0.3)
	req.ToolParamFile = writeTmp(t, "p.yaml", "vaf: 0.9\n")

	p, err := NEAT{}.Plan(req)
	require.NoError(t, err)
	assert.Contains(t, argString(p), "--min_vaf 0.9 --max_vaf 0.9")
}

func TestNEATPlanRequiresVCF(t *testing.T) {
	dir := t.TempDir()
	req := validRequest(t, dir)
	req.VariantSource = writeTmp(t, "vars.txt", "chr1\t2\t2\t0.5\tT\n")

	_, err := NEAT{}.Plan(req)
	require.Error(t, err)
	assert.Equal(t, KindAdapterTranslation, KindOf(err))
}

func TestNEATPlanEngineDefaultVAF(t *testing.T) {
	req := validRequest(t, t.TempDir())
	p, err := NEAT{}.Plan(req)
	require.NoError(t, err)
	assert.NotContains(t, argString(p), "--min_vaf")
	assert.True(t, hasNote(p, "VAF model"))
}

func TestVarSimPlan(t *testing.T) {
	dir := t.TempDir()
	req := validRequest(t, dir)
	req.AlleleFrequency = fp(0.3)
	req.ReadMix = fp(0.5)
	req.ToolParamFile = writeTmp(t, "p.yaml", "coverage: 25\n")

	p, err := VarSim{}.Plan(req)
	require.NoError(t, err)
	assert.Equal(t, "varsim", p.Exe)
	args := argString(p)
	assert.True(t, strings.HasPrefix(args, "simulate "))
	assert.Contains(t, args, "--reference "+req.Reference)
	assert.Contains(t, args, "--out_dir "+req.OutputDir)
	assert.Contains(t, args, "--id edited")
	assert.Contains(t, args, "--vcfs "+req.VariantSource)
	assert.Contains(t, args, "--coverage 25")

	// Neither canonical fraction is expressible; both must be surfaced.
	assert.True(t, hasNote(p, "allele_frequency"))
	assert.True(t, hasNote(p, "read_mix"))
	assert.Equal(t, []string{filepath.Join(req.OutputDir, "edited.bam")}, p.ExpectedOutputs)
}

func TestVarSimPlanRequiresVCF(t *testing.T) {
	req := validRequest(t, t.TempDir())
	req.VariantSource = writeTmp(t, "vars.txt", "x\n")

	_, err := VarSim{}.Plan(req)
	require.Error(t, err)
	assert.Equal(t, KindAdapterTranslation, KindOf(err))
}

func TestAdapterCustomExePaths(t *testing.T) {
	req := validRequest(t, t.TempDir())

	p, err := NEAT{Exe: "/opt/neat/genreads.py"}.Plan(req)
	require.NoError(t, err)
	assert.Equal(t, "/opt/neat/genreads.py", p.Exe)

	p, err = BAMSurgeon{Python: "python3.11", Script: "/usr/local/bin/addsnv.py"}.Plan(req)
	require.NoError(t, err)
	assert.Equal(t, "python3.11", p.Exe)
	assert.Contains(t, argString(p), "-O /usr/local/bin/addsnv.py")
}
