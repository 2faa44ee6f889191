// internal/bamgen/generator_test.go
package bamgen

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bamboozler-core/execx"
)

// fakeExec records every invocation and mimics successful tools by touching
// the files each step is expected to produce.
type fakeExec struct {
	cmds    []string
	failOn  string
	outputs map[string]string // exe name -> extra file to create
}

func (f *fakeExec) Run(_ context.Context, spec execx.Spec) (execx.Result, error) {
	f.cmds = append(f.cmds, spec.Exe+" "+strings.Join(spec.Args, " "))
	if spec.Exe == f.failOn {
		return execx.Result{Class: execx.Failed, ExitCode: 1, Stderr: "tool blew up"}, nil
	}
	if spec.StdoutFile != "" {
		if err := os.WriteFile(spec.StdoutFile, []byte("x"), 0o644); err != nil {
			return execx.Result{}, err
		}
	}
	if extra, ok := f.outputs[spec.Exe+" "+firstArg(spec)]; ok {
		if err := os.WriteFile(extra, []byte("x"), 0o644); err != nil {
			return execx.Result{}, err
		}
	}
	return execx.Result{Class: execx.Succeeded}, nil
}

func firstArg(spec execx.Spec) string {
	if len(spec.Args) == 0 {
		return ""
	}
	return spec.Args[0]
}

func testLog() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestGeneratePipelineOrder(t *testing.T) {
	dir := t.TempDir()
	seed := int64(42)
	fake := &fakeExec{outputs: map[string]string{
		"samtools sort": filepath.Join(dir, "sample_sorted.bam"),
	}}
	g := &Generator{Exec: fake, Log: testLog()}

	sorted, err := g.Generate(context.Background(), Options{
		Reference:    "ref.fa",
		OutputDir:    dir,
		SampleName:   "sample",
		Depth:        1000,
		MutationRate: 0.01,
		ReadLen:      100,
		Seed:         &seed,
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sample_sorted.bam"), sorted)

	require.Len(t, fake.cmds, 5)
	assert.Contains(t, fake.cmds[0], "wgsim -N 1000 -R 0.01 -1 100 -2 100 -S 42")
	assert.True(t, strings.HasPrefix(fake.cmds[1], "bwa mem ref.fa"))
	assert.Contains(t, fake.cmds[2], "samtools view -bS")
	assert.Contains(t, fake.cmds[3], "samtools sort")
	assert.Contains(t, fake.cmds[4], "samtools index")

	// Intermediates must be cleaned up.
	for _, name := range []string{"sample_1.fq", "sample_2.fq", "sample.sam", "sample.bam"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.True(t, os.IsNotExist(err), name)
	}
}

func TestGenerateNoSeedOmitsFlag(t *testing.T) {
	fake := &fakeExec{}
	g := &Generator{Exec: fake, Log: testLog()}

	_, err := g.Generate(context.Background(), Options{
		Reference: "ref.fa", OutputDir: t.TempDir(), SampleName: "s",
		Depth: 10, MutationRate: 0.5, ReadLen: 50,
	})
	require.NoError(t, err)
	assert.NotContains(t, fake.cmds[0], "-S ")
}

func TestGenerateStepFailure(t *testing.T) {
	fake := &fakeExec{failOn: "bwa"}
	g := &Generator{Exec: fake, Log: testLog()}

	_, err := g.Generate(context.Background(), Options{
		Reference: "ref.fa", OutputDir: t.TempDir(), SampleName: "s",
		Depth: 10, MutationRate: 0.5, ReadLen: 50,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aligning reads")
	assert.Contains(t, err.Error(), "tool blew up")
	assert.Len(t, fake.cmds, 2) // nothing after the failing step
}
