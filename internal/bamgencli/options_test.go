// internal/bamgencli/options_test.go
package bamgencli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refFile(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "ref.fa")
	require.NoError(t, os.WriteFile(p, []byte(">chr1\nACGT\n"), 0o644))
	return p
}

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet()
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseArgsDefaults(t *testing.T) {
	opt, err := parse(t, "--reference", refFile(t), "--sample-name", "s1")
	require.NoError(t, err)
	assert.Equal(t, 10000, opt.Depth)
	assert.Equal(t, 0.001, opt.MutationRate)
	assert.Equal(t, 100, opt.ReadLen)
	assert.False(t, opt.SeedSet)
}

func TestParseArgsSeedDetection(t *testing.T) {
	opt, err := parse(t, "--reference", refFile(t), "--sample-name", "s1", "--seed", "0")
	require.NoError(t, err)
	assert.True(t, opt.SeedSet) // an explicit 0 is still a seed
	assert.Equal(t, int64(0), opt.Seed)
}

func TestParseArgsMissingReference(t *testing.T) {
	_, err := parse(t, "--sample-name", "s1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--reference")
}

func TestParseArgsUnreadableReference(t *testing.T) {
	_, err := parse(t, "--reference", filepath.Join(t.TempDir(), "nope.fa"), "--sample-name", "s1")
	require.Error(t, err)
}

func TestParseArgsRangeChecks(t *testing.T) {
	ref := refFile(t)
	for _, argv := range [][]string{
		{"--reference", ref, "--sample-name", "s", "--depth", "0"},
		{"--reference", ref, "--sample-name", "s", "--mutation-rate", "1.5"},
		{"--reference", ref, "--sample-name", "s", "--read-length", "0"},
		{"--reference", ref, "--sample-name", "s", "--timeout", "-1s"},
	} {
		_, err := parse(t, argv...)
		require.Error(t, err, "%v", argv)
	}
}
