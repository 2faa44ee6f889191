// internal/downloadapp/app_test.go
package downloadapp

import (
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFetch pretends to be the Ensembl mirror: it writes a small gzipped
// chromosome to dest and records the URL it was asked for.
type stubFetch struct {
	urls []string
	body string
	err  error
}

func (s *stubFetch) fetch(_ context.Context, url, dest string) (int64, error) {
	s.urls = append(s.urls, url)
	if s.err != nil {
		return 0, s.err
	}
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte(s.body)); err != nil {
		return 0, err
	}
	if err := gz.Close(); err != nil {
		return 0, err
	}
	if err := os.WriteFile(dest, buf.Bytes(), 0o644); err != nil {
		return 0, err
	}
	return int64(buf.Len()), nil
}

func TestRunDownloadsAndSlices(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "slice.fa")
	stub := &stubFetch{body: ">1 dna:chromosome\nACGTACGTACGT\n"}

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{
		"--species", "human", "--build", "hg38", "--chromosome", "chr1",
		"--start", "3", "--end", "6", "--output", out,
	}, &stdout, &stderr, stub.fetch)
	require.Equal(t, 0, code, stderr.String())

	require.Len(t, stub.urls, 1)
	assert.Equal(t, "https://ftp.ensembl.org/pub/current_fasta/homo_sapiens/dna/Homo_sapiens.GRCh38.dna.chromosome.1.fa.gz", stub.urls[0])

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, ">1:3-6 (human, hg38)\nGTAC\n", string(data))
}

func TestRunReusesLocalCopy(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "slice.fa")
	stub := &stubFetch{body: ">1\nACGT\n"}

	argv := []string{
		"--species", "human", "--build", "hg38", "--chromosome", "1",
		"--start", "1", "--end", "2", "--output", out,
	}
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run(context.Background(), argv, &stdout, &stderr, stub.fetch))
	require.Equal(t, 0, run(context.Background(), argv, &stdout, &stderr, stub.fetch))
	assert.Len(t, stub.urls, 1) // second run hit the cache

	code := run(context.Background(), append(argv, "--force-download"), &stdout, &stderr, stub.fetch)
	require.Equal(t, 0, code)
	assert.Len(t, stub.urls, 2)
}

func TestRunUsageError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--species", "human"}, &stdout, &stderr, (&stubFetch{}).fetch)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "--build")
}

func TestRunFetchFailure(t *testing.T) {
	out := filepath.Join(t.TempDir(), "slice.fa")
	stub := &stubFetch{err: os.ErrDeadlineExceeded}

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{
		"--species", "human", "--build", "hg38", "--chromosome", "1",
		"--output", out,
	}, &stdout, &stderr, stub.fetch)
	assert.Equal(t, 1, code)
}

func TestRunRegionOutOfRange(t *testing.T) {
	out := filepath.Join(t.TempDir(), "slice.fa")
	stub := &stubFetch{body: ">1\nACGT\n"}

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{
		"--species", "human", "--build", "hg38", "--chromosome", "1",
		"--start", "100", "--end", "200", "--output", out,
	}, &stdout, &stderr, stub.fetch)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "out of range")
}
