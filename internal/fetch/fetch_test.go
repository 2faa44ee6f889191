// internal/fetch/fetch_test.go
package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(">chr1\nACGT\n"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "ref.fa")
	n, err := Download(context.Background(), srv.URL, dest)
	require.NoError(t, err)
	assert.Equal(t, int64(11), n)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, ">chr1\nACGT\n", string(data))

	_, err = os.Stat(dest + ".part")
	assert.True(t, os.IsNotExist(err))
}

func TestDownloadHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := Download(context.Background(), srv.URL, filepath.Join(t.TempDir(), "x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.gff")
	require.NoError(t, os.WriteFile(src, []byte("##gff\n"), 0o644))

	dest := filepath.Join(dir, "dst.gff")
	n, err := CopyFile(src, dest)
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)
}
