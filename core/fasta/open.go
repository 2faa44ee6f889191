// core/fasta/open.go
package fasta

import (
	"compress/gzip"
	"io"
	"os"
	"strings"
)

type gzipReadCloser struct {
	io.Reader
	gz   io.Closer
	file io.Closer
}

func (g *gzipReadCloser) Close() error {
	err := g.gz.Close()
	if ferr := g.file.Close(); err == nil {
		err = ferr
	}
	return err
}

// Open returns a reader for path, transparently decompressing gzip input.
// Gzip is detected by magic number (1F 8B) as well as a .gz suffix, and "-"
// means stdin.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &gzipReadCloser{Reader: gr, gz: gr, file: fh}, nil
	}
	return fh, nil
}
