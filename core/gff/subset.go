// core/gff/subset.go
// Package gff filters GFF/GTF annotation files by feature type and gene name.
package gff

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Filter selects annotation lines. Empty fields match everything.
type Filter struct {
	// Feature matches column 3 (the feature type), case-insensitive.
	Feature string
	// Gene matches as a case-insensitive substring of column 9 (attributes).
	Gene string
}

// Subset copies the annotation lines of r that pass f to w. Comment lines
// (leading '#') are always preserved; lines with fewer than nine columns are
// dropped. It returns the number of feature lines kept.
func Subset(r io.Reader, w io.Writer, f Filter) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	bw := bufio.NewWriter(w)

	kept := 0
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			if _, err := bw.WriteString(line + "\n"); err != nil {
				return kept, err
			}
			continue
		}
		cols := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
		if len(cols) < 9 {
			continue
		}
		if f.Feature != "" && !strings.EqualFold(cols[2], f.Feature) {
			continue
		}
		if f.Gene != "" && !strings.Contains(strings.ToLower(cols[8]), strings.ToLower(f.Gene)) {
			continue
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return kept, err
		}
		kept++
	}
	if err := sc.Err(); err != nil {
		return kept, err
	}
	return kept, bw.Flush()
}

// SubsetFile filters the annotation at in into out.
func SubsetFile(in, out string, f Filter) (int, error) {
	src, err := os.Open(in)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	dst, err := os.Create(out)
	if err != nil {
		return 0, err
	}
	kept, serr := Subset(src, dst, f)
	if cerr := dst.Close(); serr == nil {
		serr = cerr
	}
	return kept, serr
}
