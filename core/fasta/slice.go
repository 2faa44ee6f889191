// core/fasta/slice.go
// Package fasta reads FASTA files (plain or gzip) and extracts subsequence
// regions without holding whole chromosomes in memory.
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Region is a 1-based inclusive coordinate range on a named sequence.
// End == 0 means "through the end of the sequence".
type Region struct {
	Chrom string
	Start int
	End   int
}

func (r Region) String() string {
	if r.End == 0 {
		return fmt.Sprintf("%s:%d-", r.Chrom, r.Start)
	}
	return fmt.Sprintf("%s:%d-%d", r.Chrom, r.Start, r.End)
}

// matchesChrom tolerates a "chr" prefix on either side, so a request for "1"
// finds a record named "chr1" and vice versa.
func matchesChrom(recordID, chrom string) bool {
	a := strings.TrimPrefix(recordID, "chr")
	b := strings.TrimPrefix(chrom, "chr")
	return a == b
}

// ExtractRegion streams the FASTA at path and returns the bases of reg.
// The record ID is the first whitespace-delimited token of the header line.
// An error is returned if the sequence is absent or the region is empty or
// out of range.
func ExtractRegion(path string, reg Region) ([]byte, error) {
	if reg.Start < 1 {
		return nil, fmt.Errorf("region start must be ≥ 1, got %d", reg.Start)
	}
	if reg.End != 0 && reg.End < reg.Start {
		return nil, fmt.Errorf("region end %d precedes start %d", reg.End, reg.Start)
	}

	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return extractRegion(rc, reg)
}

func extractRegion(r io.Reader, reg Region) ([]byte, error) {
	sc := bufio.NewScanner(r)
	// Allow very long single-line sequences.
	const maxLine = 64 * 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		inTarget bool
		found    bool
		offset   int // 0-based bases consumed of the target record
		out      []byte
	)
	lo := reg.Start - 1 // 0-based inclusive
	hi := reg.End       // 0-based exclusive; 0 = unbounded

	for sc.Scan() {
		line := sc.Bytes()
		if len(line) > 0 && line[0] == '>' {
			if inTarget {
				break // left the target record
			}
			fields := bytes.Fields(line[1:])
			var id string
			if len(fields) > 0 {
				id = string(fields[0])
			}
			inTarget = matchesChrom(id, reg.Chrom)
			found = found || inTarget
			continue
		}
		if !inTarget {
			continue
		}
		line = bytes.TrimSpace(line)
		next := offset + len(line)
		if next > lo && (hi == 0 || offset < hi) {
			from := 0
			if lo > offset {
				from = lo - offset
			}
			to := len(line)
			if hi > 0 && hi < next {
				to = hi - offset
			}
			out = append(out, line[from:to]...)
		}
		offset = next
		if hi > 0 && offset >= hi {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("sequence %q not found", reg.Chrom)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("region %s is empty or out of range", reg)
	}
	return out, nil
}

// WriteRecord writes a single FASTA record. The sequence is emitted on one
// line, matching the slicing output this package produces.
func WriteRecord(w io.Writer, header string, seq []byte) error {
	if _, err := fmt.Fprintf(w, ">%s\n", header); err != nil {
		return err
	}
	if _, err := w.Write(seq); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
