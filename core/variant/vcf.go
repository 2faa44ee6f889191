// core/variant/vcf.go
package variant

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"bamboozler-core/fasta"
)

// isVCF recognizes the variant source formats that carry VCF content.
func isVCF(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".vcf") || strings.HasSuffix(lower, ".vcf.gz")
}

// snv is a single-nucleotide variant destined for a BAMSurgeon varfile line.
type snv struct {
	chrom string
	pos   int
	alt   string
	vaf   float64
}

// readSNVs parses a VCF and returns its records as SNVs. Any record that is
// not a plain single-nucleotide substitution (indels, MNVs, multi-allelic
// sites, symbolic alleles) fails the conversion: silently dropping requested
// variants would misrepresent the run.
func readSNVs(path string, vaf float64) ([]snv, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var out []snv
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) < 5 {
			return nil, fmt.Errorf("line %d: expected at least 5 VCF columns, got %d", lineNo, len(cols))
		}
		pos, err := strconv.Atoi(cols[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad POS %q", lineNo, cols[1])
		}
		ref, alt := cols[3], cols[4]
		if strings.Contains(alt, ",") {
			return nil, fmt.Errorf("line %d: multi-allelic site %q not convertible", lineNo, alt)
		}
		if len(ref) != 1 || len(alt) != 1 || !isBase(ref) || !isBase(alt) {
			return nil, fmt.Errorf("line %d: %s>%s is not a single-nucleotide substitution", lineNo, ref, alt)
		}
		out = append(out, snv{chrom: cols[0], pos: pos, alt: alt, vaf: vaf})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no usable variant records")
	}
	return out, nil
}

func isBase(s string) bool {
	switch strings.ToUpper(s) {
	case "A", "C", "G", "T":
		return true
	}
	return false
}

// writeVarfile renders SNVs in BAMSurgeon's per-variant text format:
// chrom, 1-based start, end, VAF, alternate base.
func writeVarfile(w *bufio.Writer, snvs []snv) error {
	for _, v := range snvs {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%g\t%s\n", v.chrom, v.pos, v.pos, v.vaf, v.alt); err != nil {
			return err
		}
	}
	return w.Flush()
}
