// internal/ensembl/ensembl.go
// Package ensembl maps user-facing species/build names onto Ensembl's
// per-chromosome FASTA layout.
package ensembl

import (
	"fmt"
	"strings"
)

// User-convenience aliases; anything unlisted is passed through as-is.
var (
	speciesAliases = map[string]string{
		"human": "homo_sapiens",
		"mouse": "mus_musculus",
	}
	buildAliases = map[string]string{
		"hg38": "GRCh38",
		"hg19": "GRCh37",
	}
)

const baseURL = "https://ftp.ensembl.org/pub/current_fasta"

// Chromosome identifies one chromosome FASTA on the Ensembl FTP mirror.
type Chromosome struct {
	Species string // e.g. "human" or "homo_sapiens"
	Build   string // e.g. "hg38" or "GRCh38"
	Name    string // e.g. "1" or "chr1"
}

func (c Chromosome) species() string {
	s := strings.ToLower(c.Species)
	if mapped, ok := speciesAliases[s]; ok {
		return mapped
	}
	return s
}

func (c Chromosome) build() string {
	b := strings.ToLower(c.Build)
	if mapped, ok := buildAliases[b]; ok {
		return mapped
	}
	return c.Build
}

// Bare returns the chromosome name without any "chr" prefix; Ensembl files
// are named with bare chromosome numbers.
func (c Chromosome) Bare() string {
	return strings.TrimPrefix(c.Name, "chr")
}

// titledSpecies renders homo_sapiens as Homo_sapiens, Ensembl's file-name
// capitalization.
func (c Chromosome) titledSpecies() string {
	s := c.species()
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// FileName is the compressed FASTA file name for this chromosome, e.g.
// Homo_sapiens.GRCh38.dna.chromosome.1.fa.gz.
func (c Chromosome) FileName() string {
	return fmt.Sprintf("%s.%s.dna.chromosome.%s.fa.gz", c.titledSpecies(), c.build(), c.Bare())
}

// URL is the full download location on the Ensembl mirror.
func (c Chromosome) URL() string {
	return fmt.Sprintf("%s/%s/dna/%s", baseURL, c.species(), c.FileName())
}
