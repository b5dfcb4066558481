// Package report runs the full translation pipeline for one sequence:
// normalization, validation, mutation, strand selection and translation
// of both the original and the mutated sequence.
package report

import (
	"fmt"

	"github.com/inodb/vibe-translate/internal/translate"
)

// Strand selects which strand is read to produce the protein.
type Strand string

const (
	StrandCoding   Strand = "coding"
	StrandTemplate Strand = "template"
)

// ParseStrand parses a strand name.
func ParseStrand(s string) (Strand, error) {
	switch Strand(s) {
	case StrandCoding, StrandTemplate:
		return Strand(s), nil
	default:
		return "", fmt.Errorf("unknown strand %q (expected %q or %q)", s, StrandCoding, StrandTemplate)
	}
}

// StrandResult holds the translation of one version of the sequence.
type StrandResult struct {
	Sequence string            // strand that was translated
	Partner  string            // base-pairing strand, same orientation
	Protein  translate.Protein // may be empty
	Start    int               // 0-based index of the start codon
	HasStart bool              // false when no ATG was found
}

// Size returns the protein length in residues, excluding a trailing Stop.
func (s StrandResult) Size() int {
	return s.Protein.Size()
}

// GeneLength returns the coding length in bp implied by the protein size.
func (s StrandResult) GeneLength() int {
	return s.Size() * 3
}

// Report is the outcome of analyzing one sequence and its mutations.
type Report struct {
	Strand     Strand
	StartIndex int // user-facing number of the first base
	Mutations  int // number of requested mutations
	Original   StrandResult
	Mutated    StrandResult
	Effect     *Effect // nil when nothing changed or nothing was translated
}

// Changed returns true if the mutations altered the translated sequence.
func (r *Report) Changed() bool {
	return r.Mutated.Sequence != r.Original.Sequence
}

// DisplayStart converts a 0-based start codon index to the user-facing
// position numbered from StartIndex.
func (r *Report) DisplayStart(s StrandResult) int {
	return s.Start + r.StartIndex
}
