package translate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/inodb/vibe-translate/internal/dna"
)

// ErrInvalidCodon reports a 3-base window missing from the codon table.
var ErrInvalidCodon = errors.New("invalid codon")

const codonLength = 3

// Protein is an ordered chain of three-letter amino acid codes. When
// translation hit a stop codon, Stop is the last element.
type Protein []string

// HasStop returns true if the protein ends with a stop codon.
func (p Protein) HasStop() bool {
	return len(p) > 0 && p[len(p)-1] == Stop
}

// Size returns the number of residues, not counting a trailing Stop.
func (p Protein) Size() int {
	if p.HasStop() {
		return len(p) - 1
	}
	return len(p)
}

// String joins the amino acid codes with hyphens, e.g. "Met-Arg-Stop".
func (p Protein) String() string {
	return strings.Join(p, "-")
}

// Short returns the single-letter rendering, with '*' for Stop.
func (p Protein) Short() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, aa := range p {
		if single, ok := AminoAcidThreeToSingle[aa]; ok {
			b.WriteByte(single)
		} else {
			b.WriteByte('X')
		}
	}
	return b.String()
}

// FindStartCodon returns the index of the first "ATG" in seq. The search is
// a literal substring match, so the index need not be a multiple of 3.
// ok is false when seq contains no start codon.
func FindStartCodon(seq string) (idx int, ok bool) {
	idx = strings.Index(seq, StartCodon)
	if idx < 0 {
		return 0, false
	}
	return idx, true
}

// Translate translates seq starting at its first start codon until a stop
// codon or until fewer than 3 bases remain. A sequence without a start
// codon yields an empty protein and no error.
func Translate(seq string) (Protein, error) {
	protein := Protein{}

	start, ok := FindStartCodon(seq)
	if !ok {
		return protein, nil
	}

	if !dna.IsSequenceValid(seq) {
		return nil, fmt.Errorf("%w: only A, T, C, G are allowed", dna.ErrInvalidSequence)
	}

	for i := start; i+codonLength <= len(seq); i += codonLength {
		codon := seq[i : i+codonLength]
		aa, ok := TranslateCodon(codon)
		if !ok {
			return nil, fmt.Errorf("%w %q at position %d", ErrInvalidCodon, codon, i+1)
		}

		protein = append(protein, aa)

		if aa == Stop {
			break
		}
	}

	return protein, nil
}
