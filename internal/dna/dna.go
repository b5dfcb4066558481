// Package dna provides nucleotide validation, normalization and strand
// complementation for DNA sequences over the A/T/C/G alphabet.
package dna

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrInvalidNucleotide reports a base outside {A,T,C,G}.
	ErrInvalidNucleotide = errors.New("invalid nucleotide")
	// ErrInvalidSequence reports a sequence containing a base outside {A,T,C,G}.
	ErrInvalidSequence = errors.New("invalid DNA sequence")
)

// IsNucleotideValid returns true if b is one of A, T, C or G (any case).
func IsNucleotideValid(b byte) bool {
	switch b {
	case 'A', 'T', 'C', 'G', 'a', 't', 'c', 'g':
		return true
	default:
		return false
	}
}

// IsSequenceValid returns true if every base of seq passes IsNucleotideValid.
// An empty sequence is valid.
func IsSequenceValid(seq string) bool {
	for i := 0; i < len(seq); i++ {
		if !IsNucleotideValid(seq[i]) {
			return false
		}
	}
	return true
}

// Format removes all whitespace, uppercases the sequence and converts
// RNA uracil to thymine.
func Format(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		r = unicode.ToUpper(r)
		if r == 'U' {
			r = 'T'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// RNA returns the sequence with every T replaced by U, for display.
func RNA(seq string) string {
	return strings.ReplaceAll(seq, "T", "U")
}

// Complement returns the base-pairing partner strand of seq, read in the
// same left-to-right orientation (it is not reversed).
func Complement(seq string) (string, error) {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		c, ok := complementBase(seq[i])
		if !ok {
			return "", fmt.Errorf("%w %q at position %d", ErrInvalidNucleotide, seq[i], i+1)
		}
		out[i] = c
	}
	return string(out), nil
}

func complementBase(base byte) (byte, bool) {
	switch base {
	case 'A':
		return 'T', true
	case 'T':
		return 'A', true
	case 'G':
		return 'C', true
	case 'C':
		return 'G', true
	default:
		return 0, false
	}
}
