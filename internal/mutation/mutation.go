// Package mutation applies point mutations (substitutions, deletions and
// insertions) to DNA sequences. Positions are 0-based; every function
// returns a new sequence and leaves its input untouched.
package mutation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/inodb/vibe-translate/internal/dna"
)

var (
	// ErrNegativePosition reports a mutation position below zero.
	ErrNegativePosition = errors.New("negative position")
	// ErrOutOfRange reports a mutation position past the end of the sequence.
	ErrOutOfRange = errors.New("position out of range")
)

// Change substitutes the base at Pos.
type Change struct {
	Pos  int
	Base byte
}

// Insertion inserts Base immediately before the original base at Pos.
type Insertion struct {
	Pos  int
	Base byte
}

func upperBase(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// ApplyChanges substitutes bases one change at a time in list order, so a
// later change at a repeated position overrides an earlier one.
func ApplyChanges(seq string, changes []Change) (string, error) {
	out := []byte(seq)
	for _, c := range changes {
		if c.Pos < 0 || c.Pos >= len(out) {
			return "", fmt.Errorf("%w: change at %d for a sequence of %d bp", ErrOutOfRange, c.Pos, len(out))
		}
		if !dna.IsNucleotideValid(c.Base) {
			return "", fmt.Errorf("%w %q for change at %d", dna.ErrInvalidNucleotide, c.Base, c.Pos)
		}
		out[c.Pos] = upperBase(c.Base)
	}
	return string(out), nil
}

// ApplyDeletions removes the bases at the given positions. Positions are
// deduplicated and refer to the original sequence, so their order does not
// matter.
func ApplyDeletions(seq string, positions []int) (string, error) {
	if len(positions) == 0 {
		return seq, nil
	}

	sorted := dedupePositions(positions)
	if sorted[0] < 0 {
		return "", fmt.Errorf("%w: deletion at %d", ErrNegativePosition, sorted[0])
	}
	for _, pos := range sorted {
		if pos >= len(seq) {
			return "", fmt.Errorf("%w: deletion at %d for a sequence of %d bp", ErrOutOfRange, pos, len(seq))
		}
	}

	var b strings.Builder
	b.Grow(len(seq) - len(sorted))
	prev := 0
	for _, pos := range sorted {
		b.WriteString(seq[prev:pos])
		prev = pos + 1
	}
	b.WriteString(seq[prev:])
	return b.String(), nil
}

// ApplyInsertions inserts each base immediately before the original base at
// its position. Duplicate (position, base) pairs are applied once and
// insertions are applied in ascending position order. Only the first
// insertion may target the end of the sequence.
func ApplyInsertions(seq string, insertions []Insertion) (string, error) {
	if len(insertions) == 0 {
		return seq, nil
	}

	sorted := dedupeInsertions(insertions)
	if sorted[0].Pos < 0 {
		return "", fmt.Errorf("%w: insertion at %d", ErrNegativePosition, sorted[0].Pos)
	}
	if sorted[0].Pos > len(seq) {
		return "", fmt.Errorf("%w: insertion at %d for a sequence of %d bp", ErrOutOfRange, sorted[0].Pos, len(seq))
	}
	for i, ins := range sorted {
		if i > 0 && ins.Pos >= len(seq) {
			return "", fmt.Errorf("%w: insertion at %d for a sequence of %d bp", ErrOutOfRange, ins.Pos, len(seq))
		}
		if !dna.IsNucleotideValid(ins.Base) {
			return "", fmt.Errorf("%w %q for insertion at %d", dna.ErrInvalidNucleotide, ins.Base, ins.Pos)
		}
	}

	var b strings.Builder
	b.Grow(len(seq) + len(sorted))
	prev := 0
	for _, ins := range sorted {
		b.WriteString(seq[prev:ins.Pos])
		b.WriteByte(upperBase(ins.Base))
		prev = ins.Pos
	}
	b.WriteString(seq[prev:])
	return b.String(), nil
}

func dedupePositions(positions []int) []int {
	seen := make(map[int]bool, len(positions))
	out := make([]int, 0, len(positions))
	for _, p := range positions {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	sort.Ints(out)
	return out
}

func dedupeInsertions(insertions []Insertion) []Insertion {
	seen := make(map[Insertion]bool, len(insertions))
	out := make([]Insertion, 0, len(insertions))
	for _, ins := range insertions {
		key := Insertion{Pos: ins.Pos, Base: upperBase(ins.Base)}
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pos != out[j].Pos {
			return out[i].Pos < out[j].Pos
		}
		return out[i].Base < out[j].Base
	})
	return out
}
