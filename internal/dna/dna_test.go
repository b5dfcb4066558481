package dna

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNucleotideValid(t *testing.T) {
	tests := []struct {
		base byte
		want bool
	}{
		{'A', true},
		{'T', true},
		{'C', true},
		{'G', true},
		{'g', true},
		{'U', false},
		{'N', false},
		{'X', false},
		{' ', false},
	}

	for _, tt := range tests {
		t.Run(string(tt.base), func(t *testing.T) {
			assert.Equal(t, tt.want, IsNucleotideValid(tt.base))
		})
	}
}

func TestIsSequenceValid(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want bool
	}{
		{"valid", "ATGCGT", true},
		{"lowercase", "atgcgt", true},
		{"empty", "", true},
		{"invalid char", "ATGX", false},
		{"ambiguity code", "ATGN", false},
		{"whitespace", "ATG CGT", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSequenceValid(tt.seq))
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"atg cgt", "ATGCGT"},
		{"AUG", "ATG"},
		{"  A uuuu tgcg    ", "ATTTTTGCG"},
		{"atg\tcgt\nTAA", "ATGCGTTAA"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.raw))
		})
	}
}

func TestFormat_Idempotent(t *testing.T) {
	for _, raw := range []string{"atg cgt", "  A uuuu tgcg    ", "xyz u", ""} {
		once := Format(raw)
		assert.Equal(t, once, Format(once), "Format(%q)", raw)
	}
}

func TestRNA(t *testing.T) {
	assert.Equal(t, "AUGCGU", RNA("ATGCGT"))
	assert.Equal(t, "", RNA(""))
	assert.Equal(t, "GCGC", RNA("GCGC"))
}

func TestComplement(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want string
	}{
		{"not reversed", "ATGCGT", "TACGCA"},
		{"single base", "A", "T"},
		{"poly-A", "AAAA", "TTTT"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Complement(tt.seq)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComplement_Involution(t *testing.T) {
	for _, seq := range []string{"ATGCGT", "GGGTTTAAACCC", "TAG", ""} {
		once, err := Complement(seq)
		require.NoError(t, err)
		twice, err := Complement(once)
		require.NoError(t, err)
		assert.Equal(t, seq, twice)
	}
}

func TestComplement_InvalidBase(t *testing.T) {
	_, err := Complement("ATGN")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidNucleotide)
	assert.Contains(t, err.Error(), "position 4")

	// Lowercase input must be formatted first.
	_, err = Complement("atg")
	assert.ErrorIs(t, err, ErrInvalidNucleotide)
}
