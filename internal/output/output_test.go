package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/inodb/vibe-translate/internal/mutation"
	"github.com/inodb/vibe-translate/internal/report"
)

func analyze(t *testing.T, raw string, muts mutation.Set) *report.Report {
	t.Helper()
	rep, err := report.NewAnalyzer().Analyze(raw, muts)
	require.NoError(t, err)
	return rep
}

func TestBlocks(t *testing.T) {
	tests := []struct {
		seq  string
		want string
	}{
		{"", ""},
		{"ATG", "ATG"},
		{"ATGCGTTAGC", "ATGCGTTAGC"},
		{"ATGCGTTAGCA", "ATGCGTTAGC A"},
		{"AAAAAAAAAACCCCCCCCCCGG", "AAAAAAAAAA CCCCCCCCCC GG"},
	}

	for _, tt := range tests {
		t.Run(tt.seq, func(t *testing.T) {
			assert.Equal(t, tt.want, Blocks(tt.seq, 10))
		})
	}
}

func TestNewWriter(t *testing.T) {
	for _, f := range Formats() {
		w, err := NewWriter(f, &bytes.Buffer{})
		require.NoError(t, err, f)
		assert.NotNil(t, w)
	}

	_, err := NewWriter("json", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text, yaml")
}

func TestTextWriter_NoMutations(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)

	require.NoError(t, w.Write(analyze(t, "ATGGGTCGATAA", mutation.Set{})))
	require.NoError(t, w.Flush())

	out := buf.String()
	assert.Contains(t, out, "Results for sequence of 12 bp")
	assert.Contains(t, out, "Original DNA Sequence (coding strand): ATGGGTCGAT AA")
	assert.Contains(t, out, "Original DNA Sequence (template strand): TACCCAGCTA TT")
	assert.Contains(t, out, "Initial Protein Sequence: Met-Gly-Arg-Stop")
	assert.Contains(t, out, "Size: 3")
	assert.Contains(t, out, "Translation starts at position 1 for a gene of 9 bp")
	assert.Contains(t, out, "No mutations were applied to the original sequence.")
	assert.NotContains(t, out, "Warning")
}

func TestTextWriter_Mutated(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)

	muts, err := mutation.ParseSet("", "4", "", 1)
	require.NoError(t, err)
	require.NoError(t, w.Write(analyze(t, "ATGCGTTAA", muts)))
	require.NoError(t, w.Flush())

	out := buf.String()
	assert.Contains(t, out, "Mutated DNA Sequence: ATGGTTAA")
	assert.Contains(t, out, "Predicted effect: frameshift_variant (HIGH) p.Arg2Valfs")
	assert.Contains(t, out, "Mutated Protein Sequence: Met-Val\n")
	assert.Contains(t, out, "Warning: The sequence does not end with a stop codon!")
	assert.NotContains(t, out, "No mutations were applied")
}

func TestTextWriter_TemplateStrandLabels(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)

	a := report.NewAnalyzer()
	a.SetStrand(report.StrandTemplate)
	rep, err := a.Analyze("TACGCAATT", mutation.Set{})
	require.NoError(t, err)
	require.NoError(t, w.Write(rep))
	require.NoError(t, w.Flush())

	out := buf.String()
	assert.Contains(t, out, "Original DNA Sequence (template strand): ATGCGTTAA")
	assert.Contains(t, out, "Original DNA Sequence (coding strand): TACGCAATT")
	assert.Contains(t, out, "Initial Protein Sequence: Met-Arg-Stop")
}

func TestTextWriter_MissingStop(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)

	require.NoError(t, w.Write(analyze(t, "ATGCGT", mutation.Set{})))
	require.NoError(t, w.Flush())

	assert.Contains(t, buf.String(), "Warning: The sequence does not end with a stop codon!")
}

func TestTextWriter_NoProtein(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)

	require.NoError(t, w.Write(analyze(t, "CCCGGG", mutation.Set{})))
	require.NoError(t, w.Flush())

	out := buf.String()
	assert.Contains(t, out, "No protein sequence could be translated from the original DNA sequence.")
	assert.NotContains(t, out, "Initial Protein Sequence")
}

func TestTextWriter_MutatedLosesStart(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)

	muts, err := mutation.ParseSet("1 T", "", "", 1)
	require.NoError(t, err)
	require.NoError(t, w.Write(analyze(t, "ATGCGTTAA", muts)))
	require.NoError(t, w.Flush())

	assert.Contains(t, buf.String(), "No protein sequence could be translated from the mutated DNA sequence.")
	assert.Contains(t, buf.String(), "Predicted effect: start_lost (HIGH) p.Met1?")
}

func TestTabWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewTabWriter(&buf)

	muts, err := mutation.ParseSet("5 A", "", "", 1)
	require.NoError(t, err)
	require.NoError(t, w.Write(analyze(t, "ATGCGTTAA", muts)))
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "#Sequence\t"))

	orig := strings.Split(lines[1], "\t")
	require.Len(t, orig, 14)
	assert.Equal(t, []string{
		"original", "coding", "9", "1", "2", "6", "YES",
		"Met-Arg-Stop", "MR*", "ATGCGTTAA", "AUGCGUUAA", "-", "-", "-",
	}, orig)

	mut := strings.Split(lines[2], "\t")
	require.Len(t, mut, 14)
	assert.Equal(t, "mutated", mut[0])
	assert.Equal(t, "Met-His-Stop", mut[7])
	assert.Equal(t, []string{"missense_variant", "MODERATE", "p.Arg2His"}, mut[11:])
}

func TestTabWriter_NoStart(t *testing.T) {
	var buf bytes.Buffer
	w := NewTabWriter(&buf)

	require.NoError(t, w.Write(analyze(t, "CCCGGG", mutation.Set{})))
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	fields := strings.Split(lines[1], "\t")
	assert.Equal(t, "-", fields[3])
	assert.Equal(t, "NO", fields[6])
	assert.Equal(t, "-", fields[7])
}

func TestTableWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewTableWriter(&buf)

	muts, err := mutation.ParseSet("5 A", "", "", 1)
	require.NoError(t, err)
	require.NoError(t, w.Write(analyze(t, "ATGCGTTAA", muts)))
	require.NoError(t, w.Flush())

	out := buf.String()
	assert.Contains(t, out, "ORIGINAL")
	assert.Contains(t, out, "MUTATED")
	assert.Contains(t, out, "MR*")
	assert.Contains(t, out, "MH*")
	assert.Contains(t, out, "Translation start")
	assert.Contains(t, out, "missense_variant p.Arg2His")
}

func TestYAMLWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewYAMLWriter(&buf)

	require.NoError(t, w.Write(analyze(t, "CCATGCGT", mutation.Set{})))
	require.NoError(t, w.Flush())

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "coding", got["strand"])
	assert.Equal(t, false, got["changed"])

	orig, ok := got["original"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "CCATGCGT", orig["dna"])
	assert.Equal(t, "CCAUGCGU", orig["rna"])
	assert.Equal(t, 3, orig["translation_start"])
	assert.Equal(t, []any{"Met", "Arg"}, orig["protein"])
	assert.NotContains(t, got, "effect")
}

func TestYAMLWriter_Effect(t *testing.T) {
	var buf bytes.Buffer
	w := NewYAMLWriter(&buf)

	muts, err := mutation.ParseSet("4 T", "", "", 1)
	require.NoError(t, err)
	require.NoError(t, w.Write(analyze(t, "ATGCGATAA", muts)))
	require.NoError(t, w.Flush())

	var got struct {
		Changed bool `yaml:"changed"`
		Effect  struct {
			Consequence     string `yaml:"consequence"`
			Impact          string `yaml:"impact"`
			ProteinPosition int    `yaml:"protein_position"`
			HGVSp           string `yaml:"hgvsp"`
		} `yaml:"effect"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.True(t, got.Changed)
	assert.Equal(t, "stop_gained", got.Effect.Consequence)
	assert.Equal(t, "HIGH", got.Effect.Impact)
	assert.Equal(t, 2, got.Effect.ProteinPosition)
	assert.Equal(t, "p.Arg2Ter", got.Effect.HGVSp)
}

func TestYAMLWriter_NoStart(t *testing.T) {
	var buf bytes.Buffer
	w := NewYAMLWriter(&buf)

	require.NoError(t, w.Write(analyze(t, "CCC", mutation.Set{})))
	require.NoError(t, w.Flush())

	assert.Contains(t, buf.String(), "translation_start: null")
	assert.Contains(t, buf.String(), "protein: []")
}
