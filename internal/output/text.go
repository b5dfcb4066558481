package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/inodb/vibe-translate/internal/report"
)

const blockSize = 10

// TextWriter writes a human-readable report.
type TextWriter struct {
	w       *bufio.Writer
	heading lipgloss.Style
	warning lipgloss.Style
}

// NewTextWriter creates a text writer. Styling is dropped when w is not a
// terminal.
func NewTextWriter(w io.Writer) *TextWriter {
	r := lipgloss.NewRenderer(w)
	return &TextWriter{
		w:       bufio.NewWriter(w),
		heading: r.NewStyle().Bold(true),
		warning: r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// Write writes the report for the original and, when changed, the mutated
// sequence.
func (tw *TextWriter) Write(r *report.Report) error {
	orig := r.Original
	bar := strings.Repeat("=", 25)
	tw.printf("\n%s\n", tw.heading.Render(fmt.Sprintf("%s Results for sequence of %d bp %s", bar, len(orig.Sequence), bar)))

	if len(orig.Protein) == 0 {
		tw.printf("No protein sequence could be translated from the original DNA sequence.\n")
		return nil
	}

	tw.printf("\nOriginal DNA Sequence (%s strand): %s\n", r.Strand, Blocks(orig.Sequence, blockSize))
	tw.printf("\nOriginal DNA Sequence (%s strand): %s\n", partnerStrand(r.Strand), Blocks(orig.Partner, blockSize))
	tw.printf("\nInitial Protein Sequence: %s\n", orig.Protein)
	tw.strandSummary(r, orig, "original")

	mut := r.Mutated
	if len(mut.Protein) == 0 {
		tw.printf("No protein sequence could be translated from the mutated DNA sequence.\n")
		tw.effect(r)
		return nil
	}
	if !r.Changed() {
		tw.printf("No mutations were applied to the original sequence.\n")
		return nil
	}

	tw.printf("\nMutated DNA Sequence: %s\n", Blocks(mut.Sequence, blockSize))
	tw.printf("\nMutated Protein Sequence: %s\n", mut.Protein)
	tw.strandSummary(r, mut, "mutated")
	tw.effect(r)
	return nil
}

func (tw *TextWriter) effect(r *report.Report) {
	if r.Effect == nil {
		return
	}
	line := fmt.Sprintf("Predicted effect: %s (%s)", r.Effect.Consequence, r.Effect.Impact)
	if r.Effect.HGVSp != "" {
		line += " " + r.Effect.HGVSp
	}
	tw.printf("%s\n", tw.heading.Render(line))
}

func (tw *TextWriter) strandSummary(r *report.Report, s report.StrandResult, label string) {
	tw.printf("Size: %d\n", s.Size())
	if !s.HasStart {
		tw.printf("No start codon found in the %s sequence.\n", label)
	} else {
		tw.printf("Translation starts at position %d for a gene of %d bp\n\n", r.DisplayStart(s), s.GeneLength())
	}
	if !s.Protein.HasStop() {
		tw.printf("%s\n\n", tw.warning.Render("Warning: The sequence does not end with a stop codon!"))
	}
}

func (tw *TextWriter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(tw.w, format, args...)
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TextWriter) Flush() error {
	return tw.w.Flush()
}

func partnerStrand(s report.Strand) report.Strand {
	if s == report.StrandTemplate {
		return report.StrandCoding
	}
	return report.StrandTemplate
}
