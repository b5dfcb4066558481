package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/inodb/vibe-translate/internal/dna"
	"github.com/inodb/vibe-translate/internal/report"
)

// TabWriter writes reports in tab-delimited format, one row per sequence
// version.
type TabWriter struct {
	w             *bufio.Writer
	columns       []string
	headerWritten bool
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Sequence",
			"Strand",
			"Length",
			"Translation_start",
			"Protein_size",
			"Gene_length",
			"Stop",
			"Protein",
			"Protein_short",
			"DNA",
			"RNA",
			"Consequence",
			"IMPACT",
			"HGVSp",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	tw.headerWritten = true
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes the original row and, when the mutations changed the
// sequence, the mutated row. The header is written on first use.
func (tw *TabWriter) Write(r *report.Report) error {
	if !tw.headerWritten {
		if err := tw.WriteHeader(); err != nil {
			return err
		}
	}
	if err := tw.writeRow(r, "original", r.Original, nil); err != nil {
		return err
	}
	if !r.Changed() {
		return nil
	}
	return tw.writeRow(r, "mutated", r.Mutated, r.Effect)
}

func (tw *TabWriter) writeRow(r *report.Report, label string, s report.StrandResult, e *report.Effect) error {
	start := "-"
	if s.HasStart {
		start = strconv.Itoa(r.DisplayStart(s))
	}

	stop := "NO"
	if s.Protein.HasStop() {
		stop = "YES"
	}

	protein := s.Protein.String()
	short := s.Protein.Short()
	if protein == "" {
		protein, short = "-", "-"
	}

	seq, rna := s.Sequence, dna.RNA(s.Sequence)
	if seq == "" {
		seq, rna = "-", "-"
	}

	consequence, impact, hgvsp := "-", "-", "-"
	if e != nil {
		consequence, impact = e.Consequence, e.Impact
		if e.HGVSp != "" {
			hgvsp = e.HGVSp
		}
	}

	values := []string{
		label,
		string(r.Strand),
		strconv.Itoa(len(s.Sequence)),
		start,
		strconv.Itoa(s.Size()),
		strconv.Itoa(s.GeneLength()),
		stop,
		protein,
		short,
		seq,
		rna,
		consequence,
		impact,
		hgvsp,
	}

	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}
