package output

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/inodb/vibe-translate/internal/report"
)

// TableWriter renders a side-by-side summary of the original and mutated
// sequences.
type TableWriter struct {
	table *tablewriter.Table
}

// NewTableWriter creates a table writer.
func NewTableWriter(w io.Writer) *TableWriter {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"", "Original", "Mutated"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return &TableWriter{table: table}
}

// Write appends the report rows. The table is rendered by Flush.
func (tw *TableWriter) Write(r *report.Report) error {
	orig, mut := r.Original, r.Mutated
	rows := [][]string{
		{"Strand", string(r.Strand), string(r.Strand)},
		{"Length (bp)", strconv.Itoa(len(orig.Sequence)), strconv.Itoa(len(mut.Sequence))},
		{"Translation start", startCell(r, orig), startCell(r, mut)},
		{"Protein size", strconv.Itoa(orig.Size()), strconv.Itoa(mut.Size())},
		{"Gene length (bp)", strconv.Itoa(orig.GeneLength()), strconv.Itoa(mut.GeneLength())},
		{"Stop codon", yesNo(orig.Protein.HasStop()), yesNo(mut.Protein.HasStop())},
		{"Protein", dashIfEmpty(orig.Protein.Short()), dashIfEmpty(mut.Protein.Short())},
	}
	if r.Effect != nil {
		rows = append(rows, []string{"Effect", "-", effectCell(r.Effect)})
	}
	tw.table.AppendBulk(rows)
	return nil
}

// Flush renders the table.
func (tw *TableWriter) Flush() error {
	tw.table.Render()
	return nil
}

func startCell(r *report.Report, s report.StrandResult) string {
	if !s.HasStart {
		return "-"
	}
	return strconv.Itoa(r.DisplayStart(s))
}

func effectCell(e *report.Effect) string {
	if e.HGVSp == "" {
		return e.Consequence
	}
	return e.Consequence + " " + e.HGVSp
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
