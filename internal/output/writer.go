// Package output provides report output formatters.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/inodb/vibe-translate/internal/report"
)

// Writer writes translation reports.
type Writer interface {
	Write(r *report.Report) error
	Flush() error
}

// Format names accepted by NewWriter.
const (
	FormatText  = "text"
	FormatTab   = "tab"
	FormatTable = "table"
	FormatYAML  = "yaml"
)

var writers = map[string]func(io.Writer) Writer{
	FormatText:  func(w io.Writer) Writer { return NewTextWriter(w) },
	FormatTab:   func(w io.Writer) Writer { return NewTabWriter(w) },
	FormatTable: func(w io.Writer) Writer { return NewTableWriter(w) },
	FormatYAML:  func(w io.Writer) Writer { return NewYAMLWriter(w) },
}

// Formats returns the supported format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CheckFormat returns an error if no writer is registered for format.
func CheckFormat(format string) error {
	if _, ok := writers[format]; !ok {
		return fmt.Errorf("unknown output format %q (expected one of %s)", format, strings.Join(Formats(), ", "))
	}
	return nil
}

// NewWriter returns the writer registered for format.
func NewWriter(format string, w io.Writer) (Writer, error) {
	if err := CheckFormat(format); err != nil {
		return nil, err
	}
	return writers[format](w), nil
}

// Blocks splits seq into space-separated blocks of size bases.
func Blocks(seq string, size int) string {
	if size <= 0 || len(seq) <= size {
		return seq
	}
	parts := make([]string, 0, (len(seq)+size-1)/size)
	for i := 0; i < len(seq); i += size {
		end := min(i+size, len(seq))
		parts = append(parts, seq[i:end])
	}
	return strings.Join(parts, " ")
}
