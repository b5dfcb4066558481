package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/inodb/vibe-translate/internal/dna"
	"github.com/inodb/vibe-translate/internal/report"
)

type yamlStrand struct {
	DNA              string   `yaml:"dna"`
	RNA              string   `yaml:"rna"`
	Partner          string   `yaml:"partner"`
	TranslationStart *int     `yaml:"translation_start"`
	ProteinSize      int      `yaml:"protein_size"`
	GeneLength       int      `yaml:"gene_length"`
	Stop             bool     `yaml:"stop"`
	Protein          []string `yaml:"protein"`
}

type yamlEffect struct {
	Consequence     string `yaml:"consequence"`
	Impact          string `yaml:"impact"`
	ProteinPosition int    `yaml:"protein_position,omitempty"`
	HGVSp           string `yaml:"hgvsp,omitempty"`
}

type yamlReport struct {
	Strand     string      `yaml:"strand"`
	StartIndex int         `yaml:"start_index"`
	Mutations  int         `yaml:"mutations"`
	Changed    bool        `yaml:"changed"`
	Original   yamlStrand  `yaml:"original"`
	Mutated    yamlStrand  `yaml:"mutated"`
	Effect     *yamlEffect `yaml:"effect,omitempty"`
}

// YAMLWriter writes reports as YAML documents.
type YAMLWriter struct {
	enc *yaml.Encoder
}

// NewYAMLWriter creates a YAML writer.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &YAMLWriter{enc: enc}
}

// Write encodes one report.
func (yw *YAMLWriter) Write(r *report.Report) error {
	doc := yamlReport{
		Strand:     string(r.Strand),
		StartIndex: r.StartIndex,
		Mutations:  r.Mutations,
		Changed:    r.Changed(),
		Original:   toYAMLStrand(r, r.Original),
		Mutated:    toYAMLStrand(r, r.Mutated),
	}
	if e := r.Effect; e != nil {
		doc.Effect = &yamlEffect{
			Consequence:     e.Consequence,
			Impact:          e.Impact,
			ProteinPosition: e.ProteinPosition,
			HGVSp:           e.HGVSp,
		}
	}
	if err := yw.enc.Encode(doc); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// Flush closes the encoder, writing any buffered output.
func (yw *YAMLWriter) Flush() error {
	return yw.enc.Close()
}

func toYAMLStrand(r *report.Report, s report.StrandResult) yamlStrand {
	ys := yamlStrand{
		DNA:         s.Sequence,
		RNA:         dna.RNA(s.Sequence),
		Partner:     s.Partner,
		ProteinSize: s.Size(),
		GeneLength:  s.GeneLength(),
		Stop:        s.Protein.HasStop(),
		Protein:     []string(s.Protein),
	}
	if s.HasStart {
		start := r.DisplayStart(s)
		ys.TranslationStart = &start
	}
	if ys.Protein == nil {
		ys.Protein = []string{}
	}
	return ys
}
