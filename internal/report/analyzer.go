package report

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/inodb/vibe-translate/internal/dna"
	"github.com/inodb/vibe-translate/internal/mutation"
	"github.com/inodb/vibe-translate/internal/translate"
)

// Analyzer builds reports for raw DNA input.
type Analyzer struct {
	strand     Strand
	startIndex int
	logger     *zap.Logger
}

// NewAnalyzer creates an analyzer reading the coding strand with positions
// numbered from 1.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		strand:     StrandCoding,
		startIndex: mutation.DefaultStart,
		logger:     zap.NewNop(),
	}
}

// SetStrand configures which strand is translated.
func (a *Analyzer) SetStrand(s Strand) {
	a.strand = s
}

// SetStartIndex sets the user-facing number of the first base.
// Values below 1 are treated as 1.
func (a *Analyzer) SetStartIndex(start int) {
	a.startIndex = mutation.NormalizeStart(start)
}

// SetLogger sets the logger for warning and debug messages.
func (a *Analyzer) SetLogger(l *zap.Logger) {
	a.logger = l
}

// Analyze formats and validates raw, applies muts and translates both the
// original and the mutated sequence on the configured strand.
func (a *Analyzer) Analyze(raw string, muts mutation.Set) (*Report, error) {
	seq := dna.Format(raw)
	if !dna.IsSequenceValid(seq) {
		return nil, fmt.Errorf("%w: only A, T (or U), C, G are allowed", dna.ErrInvalidSequence)
	}

	mutated, err := muts.Apply(seq)
	if err != nil {
		return nil, err
	}
	if !muts.Empty() {
		a.logger.Debug("applied mutations",
			zap.Int("changes", len(muts.Changes)),
			zap.Int("deletions", len(muts.Deletions)),
			zap.Int("insertions", len(muts.Insertions)),
			zap.Int("length", len(mutated)))
	}

	rep := &Report{
		Strand:     a.strand,
		StartIndex: a.startIndex,
		Mutations:  muts.Count(),
	}

	var g errgroup.Group
	g.Go(func() error {
		r, err := a.analyzeStrand(seq)
		if err != nil {
			return fmt.Errorf("original sequence: %w", err)
		}
		rep.Original = r
		return nil
	})
	g.Go(func() error {
		r, err := a.analyzeStrand(mutated)
		if err != nil {
			return fmt.Errorf("mutated sequence: %w", err)
		}
		rep.Mutated = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.warn("original", rep.Original)
	if rep.Changed() {
		a.warn("mutated", rep.Mutated)
	}

	rep.Effect = PredictEffect(rep.Original, rep.Mutated, muts)
	if rep.Effect != nil {
		a.logger.Debug("predicted effect",
			zap.String("consequence", rep.Effect.Consequence),
			zap.String("impact", rep.Effect.Impact),
			zap.String("hgvsp", rep.Effect.HGVSp))
	}

	return rep, nil
}

// analyzeStrand selects the strand to read from a validated coding
// sequence and translates it.
func (a *Analyzer) analyzeStrand(coding string) (StrandResult, error) {
	complement, err := dna.Complement(coding)
	if err != nil {
		return StrandResult{}, err
	}

	res := StrandResult{Sequence: coding, Partner: complement}
	if a.strand == StrandTemplate {
		res.Sequence, res.Partner = complement, coding
	}
	a.logger.Debug("reading strand",
		zap.String("strand", string(a.strand)),
		zap.Int("length", len(res.Sequence)))

	res.Protein, err = translate.Translate(res.Sequence)
	if err != nil {
		return StrandResult{}, err
	}
	res.Start, res.HasStart = translate.FindStartCodon(res.Sequence)
	return res, nil
}

func (a *Analyzer) warn(label string, s StrandResult) {
	if !s.HasStart {
		a.logger.Warn("no start codon found", zap.String("sequence", label))
		return
	}
	if !s.Protein.HasStop() {
		a.logger.Warn("sequence does not end with a stop codon",
			zap.String("sequence", label),
			zap.Int("protein_size", s.Size()))
	}
}
