package report

import (
	"fmt"

	"github.com/inodb/vibe-translate/internal/mutation"
	"github.com/inodb/vibe-translate/internal/translate"
)

// Impact levels for mutation consequences.
const (
	ImpactHigh     = "HIGH"
	ImpactModerate = "MODERATE"
	ImpactLow      = "LOW"
)

// Consequence types (Sequence Ontology terms).
const (
	ConsequenceStopGained            = "stop_gained"
	ConsequenceFrameshiftVariant     = "frameshift_variant"
	ConsequenceStopLost              = "stop_lost"
	ConsequenceStartLost             = "start_lost"
	ConsequenceMissenseVariant       = "missense_variant"
	ConsequenceInframeInsertion      = "inframe_insertion"
	ConsequenceInframeDeletion       = "inframe_deletion"
	ConsequenceSynonymousVariant     = "synonymous_variant"
	ConsequenceCodingSequenceVariant = "coding_sequence_variant"
)

var impacts = map[string]string{
	ConsequenceStopGained:            ImpactHigh,
	ConsequenceFrameshiftVariant:     ImpactHigh,
	ConsequenceStopLost:              ImpactHigh,
	ConsequenceStartLost:             ImpactHigh,
	ConsequenceMissenseVariant:       ImpactModerate,
	ConsequenceInframeInsertion:      ImpactModerate,
	ConsequenceInframeDeletion:       ImpactModerate,
	ConsequenceSynonymousVariant:     ImpactLow,
	ConsequenceCodingSequenceVariant: ImpactLow,
}

// GetImpact returns the impact level for a given consequence type.
func GetImpact(consequence string) string {
	return impacts[consequence]
}

// Effect is the predicted protein-level effect of the mutations.
type Effect struct {
	Consequence     string
	Impact          string
	ProteinPosition int    // 1-based residue of the first difference, 0 if none
	HGVSp           string // e.g. "p.Arg2His"
}

// PredictEffect compares the original and mutated translations produced by
// muts. It returns nil when the original has no protein or the sequence was
// not changed.
func PredictEffect(orig, mut StrandResult, muts mutation.Set) *Effect {
	if len(orig.Protein) == 0 || orig.Sequence == mut.Sequence {
		return nil
	}

	e := &Effect{}
	if !startRetained(orig, mut, muts) {
		e.Consequence = ConsequenceStartLost
		e.ProteinPosition = 1
		e.HGVSp = "p.Met1?"
		e.Impact = GetImpact(e.Consequence)
		return e
	}

	frameDiff := codingLengthChange(orig, muts)
	i := firstDifference(orig.Protein, mut.Protein)
	n := min(len(orig.Protein), len(mut.Protein))

	switch {
	case i < 0:
		e.Consequence = ConsequenceSynonymousVariant
		e.HGVSp = "p.="
	case frameDiff%3 != 0:
		e.Consequence = ConsequenceFrameshiftVariant
	case i >= n:
		e.Consequence = ConsequenceCodingSequenceVariant
	case mut.Protein[i] == translate.Stop:
		e.Consequence = ConsequenceStopGained
	case orig.Protein[i] == translate.Stop:
		e.Consequence = ConsequenceStopLost
	case frameDiff > 0:
		e.Consequence = ConsequenceInframeInsertion
	case frameDiff < 0:
		e.Consequence = ConsequenceInframeDeletion
	default:
		e.Consequence = ConsequenceMissenseVariant
	}
	e.Impact = GetImpact(e.Consequence)

	if i >= 0 {
		e.ProteinPosition = i + 1
		e.HGVSp = formatHGVSp(e.Consequence, orig.Protein, mut.Protein, i)
	}
	return e
}

// startRetained reports whether the original start codon survives intact
// and still starts translation of the mutated sequence.
func startRetained(orig, mut StrandResult, muts mutation.Set) bool {
	if !mut.HasStart {
		return false
	}
	at, ok := muts.Locate(orig.Start)
	if !ok || at != mut.Start {
		return false
	}
	for k := 1; k < len(translate.StartCodon); k++ {
		if idx, ok := muts.Locate(orig.Start + k); !ok || idx != at+k {
			return false
		}
	}
	return true
}

// codingLengthChange returns the number of bases inserted minus the number
// deleted between the original start codon and the last translated base.
// Indels outside that region leave the reading frame alone.
func codingLengthChange(orig StrandResult, muts mutation.Set) int {
	first := orig.Start
	last := orig.Start + len(orig.Protein)*3 - 1
	from, _ := muts.Locate(first)

	deletedTail := 0
	for q := last; q > first; q-- {
		if to, ok := muts.Locate(q); ok {
			return (to - from) - (q - first) - deletedTail
		}
		deletedTail++
	}
	return -deletedTail
}

// firstDifference returns the index of the first residue that differs
// between a and b, or -1 when they are identical.
func firstDifference(a, b translate.Protein) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}

// hgvsAA returns the HGVS three-letter code, using Ter for stop.
func hgvsAA(p translate.Protein, i int) string {
	if i >= len(p) {
		return ""
	}
	if p[i] == translate.Stop {
		return "Ter"
	}
	return p[i]
}

func formatHGVSp(consequence string, orig, mut translate.Protein, i int) string {
	pos := i + 1
	ref, alt := hgvsAA(orig, i), hgvsAA(mut, i)

	switch consequence {
	case ConsequenceMissenseVariant:
		return fmt.Sprintf("p.%s%d%s", ref, pos, alt)
	case ConsequenceStopGained:
		return fmt.Sprintf("p.%s%dTer", ref, pos)
	case ConsequenceStopLost:
		return fmt.Sprintf("p.Ter%d%sext*?", pos, alt)
	case ConsequenceFrameshiftVariant:
		if ref == "" {
			return fmt.Sprintf("p.%dfs", pos)
		}
		return fmt.Sprintf("p.%s%d%sfs", ref, pos, alt)
	case ConsequenceInframeDeletion:
		return fmt.Sprintf("p.%s%ddel", ref, pos)
	case ConsequenceInframeInsertion:
		if i == 0 {
			return fmt.Sprintf("p.%dins", pos)
		}
		return fmt.Sprintf("p.%s%d_%s%dins%s", hgvsAA(orig, i-1), pos-1, ref, pos, alt)
	default:
		return ""
	}
}
