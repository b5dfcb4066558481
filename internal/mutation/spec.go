package mutation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/inodb/vibe-translate/internal/dna"
)

// ErrMalformedSpec reports a mutation specification that cannot be parsed.
var ErrMalformedSpec = errors.New("malformed mutation specification")

// DefaultStart is the user-facing number of the first base.
const DefaultStart = 1

var rePosition = regexp.MustCompile(`^\d+$`)

// Set groups the mutations requested for one sequence.
type Set struct {
	Changes    []Change
	Deletions  []int
	Insertions []Insertion
}

// Empty returns true if the set holds no mutation.
func (s Set) Empty() bool {
	return len(s.Changes) == 0 && len(s.Deletions) == 0 && len(s.Insertions) == 0
}

// Count returns the total number of requested mutations.
func (s Set) Count() int {
	return len(s.Changes) + len(s.Deletions) + len(s.Insertions)
}

// Apply applies changes, then deletions, then insertions. Deletion and
// insertion positions refer to the sequence produced by the previous step.
func (s Set) Apply(seq string) (string, error) {
	out := seq
	var err error
	if len(s.Changes) > 0 {
		if out, err = ApplyChanges(out, s.Changes); err != nil {
			return "", fmt.Errorf("apply changes: %w", err)
		}
	}
	if len(s.Deletions) > 0 {
		if out, err = ApplyDeletions(out, s.Deletions); err != nil {
			return "", fmt.Errorf("apply deletions: %w", err)
		}
	}
	if len(s.Insertions) > 0 {
		if out, err = ApplyInsertions(out, s.Insertions); err != nil {
			return "", fmt.Errorf("apply insertions: %w", err)
		}
	}
	return out, nil
}

// Locate returns the index in the mutated sequence of the base found at pos
// in the original sequence, following the change -> delete -> add order of
// Apply. ok is false when that base was deleted.
func (s Set) Locate(pos int) (idx int, ok bool) {
	idx = pos
	for _, d := range dedupePositions(s.Deletions) {
		if d == pos {
			return 0, false
		}
		if d < pos {
			idx--
		}
	}
	shift := 0
	for _, ins := range dedupeInsertions(s.Insertions) {
		if ins.Pos <= idx {
			shift++
		}
	}
	return idx + shift, true
}

// NormalizeStart returns start, or DefaultStart when start is not positive.
func NormalizeStart(start int) int {
	if start <= 0 {
		return DefaultStart
	}
	return start
}

// ParseSet parses the three whitespace-separated specifications, e.g.
// changes "1 A 10 T", deletions "3 7" and insertions "5 G", converting the
// user-facing positions (numbered from start) to 0-based positions.
func ParseSet(changes, deletions, insertions string, start int) (Set, error) {
	var s Set
	var err error
	if s.Changes, err = ParseChanges(changes, start); err != nil {
		return Set{}, err
	}
	if s.Deletions, err = ParseDeletions(deletions, start); err != nil {
		return Set{}, err
	}
	if s.Insertions, err = ParseInsertions(insertions, start); err != nil {
		return Set{}, err
	}
	return s, nil
}

// ParseChanges parses "position base" pairs into substitutions.
func ParseChanges(spec string, start int) ([]Change, error) {
	pairs, err := parsePairs(spec, start, "change")
	if err != nil {
		return nil, err
	}
	changes := make([]Change, 0, len(pairs))
	for _, p := range pairs {
		changes = append(changes, Change(p))
	}
	return changes, nil
}

// ParseInsertions parses "position base" pairs into insertions.
func ParseInsertions(spec string, start int) ([]Insertion, error) {
	pairs, err := parsePairs(spec, start, "insertion")
	if err != nil {
		return nil, err
	}
	insertions := make([]Insertion, 0, len(pairs))
	for _, p := range pairs {
		insertions = append(insertions, Insertion(p))
	}
	return insertions, nil
}

// ParseDeletions parses a list of positions.
func ParseDeletions(spec string, start int) ([]int, error) {
	start = NormalizeStart(start)
	fields := strings.Fields(spec)
	positions := make([]int, 0, len(fields))
	for _, f := range fields {
		pos, err := parsePosition(f)
		if err != nil {
			return nil, fmt.Errorf("%w: deletions must be numeric positions, got %q", ErrMalformedSpec, f)
		}
		positions = append(positions, pos-start)
	}
	return positions, nil
}

type pair struct {
	Pos  int
	Base byte
}

func parsePairs(spec string, start int, kind string) ([]pair, error) {
	start = NormalizeStart(start)
	fields := strings.Fields(spec)
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("%w: %s mutations must be pairs of position and nucleotide", ErrMalformedSpec, kind)
	}

	pairs := make([]pair, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		pos, err := parsePosition(fields[i])
		if err != nil || len(fields[i+1]) != 1 || !dna.IsNucleotideValid(fields[i+1][0]) {
			return nil, fmt.Errorf("%w: %s mutations must be in the format 'position nucleotide', got %q",
				ErrMalformedSpec, kind, fields[i]+" "+fields[i+1])
		}
		pairs = append(pairs, pair{Pos: pos - start, Base: upperBase(fields[i+1][0])})
	}
	return pairs, nil
}

func parsePosition(token string) (int, error) {
	if !rePosition.MatchString(token) {
		return 0, fmt.Errorf("not a position: %q", token)
	}
	return strconv.Atoi(token)
}
