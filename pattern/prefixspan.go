package pattern

import (
	"context"
	"fmt"
	"sort"

	U "seqmine/util"

	log "github.com/sirupsen/logrus"
)

// ConfigurationError is returned when mining parameters are out of range.
// Validation is primarily the caller's job. The engine rejects defensively
// instead of clamping.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PrefixSpan mines frequent ordered subsequences from a sequence database
// using depth first search over projected databases. One value per mining
// run. No state is shared across runs.
type PrefixSpan struct {
	db               *SequenceDatabase
	minSupport       float64
	maxPatternLength int
	minSupportCount  int
	patterns         []Pattern
}

// NewPrefixSpan builds a miner for the given database. minSupport is a
// fraction of sequences in (0, 1]. maxPatternLength 0 means unbounded,
// any other value must be >= 1.
func NewPrefixSpan(db *SequenceDatabase, minSupport float64, maxPatternLength int) (*PrefixSpan, error) {
	if minSupport <= 0 || minSupport > 1 {
		return nil, &ConfigurationError{Field: "min_support", Reason: "must be in (0, 1]"}
	}
	if maxPatternLength < 0 {
		return nil, &ConfigurationError{Field: "max_pattern_length", Reason: "must be >= 1"}
	}

	// Never zero, even for tiny thresholds or an empty database.
	minSupportCount := int(minSupport * float64(db.TotalCount))
	if minSupportCount < 1 {
		minSupportCount = 1
	}

	ps := &PrefixSpan{
		db:               db,
		minSupport:       minSupport,
		maxPatternLength: maxPatternLength,
		minSupportCount:  minSupportCount,
		patterns:         []Pattern{},
	}
	log.WithFields(log.Fields{"total_sequences": db.TotalCount,
		"min_support": minSupport, "min_support_count": minSupportCount}).Info("Initialized PrefixSpan miner.")
	return ps, nil
}

func (ps *PrefixSpan) MinSupportCount() int {
	return ps.minSupportCount
}

// MinePatterns runs the full search and returns patterns sorted by
// decreasing support, then decreasing length.
func (ps *PrefixSpan) MinePatterns() []Pattern {
	patterns, _ := ps.MinePatternsContext(context.Background())
	return patterns
}

// MinePatternsContext is MinePatterns with cooperative cancellation. The
// context is polled between sibling candidates. On cancellation the error
// is returned and partial results are discarded.
func (ps *PrefixSpan) MinePatternsContext(ctx context.Context) ([]Pattern, error) {
	ps.patterns = []Pattern{}
	if err := ps.mineRecursive(ctx, nil, ps.db.Sequences); err != nil {
		ps.patterns = []Pattern{}
		return nil, err
	}
	SortPatterns(ps.patterns)
	log.WithFields(log.Fields{"patterns": len(ps.patterns)}).Info("Mining completed.")
	return ps.patterns, nil
}

// mineRecursive extends prefix with every frequent item of the current
// frontier. Each call grows the pattern by exactly one item and the
// frontier never grows, so the search tree is finite even without a
// length cap.
func (ps *PrefixSpan) mineRecursive(ctx context.Context, prefix []string, frontier [][]string) error {
	candidates := ps.findFrequentItems(frontier)
	for _, item := range candidates {
		if err := ctx.Err(); err != nil {
			return err
		}

		newPattern := make([]string, len(prefix)+1)
		copy(newPattern, prefix)
		newPattern[len(prefix)] = item

		// Support is always recomputed against the original database,
		// never read off the projection.
		support := ps.supportOf(newPattern)
		if support >= ps.minSupportCount {
			ps.addPattern(newPattern, support)
		}

		if ps.maxPatternLength > 0 && len(newPattern) == ps.maxPatternLength {
			continue
		}
		// Project off the current frontier with the extension item, not
		// the original database, so projection cost shrinks with depth.
		projected := projectRows(frontier, []string{item})
		if err := ps.mineRecursive(ctx, newPattern, projected); err != nil {
			return err
		}
	}
	return nil
}

// findFrequentItems counts each item once per row and returns the items
// meeting the support threshold in ascending lexicographic order. The
// order fixes a deterministic exploration order. It never changes support
// values.
func (ps *PrefixSpan) findFrequentItems(rows [][]string) []string {
	itemCounts := make(map[string]int)
	for _, row := range rows {
		seen := make(map[string]bool)
		for _, item := range row {
			if !seen[item] {
				seen[item] = true
				itemCounts[item]++
			}
		}
	}

	frequentItems := []string{}
	for item, count := range itemCounts {
		if count >= ps.minSupportCount {
			frequentItems = append(frequentItems, item)
		}
	}
	sort.Strings(frequentItems)
	return frequentItems
}

// projectRows builds the projected database for patt. Rows that never
// fully match are dropped. A row matching at its last token contributes
// an empty suffix, which is a valid contribution distinct from no match.
func projectRows(rows [][]string, patt []string) [][]string {
	projected := [][]string{}
	for _, row := range rows {
		if suffix, ok := findSuffix(row, patt); ok {
			projected = append(projected, suffix)
		}
	}
	return projected
}

// findSuffix matches patt greedily left to right over row and returns the
// tokens strictly after the matched position. Only the earliest match is
// taken. On heavily repetitive data a later match could expose different
// continuation items, which can only cost candidate extensions, never a
// wrong support figure, since support is recomputed from the original
// database.
func findSuffix(row []string, patt []string) ([]string, bool) {
	waitIndex := 0
	for i, item := range row {
		if item == patt[waitIndex] {
			waitIndex++
			if waitIndex == len(patt) {
				return row[i+1:], true
			}
		}
	}
	return nil, false
}

// supportOf counts the original sequences containing patt as a
// subsequence. This is the authoritative support figure.
func (ps *PrefixSpan) supportOf(patt []string) int {
	count := 0
	for _, sequence := range ps.db.Sequences {
		if containsSubsequence(sequence, patt) {
			count++
		}
	}
	return count
}

func containsSubsequence(sequence []string, patt []string) bool {
	waitIndex := 0
	for _, item := range sequence {
		if item == patt[waitIndex] {
			waitIndex++
			if waitIndex == len(patt) {
				return true
			}
		}
	}
	return false
}

func (ps *PrefixSpan) addPattern(items []string, support int) {
	ps.patterns = append(ps.patterns, Pattern{
		Items:          items,
		Support:        support,
		SupportPercent: U.Percentage(float64(support), float64(ps.db.TotalCount)),
		Length:         len(items),
	})
}
