package pattern

import (
	"context"
	"testing"

	U "seqmine/util"

	"github.com/stretchr/testify/assert"
)

func mine(t *testing.T, sequences [][]string, minSupport float64, maxPatternLength int) []Pattern {
	miner, err := NewPrefixSpan(NewSequenceDatabase(sequences), minSupport, maxPatternLength)
	assert.Nil(t, err)
	assert.NotNil(t, miner)
	return miner.MinePatterns()
}

func TestMineThreeSequences(t *testing.T) {
	// Sequences: [A B C], [A B], [A C B] with min support 0.67.
	// Threshold = max(1, floor(0.67 * 3)) = 2.
	// Frequent: A:3, B:3, C:2, A,B:3, A,C:2.
	// A,B,C is not frequent: [A B] has no C, support 1 < 2.
	// Sorted by (-support, -length): [A B], [A], [B], [A C], [C].
	sequences := [][]string{
		{"A", "B", "C"},
		{"A", "B"},
		{"A", "C", "B"},
	}
	patterns := mine(t, sequences, 0.67, 0)

	assert.Equal(t, 5, len(patterns))
	assert.Equal(t, []string{"A", "B"}, patterns[0].Items)
	assert.Equal(t, 3, patterns[0].Support)
	assert.Equal(t, []string{"A"}, patterns[1].Items)
	assert.Equal(t, 3, patterns[1].Support)
	assert.Equal(t, 100.0, patterns[1].SupportPercent)
	assert.Equal(t, []string{"B"}, patterns[2].Items)
	assert.Equal(t, 3, patterns[2].Support)
	assert.Equal(t, []string{"A", "C"}, patterns[3].Items)
	assert.Equal(t, 2, patterns[3].Support)
	assert.Equal(t, []string{"C"}, patterns[4].Items)
	assert.Equal(t, 2, patterns[4].Support)
	assert.Equal(t, 66.67, patterns[4].SupportPercent)

	// The top pattern carries support 3 and the length-1 items A and B
	// are tied with it.
	assert.Equal(t, 3, patterns[0].Support)
	for _, p := range patterns {
		assert.GreaterOrEqual(t, p.Support, 2)
	}
}

func TestMineEmptyDatabase(t *testing.T) {
	// An empty database is an empty result, not an error.
	patterns := mine(t, [][]string{}, 0.5, 0)
	assert.Equal(t, 0, len(patterns))
}

func TestMineRepeatedTokens(t *testing.T) {
	// Single sequence [X X X] with min support 1.0 (threshold 1).
	// The greedy left to right match consumes one occurrence per pattern
	// token, so X; X,X and X,X,X all occur with support 1.
	patterns := mine(t, [][]string{{"X", "X", "X"}}, 1.0, 0)

	assert.Equal(t, 3, len(patterns))
	// All supports equal, so longer patterns rank first.
	assert.Equal(t, []string{"X", "X", "X"}, patterns[0].Items)
	assert.Equal(t, []string{"X", "X"}, patterns[1].Items)
	assert.Equal(t, []string{"X"}, patterns[2].Items)
	for _, p := range patterns {
		assert.Equal(t, 1, p.Support)
	}
}

func TestMineMaxPatternLength(t *testing.T) {
	sequences := [][]string{
		{"A", "B", "C", "D"},
		{"A", "B", "C", "D"},
		{"A", "B", "C", "D"},
	}
	patterns := mine(t, sequences, 0.5, 2)

	assert.NotEqual(t, 0, len(patterns))
	for _, p := range patterns {
		assert.LessOrEqual(t, p.Length, 2)
		assert.Equal(t, len(p.Items), p.Length)
	}
	// [A B] is frequent but nothing longer is emitted.
	found := false
	for _, p := range patterns {
		if len(p.Items) == 2 && p.Items[0] == "A" && p.Items[1] == "B" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestMineAntimonotonicity(t *testing.T) {
	// Every emitted pattern's single-item-shorter prefix is also emitted,
	// with support at least as large.
	sequences := [][]string{
		{"A", "B", "A", "C", "B"},
		{"B", "A", "C", "A"},
		{"A", "C", "B", "C"},
		{"C", "A", "B"},
	}
	patterns := mine(t, sequences, 0.25, 0)
	assert.NotEqual(t, 0, len(patterns))

	supports := make(map[string]int)
	for _, p := range patterns {
		supports[p.String()] = p.Support
	}
	for _, p := range patterns {
		if p.Length < 2 {
			continue
		}
		prefixSupport, ok := supports[itemArrayToString(p.Items[:p.Length-1])]
		assert.True(t, ok, "prefix of %v not emitted", p.Items)
		assert.GreaterOrEqual(t, prefixSupport, p.Support)
	}
}

func TestMineThresholdInvariant(t *testing.T) {
	sequences := [][]string{
		{"A", "B"},
		{"B", "C"},
		{"A", "C"},
		{"A", "B", "C"},
		{"C"},
	}
	miner, err := NewPrefixSpan(NewSequenceDatabase(sequences), 0.4, 0)
	assert.Nil(t, err)
	// Threshold = max(1, floor(0.4 * 5)) = 2.
	assert.Equal(t, 2, miner.MinSupportCount())

	for _, p := range miner.MinePatterns() {
		assert.GreaterOrEqual(t, p.Support, 2)
	}
}

func TestMineDeterminism(t *testing.T) {
	sequences := [][]string{
		{"B", "A", "C"},
		{"A", "C", "B", "A"},
		{"C", "B", "A"},
	}
	first := mine(t, sequences, 0.3, 0)
	second := mine(t, sequences, 0.3, 0)
	assert.Equal(t, first, second)
}

func TestMineSortOrder(t *testing.T) {
	sequences := [][]string{
		{"A", "B", "C"},
		{"A", "B"},
		{"B", "C"},
		{"A", "C", "B"},
		{"C", "A"},
	}
	patterns := mine(t, sequences, 0.2, 0)
	for i := 1; i < len(patterns); i++ {
		assert.LessOrEqual(t, patterns[i].Support, patterns[i-1].Support)
		if patterns[i].Support == patterns[i-1].Support {
			assert.LessOrEqual(t, patterns[i].Length, patterns[i-1].Length)
		}
	}
}

func TestMineSupportPercentRoundTrip(t *testing.T) {
	sequences := [][]string{
		{"A", "B", "C"},
		{"A", "B"},
		{"A", "C", "B"},
	}
	patterns := mine(t, sequences, 0.5, 0)
	for _, p := range patterns {
		assert.Equal(t, U.Percentage(float64(p.Support), float64(len(sequences))), p.SupportPercent)
	}
}

func TestNewPrefixSpanConfigValidation(t *testing.T) {
	db := NewSequenceDatabase([][]string{{"A"}})

	_, err := NewPrefixSpan(db, 0, 0)
	assert.NotNil(t, err)
	confErr, ok := err.(*ConfigurationError)
	assert.True(t, ok)
	assert.Equal(t, "min_support", confErr.Field)

	_, err = NewPrefixSpan(db, -0.5, 0)
	assert.NotNil(t, err)
	_, err = NewPrefixSpan(db, 1.5, 0)
	assert.NotNil(t, err)

	_, err = NewPrefixSpan(db, 0.5, -1)
	assert.NotNil(t, err)
	confErr, ok = err.(*ConfigurationError)
	assert.True(t, ok)
	assert.Equal(t, "max_pattern_length", confErr.Field)

	// 0 means unbounded, 1 is the smallest cap.
	_, err = NewPrefixSpan(db, 0.5, 0)
	assert.Nil(t, err)
	_, err = NewPrefixSpan(db, 1.0, 1)
	assert.Nil(t, err)
}

func TestMinSupportCountNeverZero(t *testing.T) {
	// floor(0.1 * 3) = 0 is clamped up to 1.
	miner, err := NewPrefixSpan(NewSequenceDatabase([][]string{{"A"}, {"B"}, {"C"}}), 0.1, 0)
	assert.Nil(t, err)
	assert.Equal(t, 1, miner.MinSupportCount())
}

func TestMinSupportCountFloors(t *testing.T) {
	// The threshold floors the product: floor(0.5 * 3) = 1, not 2.
	db := NewSequenceDatabase([][]string{{"A"}, {"B"}, {"C"}})

	miner, err := NewPrefixSpan(db, 0.5, 0)
	assert.Nil(t, err)
	assert.Equal(t, 1, miner.MinSupportCount())

	miner, err = NewPrefixSpan(db, 0.67, 0)
	assert.Nil(t, err)
	assert.Equal(t, 2, miner.MinSupportCount())

	miner, err = NewPrefixSpan(db, 1.0, 0)
	assert.Nil(t, err)
	assert.Equal(t, 3, miner.MinSupportCount())
}

func TestMineCancelledContext(t *testing.T) {
	sequences := [][]string{
		{"A", "B", "C"},
		{"A", "B"},
	}
	miner, err := NewPrefixSpan(NewSequenceDatabase(sequences), 0.5, 0)
	assert.Nil(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	patterns, err := miner.MinePatternsContext(ctx)
	assert.NotNil(t, err)
	// No partial results survive a cancelled run.
	assert.Nil(t, patterns)
}

func TestFindSuffix(t *testing.T) {
	// Suffix is cut strictly after the earliest greedy match.
	suffix, ok := findSuffix([]string{"F", "A", "B", "C"}, []string{"A", "B"})
	assert.True(t, ok)
	assert.Equal(t, []string{"C"}, suffix)

	// Matching at the end yields an empty suffix, distinct from no match.
	suffix, ok = findSuffix([]string{"A", "B"}, []string{"A", "B"})
	assert.True(t, ok)
	assert.Equal(t, 0, len(suffix))

	_, ok = findSuffix([]string{"B", "A"}, []string{"A", "B"})
	assert.False(t, ok)
}
