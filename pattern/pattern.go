package pattern

import (
	"sort"
	"strings"
)

// Pattern is a frequent ordered subsequence found across the sequence
// database. Created once, at the moment its support first passes the
// threshold, and never mutated afterwards.
type Pattern struct {
	Items          []string `json:"sequence"`
	Support        int      `json:"support"`
	SupportPercent float64  `json:"support_percent"`
	Length         int      `json:"length"`
}

func (p *Pattern) String() string {
	return strings.Join(p.Items, ",")
}

func itemArrayToString(items []string) string {
	return strings.Join(items, ",")
}

// SortPatterns orders patterns by decreasing support, then decreasing
// length. The sort is stable, so ties beyond that keep discovery order.
// That residual order is reproducible but carries no semantic meaning.
func SortPatterns(patterns []Pattern) {
	sort.SliceStable(patterns, func(i, j int) bool {
		if patterns[i].Support != patterns[j].Support {
			return patterns[i].Support > patterns[j].Support
		}
		return patterns[i].Length > patterns[j].Length
	})
}
