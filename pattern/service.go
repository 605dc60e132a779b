// pattern_service
package pattern

import (
	"fmt"
	"sort"
	"strings"
)

// PatternService answers lookup and filter queries over one mining run's
// results without rescanning the sequence database.
type PatternService struct {
	patterns    []Pattern
	supportsMap map[string]int
}

func NewPatternService(patterns []Pattern) (*PatternService, error) {
	patternService := PatternService{
		patterns: patterns,
	}
	supportsMap := make(map[string]int)
	for i := range patterns {
		supportsMap[patterns[i].String()] = patterns[i].Support
	}
	patternService.supportsMap = supportsMap
	return &patternService, nil
}

func (ps *PatternService) GetSupport(items []string) (int, bool) {
	c, ok := ps.supportsMap[strings.Join(items, ",")]
	return c, ok
}

// Query returns patterns beginning with startItem and ending with endItem.
// Either side may be empty, but not both.
func (ps *PatternService) Query(startItem string, endItem string) ([]Pattern, error) {
	if startItem == "" && endItem == "" {
		return nil, fmt.Errorf("Invalid Query")
	}
	resPatterns := []Pattern{}
	for _, p := range ps.patterns {
		if (startItem == "" || strings.Compare(startItem, p.Items[0]) == 0) &&
			(endItem == "" || strings.Compare(endItem, p.Items[len(p.Items)-1]) == 0) {
			resPatterns = append(resPatterns, p)
		}
	}
	// Sort in decreasing order of support.
	sort.SliceStable(resPatterns,
		func(i, j int) bool {
			return resPatterns[i].Support > resPatterns[j].Support
		})
	return resPatterns, nil
}
