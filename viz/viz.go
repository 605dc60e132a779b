package viz

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	P "seqmine/pattern"
	U "seqmine/util"

	E "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const heatmapTopItems = 20

// Generator shapes one mining run's output into chart-ready payloads.
// Every method is a pure, read-only transformation.
type Generator struct {
	patterns  []P.Pattern
	sequences [][]string
	allItems  []string
}

func NewGenerator(patterns []P.Pattern, sequences [][]string) *Generator {
	items := make(map[string]bool)
	for _, sequence := range sequences {
		for _, item := range sequence {
			items[item] = true
		}
	}
	allItems := make([]string, 0, len(items))
	for item := range items {
		allItems = append(allItems, item)
	}
	sort.Strings(allItems)

	return &Generator{
		patterns:  patterns,
		sequences: sequences,
		allItems:  allItems,
	}
}

type BarChartData struct {
	Labels          []string  `json:"labels"`
	SupportCounts   []int     `json:"support_counts"`
	SupportPercents []float64 `json:"support_percents"`
	PatternLengths  []int     `json:"pattern_lengths"`
}

// BarChartData ranks the top patterns for the bar chart. Patterns are
// already sorted by the engine.
func (g *Generator) BarChartData(topN int) BarChartData {
	top := g.topPatterns(topN)
	data := BarChartData{
		Labels:          make([]string, 0, len(top)),
		SupportCounts:   make([]int, 0, len(top)),
		SupportPercents: make([]float64, 0, len(top)),
		PatternLengths:  make([]int, 0, len(top)),
	}
	for i := range top {
		data.Labels = append(data.Labels, U.FormatSequenceForDisplay(top[i].Items))
		data.SupportCounts = append(data.SupportCounts, top[i].Support)
		data.SupportPercents = append(data.SupportPercents, top[i].SupportPercent)
		data.PatternLengths = append(data.PatternLengths, top[i].Length)
	}
	return data
}

type LineChartData struct {
	Lengths      []int     `json:"lengths"`
	AvgSupport   []float64 `json:"avg_support"`
	MaxSupport   []int     `json:"max_support"`
	MinSupport   []int     `json:"min_support"`
	PatternCount []int     `json:"pattern_count"`
}

// LineChartData aggregates support by pattern length.
func (g *Generator) LineChartData() LineChartData {
	byLength := make(map[int][]int)
	for i := range g.patterns {
		byLength[g.patterns[i].Length] = append(byLength[g.patterns[i].Length], g.patterns[i].Support)
	}
	lengths := make([]int, 0, len(byLength))
	for l := range byLength {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	data := LineChartData{Lengths: lengths}
	for _, l := range lengths {
		supports := byLength[l]
		sum, maxS, minS := 0, supports[0], supports[0]
		for _, s := range supports {
			sum += s
			if s > maxS {
				maxS = s
			}
			if s < minS {
				minS = s
			}
		}
		data.AvgSupport = append(data.AvgSupport, float64(sum)/float64(len(supports)))
		data.MaxSupport = append(data.MaxSupport, maxS)
		data.MinSupport = append(data.MinSupport, minS)
		data.PatternCount = append(data.PatternCount, len(supports))
	}
	return data
}

type HeatmapData struct {
	Items  []string `json:"items"`
	Matrix [][]int  `json:"matrix"`
}

// HeatmapData builds the symmetric co-occurrence matrix of the most
// frequent items. Each item counts once per sequence.
func (g *Generator) HeatmapData() HeatmapData {
	topItems := g.topItems(heatmapTopItems)

	index := make(map[string]int)
	for i, item := range topItems {
		index[item] = i
	}
	matrix := make([][]int, len(topItems))
	for i := range matrix {
		matrix[i] = make([]int, len(topItems))
	}

	for _, sequence := range g.sequences {
		unique := U.UniqueStrings(sequence)
		for i, a := range unique {
			ai, ok := index[a]
			if !ok {
				continue
			}
			for _, b := range unique[i+1:] {
				bi, ok := index[b]
				if !ok {
					continue
				}
				matrix[ai][bi]++
				matrix[bi][ai]++
			}
		}
	}
	return HeatmapData{Items: topItems, Matrix: matrix}
}

type NetworkNode struct {
	Id    string `json:"id"`
	Label string `json:"label"`
}

type NetworkEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
}

type NetworkData struct {
	Nodes []NetworkNode `json:"nodes"`
	Edges []NetworkEdge `json:"edges"`
}

// NetworkData builds the item transition graph of the top patterns.
// Adjacent pattern items form directed edges weighted by the sum of the
// supports of the patterns they appear in. Node and edge order follows
// first appearance, which keeps the payload deterministic.
func (g *Generator) NetworkData(topN int) NetworkData {
	top := g.topPatterns(topN)

	nodes := []NetworkNode{}
	seenNodes := make(map[string]bool)
	edgeOrder := []string{}
	edges := make(map[string]*NetworkEdge)

	for i := range top {
		items := top[i].Items
		for _, item := range items {
			if !seenNodes[item] {
				seenNodes[item] = true
				nodes = append(nodes, NetworkNode{Id: item, Label: item})
			}
		}
		for j := 0; j+1 < len(items); j++ {
			key := items[j] + "\x00" + items[j+1]
			if _, ok := edges[key]; !ok {
				edges[key] = &NetworkEdge{Source: items[j], Target: items[j+1]}
				edgeOrder = append(edgeOrder, key)
			}
			edges[key].Weight += top[i].Support
		}
	}

	data := NetworkData{Nodes: nodes, Edges: make([]NetworkEdge, 0, len(edgeOrder))}
	for _, key := range edgeOrder {
		data.Edges = append(data.Edges, *edges[key])
	}
	return data
}

type TableRow struct {
	Rank           int      `json:"rank"`
	Pattern        string   `json:"pattern"`
	Sequence       []string `json:"sequence"`
	Length         int      `json:"length"`
	Support        int      `json:"support"`
	SupportPercent string   `json:"support_percent"`
}

func (g *Generator) TableData() []TableRow {
	rows := make([]TableRow, 0, len(g.patterns))
	for i := range g.patterns {
		rows = append(rows, TableRow{
			Rank:           i + 1,
			Pattern:        U.FormatSequenceForDisplay(g.patterns[i].Items),
			Sequence:       g.patterns[i].Items,
			Length:         g.patterns[i].Length,
			Support:        g.patterns[i].Support,
			SupportPercent: fmt.Sprintf("%v%%", g.patterns[i].SupportPercent),
		})
	}
	return rows
}

type SummaryStats struct {
	TotalPatterns       int     `json:"total_patterns"`
	TotalSequences      int     `json:"total_sequences"`
	UniqueItems         int     `json:"unique_items"`
	AvgPatternLength    float64 `json:"avg_pattern_length"`
	MaxPatternLength    int     `json:"max_pattern_length,omitempty"`
	MinPatternLength    int     `json:"min_pattern_length,omitempty"`
	MaxSupport          int     `json:"max_support"`
	MinSupportThreshold float64 `json:"min_support_threshold"`
	ExecutionTime       float64 `json:"execution_time"`
}

func (g *Generator) SummaryStats(totalSequences int, executionTime float64, minSupport float64) SummaryStats {
	stats := SummaryStats{
		TotalPatterns:       len(g.patterns),
		TotalSequences:      totalSequences,
		UniqueItems:         len(g.allItems),
		MinSupportThreshold: minSupport,
		ExecutionTime:       U.RoundFloat(executionTime, 2),
	}
	if len(g.patterns) == 0 {
		return stats
	}

	totalLength := 0
	maxLen, minLen := g.patterns[0].Length, g.patterns[0].Length
	maxSupport := g.patterns[0].Support
	for i := range g.patterns {
		totalLength += g.patterns[i].Length
		if g.patterns[i].Length > maxLen {
			maxLen = g.patterns[i].Length
		}
		if g.patterns[i].Length < minLen {
			minLen = g.patterns[i].Length
		}
		if g.patterns[i].Support > maxSupport {
			maxSupport = g.patterns[i].Support
		}
	}
	stats.AvgPatternLength = U.RoundFloat(float64(totalLength)/float64(len(g.patterns)), 2)
	stats.MaxPatternLength = maxLen
	stats.MinPatternLength = minLen
	stats.MaxSupport = maxSupport
	return stats
}

// ExportCSV writes the full results table as CSV.
func (g *Generator) ExportCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"rank", "pattern", "length", "support", "support_percent"}); err != nil {
		return E.Wrap(err, "Failed to write CSV header")
	}
	rows := g.TableData()
	for i := range rows {
		record := []string{
			strconv.Itoa(rows[i].Rank),
			rows[i].Pattern,
			strconv.Itoa(rows[i].Length),
			strconv.Itoa(rows[i].Support),
			rows[i].SupportPercent,
		}
		if err := writer.Write(record); err != nil {
			return E.Wrap(err, "Failed to write CSV record")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return E.Wrap(err, "Failed to flush CSV")
	}
	log.WithFields(log.Fields{"patterns": len(rows)}).Info("Exported patterns to CSV.")
	return nil
}

// topPatterns returns the first topN patterns in engine order.
func (g *Generator) topPatterns(topN int) []P.Pattern {
	if topN <= 0 || topN > len(g.patterns) {
		topN = len(g.patterns)
	}
	return g.patterns[:topN]
}

// topItems returns the n most frequent items over all sequences, counting
// repeats. Ties break on ascending item for determinism.
func (g *Generator) topItems(n int) []string {
	counts := make(map[string]int)
	for _, sequence := range g.sequences {
		for _, item := range sequence {
			counts[item]++
		}
	}
	items := make([]string, 0, len(counts))
	for item := range counts {
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if counts[items[i]] != counts[items[j]] {
			return counts[items[i]] > counts[items[j]]
		}
		return items[i] < items[j]
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
