package dataset

import (
	"sort"
	"time"

	M "seqmine/model"
	U "seqmine/util"

	E "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Timestamp layouts tried in order when a timestamp column is selected.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006 15:04",
	"01/02/2006",
}

type sequenceRow struct {
	id        string
	item      string
	timestamp time.Time
}

// BuildSequences groups the table's rows by the sequence id column into
// ordered item sequences. Rows missing a required field are dropped. When
// a timestamp column is given, rows with unparseable timestamps are
// dropped and items within each group are ordered by ascending timestamp.
// Groups are emitted in ascending order of sequence id.
func BuildSequences(t *Table, idColumn, itemColumn, timestampColumn string) ([][]string, M.SequenceStats, error) {
	required := []string{idColumn, itemColumn}
	if timestampColumn != "" {
		required = append(required, timestampColumn)
	}
	missing := []string{}
	for _, c := range required {
		if !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, M.SequenceStats{}, E.Errorf("Missing columns in dataset: %v", missing)
	}

	rows := make([]sequenceRow, 0, len(t.Rows))
	dropped := 0
	for _, raw := range t.Rows {
		r := sequenceRow{id: t.value(raw, idColumn), item: t.value(raw, itemColumn)}
		if r.id == "" || r.item == "" {
			dropped++
			continue
		}
		if timestampColumn != "" {
			ts, ok := parseTimestamp(t.value(raw, timestampColumn))
			if !ok {
				dropped++
				continue
			}
			r.timestamp = ts
		}
		rows = append(rows, r)
	}
	if dropped > 0 {
		log.WithFields(log.Fields{"dropped_rows": dropped}).Warn("Dropped rows with missing or invalid values.")
	}

	groups := make(map[string][]sequenceRow)
	ids := []string{}
	for _, r := range rows {
		if _, seen := groups[r.id]; !seen {
			ids = append(ids, r.id)
		}
		groups[r.id] = append(groups[r.id], r)
	}
	sort.Strings(ids)

	sequences := make([][]string, 0, len(ids))
	for _, id := range ids {
		group := groups[id]
		if timestampColumn != "" {
			sort.SliceStable(group, func(i, j int) bool {
				return group[i].timestamp.Before(group[j].timestamp)
			})
		}
		sequence := make([]string, 0, len(group))
		for _, r := range group {
			sequence = append(sequence, r.item)
		}
		sequences = append(sequences, sequence)
	}

	stats := SequenceStatsOf(sequences)
	log.WithFields(log.Fields{"sequences": stats.TotalSequences,
		"unique_items": stats.UniqueItems}).Info("Generated sequences.")
	return sequences, stats, nil
}

func parseTimestamp(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// FilterSequences keeps sequences with length >= minLength and, when
// maxLength > 0, length <= maxLength.
func FilterSequences(sequences [][]string, minLength, maxLength int) [][]string {
	filtered := make([][]string, 0, len(sequences))
	for _, s := range sequences {
		if len(s) < minLength {
			continue
		}
		if maxLength > 0 && len(s) > maxLength {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

// SequenceStatsOf summarizes a set of sequences.
func SequenceStatsOf(sequences [][]string) M.SequenceStats {
	uniqueItems := make(map[string]bool)
	for _, s := range sequences {
		for _, item := range s {
			uniqueItems[item] = true
		}
	}
	stats := M.SequenceStats{
		TotalSequences:  len(sequences),
		UniqueItems:     len(uniqueItems),
		SampleSequences: [][]string{},
	}
	if len(sequences) == 0 {
		return stats
	}

	total := 0
	minLen := len(sequences[0])
	maxLen := len(sequences[0])
	for _, s := range sequences {
		total += len(s)
		if len(s) < minLen {
			minLen = len(s)
		}
		if len(s) > maxLen {
			maxLen = len(s)
		}
	}
	stats.AvgSequenceLength = U.RoundFloat(float64(total)/float64(len(sequences)), 2)
	stats.MinSequenceLength = minLen
	stats.MaxSequenceLength = maxLen

	numSamples := 5
	if numSamples > len(sequences) {
		numSamples = len(sequences)
	}
	stats.SampleSequences = sequences[:numSamples]
	return stats
}
