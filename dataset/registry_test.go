package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryAddAndGet(t *testing.T) {
	registry, err := NewRegistry(2)
	assert.Nil(t, err)

	table, err := LoadCSV(strings.NewReader("UserID,Product\nu1,login\n"), "a.csv")
	assert.Nil(t, err)

	d := registry.Add(table)
	assert.NotEqual(t, "", d.Id)

	got, ok := registry.Get(d.Id)
	assert.True(t, ok)
	assert.Equal(t, d, got)

	_, ok = registry.Get("unknown")
	assert.False(t, ok)
}

func TestRegistryEvictsLeastRecentlyUsed(t *testing.T) {
	registry, err := NewRegistry(2)
	assert.Nil(t, err)

	table, err := LoadCSV(strings.NewReader("UserID,Product\nu1,login\n"), "a.csv")
	assert.Nil(t, err)

	first := registry.Add(table)
	registry.Add(table)
	registry.Add(table)

	_, ok := registry.Get(first.Id)
	assert.False(t, ok)
}

func TestDatasetSequencesInvalidateMining(t *testing.T) {
	d := &Dataset{Id: "d1"}

	_, ok := d.Sequences()
	assert.False(t, ok)

	d.SetSequences([][]string{{"A", "B"}})
	sequences, ok := d.Sequences()
	assert.True(t, ok)
	assert.Equal(t, 1, len(sequences))

	d.SetMining(&MiningSession{TotalSequences: 1})
	_, ok = d.Mining()
	assert.True(t, ok)

	// Rebuilding sequences drops the stale mining run.
	d.SetSequences([][]string{{"A"}, {"B"}})
	_, ok = d.Mining()
	assert.False(t, ok)
}
