package dataset

import (
	"sync"

	P "seqmine/pattern"

	"github.com/google/uuid"
	cache "github.com/hashicorp/golang-lru"
)

// MiningSession holds one completed mining run over a dataset.
type MiningSession struct {
	Patterns       []P.Pattern
	Service        *P.PatternService
	Sequences      [][]string
	TotalSequences int
	MinSupport     float64
	ExecutionTime  float64
}

// Dataset is the per-upload unit of state: the loaded table, the
// sequences built from it and the latest mining session.
type Dataset struct {
	Id    string
	Table *Table

	lock      sync.RWMutex
	sequences [][]string
	mining    *MiningSession
}

func (d *Dataset) SetSequences(sequences [][]string) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.sequences = sequences
	// A new sequence set invalidates any previous mining run.
	d.mining = nil
}

func (d *Dataset) Sequences() ([][]string, bool) {
	d.lock.RLock()
	defer d.lock.RUnlock()
	return d.sequences, d.sequences != nil
}

func (d *Dataset) SetMining(session *MiningSession) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.mining = session
}

func (d *Dataset) Mining() (*MiningSession, bool) {
	d.lock.RLock()
	defer d.lock.RUnlock()
	return d.mining, d.mining != nil
}

// Registry is a bounded store of uploaded datasets keyed by id. Eviction
// of the least recently used dataset is acceptable, the client re-uploads.
type Registry struct {
	datasets *cache.Cache
}

func NewRegistry(size int) (*Registry, error) {
	datasets, err := cache.New(size)
	if err != nil {
		return nil, err
	}
	return &Registry{datasets: datasets}, nil
}

// Add registers a loaded table under a fresh id.
func (r *Registry) Add(t *Table) *Dataset {
	d := &Dataset{
		Id:    uuid.New().String(),
		Table: t,
	}
	r.datasets.Add(d.Id, d)
	return d
}

func (r *Registry) Get(id string) (*Dataset, bool) {
	v, ok := r.datasets.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*Dataset), true
}
