// Package convchain synthesizes boolean bitmaps that resemble a small sample
// by learning n×n neighborhood frequencies and refining a random field with
// single-cell Metropolis updates.
package convchain

import (
	"fmt"
	"math"

	"convchain/pkg/core"
)

// weightCache holds at most one table. valid is cleared whenever the sample
// changes.
type weightCache struct {
	valid bool
	n     int
	table *WeightTable
}

// Model owns a sample, the weight table derived from it and the random source
// used for synthesis. It is not safe for concurrent use.
type Model struct {
	sample *Bitmap
	cache  weightCache
	rng    RandomSource

	build func(*Bitmap, int) (*WeightTable, error)
}

// New returns a Model for sample. The default random source is a PCG stream
// seeded with 0; use SetRandomSource for anything else.
func New(sample *Bitmap) (*Model, error) {
	m := &Model{
		rng:   core.NewRNG(0).Float64,
		build: BuildWeights,
	}
	if err := m.SetSample(sample); err != nil {
		return nil, err
	}
	return m, nil
}

// SetSample replaces the sample and invalidates the cached weights. An
// inconsistent bitmap is rejected and the model is left untouched.
func (m *Model) SetSample(sample *Bitmap) error {
	if sample == nil {
		return ErrNilField
	}
	if sample.W <= 0 || sample.H <= 0 || len(sample.cells) != sample.W*sample.H {
		return fmt.Errorf("%w: %d cells for %dx%d", ErrSampleSize, len(sample.cells), sample.W, sample.H)
	}
	m.sample = sample.Clone()
	m.cache = weightCache{}
	return nil
}

// SetSampleCells is SetSample for a raw row-major cell sequence.
func (m *Model) SetSampleCells(w, h int, cells []bool) error {
	sample, err := FromCells(w, h, cells)
	if err != nil {
		return err
	}
	return m.SetSample(sample)
}

// Sample returns a copy of the current sample.
func (m *Model) Sample() *Bitmap { return m.sample.Clone() }

// SetRandomSource replaces the source used by InitializeField and Iterate.
func (m *Model) SetRandomSource(rng RandomSource) {
	if rng == nil {
		return
	}
	m.rng = rng
}

// Weights returns the table for pattern size n, rebuilding it unless the
// cached table was built for the same n and the sample has not changed since.
func (m *Model) Weights(n int) (*WeightTable, error) {
	if m.cache.valid && m.cache.n == n {
		return m.cache.table, nil
	}
	table, err := m.build(m.sample, n)
	if err != nil {
		return nil, err
	}
	m.cache = weightCache{valid: true, n: n, table: table}
	return table, nil
}

// InitializeField returns a fresh random field drawn from the model's source.
func (m *Model) InitializeField(w, h int) *Bitmap {
	return InitializeField(w, h, m.rng)
}

// Iterate runs changes update attempts against field using the weights for
// pattern size n.
func (m *Model) Iterate(field *Bitmap, n int, temperature float64, changes int) error {
	_, err := m.IterateStats(field, n, temperature, changes)
	return err
}

// IterateStats is Iterate that also reports how many attempts were accepted.
func (m *Model) IterateStats(field *Bitmap, n int, temperature float64, changes int) (Stats, error) {
	if field == nil {
		return Stats{}, ErrNilField
	}
	if math.IsNaN(temperature) || temperature <= 0 {
		return Stats{}, fmt.Errorf("%w: got %v", ErrTemperature, temperature)
	}
	table, err := m.Weights(n)
	if err != nil {
		return Stats{}, err
	}
	return IterateStats(field, table, temperature, changes, m.rng), nil
}
