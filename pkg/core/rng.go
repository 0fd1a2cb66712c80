package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1). The method value r.Float64
// satisfies convchain.RandomSource.
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Sequence replays a fixed list of draws, wrapping around when exhausted.
// It exists so synthesis runs can be reproduced draw for draw.
type Sequence struct {
	values []float64
	next   int
	draws  int
}

// NewSequence returns a Sequence over a copy of values. An empty list always
// yields 0.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: append([]float64(nil), values...)}
}

// Float64 returns the next value in the sequence.
func (s *Sequence) Float64() float64 {
	s.draws++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}

// Draws reports how many values have been consumed so far.
func (s *Sequence) Draws() int { return s.draws }

// Reset rewinds the sequence and clears the draw counter.
func (s *Sequence) Reset() {
	s.next = 0
	s.draws = 0
}
