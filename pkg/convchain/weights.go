package convchain

import "fmt"

// MaxPatternSize bounds n. A table holds 2^(n*n) float64 entries, so n=5
// already costs 256 MiB; anything larger is not allocatable in practice.
const MaxPatternSize = 5

// unseenWeight replaces zero counts so every ratio denominator is positive.
const unseenWeight = 0.1

// WeightTable maps every n×n pattern encoding to a strictly positive weight.
type WeightTable struct {
	N       int
	Weights []float64
}

// ValidatePatternSize reports ErrPatternSize unless 1 <= n <= MaxPatternSize.
func ValidatePatternSize(n int) error {
	if n < 1 || n > MaxPatternSize {
		return fmt.Errorf("%w: n=%d, want 1..%d", ErrPatternSize, n, MaxPatternSize)
	}
	return nil
}

// BuildWeights counts every toroidal n×n window of sample together with its
// eight symmetry images. Entries that were never observed are set to 0.1.
func BuildWeights(sample *Bitmap, n int) (*WeightTable, error) {
	if sample == nil {
		return nil, ErrNilField
	}
	if err := ValidatePatternSize(n); err != nil {
		return nil, err
	}
	weights := make([]float64, 1<<(n*n))
	for y := 0; y < sample.H; y++ {
		for x := 0; x < sample.W; x++ {
			for _, p := range ExtractPattern(sample, x, y, n).Orbit() {
				weights[p.Index()] += 1
			}
		}
	}
	for i, w := range weights {
		if w <= 0 {
			weights[i] = unseenWeight
		}
	}
	return &WeightTable{N: n, Weights: weights}, nil
}

// NewUniformWeights returns a table in which every pattern weighs w. With
// equal weights every proposed flip has ratio 1 and is accepted.
func NewUniformWeights(n int, w float64) (*WeightTable, error) {
	if err := ValidatePatternSize(n); err != nil {
		return nil, err
	}
	if !(w > 0) {
		return nil, fmt.Errorf("convchain: uniform weight %v must be positive", w)
	}
	weights := make([]float64, 1<<(n*n))
	for i := range weights {
		weights[i] = w
	}
	return &WeightTable{N: n, Weights: weights}, nil
}

// Ratio returns weight(to)/weight(from).
func (t *WeightTable) Ratio(from, to int) float64 {
	return t.Weights[to] / t.Weights[from]
}

// Len returns the number of entries, 2^(N*N).
func (t *WeightTable) Len() int { return len(t.Weights) }
