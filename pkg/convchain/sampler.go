package convchain

import "math"

// RandomSource yields uniform values in [0, 1). Method values such as
// (*core.RNG).Float64 satisfy it.
type RandomSource func() float64

// Stats tallies the outcome of a sampling run.
type Stats struct {
	Attempts int
	Flips    int
	// Forced counts flips taken because the likelihood ratio was >= 1,
	// without consulting the random source a second time.
	Forced int
}

// AcceptanceRate returns Flips/Attempts, or 0 before any attempt.
func (s Stats) AcceptanceRate() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Flips) / float64(s.Attempts)
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.Attempts += other.Attempts
	s.Flips += other.Flips
	s.Forced += other.Forced
}

// InitializeField returns a w×h bitmap where each cell, in row-major order,
// is true iff its draw from rng is strictly greater than 0.5.
func InitializeField(w, h int, rng RandomSource) *Bitmap {
	field := NewBitmap(w, h)
	for i := range field.cells {
		field.cells[i] = rng() > 0.5
	}
	return field
}

// Iterate performs exactly changes single-cell update attempts on field.
func Iterate(field *Bitmap, table *WeightTable, temperature float64, changes int, rng RandomSource) {
	IterateStats(field, table, temperature, changes, rng)
}

// IterateStats is Iterate with a tally of accepted flips. It consumes the
// random source identically.
func IterateStats(field *Bitmap, table *WeightTable, temperature float64, changes int, rng RandomSource) Stats {
	var st Stats
	total := field.W * field.H
	for i := 0; i < changes; i++ {
		st.Attempts++
		r := int(rng() * float64(total))
		if r >= total {
			r = total - 1
		}
		x, y := r%field.W, r/field.W

		q := acceptance(field, table, x, y)
		idx := field.Index(x, y)
		if q >= 1 {
			field.cells[idx] = !field.cells[idx]
			st.Flips++
			st.Forced++
			continue
		}
		if temperature != 1 {
			q = math.Pow(q, 1/temperature)
		}
		if rng() < q {
			field.cells[idx] = !field.cells[idx]
			st.Flips++
		}
	}
	return st
}

// acceptance returns the product of weight ratios, flipped over current, for
// every n×n window that covers (x, y).
func acceptance(field *Bitmap, table *WeightTable, x, y int) float64 {
	n := table.N
	q := 1.0
	for sy := y - n + 1; sy <= y+n-1; sy++ {
		for sx := x - n + 1; sx <= x+n-1; sx++ {
			ind, difference := 0, 0
			for dy := 0; dy < n; dy++ {
				for dx := 0; dx < n; dx++ {
					nx, ny := field.Wrap(sx+dx, sy+dy)
					value := field.cells[field.Index(nx, ny)]
					power := placeValue(n, dx, dy)
					if value {
						ind += power
					}
					// A window wider than the field covers the cell more than
					// once; the last occurrence decides the difference.
					if nx == x && ny == y {
						if value {
							difference = power
						} else {
							difference = -power
						}
					}
				}
			}
			q *= table.Ratio(ind, ind-difference)
		}
	}
	return q
}
