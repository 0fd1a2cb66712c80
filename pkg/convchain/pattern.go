package convchain

// Pattern is an n×n window flattened row-major (x innermost).
type Pattern []bool

// ExtractPattern copies the n×n window anchored at (x, y), wrapping on both
// axes.
func ExtractPattern(b *Bitmap, x, y, n int) Pattern {
	return buildPattern(n, func(dx, dy int) bool { return b.At(x+dx, y+dy) })
}

func buildPattern(n int, f func(x, y int) bool) Pattern {
	p := make(Pattern, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			p[x+y*n] = f(x, y)
		}
	}
	return p
}

// Size returns the side length of the square pattern.
func (p Pattern) Size() int {
	n := 0
	for n*n < len(p) {
		n++
	}
	return n
}

// Rotate returns the pattern turned by 90°: cell (x, y) of the result is cell
// (n-1-y, x) of p.
func (p Pattern) Rotate() Pattern {
	n := p.Size()
	return buildPattern(n, func(x, y int) bool { return p[n-1-y+x*n] })
}

// Reflect returns the pattern mirrored horizontally: cell (x, y) of the
// result is cell (n-1-x, y) of p.
func (p Pattern) Reflect() Pattern {
	n := p.Size()
	return buildPattern(n, func(x, y int) bool { return p[n-1-x+y*n] })
}

// Orbit returns the eight dihedral images of p: the pattern and its three
// successive rotations, followed by the reflection of each of those. Images
// may repeat.
func (p Pattern) Orbit() [8]Pattern {
	var o [8]Pattern
	o[0] = p
	for i := 1; i < 4; i++ {
		o[i] = o[i-1].Rotate()
	}
	for i := 0; i < 4; i++ {
		o[i+4] = o[i].Reflect()
	}
	return o
}

// Index encodes the pattern as an integer with the first cell as the most
// significant bit.
func (p Pattern) Index() int {
	idx := 0
	for _, c := range p {
		idx <<= 1
		if c {
			idx |= 1
		}
	}
	return idx
}

// placeValue is the bit weight of window cell (dx, dy) under Index.
func placeValue(n, dx, dy int) int {
	return 1 << (n*n - 1 - (dx + dy*n))
}
