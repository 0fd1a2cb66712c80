package convchain

import "fmt"

// Bitmap stores a 2D grid of boolean cells in row-major order. Coordinates
// passed to At, Set and Flip wrap toroidally.
type Bitmap struct {
	W, H  int
	cells []bool
}

// NewBitmap allocates an all-false bitmap with the given dimensions.
func NewBitmap(w, h int) *Bitmap {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Bitmap{W: w, H: h, cells: make([]bool, w*h)}
}

// FromCells builds a bitmap from a row-major copy of cells. The length must
// match w*h exactly; nothing is truncated or padded.
func FromCells(w, h int, cells []bool) (*Bitmap, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrSampleSize, w, h)
	}
	if len(cells) != w*h {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrSampleSize, len(cells), w, h)
	}
	return &Bitmap{W: w, H: h, cells: append([]bool(nil), cells...)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (b *Bitmap) Cells() []bool { return b.cells }

// Index returns the linear slice index for in-range coordinates (x, y).
func (b *Bitmap) Index(x, y int) int { return x + y*b.W }

// Wrap applies toroidal wrapping to the provided coordinates.
func (b *Bitmap) Wrap(x, y int) (int, int) {
	x = (x%b.W + b.W) % b.W
	y = (y%b.H + b.H) % b.H
	return x, y
}

// At reports the cell value at (x, y) after wrapping.
func (b *Bitmap) At(x, y int) bool {
	x, y = b.Wrap(x, y)
	return b.cells[b.Index(x, y)]
}

// Set assigns the cell at (x, y) after wrapping.
func (b *Bitmap) Set(x, y int, v bool) {
	x, y = b.Wrap(x, y)
	b.cells[b.Index(x, y)] = v
}

// Flip inverts the cell at (x, y) after wrapping.
func (b *Bitmap) Flip(x, y int) {
	x, y = b.Wrap(x, y)
	i := b.Index(x, y)
	b.cells[i] = !b.cells[i]
}

// Count returns the number of true cells.
func (b *Bitmap) Count() int {
	n := 0
	for _, c := range b.cells {
		if c {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{W: b.W, H: b.H, cells: append([]bool(nil), b.cells...)}
}
