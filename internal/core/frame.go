package core

// Frame stores a byte-per-cell copy of a boolean grid in row-major order,
// 1 for set cells and 0 otherwise. Renderers consume it through Sim.Cells.
type Frame struct {
	W, H int
	data []uint8
}

// NewFrame allocates a frame with the given dimensions.
func NewFrame(w, h int) *Frame {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Frame{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice.
func (f *Frame) Cells() []uint8 { return f.data }

// Load copies cells into the frame. Extra cells on either side are ignored.
func (f *Frame) Load(cells []bool) {
	for i := range f.data {
		if i < len(cells) && cells[i] {
			f.data[i] = 1
			continue
		}
		f.data[i] = 0
	}
}
