// Package render turns synthesized fields into text or pixels.
package render

import (
	"bufio"
	"io"

	"convchain/pkg/convchain"
)

// Glyphs used by Console when the caller passes empty strings.
const (
	DefaultOn  = "█"
	DefaultOff = " "
)

// Console writes b one row per line using on/off for set and clear cells.
func Console(w io.Writer, b *convchain.Bitmap, on, off string) error {
	if on == "" {
		on = DefaultOn
	}
	if off == "" {
		off = DefaultOff
	}
	bw := bufio.NewWriter(w)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			glyph := off
			if b.At(x, y) {
				glyph = on
			}
			if _, err := bw.WriteString(glyph); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
