// Package samples provides small example bitmaps and a text format for them.
package samples

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"convchain/pkg/convchain"
)

var registry = map[string]string{}

// Register adds a text sample under name. Invalid art panics at init time.
func Register(name, art string) {
	if name == "" {
		return
	}
	if _, err := Parse(art); err != nil {
		panic(fmt.Sprintf("samples: %s: %v", name, err))
	}
	registry[name] = art
}

// Get parses the sample registered under name.
func Get(name string) (*convchain.Bitmap, error) {
	art, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown sample %q", name)
	}
	return Parse(art)
}

// Names lists registered samples in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads a text sample from path.
func Load(path string) (*convchain.Bitmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	b, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Parse reads rows of '#', 'X' or '1' (set) and '.', '0' or ' ' (clear).
// Empty leading and trailing lines are ignored; a line of spaces is a row of
// clear cells. Every row must have the same width.
func Parse(text string) (*convchain.Bitmap, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, errors.New("empty sample")
	}

	w := len(lines[0])
	cells := make([]bool, 0, w*len(lines))
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("row %d has width %d, want %d", y, len(line), w)
		}
		for x, c := range line {
			switch c {
			case '#', 'X', '1':
				cells = append(cells, true)
			case '.', '0', ' ':
				cells = append(cells, false)
			default:
				return nil, fmt.Errorf("row %d col %d: unexpected %q", y, x, c)
			}
		}
	}
	return convchain.FromCells(w, len(lines), cells)
}

// Format renders b in the Parse format.
func Format(b *convchain.Bitmap) string {
	var sb strings.Builder
	sb.Grow((b.W + 1) * b.H)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if b.At(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
