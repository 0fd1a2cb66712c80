package samples

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	art := "#..\n.#.\n"
	b, err := Parse(art)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b.W != 3 || b.H != 2 {
		t.Fatalf("size = %dx%d, want 3x2", b.W, b.H)
	}
	if want := []bool{true, false, false, false, true, false}; !slices.Equal(b.Cells(), want) {
		t.Fatalf("cells = %v, want %v", b.Cells(), want)
	}
	if got := Format(b); got != art {
		t.Fatalf("Format = %q, want %q", got, art)
	}
}

func TestParseRejectsRaggedRows(t *testing.T) {
	if _, err := Parse("##\n#\n"); err == nil {
		t.Fatal("expected error for ragged rows")
	}
	if _, err := Parse("#?\n"); err == nil {
		t.Fatal("expected error for unknown glyph")
	}
	if _, err := Parse("\n\n"); err == nil {
		t.Fatal("expected error for empty sample")
	}
}

func TestBuiltinSamples(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	if !slices.Contains(names, "bars") {
		t.Fatal("bars sample must be registered")
	}
	for _, name := range names {
		if _, err := Get(name); err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
	}
	bars, _ := Get("bars")
	if bars.W != 10 || bars.H != 10 || bars.Count() != 72 {
		t.Fatalf("bars = %dx%d with %d set cells", bars.W, bars.H, bars.Count())
	}
	if _, err := Get("missing"); err == nil {
		t.Fatal("expected error for unknown sample")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte("X0\r\n01\r\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := []bool{true, false, false, true}; !slices.Equal(b.Cells(), want) {
		t.Fatalf("cells = %v, want %v", b.Cells(), want)
	}
}

func TestParseKeepsRowsOfSpaces(t *testing.T) {
	b, err := Parse("   \n # \n   \n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b.W != 3 || b.H != 3 {
		t.Fatalf("size = %dx%d, want 3x3", b.W, b.H)
	}
	if b.Count() != 1 || !b.At(1, 1) {
		t.Fatalf("cells = %v, want only the centre set", b.Cells())
	}

	b, err = Parse("\r\n..\r\n  \r\n\r\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b.W != 2 || b.H != 2 || b.Count() != 0 {
		t.Fatalf("size = %dx%d with %d set, want 2x2 clear", b.W, b.H, b.Count())
	}
}
