package convchain

import (
	"slices"
	"testing"

	"convchain/pkg/core"
)

func TestInitializeFieldThreshold(t *testing.T) {
	seq := core.NewSequence(0.2, 0.7, 0.5, 0.9)
	field := InitializeField(2, 2, seq.Float64)

	want := []bool{false, true, false, true}
	if !slices.Equal(field.Cells(), want) {
		t.Fatalf("cells = %v, want %v", field.Cells(), want)
	}
	if seq.Draws() != 4 {
		t.Fatalf("draws = %d, want 4", seq.Draws())
	}
}

func TestIterateUnitRatioAlwaysFlips(t *testing.T) {
	table, err := NewUniformWeights(2, 1)
	if err != nil {
		t.Fatalf("NewUniformWeights: %v", err)
	}
	field := NewBitmap(2, 2)
	// Ratio is exactly 1, so each attempt consumes only its position draw.
	seq := core.NewSequence(0.0, 0.3, 0.6, 0.9)

	st := IterateStats(field, table, 0.5, 4, seq.Float64)

	if !slices.Equal(field.Cells(), []bool{true, true, true, true}) {
		t.Fatalf("cells = %v, want all flipped", field.Cells())
	}
	if seq.Draws() != 4 {
		t.Fatalf("draws = %d, want 4 (one per attempt)", seq.Draws())
	}
	if st.Attempts != 4 || st.Flips != 4 || st.Forced != 4 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestIterateTemperatureSharpensRejection(t *testing.T) {
	// n=1 weights from this sample are [24 8], so turning a false cell true
	// has ratio 1/3.
	sample := mustBitmap(t, 2, 2, []bool{true, false, false, false})
	table, err := BuildWeights(sample, 1)
	if err != nil {
		t.Fatalf("BuildWeights: %v", err)
	}

	field := NewBitmap(2, 2)
	Iterate(field, table, 1, 1, core.NewSequence(0.0, 0.3).Float64)
	if !field.At(0, 0) {
		t.Fatal("temperature 1: draw 0.3 < 1/3 should flip")
	}

	field = NewBitmap(2, 2)
	Iterate(field, table, 0.5, 1, core.NewSequence(0.0, 0.3).Float64)
	if field.At(0, 0) {
		t.Fatal("temperature 0.5: draw 0.3 >= 1/9 should not flip")
	}

	field = NewBitmap(2, 2)
	Iterate(field, table, 4, 1, core.NewSequence(0.0, 0.7).Float64)
	if !field.At(0, 0) {
		t.Fatal("temperature 4: draw 0.7 < (1/3)^0.25 should flip")
	}
}

func TestIterateZeroChanges(t *testing.T) {
	table, _ := NewUniformWeights(2, 1)
	field := NewBitmap(3, 3)
	seq := core.NewSequence(0.5)
	Iterate(field, table, 1, 0, seq.Float64)
	if seq.Draws() != 0 || field.Count() != 0 {
		t.Fatalf("zero changes consumed %d draws and set %d cells", seq.Draws(), field.Count())
	}
}

func TestIteratePullsTowardSample(t *testing.T) {
	sample := NewBitmap(4, 4)
	table, err := BuildWeights(sample, 2)
	if err != nil {
		t.Fatalf("BuildWeights: %v", err)
	}
	rng := core.NewRNG(7)
	field := InitializeField(12, 12, rng.Float64)
	initial := field.Count()
	if initial == 0 {
		t.Fatal("expected random field to contain set cells")
	}

	Iterate(field, table, 0.5, 50000, rng.Float64)

	if got := field.Count(); got*2 >= initial {
		t.Fatalf("set cells %d -> %d, expected the empty sample to clear most of them", initial, got)
	}
}

func TestIterateWindowLargerThanField(t *testing.T) {
	table, err := BuildWeights(barsSample(t), 3)
	if err != nil {
		t.Fatalf("BuildWeights: %v", err)
	}
	field := InitializeField(2, 1, core.NewRNG(3).Float64)
	Iterate(field, table, 0.5, 200, core.NewRNG(4).Float64)
	if len(field.Cells()) != 2 {
		t.Fatalf("field resized to %d cells", len(field.Cells()))
	}
}

func TestStatsAcceptanceRate(t *testing.T) {
	var st Stats
	if st.AcceptanceRate() != 0 {
		t.Fatal("empty stats should report zero acceptance")
	}
	st.Add(Stats{Attempts: 4, Flips: 1, Forced: 1})
	st.Add(Stats{Attempts: 4, Flips: 3})
	if st.AcceptanceRate() != 0.5 || st.Forced != 1 {
		t.Fatalf("stats = %+v", st)
	}
}
