package convchain

import (
	"errors"
	"slices"
	"testing"

	"convchain/internal/core"
	cc "convchain/pkg/convchain"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 24
	cfg.Height = 16
	cfg.Changes = 200
	cfg.Seed = 99
	return cfg
}

func TestResetDeterministic(t *testing.T) {
	s, err := New(smallConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	initial := append([]uint8(nil), s.Cells()...)

	s.Step()
	s.Step()
	s.Reset(0)
	if !slices.Equal(initial, s.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if s.Stats().Attempts != 0 {
		t.Fatal("Reset should clear the tally")
	}

	s.Reset(777)
	seeded := append([]uint8(nil), s.Cells()...)
	s.Reset(777)
	if !slices.Equal(seeded, s.Cells()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if slices.Equal(initial, seeded) {
		t.Fatal("different seeds should produce different fields")
	}
}

func TestStepMirrorsField(t *testing.T) {
	s, err := New(smallConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Step()
	if s.Err() != nil {
		t.Fatalf("Step: %v", s.Err())
	}
	if got := s.Stats().Attempts; got != 200 {
		t.Fatalf("attempts = %d, want 200", got)
	}
	for i, c := range s.Field().Cells() {
		want := uint8(0)
		if c {
			want = 1
		}
		if s.Cells()[i] != want {
			t.Fatalf("cell %d: frame %d, field %v", i, s.Cells()[i], c)
		}
	}
}

func TestSetters(t *testing.T) {
	s, err := New(smallConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !s.SetIntParameter("n", 2) || s.cfg.N != 2 {
		t.Fatal("expected n to be adjustable")
	}
	if s.SetIntParameter("n", cc.MaxPatternSize+1) {
		t.Fatal("n above the table bound must be rejected")
	}
	if !s.SetFloatParameter("temperature", 1.5) || s.cfg.Temperature != 1.5 {
		t.Fatal("expected temperature to be adjustable")
	}
	if s.SetFloatParameter("temperature", 0) {
		t.Fatal("temperature must stay positive")
	}
	if s.SetIntParameter("unknown", 1) || s.SetFloatParameter("unknown", 1) {
		t.Fatal("unknown keys must be rejected")
	}

	snap := s.Parameters()
	if p, ok := snap.Lookup("n"); !ok || p.Value != "2" {
		t.Fatalf("snapshot n = %+v, %v", p, ok)
	}
	if p, ok := snap.Lookup("temperature"); !ok || p.Value != "1.5" {
		t.Fatalf("snapshot temperature = %+v, %v", p, ok)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":           "40",
		"h":           "-3",
		"n":           "9",
		"temperature": "0.25",
		"changes":     "10",
		"sample":      "maze",
		"seed":        "5",
	})
	if c.Width != 40 || c.Height != DefaultConfig().Height {
		t.Fatalf("dimensions = %dx%d", c.Width, c.Height)
	}
	if c.N != DefaultConfig().N {
		t.Fatalf("n = %d, out-of-range value should keep default", c.N)
	}
	if c.Temperature != 0.25 || c.Changes != 10 || c.Sample != "maze" || c.Seed != 5 {
		t.Fatalf("config = %+v", c)
	}
}

func TestNewValidates(t *testing.T) {
	cfg := smallConfig()
	cfg.Sample = "missing"
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for unknown sample")
	}
	cfg = smallConfig()
	cfg.N = 0
	if _, err := New(cfg); !errors.Is(err, cc.ErrPatternSize) {
		t.Fatalf("err = %v, want ErrPatternSize", err)
	}
	cfg = smallConfig()
	cfg.Temperature = -1
	if _, err := New(cfg); !errors.Is(err, cc.ErrTemperature) {
		t.Fatalf("err = %v, want ErrTemperature", err)
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["convchain"]
	if !ok {
		t.Fatal("convchain sim not registered")
	}
	sim := factory(map[string]string{"w": "8", "h": "4"})
	if got := sim.Size(); got != (core.Size{W: 8, H: 4}) {
		t.Fatalf("size = %+v", got)
	}
}

func TestParametersReportEffectiveSeed(t *testing.T) {
	s, err := New(smallConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p, ok := s.Parameters().Lookup("seed"); !ok || p.Value != "99" {
		t.Fatalf("seed after New = %+v, %v; want config seed 99", p, ok)
	}
	s.Reset(777)
	if p, ok := s.Parameters().Lookup("seed"); !ok || p.Value != "777" {
		t.Fatalf("seed after Reset(777) = %+v, %v", p, ok)
	}
	s.Reset(0)
	if p, _ := s.Parameters().Lookup("seed"); p.Value != "99" {
		t.Fatalf("seed after Reset(0) = %q, want 99", p.Value)
	}
}

func TestFactoryKeepsOptionsWhenSampleUnknown(t *testing.T) {
	sim := core.Sims()["convchain"](map[string]string{
		"sample": "nope",
		"w":      "10",
		"h":      "6",
		"n":      "2",
	})
	if got := sim.Size(); got != (core.Size{W: 10, H: 6}) {
		t.Fatalf("size = %+v, want 10x6", got)
	}
	snap := sim.(*Synth).Parameters()
	if p, _ := snap.Lookup("sample"); p.Value != DefaultConfig().Sample {
		t.Fatalf("sample = %q, want fallback %q", p.Value, DefaultConfig().Sample)
	}
	if p, _ := snap.Lookup("n"); p.Value != "2" {
		t.Fatalf("n = %q, want 2", p.Value)
	}
}
