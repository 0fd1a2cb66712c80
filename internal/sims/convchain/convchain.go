// Package convchain exposes ConvChain synthesis as a steppable simulation.
package convchain

import (
	"fmt"
	"log"
	"strconv"

	"convchain/internal/core"
	"convchain/internal/samples"
	cc "convchain/pkg/convchain"
	pcore "convchain/pkg/core"
)

const (
	minTemperature = 0.05
	maxTemperature = 4
	maxChanges     = 100000
)

// Synth refines a field a batch of attempts at a time.
type Synth struct {
	cfg   Config
	model *cc.Model
	field *cc.Bitmap
	frame *core.Frame

	seed  int64
	stats cc.Stats
	err   error
}

// New returns a Synth for cfg. The named sample must exist.
func New(cfg Config) (*Synth, error) {
	sample, err := samples.Get(cfg.Sample)
	if err != nil {
		return nil, err
	}
	return NewWithSample(cfg, sample)
}

// NewWithSample returns a Synth learning from an explicit bitmap.
func NewWithSample(cfg Config, sample *cc.Bitmap) (*Synth, error) {
	if err := cc.ValidatePatternSize(cfg.N); err != nil {
		return nil, err
	}
	if !(cfg.Temperature > 0) {
		return nil, fmt.Errorf("%w: got %v", cc.ErrTemperature, cfg.Temperature)
	}
	model, err := cc.New(sample)
	if err != nil {
		return nil, err
	}
	s := &Synth{
		cfg:   cfg,
		model: model,
		frame: core.NewFrame(cfg.Width, cfg.Height),
	}
	s.Reset(0)
	return s, nil
}

// Name returns the simulation identifier.
func (s *Synth) Name() string { return "convchain" }

// Size returns the field dimensions.
func (s *Synth) Size() core.Size { return core.Size{W: s.frame.W, H: s.frame.H} }

// Cells exposes the field as 0/1 bytes.
func (s *Synth) Cells() []uint8 { return s.frame.Cells() }

// Field returns the bitmap being refined.
func (s *Synth) Field() *cc.Bitmap { return s.field }

// Stats returns the tally since the last Reset.
func (s *Synth) Stats() cc.Stats { return s.stats }

// Err returns the last sampling error, if any.
func (s *Synth) Err() error { return s.err }

// Reset draws a fresh random field. A zero seed uses the configured one.
func (s *Synth) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	s.seed = effective
	s.model.SetRandomSource(pcore.NewRNG(effective).Float64)
	s.field = s.model.InitializeField(s.frame.W, s.frame.H)
	s.stats = cc.Stats{}
	s.err = nil
	s.frame.Load(s.field.Cells())
}

// Step runs one batch of update attempts.
func (s *Synth) Step() {
	st, err := s.model.IterateStats(s.field, s.cfg.N, s.cfg.Temperature, s.cfg.Changes)
	if err != nil {
		s.err = err
		return
	}
	s.stats.Add(st)
	s.frame.Load(s.field.Cells())
}

// Parameters reports the current configuration and acceptance tally.
func (s *Synth) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				intParam("w", "Width", s.frame.W),
				intParam("h", "Height", s.frame.H),
				int64Param("seed", "Seed", s.seed),
			},
		},
		{
			Name: "Model",
			Params: []core.Parameter{
				{Key: "sample", Label: "Sample", Type: core.ParamTypeText, Value: s.cfg.Sample},
				intParam("n", "Pattern size", s.cfg.N),
				floatParam("temperature", "Temperature", s.cfg.Temperature),
				intParam("changes", "Changes per step", s.cfg.Changes),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				intParam("attempts", "Attempts", s.stats.Attempts),
				intParam("flips", "Flips", s.stats.Flips),
				floatParam("acceptance", "Acceptance", s.stats.AcceptanceRate()),
			},
		},
	}}
}

// ParameterControls lists the values adjustable from the HUD.
func (s *Synth) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "n", Label: "Pattern size", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 4, HasMin: true, HasMax: true},
		{Key: "temperature", Label: "Temperature", Type: core.ParamTypeFloat, Step: 0.05, Min: minTemperature, Max: maxTemperature, HasMin: true, HasMax: true},
		{Key: "changes", Label: "Changes/step", Type: core.ParamTypeInt, Step: 100, Min: 0, Max: maxChanges, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates "n" or "changes".
func (s *Synth) SetIntParameter(key string, value int) bool {
	switch key {
	case "n":
		if cc.ValidatePatternSize(value) != nil {
			return false
		}
		s.cfg.N = value
	case "changes":
		if value < 0 || value > maxChanges {
			return false
		}
		s.cfg.Changes = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates "temperature".
func (s *Synth) SetFloatParameter(key string, value float64) bool {
	if key != "temperature" {
		return false
	}
	if value < minTemperature || value > maxTemperature {
		return false
	}
	s.cfg.Temperature = value
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func init() {
	core.Register("convchain", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		s, err := New(c)
		if err == nil {
			return s
		}
		// FromMap already rejects bad numbers, so only the sample can fail.
		fallback := DefaultConfig().Sample
		log.Printf("convchain: %v; using sample %q", err, fallback)
		c.Sample = fallback
		s, err = New(c)
		if err != nil {
			log.Fatalf("convchain: %v", err)
		}
		return s
	})
}
