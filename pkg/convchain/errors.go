package convchain

import "errors"

var (
	// ErrSampleSize reports a cell sequence whose length does not match the
	// declared width and height.
	ErrSampleSize = errors.New("convchain: sample length does not match dimensions")
	// ErrPatternSize reports a pattern size outside [1, MaxPatternSize].
	ErrPatternSize = errors.New("convchain: pattern size out of range")
	// ErrTemperature reports a non-positive or NaN temperature.
	ErrTemperature = errors.New("convchain: temperature must be positive")
	// ErrNilField reports a missing field or sample bitmap.
	ErrNilField = errors.New("convchain: nil bitmap")
)
