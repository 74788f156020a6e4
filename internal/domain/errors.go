package domain

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is against the typed errors below.
var (
	ErrDataLoad        = errors.New("data load failed")
	ErrInvalidSampling = errors.New("invalid sampling")
	ErrEmptySeries     = errors.New("empty series")
	ErrRender          = errors.New("render failed")
)

// DataLoadError reports a missing, unreadable or malformed input file.
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

func (e *DataLoadError) Is(target error) bool { return target == ErrDataLoad }

// InvalidSamplingError reports a time vector that cannot yield a
// sampling interval: fewer than two samples or a non-positive first step.
type InvalidSamplingError struct {
	Samples int
	DT      float64
}

func (e *InvalidSamplingError) Error() string {
	if e.Samples < 2 {
		return fmt.Sprintf("invalid sampling: need at least 2 time samples, got %d", e.Samples)
	}
	return fmt.Sprintf("invalid sampling: dt=%g must be positive", e.DT)
}

func (e *InvalidSamplingError) Is(target error) bool { return target == ErrInvalidSampling }

// EmptySeriesError reports a series with no samples.
type EmptySeriesError struct {
	Series string
}

func (e *EmptySeriesError) Error() string {
	return fmt.Sprintf("%s series is empty", e.Series)
}

func (e *EmptySeriesError) Is(target error) bool { return target == ErrEmptySeries }

// RenderError reports a plot that could not be drawn or written.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

func (e *RenderError) Is(target error) bool { return target == ErrRender }
