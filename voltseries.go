// Package voltseries ingests tabular time-series measurements, stores them
// in a validated columnar container, and derives a cubic spline interpolant
// for resampling and visualization.
//
// # Basic Usage
//
// Loading measurements from a tab-separated text file:
//
//	data, err := voltseries.FromFile("run42.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(data) // human-oriented row-by-row rendering
//
// Building a series from in-memory sequences and resampling it:
//
//	data, _ := voltseries.New(
//	    []float64{0, 1, 2, 3, 4},
//	    []float64{1.0, 2.0, 1.5, 3.0, 2.0},
//	)
//	v, _ := data.Interpolate(2.5)
//
// Compressed input (.gz, .zst, .s2, .lz4) is decompressed transparently by
// FromFile based on the file extension.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the series
// package, which owns the container semantics. The record package handles
// text parsing with per-line recovery, and the interp package implements
// spline construction and evaluation.
package voltseries

import (
	"io"

	"github.com/voltlab/voltseries/record"
	"github.com/voltlab/voltseries/series"
)

// Series is the validated time/value[/uncertainty] container.
type Series = series.Series

// New builds a two-column series from equal-length time and value
// sequences.
func New(times, values []float64) (*Series, error) {
	return series.New(times, values)
}

// NewWithUncertainties builds a three-column series from equal-length time,
// value, and uncertainty sequences.
func NewWithUncertainties(times, values, uncerts []float64) (*Series, error) {
	return series.NewWithUncertainties(times, values, uncerts)
}

// FromReader parses tab-separated observations from r and builds a series.
func FromReader(r io.Reader, opts ...record.Option) (*Series, error) {
	return series.FromReader(r, opts...)
}

// FromFile reads observations from the named file, transparently
// decompressing compressed input based on the file extension.
func FromFile(path string, opts ...record.Option) (*Series, error) {
	return series.FromFile(path, opts...)
}
