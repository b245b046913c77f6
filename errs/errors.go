// Package errs defines sentinel errors shared across voltseries packages.
//
// Callers wrap these with fmt.Errorf("%w: ...") to add context while keeping
// errors.Is checks working.
package errs

import "errors"

var (
	// ErrLengthMismatch indicates that input column sequences do not have
	// matching lengths.
	ErrLengthMismatch = errors.New("input sequences have mismatched lengths")

	// ErrNoUncertainty indicates that the optional uncertainty column was
	// requested on a two-column series. It is deliberately distinct from
	// ErrColOutOfRange so callers can treat "no uncertainty data" as a
	// first-class condition rather than an indexing bug.
	ErrNoUncertainty = errors.New("uncertainty column not present")

	// ErrRowOutOfRange indicates a row index outside [0, NumRows).
	ErrRowOutOfRange = errors.New("row index out of range")

	// ErrColOutOfRange indicates a column index outside [0, NumCols).
	ErrColOutOfRange = errors.New("column index out of range")

	// ErrInsufficientPoints indicates that too few data points are available
	// to build a cubic interpolating spline.
	ErrInsufficientPoints = errors.New("insufficient points for spline interpolation")

	// ErrUnsortedTimes indicates that time values are not strictly
	// increasing, which is required for a well-defined interpolant.
	ErrUnsortedTimes = errors.New("time values are not strictly increasing")

	// ErrUnknownFormat indicates an unrecognized input compression format.
	ErrUnknownFormat = errors.New("unknown compression format")
)
