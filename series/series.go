// Package series provides the validated container for time/value
// measurements with an optional per-sample uncertainty column.
//
// A Series is a rectangular float64 table with exactly 2 or 3 columns in
// fixed order: time, value, uncertainty. The column count is decided at
// construction and never changes; instances are immutable afterwards and
// safe for concurrent readers.
//
// Interpolation is derived on demand: Spline builds a cubic interpolating
// spline through the (time, value) pairs whenever at least four rows exist.
package series

import (
	"encoding/binary"
	"fmt"
	"io"
	"iter"
	"math"
	"os"

	"github.com/rs/zerolog"

	"github.com/voltlab/voltseries/compress"
	"github.com/voltlab/voltseries/errs"
	"github.com/voltlab/voltseries/internal/hash"
	"github.com/voltlab/voltseries/interp"
	"github.com/voltlab/voltseries/record"
)

// Column indices of a Series table.
const (
	ColTime        = 0
	ColValue       = 1
	ColUncertainty = 2
)

// diag receives the spline-precondition diagnostic mandated alongside the
// returned error.
var diag = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Series is the validated table of time/value[/uncertainty] observations.
type Series struct {
	tbl *Table
}

// New builds a two-column series from equal-length time and value
// sequences. It fails with errs.ErrLengthMismatch when the lengths differ.
// The inputs are copied; later changes to them do not affect the series.
func New(times, values []float64) (*Series, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("%w: %d times, %d values", errs.ErrLengthMismatch, len(times), len(values))
	}

	return &Series{tbl: stack(times, values, nil, false)}, nil
}

// NewWithUncertainties builds a three-column series. All three sequences
// must have the same length.
func NewWithUncertainties(times, values, uncerts []float64) (*Series, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("%w: %d times, %d values", errs.ErrLengthMismatch, len(times), len(values))
	}
	if len(uncerts) != len(times) {
		return nil, fmt.Errorf("%w: %d rows, %d uncertainties", errs.ErrLengthMismatch, len(times), len(uncerts))
	}

	return &Series{tbl: stack(times, values, uncerts, true)}, nil
}

// FromReader parses tab-separated observations from r and builds a series.
// The uncertainty column is included only when at least one retained line
// carried a third field; if only some lines did, construction fails with
// errs.ErrLengthMismatch because the column would be ragged.
func FromReader(r io.Reader, opts ...record.Option) (*Series, error) {
	res, err := record.Parse(r, opts...)
	if err != nil {
		return nil, err
	}
	if res.HasUncertainties() {
		return NewWithUncertainties(res.Times, res.Values, res.Uncerts)
	}

	return New(res.Times, res.Values)
}

// FromFile reads observations from the named file, transparently
// decompressing gzip, zstd, s2, or lz4 input based on the file extension.
func FromFile(path string, opts ...record.Option) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	zr, err := compress.NewReader(f, compress.Detect(path))
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer zr.Close()

	return FromReader(zr, opts...)
}

func stack(times, values, uncerts []float64, withUncert bool) *Table {
	cols := 2
	if withUncert {
		cols = 3
	}
	cells := make([]float64, 0, len(times)*cols)
	for i := range times {
		cells = append(cells, times[i], values[i])
		if withUncert {
			cells = append(cells, uncerts[i])
		}
	}

	return newTable(cells, len(times), cols)
}

// Times returns a copy of the time column.
func (s *Series) Times() []float64 {
	col, _ := s.tbl.Col(ColTime)
	return col
}

// Values returns a copy of the value column.
func (s *Series) Values() []float64 {
	col, _ := s.tbl.Col(ColValue)
	return col
}

// Uncertainties returns a copy of the uncertainty column. On a two-column
// series it fails with errs.ErrNoUncertainty, never with the generic
// out-of-range kind, so callers can branch on the absence of uncertainty
// data as a first-class condition.
func (s *Series) Uncertainties() ([]float64, error) {
	if s.tbl.NumCols() < 3 {
		return nil, errs.ErrNoUncertainty
	}

	col, _ := s.tbl.Col(ColUncertainty)

	return col, nil
}

// NumRows returns the number of observations.
func (s *Series) NumRows() int {
	return s.tbl.NumRows()
}

// NumCols returns the number of columns, either 2 or 3.
func (s *Series) NumCols() int {
	return s.tbl.NumCols()
}

// Len returns the number of observations. It equals NumRows.
func (s *Series) Len() int {
	return s.tbl.NumRows()
}

// Table returns the underlying rectangular table.
func (s *Series) Table() *Table {
	return s.tbl
}

// At returns the cell at row i, column j.
func (s *Series) At(i, j int) (float64, error) {
	return s.tbl.At(i, j)
}

// Row returns row i as a sequence of length NumCols.
func (s *Series) Row(i int) ([]float64, error) {
	return s.tbl.Row(i)
}

// Slice returns the sub-table covering rows [r0, r1) and columns [c0, c1).
func (s *Series) Slice(r0, r1, c0, c1 int) (*Table, error) {
	return s.tbl.Slice(r0, r1, c0, c1)
}

// All returns a lazy, restartable iterator over (index, row) pairs in row
// order. Iterating twice yields identical results.
func (s *Series) All() iter.Seq2[int, []float64] {
	return s.tbl.All()
}

// Spline builds a cubic interpolating spline through the (time, value)
// pairs. It is constructed on demand and not cached.
//
// Fewer than interp.MinPoints rows fail with errs.ErrInsufficientPoints and
// emit a diagnostic. Times that are not strictly increasing fail with
// errs.ErrUnsortedTimes; the series itself never sorts or deduplicates.
func (s *Series) Spline() (*interp.Spline, error) {
	sp, err := interp.NewSpline(s.Times(), s.Values())
	if err != nil {
		diag.Warn().Int("rows", s.NumRows()).Err(err).Msg("cannot build spline")
		return nil, err
	}

	return sp, nil
}

// Interpolate evaluates the cubic spline at time t.
func (s *Series) Interpolate(t float64) (float64, error) {
	sp, err := s.Spline()
	if err != nil {
		return 0, err
	}

	return sp.Eval(t), nil
}

// InterpolateAll evaluates the cubic spline at every time in ts.
func (s *Series) InterpolateAll(ts []float64) ([]float64, error) {
	sp, err := s.Spline()
	if err != nil {
		return nil, err
	}

	return sp.EvalAll(ts), nil
}

// Fingerprint returns the xxHash64 of the table shape and raw cell bytes.
// Equal series produce equal fingerprints, making it a cheap stable
// identifier for a dataset.
func (s *Series) Fingerprint() uint64 {
	buf := make([]byte, 0, 8+len(s.tbl.cells)*8)
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], uint64(s.tbl.cols))
	buf = append(buf, tmp[:]...)
	for _, v := range s.tbl.cells {
		binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(v))
		buf = append(buf, tmp[:]...)
	}

	return hash.Sum64(buf)
}
