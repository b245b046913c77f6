package series

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/voltlab/voltseries/errs"
	"github.com/voltlab/voltseries/record"
)

var (
	sampleTimes   = []float64{0, 1, 2, 3, 4}
	sampleValues  = []float64{1.0, 2.0, 1.5, 3.0, 2.0}
	sampleUncerts = []float64{0.05, 0.05, 0.05, 0.05, 0.05}
)

func quiet() record.Option {
	return record.WithLogger(zerolog.Nop())
}

func TestNew(t *testing.T) {
	s, err := New(sampleTimes, sampleValues)
	require.NoError(t, err)

	require.Equal(t, 5, s.NumRows())
	require.Equal(t, 2, s.NumCols())
	require.Equal(t, 5, s.Len())
}

func TestNew_LengthMismatch(t *testing.T) {
	_, err := New([]float64{0, 1}, []float64{1})
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}

func TestNew_Empty(t *testing.T) {
	s, err := New(nil, nil)
	require.NoError(t, err)

	require.Equal(t, 0, s.NumRows())
	require.Equal(t, 2, s.NumCols())
}

func TestNewWithUncertainties(t *testing.T) {
	s, err := NewWithUncertainties(sampleTimes, sampleValues, sampleUncerts)
	require.NoError(t, err)

	require.Equal(t, 5, s.NumRows())
	require.Equal(t, 3, s.NumCols())
}

func TestNewWithUncertainties_LengthMismatch(t *testing.T) {
	_, err := NewWithUncertainties(sampleTimes, sampleValues, []float64{0.05})
	require.ErrorIs(t, err, errs.ErrLengthMismatch)

	_, err = NewWithUncertainties([]float64{0}, sampleValues, sampleUncerts)
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}

func TestSeries_ColumnAccessors(t *testing.T) {
	s, err := NewWithUncertainties(sampleTimes, sampleValues, sampleUncerts)
	require.NoError(t, err)

	require.Equal(t, sampleTimes, s.Times())
	require.Equal(t, sampleValues, s.Values())

	uncerts, err := s.Uncertainties()
	require.NoError(t, err)
	require.Equal(t, sampleUncerts, uncerts)
}

func TestSeries_AccessorsReturnCopies(t *testing.T) {
	s, err := New(sampleTimes, sampleValues)
	require.NoError(t, err)

	times := s.Times()
	times[0] = 99
	require.Equal(t, 0.0, s.Times()[0])
}

func TestSeries_Uncertainties_MissingColumn(t *testing.T) {
	s, err := New(sampleTimes, sampleValues)
	require.NoError(t, err)

	_, err = s.Uncertainties()
	require.ErrorIs(t, err, errs.ErrNoUncertainty)
	// Must be the dedicated kind, not a generic indexing failure.
	require.NotErrorIs(t, err, errs.ErrColOutOfRange)
	require.NotErrorIs(t, err, errs.ErrRowOutOfRange)
}

func TestSeries_RowAndAt(t *testing.T) {
	s, err := NewWithUncertainties(sampleTimes, sampleValues, sampleUncerts)
	require.NoError(t, err)

	row, err := s.Row(2)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 1.5, 0.05}, row)

	v, err := s.At(3, ColValue)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	_, err = s.Row(5)
	require.ErrorIs(t, err, errs.ErrRowOutOfRange)
}

func TestSeries_Slice(t *testing.T) {
	s, err := NewWithUncertainties(sampleTimes, sampleValues, sampleUncerts)
	require.NoError(t, err)

	sub, err := s.Slice(1, 4, 0, 2)
	require.NoError(t, err)

	rows, cols := sub.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 2, cols)

	row, err := sub.Row(0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2.0}, row)
}

func TestSeries_IterationMatchesRowCount(t *testing.T) {
	s, err := New(sampleTimes, sampleValues)
	require.NoError(t, err)

	count := 0
	for i, row := range s.All() {
		require.Equal(t, count, i)
		require.Len(t, row, 2)
		count++
	}
	require.Equal(t, s.NumRows(), count)
}

func TestFromReader_TwoColumns(t *testing.T) {
	input := "0.0\t1.0\n1.0\t2.0\n2.0\t1.5\n3.0\t3.0\n"

	s, err := FromReader(strings.NewReader(input), quiet())
	require.NoError(t, err)

	require.Equal(t, 4, s.NumRows())
	require.Equal(t, 2, s.NumCols())
}

func TestFromReader_ThreeColumns(t *testing.T) {
	input := "0.0\t1.0\t0.05\n1.0\t2.0\t0.05\n2.0\t1.5\t0.05\n3.0\t3.0\t0.05\n4.0\t2.0\t0.05\n"

	s, err := FromReader(strings.NewReader(input), quiet())
	require.NoError(t, err)

	require.Equal(t, 5, s.NumRows())
	require.Equal(t, 3, s.NumCols())

	v, err := s.Interpolate(2.0)
	require.NoError(t, err)
	require.InDelta(t, 1.5, v, 1e-12)
}

func TestFromReader_OnlyBadLine(t *testing.T) {
	// A lone malformed line yields an empty two-column container, not a
	// failure.
	s, err := FromReader(strings.NewReader("abc\t1.0\n"), quiet())
	require.NoError(t, err)

	require.Equal(t, 0, s.NumRows())
	require.Equal(t, 2, s.NumCols())
}

func TestFromReader_RaggedUncertaintyColumn(t *testing.T) {
	// One line with a third field, one without: the uncertainty column
	// cannot form a rectangular table.
	input := "0.0\t1.0\t0.05\n1.0\t2.0\n"

	_, err := FromReader(strings.NewReader(input), quiet())
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}

func TestFromFile_Plain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	content := "# run 1\n0.0\t1.0\n1.0\t2.0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := FromFile(path, quiet())
	require.NoError(t, err)

	require.Equal(t, 2, s.NumRows())
	require.Equal(t, []float64{0, 1}, s.Times())
}

func TestFromFile_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt.gz")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte("0.0\t1.0\t0.05\n1.0\t2.0\t0.05\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	s, err := FromFile(path, quiet())
	require.NoError(t, err)

	require.Equal(t, 2, s.NumRows())
	require.Equal(t, 3, s.NumCols())
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestSeries_Spline_PassesThroughKnots(t *testing.T) {
	s, err := New(sampleTimes, sampleValues)
	require.NoError(t, err)

	sp, err := s.Spline()
	require.NoError(t, err)

	for i, x := range sampleTimes {
		require.InDelta(t, sampleValues[i], sp.Eval(x), 1e-9, "knot %d", i)
	}
}

func TestSeries_Spline_NotCachedAcrossCalls(t *testing.T) {
	s, err := New(sampleTimes, sampleValues)
	require.NoError(t, err)

	first, err := s.Spline()
	require.NoError(t, err)
	second, err := s.Spline()
	require.NoError(t, err)
	require.NotSame(t, first, second)
}

func TestSeries_Interpolate_InsufficientPoints(t *testing.T) {
	s, err := New([]float64{0, 1, 2}, []float64{1, 2, 3})
	require.NoError(t, err)

	_, err = s.Spline()
	require.ErrorIs(t, err, errs.ErrInsufficientPoints)

	_, err = s.Interpolate(1.5)
	require.ErrorIs(t, err, errs.ErrInsufficientPoints)

	_, err = s.InterpolateAll([]float64{0.5, 1.5})
	require.ErrorIs(t, err, errs.ErrInsufficientPoints)
}

func TestSeries_Interpolate_UnsortedTimes(t *testing.T) {
	s, err := New([]float64{0, 2, 1, 3, 4}, sampleValues)
	require.NoError(t, err)

	_, err = s.Spline()
	require.ErrorIs(t, err, errs.ErrUnsortedTimes)
}

func TestSeries_InterpolateAll(t *testing.T) {
	s, err := New(sampleTimes, sampleValues)
	require.NoError(t, err)

	got, err := s.InterpolateAll(sampleTimes)
	require.NoError(t, err)
	require.Len(t, got, len(sampleTimes))
	for i := range sampleTimes {
		require.InDelta(t, sampleValues[i], got[i], 1e-9)
	}
}

func TestSeries_Fingerprint(t *testing.T) {
	a, err := New(sampleTimes, sampleValues)
	require.NoError(t, err)
	b, err := New(sampleTimes, sampleValues)
	require.NoError(t, err)

	require.Equal(t, a.Fingerprint(), b.Fingerprint())

	c, err := New(sampleTimes, []float64{1.0, 2.0, 1.5, 3.0, 2.1})
	require.NoError(t, err)
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())

	d, err := NewWithUncertainties(sampleTimes, sampleValues, sampleUncerts)
	require.NoError(t, err)
	require.NotEqual(t, a.Fingerprint(), d.Fingerprint())
}
