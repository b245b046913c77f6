package series

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/voltlab/voltseries/errs"
)

// Table is an immutable rectangular block of float64 cells stored in
// row-major order. It backs the Series container and is what 2-D slicing
// returns.
type Table struct {
	cells []float64
	rows  int
	cols  int
}

func newTable(cells []float64, rows, cols int) *Table {
	return &Table{cells: cells, rows: rows, cols: cols}
}

// Dims returns the number of rows and columns.
func (t *Table) Dims() (rows, cols int) {
	return t.rows, t.cols
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return t.rows
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return t.cols
}

// At returns the cell at row i, column j.
func (t *Table) At(i, j int) (float64, error) {
	if i < 0 || i >= t.rows {
		return 0, fmt.Errorf("%w: row %d of %d", errs.ErrRowOutOfRange, i, t.rows)
	}
	if j < 0 || j >= t.cols {
		return 0, fmt.Errorf("%w: column %d of %d", errs.ErrColOutOfRange, j, t.cols)
	}

	return t.cells[i*t.cols+j], nil
}

// Row returns a copy of row i, a sequence of length NumCols.
func (t *Table) Row(i int) ([]float64, error) {
	if i < 0 || i >= t.rows {
		return nil, fmt.Errorf("%w: row %d of %d", errs.ErrRowOutOfRange, i, t.rows)
	}

	row := make([]float64, t.cols)
	copy(row, t.cells[i*t.cols:(i+1)*t.cols])

	return row, nil
}

// Col returns a copy of column j, a sequence of length NumRows.
func (t *Table) Col(j int) ([]float64, error) {
	if j < 0 || j >= t.cols {
		return nil, fmt.Errorf("%w: column %d of %d", errs.ErrColOutOfRange, j, t.cols)
	}

	col := make([]float64, t.rows)
	for i := 0; i < t.rows; i++ {
		col[i] = t.cells[i*t.cols+j]
	}

	return col, nil
}

// Slice returns the sub-table covering rows [r0, r1) and columns [c0, c1),
// with shape (r1-r0, c1-c0). The bounds follow the usual half-open slicing
// rules; empty ranges are allowed.
func (t *Table) Slice(r0, r1, c0, c1 int) (*Table, error) {
	if r0 < 0 || r1 > t.rows || r0 > r1 {
		return nil, fmt.Errorf("%w: rows [%d:%d) of %d", errs.ErrRowOutOfRange, r0, r1, t.rows)
	}
	if c0 < 0 || c1 > t.cols || c0 > c1 {
		return nil, fmt.Errorf("%w: columns [%d:%d) of %d", errs.ErrColOutOfRange, c0, c1, t.cols)
	}

	rows := r1 - r0
	cols := c1 - c0
	cells := make([]float64, 0, rows*cols)
	for i := r0; i < r1; i++ {
		cells = append(cells, t.cells[i*t.cols+c0:i*t.cols+c1]...)
	}

	return newTable(cells, rows, cols), nil
}

// All returns an iterator over (index, row) pairs in row order.
//
// The iteration is lazy and restartable: each call to the returned sequence
// performs one full pass over the rows, and the yielded row slices are fresh
// copies the consumer may keep.
func (t *Table) All() iter.Seq2[int, []float64] {
	return func(yield func(int, []float64) bool) {
		for i := 0; i < t.rows; i++ {
			row := make([]float64, t.cols)
			copy(row, t.cells[i*t.cols:(i+1)*t.cols])
			if !yield(i, row) {
				return
			}
		}
	}
}

// Raw renders the table one row per line with space-separated fields in raw
// numeric formatting. This is the machine-oriented rendering; see
// Series.String for the human-oriented one.
func (t *Table) Raw() string {
	var sb strings.Builder
	for i := 0; i < t.rows; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := 0; j < t.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(t.cells[i*t.cols+j], 'g', -1, 64))
		}
	}

	return sb.String()
}
