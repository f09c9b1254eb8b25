package feature

import "fmt"

// Matrix is a dense row-major float64 matrix. The zero value is an empty
// matrix. Matrix values share their backing storage when copied, so Set on a
// copy writes through; use Clone for an independent matrix.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix returns a zeroed rows×cols matrix.
func NewMatrix(rows, cols int) Matrix {
	return Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// FromRows builds a matrix from row slices, which must all share one width.
func FromRows(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, nil
	}
	cols := len(rows[0])
	m := NewMatrix(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return Matrix{}, fmt.Errorf("row %d has %d columns, want %d", i, len(row), cols)
		}
		copy(m.Row(i), row)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) float64 { return m.data[i*m.cols+j] }

// Set stores v at row i, column j.
func (m Matrix) Set(i, j int, v float64) { m.data[i*m.cols+j] = v }

// Row returns the backing slice for row i. Mutating it writes through to the
// matrix.
func (m Matrix) Row(i int) []float64 {
	start := i * m.cols
	return m.data[start : start+m.cols : start+m.cols]
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	clone := Matrix{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	copy(clone.data, m.data)
	return clone
}
