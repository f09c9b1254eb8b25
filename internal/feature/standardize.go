package feature

import "math"

// Standardize returns a copy of m with every column shifted to zero mean and
// scaled to unit variance, using the population standard deviation (divide by
// N). A zero-variance column maps to all zeros instead of dividing by zero.
//
// The fit is local to m: statistics are computed from its rows alone and no
// state is carried between calls.
func Standardize(m Matrix) Matrix {
	out := NewMatrix(m.rows, m.cols)
	if m.rows == 0 {
		return out
	}

	n := float64(m.rows)
	for j := 0; j < m.cols; j++ {
		var sum float64
		for i := 0; i < m.rows; i++ {
			sum += m.At(i, j)
		}
		mean := sum / n

		var variance float64
		for i := 0; i < m.rows; i++ {
			d := m.At(i, j) - mean
			variance += d * d
		}
		variance /= n

		if variance == 0 {
			// Column already zeroed in out.
			continue
		}

		std := math.Sqrt(variance)
		for i := 0; i < m.rows; i++ {
			out.Set(i, j, (m.At(i, j)-mean)/std)
		}
	}
	return out
}
