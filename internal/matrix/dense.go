package matrix

import "gonum.org/v1/gonum/mat"

// FromDense copies a gonum dense matrix into a fresh jagged matrix.
func FromDense(d *mat.Dense) Matrix[float64] {
	rows, cols := d.Dims()
	m := Zeros[float64](rows, cols)
	for i := 0; i < rows; i++ {
		mat.Row(m[i], i, d)
	}
	return m
}

// ToDense copies a rectangular jagged matrix into a gonum dense matrix.
// Zero-dimension matrices map to the empty dense matrix, which gonum
// will not allocate directly.
func ToDense(m Matrix[float64]) *mat.Dense {
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(rows, cols, Flatten(m, RowMajor))
}
