package matrix

// Diagonal creates a size×size matrix with value on the main diagonal
// and zeros elsewhere.
func Diagonal[T Numeric](size int, value T) Matrix[T] {
	return DiagonalRect(size, size, value)
}

// DiagonalRect creates a rows×cols matrix with value at (i, i) for
// i < min(rows, cols) and zeros elsewhere.
func DiagonalRect[T Numeric](rows, cols int, value T) Matrix[T] {
	return DiagonalInto(Zeros[T](rows, cols), value)
}

// DiagonalVec creates a square matrix of size len(values) with the
// diagonal populated elementwise from values.
func DiagonalVec[T Numeric](values []T) Matrix[T] {
	return DiagonalRectVec(len(values), len(values), values)
}

// DiagonalRectVec creates a rows×cols matrix with the diagonal
// populated from values. Exactly min(rows, cols, len(values)) cells are
// written: the shortest of the three dimensions governs, and excess
// values or excess shape are simply not touched, never an error.
func DiagonalRectVec[T Numeric](rows, cols int, values []T) Matrix[T] {
	return DiagonalVecInto(Zeros[T](rows, cols), values)
}

// Identity creates the size×size float64 identity matrix.
func Identity(size int) Matrix[float64] {
	return Diagonal(size, 1.0)
}

// DiagonalInto writes value at (i, i) for i < min(rows, cols) of
// result. Off-diagonal cells are left untouched; supply a
// zero-initialized buffer for a pure diagonal matrix.
func DiagonalInto[T Numeric](result Matrix[T], value T) Matrix[T] {
	n := min(result.Rows(), result.Cols())
	for i := 0; i < n; i++ {
		result[i][i] = value
	}
	return result
}

// DiagonalVecInto writes values elementwise onto result's diagonal,
// clipped to min(rows, cols, len(values)). No cell outside the written
// diagonal prefix is touched.
func DiagonalVecInto[T Numeric](result Matrix[T], values []T) Matrix[T] {
	n := min(result.Rows(), result.Cols(), len(values))
	for i := 0; i < n; i++ {
		result[i][i] = values[i]
	}
	return result
}
