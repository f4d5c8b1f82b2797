package matrix

import "fmt"

// Zeros creates a rows×cols matrix with every element at the zero value
// of T. Each row is its own allocation.
func Zeros[T Numeric](rows, cols int) Matrix[T] {
	m := make(Matrix[T], rows)
	for i := range m {
		m[i] = make([]T, cols)
	}
	return m
}

// Ones creates a rows×cols matrix filled with the multiplicative
// identity of T. Panics with ErrUnsupportedType when T is not one of
// the base numeric types.
func Ones[T Numeric](rows, cols int) Matrix[T] {
	return Full(rows, cols, one[T]())
}

// Full creates a rows×cols matrix with every element set to value.
func Full[T Numeric](rows, cols int, value T) Matrix[T] {
	m := make(Matrix[T], rows)
	for i := range m {
		row := make([]T, cols)
		for j := range row {
			row[j] = value
		}
		m[i] = row
	}
	return m
}

// Square creates a size×size matrix filled with value.
func Square[T Numeric](size int, value T) Matrix[T] {
	return Full(size, size, value)
}

// FromFlat creates a rows×cols matrix from a flat value sequence. With
// no values it is equivalent to Zeros. Otherwise len(values) must be
// exactly rows*cols, and the values fill the result in column-major
// order, the package default (see Reshape).
func FromFlat[T Numeric](rows, cols int, values ...T) Matrix[T] {
	if len(values) == 0 {
		return Zeros[T](rows, cols)
	}
	if len(values) != rows*cols {
		panic(fmt.Errorf("%w: %d flat values for %d×%d", ErrDimensionMismatch, len(values), rows, cols))
	}
	return Reshape(values, rows, cols, ColumnMajor)
}

// FromRows wraps rows as a Matrix without copying. The result shares
// storage with the argument: a jagged matrix is its row slices.
func FromRows[T Numeric](rows [][]T) Matrix[T] {
	return rows
}

// ZerosLike allocates a zero-initialized matrix with the same row count
// and per-row lengths as m, with element type U. Jagged sources are
// preserved row for row.
func ZerosLike[U, T Numeric](m Matrix[T]) Matrix[U] {
	out := make(Matrix[U], len(m))
	for i, row := range m {
		out[i] = make([]U, len(row))
	}
	return out
}

// RowVector returns a 1×N matrix whose single row is values (no copy).
func RowVector[T Numeric](values []T) Matrix[T] {
	return Matrix[T]{values}
}

// ColumnVector returns an N×1 matrix; each element gets a fresh
// single-element row.
func ColumnVector[T Numeric](values []T) Matrix[T] {
	m := make(Matrix[T], len(values))
	for i, v := range values {
		m[i] = []T{v}
	}
	return m
}
