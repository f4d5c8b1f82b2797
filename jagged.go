// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package jagged

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/jagged/internal/matrix"
)

// Type aliases for public API

// Numeric is the constraint for matrix element types.
// Supported kinds: float32, float64, int, int32, int64, uint8.
type Numeric = matrix.Numeric

// Float is the constraint for element types usable with the uniform
// generator.
type Float = matrix.Float

// Matrix is a jagged matrix: an ordered slice of independently owned
// row slices. Rows may differ in length; see the package documentation
// for which operations require rectangular input.
//
// Example:
//
//	m := jagged.Zeros[float32](2, 3)
//	m[1][2] = 42
type Matrix[T Numeric] = matrix.Matrix[T]

// Index is a (row, column) coordinate within a matrix.
type Index = matrix.Index

// Order selects the element order for Reshape, Flatten and FromFlat.
type Order = matrix.Order

// Element orders. ColumnMajor is the zero value and therefore the
// default ordering.
const (
	ColumnMajor Order = matrix.ColumnMajor
	RowMajor    Order = matrix.RowMajor
)

// Generator produces element values for randomized construction.
type Generator[T Numeric] = matrix.Generator[T]

// Uniform is a Generator drawing values uniformly from [min, max).
type Uniform[T Float] = matrix.Uniform[T]

// Sentinel errors carried by panics; match with errors.Is inside a
// recover.
var (
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	ErrUnsupportedType   = matrix.ErrUnsupportedType
)

// Allocation

// Zeros creates a rows×cols matrix with every element at the zero
// value of T.
//
// Example:
//
//	m := jagged.Zeros[float64](2, 3) // [[0 0 0] [0 0 0]]
func Zeros[T Numeric](rows, cols int) Matrix[T] {
	return matrix.Zeros[T](rows, cols)
}

// Ones creates a rows×cols matrix filled with the multiplicative
// identity of T. Panics with ErrUnsupportedType when T is a named type.
func Ones[T Numeric](rows, cols int) Matrix[T] {
	return matrix.Ones[T](rows, cols)
}

// Full creates a rows×cols matrix with every element set to value.
//
// Example:
//
//	m := jagged.Full(2, 2, 3.14)
func Full[T Numeric](rows, cols int, value T) Matrix[T] {
	return matrix.Full(rows, cols, value)
}

// Square creates a size×size matrix filled with value.
func Square[T Numeric](size int, value T) Matrix[T] {
	return matrix.Square(size, value)
}

// FromFlat creates a rows×cols matrix from a flat sequence. With no
// values it is equivalent to Zeros; otherwise exactly rows*cols values
// are required (ErrDimensionMismatch) and fill the result in
// column-major order.
func FromFlat[T Numeric](rows, cols int, values ...T) Matrix[T] {
	return matrix.FromFlat(rows, cols, values...)
}

// FromRows wraps rows as a Matrix without copying.
func FromRows[T Numeric](rows [][]T) Matrix[T] {
	return matrix.FromRows(rows)
}

// ZerosLike allocates a zero-initialized matrix with the same shape as
// m and element type U. Jagged sources keep their per-row lengths.
//
// Example:
//
//	f := jagged.FromRows([][]float32{{1, 2}, {3}})
//	d := jagged.ZerosLike[float64](f) // [[0 0] [0]]
func ZerosLike[U, T Numeric](m Matrix[T]) Matrix[U] {
	return matrix.ZerosLike[U](m)
}

// RowVector returns a 1×N matrix whose single row is values (no copy).
func RowVector[T Numeric](values []T) Matrix[T] {
	return matrix.RowVector(values)
}

// ColumnVector returns an N×1 matrix with one fresh row per value.
func ColumnVector[T Numeric](values []T) Matrix[T] {
	return matrix.ColumnVector(values)
}

// Structural encoding

// OneHotMask encodes a boolean mask as an N×2 binary matrix: row i is
// (1, 0) when mask[i] is true, (0, 1) otherwise.
func OneHotMask[T Numeric](mask []bool) Matrix[T] {
	return matrix.OneHotMask[T](mask)
}

// OneHotMaskInto writes the mask encoding into a caller-supplied
// buffer without clearing it.
func OneHotMaskInto[T Numeric](result Matrix[T], mask []bool) Matrix[T] {
	return matrix.OneHotMaskInto(result, mask)
}

// OneHot encodes an index list one row per entry, sized to the number
// of distinct indices.
//
// Example:
//
//	m := jagged.OneHot[float64]([]int{0, 2, 1}) // 3 distinct → 3 columns
func OneHot[T Numeric](indices []int) Matrix[T] {
	return matrix.OneHot[T](indices)
}

// OneHotN is OneHot with an explicit column count; indices[i] must be
// below cols.
func OneHotN[T Numeric](indices []int, cols int) Matrix[T] {
	return matrix.OneHotN[T](indices, cols)
}

// OneHotInto writes the index-list encoding into a caller-supplied
// buffer without clearing it.
func OneHotInto[T Numeric](result Matrix[T], indices []int) Matrix[T] {
	return matrix.OneHotInto(result, indices)
}

// KHotMask encodes a boolean matrix: every true cell becomes a one.
func KHotMask[T Numeric](mask [][]bool) Matrix[T] {
	return matrix.KHotMask[T](mask)
}

// KHotMaskInto writes the boolean-matrix encoding into a
// caller-supplied buffer without clearing it.
func KHotMaskInto[T Numeric](result Matrix[T], mask [][]bool) Matrix[T] {
	return matrix.KHotMaskInto(result, mask)
}

// KHot encodes per-row column-index lists, sized to the number of
// distinct columns listed anywhere.
func KHot[T Numeric](indices [][]int) Matrix[T] {
	return matrix.KHot[T](indices)
}

// KHotN is KHot with an explicit column count.
func KHotN[T Numeric](indices [][]int, cols int) Matrix[T] {
	return matrix.KHotN[T](indices, cols)
}

// KHotInto writes the index-list encoding into a caller-supplied
// buffer without clearing it.
func KHotInto[T Numeric](result Matrix[T], indices [][]int) Matrix[T] {
	return matrix.KHotInto(result, indices)
}

// Diagonal construction

// Diagonal creates a size×size matrix with value on the main diagonal.
func Diagonal[T Numeric](size int, value T) Matrix[T] {
	return matrix.Diagonal(size, value)
}

// DiagonalRect creates a rows×cols matrix with value on the first
// min(rows, cols) diagonal cells.
func DiagonalRect[T Numeric](rows, cols int, value T) Matrix[T] {
	return matrix.DiagonalRect(rows, cols, value)
}

// DiagonalVec creates a square matrix with its diagonal taken
// elementwise from values.
func DiagonalVec[T Numeric](values []T) Matrix[T] {
	return matrix.DiagonalVec(values)
}

// DiagonalRectVec creates a rows×cols matrix writing exactly
// min(rows, cols, len(values)) diagonal cells; the shortest dimension
// governs and excess is ignored, never an error.
//
// Example:
//
//	m := jagged.DiagonalRectVec(3, 5, []int{7, 8, 9})
//	// [[7 0 0 0 0] [0 8 0 0 0] [0 0 9 0 0]]
func DiagonalRectVec[T Numeric](rows, cols int, values []T) Matrix[T] {
	return matrix.DiagonalRectVec(rows, cols, values)
}

// DiagonalInto writes value onto the diagonal of a caller-supplied
// buffer, clipped to its shape, without clearing it.
func DiagonalInto[T Numeric](result Matrix[T], value T) Matrix[T] {
	return matrix.DiagonalInto(result, value)
}

// DiagonalVecInto writes values onto the diagonal of a caller-supplied
// buffer, clipped to shape and value count, without clearing it.
func DiagonalVecInto[T Numeric](result Matrix[T], values []T) Matrix[T] {
	return matrix.DiagonalVecInto(result, values)
}

// Identity creates the size×size float64 identity matrix.
func Identity(size int) Matrix[float64] {
	return matrix.Identity(size)
}

// Shape transform

// Reshape maps a flat sequence onto a fresh rows×cols matrix in the
// given order. Input length is not validated: short input panics at
// the missing element, a long tail is ignored.
//
// Example:
//
//	m := jagged.Reshape([]int{1, 2, 3, 4, 5, 6}, 2, 3, jagged.RowMajor)
//	// [[1 2 3] [4 5 6]]
func Reshape[T Numeric](values []T, rows, cols int, order Order) Matrix[T] {
	return matrix.Reshape(values, rows, cols, order)
}

// ReshapeInto fills a caller-supplied rectangular buffer from values in
// the given order.
func ReshapeInto[T Numeric](result Matrix[T], values []T, order Order) Matrix[T] {
	return matrix.ReshapeInto(result, values, order)
}

// Flatten reads a rectangular matrix out in the given order into a
// fresh flat slice.
func Flatten[T Numeric](m Matrix[T], order Order) []T {
	return matrix.Flatten(m, order)
}

// Indices enumerates every valid (row, col) coordinate of m in
// row-major order; correct for genuinely jagged matrices.
func Indices[T Numeric](m Matrix[T]) []Index {
	return matrix.Indices(m)
}

// Randomized construction

// Random creates a size×size matrix filled row by row from gen. With
// symmetric set, each row generates its first size/2 cells and mirrors
// them end to start; this is a within-row mirror, not transpose
// symmetry.
func Random[T Numeric](size int, gen Generator[T], symmetric bool) Matrix[T] {
	return matrix.Random(size, gen, symmetric)
}

// RandomInto fills a caller-supplied square buffer the way Random
// does, without clearing it.
func RandomInto[T Numeric](result Matrix[T], gen Generator[T], symmetric bool) Matrix[T] {
	return matrix.RandomInto(result, gen, symmetric)
}

// RandomRect creates a rows×cols matrix with each row independently
// generated at full width.
func RandomRect[T Numeric](rows, cols int, gen Generator[T]) Matrix[T] {
	return matrix.RandomRect(rows, cols, gen)
}

// RandomRectInto fills every row of a caller-supplied buffer from gen.
func RandomRectInto[T Numeric](result Matrix[T], gen Generator[T]) Matrix[T] {
	return matrix.RandomRectInto(result, gen)
}

// RandomUniform creates a rows×cols matrix with values drawn uniformly
// from [min, max).
func RandomUniform[T Float](rows, cols int, minVal, maxVal T) Matrix[T] {
	return matrix.RandomUniform(rows, cols, minVal, maxVal)
}

// NewUniform returns a Uniform generator over [min, max) with a
// non-deterministic seed.
func NewUniform[T Float](minVal, maxVal T) *Uniform[T] {
	return matrix.NewUniform(minVal, maxVal)
}

// NewUniformSeeded returns a Uniform generator with a fixed seed for
// reproducible fills.
func NewUniformSeeded[T Float](minVal, maxVal T, seed int64) *Uniform[T] {
	return matrix.NewUniformSeeded(minVal, maxVal, seed)
}

// Dense conversion

// FromDense copies a gonum dense matrix into a fresh jagged matrix.
func FromDense(d *mat.Dense) Matrix[float64] {
	return matrix.FromDense(d)
}

// ToDense copies a rectangular jagged matrix into a gonum dense
// matrix.
func ToDense(m Matrix[float64]) *mat.Dense {
	return matrix.ToDense(m)
}
