package matrix

// Matrix is a jagged two-dimensional collection: an ordered slice of
// independently owned row slices. Rows may differ in length. Operations
// that require a rectangular shape document that precondition and do
// not validate it; violating it produces per-row misbehavior or a
// bounds panic, never a silent repair.
//
// A Matrix is its rows: converting a [][]T to a Matrix[T] shares
// storage, and the package never retains a reference to a matrix beyond
// the call that produced or mutated it.
type Matrix[T Numeric] [][]T

// Rows returns the number of rows.
func (m Matrix[T]) Rows() int { return len(m) }

// Cols returns the length of the first row, or 0 for an empty matrix.
// Meaningful only for rectangular matrices.
func (m Matrix[T]) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// At returns the element at (i, j).
func (m Matrix[T]) At(i, j int) T { return m[i][j] }

// Set stores v at (i, j).
func (m Matrix[T]) Set(i, j int, v T) { m[i][j] = v }

// Clone returns a deep copy with freshly allocated rows.
func (m Matrix[T]) Clone() Matrix[T] {
	out := make(Matrix[T], len(m))
	for i, row := range m {
		out[i] = make([]T, len(row))
		copy(out[i], row)
	}
	return out
}

// Index is a (row, column) coordinate within a matrix.
type Index struct {
	Row, Col int
}

// Indices enumerates every valid coordinate of m in row-major order:
// all columns of row 0 left to right, then row 1, and so on. Each row
// is enumerated at its own length, so the result is correct for
// genuinely jagged matrices.
func Indices[T Numeric](m Matrix[T]) []Index {
	n := 0
	for _, row := range m {
		n += len(row)
	}
	out := make([]Index, 0, n)
	for i, row := range m {
		for j := range row {
			out = append(out, Index{Row: i, Col: j})
		}
	}
	return out
}
