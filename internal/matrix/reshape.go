package matrix

// Order selects the element order used to map a flat sequence onto a
// rows×cols matrix.
type Order int

// Supported element orders. ColumnMajor is the zero value, making it
// the default wherever an Order is not chosen explicitly.
const (
	// ColumnMajor fills each column top to bottom before advancing to
	// the next column.
	ColumnMajor Order = iota
	// RowMajor fills each row left to right before advancing to the
	// next row.
	RowMajor
)

// String returns a human-readable name for the order.
func (o Order) String() string {
	switch o {
	case ColumnMajor:
		return "column-major"
	case RowMajor:
		return "row-major"
	default:
		return "unknown"
	}
}

// Reshape maps a flat value sequence onto a fresh rows×cols matrix in
// the given order. The input length is not validated: a short input
// panics out of range at the first missing element, and a long input's
// tail is silently ignored.
func Reshape[T Numeric](values []T, rows, cols int, order Order) Matrix[T] {
	return ReshapeInto(Zeros[T](rows, cols), values, order)
}

// ReshapeInto fills result from values in the given order. The shape of
// result governs the fill; result must be rectangular.
func ReshapeInto[T Numeric](result Matrix[T], values []T, order Order) Matrix[T] {
	rows, cols := result.Rows(), result.Cols()
	k := 0
	switch order {
	case RowMajor:
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				result[i][j] = values[k]
				k++
			}
		}
	default:
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				result[i][j] = values[k]
				k++
			}
		}
	}
	return result
}

// Flatten is the inverse of Reshape: it reads a rectangular matrix out
// in the given order into a fresh flat slice.
func Flatten[T Numeric](m Matrix[T], order Order) []T {
	rows, cols := m.Rows(), m.Cols()
	out := make([]T, 0, rows*cols)
	switch order {
	case RowMajor:
		for i := 0; i < rows; i++ {
			out = append(out, m[i]...)
		}
	default:
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				out = append(out, m[i][j])
			}
		}
	}
	return out
}
