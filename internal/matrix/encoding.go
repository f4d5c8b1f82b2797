package matrix

// OneHotMask encodes a boolean mask as a len(mask)×2 binary matrix:
// row i is (1, 0) when mask[i] is true and (0, 1) when it is false.
func OneHotMask[T Numeric](mask []bool) Matrix[T] {
	return OneHotMaskInto(Zeros[T](len(mask), 2), mask)
}

// OneHotMaskInto writes the binary mask encoding into result, which
// must have at least len(mask) rows of width at least 2. Only the
// marked cell of each row is written: supply a zero-initialized buffer
// for one-hot semantics.
func OneHotMaskInto[T Numeric](result Matrix[T], mask []bool) Matrix[T] {
	unit := one[T]()
	for i, hot := range mask {
		if hot {
			result[i][0] = unit
		} else {
			result[i][1] = unit
		}
	}
	return result
}

// OneHot encodes an index list with one row per entry; row i has a one
// at column indices[i]. The column count is the number of distinct
// values in indices.
func OneHot[T Numeric](indices []int) Matrix[T] {
	return OneHotN[T](indices, distinct(indices))
}

// OneHotN is OneHot with an explicit column count. The caller
// guarantees indices[i] < cols; a violation is a bounds panic, not a
// checked error.
func OneHotN[T Numeric](indices []int, cols int) Matrix[T] {
	return OneHotInto(Zeros[T](len(indices), cols), indices)
}

// OneHotInto writes the index-list encoding into result. Only the
// marked cell of each row is written; the buffer is not cleared first.
func OneHotInto[T Numeric](result Matrix[T], indices []int) Matrix[T] {
	unit := one[T]()
	for i, col := range indices {
		result[i][col] = unit
	}
	return result
}

// KHotMask encodes a full boolean matrix: every true cell of mask sets
// the corresponding output cell to one. The result mirrors the mask's
// shape row for row, jagged masks included.
func KHotMask[T Numeric](mask [][]bool) Matrix[T] {
	result := make(Matrix[T], len(mask))
	for i, row := range mask {
		result[i] = make([]T, len(row))
	}
	return KHotMaskInto(result, mask)
}

// KHotMaskInto writes the boolean-matrix encoding into result. False
// cells are left untouched.
func KHotMaskInto[T Numeric](result Matrix[T], mask [][]bool) Matrix[T] {
	unit := one[T]()
	for i, row := range mask {
		for j, hot := range row {
			if hot {
				result[i][j] = unit
			}
		}
	}
	return result
}

// KHot encodes per-row column-index lists; row i has a one at every
// column listed in indices[i]. The column count is the number of
// distinct columns listed anywhere in indices.
func KHot[T Numeric](indices [][]int) Matrix[T] {
	flat := make([]int, 0, len(indices))
	for _, row := range indices {
		flat = append(flat, row...)
	}
	return KHotN[T](indices, distinct(flat))
}

// KHotN is KHot with an explicit column count. The caller guarantees
// every listed column is below cols.
func KHotN[T Numeric](indices [][]int, cols int) Matrix[T] {
	return KHotInto(Zeros[T](len(indices), cols), indices)
}

// KHotInto writes the index-list encoding into result without clearing
// it first.
func KHotInto[T Numeric](result Matrix[T], indices [][]int) Matrix[T] {
	unit := one[T]()
	for i, row := range indices {
		for _, col := range row {
			result[i][col] = unit
		}
	}
	return result
}

// distinct counts the unique values in indices.
func distinct(indices []int) int {
	seen := make(map[int]struct{}, len(indices))
	for _, v := range indices {
		seen[v] = struct{}{}
	}
	return len(seen)
}
