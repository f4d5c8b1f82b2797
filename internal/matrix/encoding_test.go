package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneHot_IndexList(t *testing.T) {
	m := OneHotN[float64]([]int{0, 2, 1}, 3)
	assert.Equal(t, Matrix[float64]{{1, 0, 0}, {0, 0, 1}, {0, 1, 0}}, m)
}

func TestOneHot_ExactlyOneMarkPerRow(t *testing.T) {
	indices := []int{3, 0, 3, 1, 2, 2}
	m := OneHotN[int](indices, 4)

	for i, row := range m {
		marks := 0
		for j, v := range row {
			if v != 0 {
				marks++
				assert.Equal(t, indices[i], j, "mark must be at indices[i]")
				assert.Equal(t, 1, v)
			}
		}
		assert.Equal(t, 1, marks, "row %d", i)
	}
}

func TestOneHot_DefaultWidthIsDistinctCount(t *testing.T) {
	m := OneHot[float32]([]int{0, 2, 0, 1, 2})

	require.Equal(t, 5, m.Rows())
	assert.Equal(t, 3, m.Cols(), "3 distinct indices → 3 columns")
}

func TestOneHotMask(t *testing.T) {
	m := OneHotMask[float64]([]bool{true, false, true})
	assert.Equal(t, Matrix[float64]{{1, 0}, {0, 1}, {1, 0}}, m)
}

func TestOneHotInto_DoesNotClear(t *testing.T) {
	buf := Full(2, 3, 7.0)
	out := OneHotInto(buf, []int{1, 2})

	// Same reference back, marked cells set, stale cells untouched.
	assert.Same(t, &buf[0][0], &out[0][0])
	assert.Equal(t, Matrix[float64]{{7, 1, 7}, {7, 7, 1}}, out)
}

func TestOneHotInto_BufferReuse(t *testing.T) {
	buf := Zeros[float64](2, 3)

	OneHotInto(buf, []int{0, 1})
	assert.Equal(t, Matrix[float64]{{1, 0, 0}, {0, 1, 0}}, buf)

	// Re-zero between batches, per the buffer contract.
	for _, row := range buf {
		clear(row)
	}
	OneHotInto(buf, []int{2, 2})
	assert.Equal(t, Matrix[float64]{{0, 0, 1}, {0, 0, 1}}, buf)
}

func TestOneHotMaskInto_DoesNotClear(t *testing.T) {
	buf := Full(2, 2, int32(5))
	OneHotMaskInto(buf, []bool{true, false})
	assert.Equal(t, Matrix[int32]{{1, 5}, {5, 1}}, buf)
}

func TestKHotMask(t *testing.T) {
	m := KHotMask[float64]([][]bool{
		{true, false, true},
		{false, false, false},
		{true, true, true},
	})
	assert.Equal(t, Matrix[float64]{{1, 0, 1}, {0, 0, 0}, {1, 1, 1}}, m)
}

func TestKHotMask_JaggedMask(t *testing.T) {
	m := KHotMask[int]([][]bool{{true}, {false, true, true}})

	require.Equal(t, 2, m.Rows())
	assert.Equal(t, []int{1}, []int(m[0]))
	assert.Equal(t, []int{0, 1, 1}, []int(m[1]))
}

func TestKHot_IndexLists(t *testing.T) {
	m := KHotN[float64]([][]int{{0, 2}, {}, {1}}, 3)
	assert.Equal(t, Matrix[float64]{{1, 0, 1}, {0, 0, 0}, {0, 1, 0}}, m)
}

func TestKHot_DefaultWidthIsDistinctCount(t *testing.T) {
	m := KHot[float64]([][]int{{0, 4}, {4, 0}, {2}})

	require.Equal(t, 3, m.Rows())
	assert.Equal(t, 3, m.Cols(), "distinct columns 0, 2, 4 → width 3")
}

func TestKHotInto_DoesNotClear(t *testing.T) {
	buf := Full(2, 2, 9.0)
	KHotInto(buf, [][]int{{0}, {1}})
	assert.Equal(t, Matrix[float64]{{1, 9}, {9, 1}}, buf)
}

func TestKHot_RepeatedColumnsIdempotentWithinRow(t *testing.T) {
	m := KHotN[int]([][]int{{1, 1, 1}}, 3)
	assert.Equal(t, Matrix[int]{{0, 1, 0}}, m)
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, 0, distinct(nil))
	assert.Equal(t, 1, distinct([]int{5, 5, 5}))
	assert.Equal(t, 3, distinct([]int{2, 0, 1, 2, 0}))
}
