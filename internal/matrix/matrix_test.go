package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix_RowsCols(t *testing.T) {
	m := Zeros[float64](3, 5)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 5, m.Cols())

	var empty Matrix[float64]
	assert.Equal(t, 0, empty.Rows())
	assert.Equal(t, 0, empty.Cols())
}

func TestMatrix_AtSet(t *testing.T) {
	m := Zeros[int](2, 2)
	m.Set(1, 0, 7)
	assert.Equal(t, 7, m.At(1, 0))
	assert.Equal(t, 0, m.At(0, 1))
}

func TestMatrix_Clone(t *testing.T) {
	m := FromRows([][]float64{{1, 2}, {3}})
	c := m.Clone()

	require.Equal(t, m, c)
	c[0][0] = 99
	assert.Equal(t, 1.0, m[0][0], "clone must not share row storage")
}

func TestIndices_Rectangular(t *testing.T) {
	m := Zeros[float64](2, 3)
	assert.Equal(t, []Index{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2},
	}, Indices(m))
}

func TestIndices_Jagged(t *testing.T) {
	m := FromRows([][]int{{1, 2, 3}, {}, {4}})
	assert.Equal(t, []Index{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 2, Col: 0},
	}, Indices(m))
}

func TestIndices_Empty(t *testing.T) {
	assert.Empty(t, Indices(Matrix[float64]{}))
}
