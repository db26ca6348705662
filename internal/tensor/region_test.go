package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterializeChipFree(t *testing.T) {
	mat := mustFromSlice(t, arange(12), Shape{3, 4})
	r := mat.MustSlice(R(1, 3), R(1, 3)).Region()

	assert.Equal(t, Shape{2, 2}, r.Shape())
	assert.False(t, r.Contiguous())
	assert.Equal(t, []float64{5, 6, 9, 10}, r.Dense())
	assert.Equal(t, 10.0, r.At(1, 1))
}

func TestMaterializeCollapsesChipsHighestAxisFirst(t *testing.T) {
	// t[i][j][k][l] = 8i + 4j + 2k + l
	cube := mustFromSlice(t, arange(16), Shape{2, 2, 2, 2})

	tests := []struct {
		name  string
		args  []Arg
		shape Shape
		want  []float64
	}{
		{"last axis", []Arg{R(0, 2), R(0, 2), R(0, 2), I(0)}, Shape{2, 2, 2}, []float64{0, 2, 4, 6, 8, 10, 12, 14}},
		{"first axis", []Arg{I(1), R(0, 2), R(0, 2), R(0, 2)}, Shape{2, 2, 2}, []float64{8, 9, 10, 11, 12, 13, 14, 15}},
		{"two chips", []Arg{I(1), R(0, 2), I(1), R(0, 2)}, Shape{2, 2}, []float64{10, 11, 14, 15}},
		{"chips and offsets", []Arg{R(1, 2), I(0), R(1, 2), I(1)}, Shape{1, 1}, []float64{11}},
		{"everything chipped", []Arg{I(1), I(1), I(1), I(1)}, Shape{}, []float64{15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := cube.MustSlice(tt.args...).Region()
			assert.Equal(t, tt.shape, r.Shape())
			assert.Equal(t, tt.want, r.Dense())
		})
	}
}

func TestMaterializeRejectsBrokenView(t *testing.T) {
	buf := mustFromSlice(t, arange(6), Shape{2, 3}).Buffer()

	tests := []struct {
		name string
		view View
	}{
		{"missing chip", View{Offsets: []int{0}, Extents: []int{3}}},
		{"window past extent", View{Offsets: []int{0, 1}, Extents: []int{2, 3}, Sliced: true}},
		{"chip out of range", View{Offsets: []int{0}, Extents: []int{3}, Chips: []Chip{{Axis: 0, Index: 2}}, Sliced: true}},
		{"wrong sliced flag", View{Offsets: []int{0, 0}, Extents: []int{2, 3}, Sliced: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { Materialize(buf, tt.view) })
		})
	}

	assert.NotPanics(t, func() { Materialize(buf, FullView(Shape{2, 3})) })
}

func TestRegionContiguousFlat(t *testing.T) {
	mat := mustFromSlice(t, arange(12), Shape{3, 4})

	row := mat.MustSlice(I(1), R(0, 4)).Region()
	flat, ok := row.Flat()
	require.True(t, ok)
	assert.Equal(t, []float64{4, 5, 6, 7}, flat)

	// Flat shares memory with the buffer.
	flat[0] = -1
	assert.Equal(t, -1.0, mat.Data()[4])

	col := mat.MustSlice(R(0, 3), I(1)).Region()
	_, ok = col.Flat()
	assert.False(t, ok)
	assert.Equal(t, []float64{1, 5, 9}, col.Values())
}

func TestRegionEachOrderAndEarlyStop(t *testing.T) {
	r := DenseRegion(arange(6), Shape{2, 3})

	var seen [][]int
	r.Each(func(index []int, pos int) bool {
		seen = append(seen, append([]int(nil), index...))
		assert.Equal(t, float64(pos), r.Data()[pos])
		return len(seen) < 4
	})
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}}, seen)
}

func TestRegionEmpty(t *testing.T) {
	mat := mustFromSlice(t, arange(6), Shape{2, 3})
	r := mat.MustSlice(R(2, 2), R(3, 3)).Region()

	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Dense())
	called := false
	r.Each(func([]int, int) bool { called = true; return true })
	assert.False(t, called)
}

func TestRegionFill(t *testing.T) {
	mat, err := New[int64](Shape{2, 3})
	require.NoError(t, err)

	mat.MustSlice(R(0, 2), I(1)).Region().Fill(3)
	assert.Equal(t, []int64{0, 3, 0, 0, 3, 0}, mat.Data())
}
