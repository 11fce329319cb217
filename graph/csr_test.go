package graph

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name    string
		offsets []int32
		cols    []VertexID
		weights []float64
	}{
		{"empty offsets", nil, nil, nil},
		{"nonzero first offset", []int32{1, 2}, []VertexID{0}, nil},
		{"decreasing offsets", []int32{0, 2, 1}, []VertexID{0, 1}, nil},
		{"last offset below edge count", []int32{0, 1}, []VertexID{0, 0}, nil},
		{"last offset beyond edge count", []int32{0, 3}, []VertexID{0, 0}, nil},
		{"column out of range", []int32{0, 1}, []VertexID{5}, nil},
		{"negative column", []int32{0, 1}, []VertexID{-1}, nil},
		{"weight count mismatch", []int32{0, 1}, []VertexID{0}, []float64{1, 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := Build(c.offsets, c.cols, c.weights)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.Equal(t, ErrMalformed, errors.Cause(err))
		})
	}
}

func TestBuildCopiesInput(t *testing.T) {
	offsets := []int32{0, 1, 2}
	cols := []VertexID{1, 0}
	g, err := Build(offsets, cols, nil)
	require.NoError(t, err)
	offsets[1] = 99
	cols[0] = 99
	assert.Equal(t, []int32{0, 1, 2}, g.RowOffsets())
	assert.Equal(t, VertexID(1), g.Dst(0))
}

func TestAccessors(t *testing.T) {
	// 0 -> 1, 0 -> 2, 2 -> 1
	g, err := Build([]int32{0, 2, 2, 3}, []VertexID{1, 2, 1}, []float64{4, 2, 1})
	require.NoError(t, err)

	assert.Equal(t, int32(3), g.NumNodes())
	assert.Equal(t, int32(3), g.NumEdges())
	assert.True(t, g.Weighted())
	assert.Equal(t, int32(2), g.OutDegree(0))
	assert.Equal(t, int32(0), g.OutDegree(1))
	assert.Equal(t, []VertexID{1, 2}, g.Neighbors(0))
	lo, hi := g.EdgeRange(2)
	assert.Equal(t, EdgeID(2), lo)
	assert.Equal(t, EdgeID(3), hi)
	assert.Equal(t, 2.0, g.Weight(1))
}

func TestUnweightedEdgesCountAsOne(t *testing.T) {
	g, err := Build([]int32{0, 1}, []VertexID{0}, nil)
	require.NoError(t, err)
	assert.False(t, g.Weighted())
	assert.Equal(t, 1.0, g.Weight(0))
}

func TestEmptyGraph(t *testing.T) {
	g, err := Build([]int32{0}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int32(0), g.NumNodes())
	assert.Equal(t, int32(0), g.NumEdges())
}

func TestReverse(t *testing.T) {
	// 0 -> 1 (w 4), 0 -> 2 (w 2), 2 -> 1 (w 1)
	g, err := Build([]int32{0, 2, 2, 3}, []VertexID{1, 2, 1}, []float64{4, 2, 1})
	require.NoError(t, err)

	r := g.Reverse()
	assert.Equal(t, []int32{0, 0, 2, 3}, r.RowOffsets())
	assert.Equal(t, []VertexID{0, 2, 0}, r.ColIndices())
	assert.Equal(t, []float64{4, 1, 2}, r.Weights())
}

func TestSymmetrizeDoublesEdges(t *testing.T) {
	g, err := Build([]int32{0, 1, 1}, []VertexID{1}, nil)
	require.NoError(t, err)

	s := g.Symmetrize()
	assert.Equal(t, int32(2), s.NumEdges())
	assert.Equal(t, []VertexID{1}, s.Neighbors(0))
	assert.Equal(t, []VertexID{0}, s.Neighbors(1))
}
