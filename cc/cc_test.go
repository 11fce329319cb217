package cc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertexlabs/gryphon/device"
	"github.com/vertexlabs/gryphon/engine"
	"github.com/vertexlabs/gryphon/graph"
)

func mustBuild(t *testing.T, offsets []int32, cols []graph.VertexID) *graph.CSR {
	t.Helper()
	g, err := graph.Build(offsets, cols, nil)
	require.NoError(t, err)
	return g
}

func TestTwoTriangles(t *testing.T) {
	g := mustBuild(t, []int32{0, 1, 2, 3, 4, 5, 6}, []graph.VertexID{1, 2, 0, 4, 5, 3})
	res, err := Run(context.Background(), device.New(0), g, Config{})
	require.NoError(t, err)

	assert.Equal(t, []graph.VertexID{0, 0, 0, 3, 3, 3}, res.Components)
	assert.Equal(t, []graph.VertexID{0, 3}, res.Roots)
	assert.Equal(t, []int64{3, 3}, res.Counts)
}

func TestHistogramInvariants(t *testing.T) {
	g := mustBuild(t, []int32{0, 1, 2, 2, 3, 3, 3}, []graph.VertexID{1, 0, 4})
	res, err := Run(context.Background(), device.New(0), g, Config{})
	require.NoError(t, err)

	var total int64
	for _, c := range res.Counts {
		total += c
	}
	assert.Equal(t, int64(g.NumNodes()), total, "counts partition the vertex set")
	for _, r := range res.Roots {
		assert.Equal(t, r, res.Components[r], "roots are self-rooted")
	}
}

// A directed edge connects its endpoints regardless of orientation.
func TestDirectedEdgesConnectWeakly(t *testing.T) {
	g := mustBuild(t, []int32{0, 1, 1}, []graph.VertexID{1})
	res, err := Run(context.Background(), device.New(0), g, Config{})
	require.NoError(t, err)
	assert.Equal(t, []graph.VertexID{0, 0}, res.Components)
}

func TestEdgelessGraphIsAllSingletons(t *testing.T) {
	g := mustBuild(t, []int32{0, 0, 0, 0}, nil)
	dev := device.New(0)
	res, err := Run(context.Background(), dev, g, Config{})
	require.NoError(t, err)
	assert.Equal(t, []graph.VertexID{0, 1, 2}, res.Components)
	assert.Equal(t, []int64{1, 1, 1}, res.Counts)
	assert.Equal(t, int32(0), res.Stats.Iterations)
	assert.Equal(t, int64(0), dev.Launches())
}

func TestLongChainCollapsesToLowestVertex(t *testing.T) {
	const n = 400
	offsets := make([]int32, n+1)
	cols := make([]graph.VertexID, 0, n-1)
	for v := 0; v < n-1; v++ {
		offsets[v+1] = offsets[v] + 1
		cols = append(cols, graph.VertexID(v+1))
	}
	offsets[n] = int32(len(cols))
	g := mustBuild(t, offsets, cols)

	res, err := Run(context.Background(), device.New(0), g, Config{})
	require.NoError(t, err)
	for v, c := range res.Components {
		assert.Equal(t, graph.VertexID(0), c, "vertex %d", v)
	}
	assert.Equal(t, []int64{int64(n)}, res.Counts)
}

func TestResetIsIdempotent(t *testing.T) {
	g := mustBuild(t, []int32{0, 1, 2, 3, 4, 5, 6}, []graph.VertexID{1, 2, 0, 4, 5, 3})
	dev := device.New(0)
	p, err := NewProblem(dev, g, Config{})
	require.NoError(t, err)
	defer p.Free()

	run := func() []graph.VertexID {
		require.NoError(t, p.Reset())
		_, err := engine.Enact[*Problem](context.Background(), dev, p, Functor{},
			engine.Options{Mode: engine.FullAdvance})
		require.NoError(t, err)
		out := make([]graph.VertexID, g.NumNodes())
		require.NoError(t, p.ExtractComponents(out))
		return out
	}
	assert.Equal(t, run(), run())
}

func TestFlatten(t *testing.T) {
	cids := []graph.VertexID{1, 2, 2, 0}
	Flatten(cids)
	assert.Equal(t, []graph.VertexID{2, 2, 2, 2}, cids)
}

func TestComputeHistogram(t *testing.T) {
	roots, counts := ComputeHistogram([]graph.VertexID{4, 0, 0, 4, 4, 9})
	assert.Equal(t, []graph.VertexID{0, 4, 9}, roots)
	assert.Equal(t, []int64{2, 3, 1}, counts)

	roots, counts = ComputeHistogram(nil)
	assert.Empty(t, roots)
	assert.Empty(t, counts)
}

func TestAgainstUnionFindReference(t *testing.T) {
	const n = 257
	offsets := make([]int32, n+1)
	var cols []graph.VertexID
	for v := 0; v < n; v++ {
		offsets[v] = int32(len(cols))
		if v%3 != 0 {
			cols = append(cols, graph.VertexID((v*11+2)%n))
		}
	}
	offsets[n] = int32(len(cols))
	g := mustBuild(t, offsets, cols)

	res, err := Run(context.Background(), device.New(0), g, Config{})
	require.NoError(t, err)

	// Union-find with minimum-id representatives.
	parent := make([]graph.VertexID, n)
	for v := range parent {
		parent[v] = graph.VertexID(v)
	}
	var find func(graph.VertexID) graph.VertexID
	find = func(v graph.VertexID) graph.VertexID {
		if parent[v] != v {
			parent[v] = find(parent[v])
		}
		return parent[v]
	}
	for v := int32(0); v < int32(n); v++ {
		for _, d := range g.Neighbors(v) {
			a, b := find(v), find(d)
			if a > b {
				a, b = b, a
			}
			parent[b] = a
		}
	}
	want := make([]graph.VertexID, n)
	for v := range want {
		want[v] = find(graph.VertexID(v))
	}
	assert.Equal(t, want, res.Components)
}
