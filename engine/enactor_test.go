package engine

import (
	"context"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertexlabs/gryphon/device"
	"github.com/vertexlabs/gryphon/device/mock_device"
	"github.com/vertexlabs/gryphon/graph"
)

// levelProblem is a minimal hop-count state: enough to drive the operator
// loop without pulling in a real primitive.
type levelProblem struct {
	g      *graph.CSR
	fr     *Frontier
	labels []int32
	ready  bool
}

func (p *levelProblem) Graph() *graph.CSR   { return p.g }
func (p *levelProblem) Frontier() *Frontier { return p.fr }
func (p *levelProblem) Ready() bool         { return p.ready }

func newLevelProblem(t *testing.T, g *graph.CSR, seeds ...graph.VertexID) *levelProblem {
	t.Helper()
	capacity := g.NumNodes()
	if g.NumEdges() > capacity {
		capacity = g.NumEdges()
	}
	fr, err := NewFrontier(device.New(0), capacity)
	require.NoError(t, err)
	labels := make([]int32, g.NumNodes())
	for i := range labels {
		labels[i] = math.MaxInt32
	}
	for _, s := range seeds {
		labels[s] = 0
	}
	require.NoError(t, fr.Load(seeds))
	return &levelProblem{g: g, fr: fr, labels: labels, ready: true}
}

// levelFunctor relaxes hop counts: an expansion wins when it strictly
// lowers the destination label.
type levelFunctor struct{}

func (levelFunctor) CondEdge(src, dst graph.VertexID, e graph.EdgeID, p *levelProblem) bool {
	_, won := device.MinInt32(&p.labels[dst], p.labels[src]+1)
	return won
}
func (levelFunctor) ApplyEdge(src, dst graph.VertexID, e graph.EdgeID, p *levelProblem) {}
func (levelFunctor) CondFilter(v graph.VertexID, p *levelProblem) bool                  { return true }
func (levelFunctor) ApplyFilter(v graph.VertexID, p *levelProblem)                      {}

// alwaysWinFunctor never converges; every edge claims a win forever.
type alwaysWinFunctor struct{}

func (alwaysWinFunctor) CondEdge(src, dst graph.VertexID, e graph.EdgeID, p *levelProblem) bool {
	return true
}
func (alwaysWinFunctor) ApplyEdge(src, dst graph.VertexID, e graph.EdgeID, p *levelProblem) {}
func (alwaysWinFunctor) CondFilter(v graph.VertexID, p *levelProblem) bool                  { return true }
func (alwaysWinFunctor) ApplyFilter(v graph.VertexID, p *levelProblem)                      {}

func cycle4(t *testing.T) *graph.CSR {
	t.Helper()
	g, err := graph.Build([]int32{0, 1, 2, 3, 4}, []graph.VertexID{1, 2, 3, 0}, nil)
	require.NoError(t, err)
	return g
}

func TestEnactBeforeResetFails(t *testing.T) {
	p := newLevelProblem(t, cycle4(t), 0)
	p.ready = false
	_, err := Enact[*levelProblem](context.Background(), device.New(0), p, levelFunctor{}, Options{})
	require.Error(t, err)
	assert.Equal(t, ErrNotReady, errors.Cause(err))
}

func TestEnactDrainsFrontier(t *testing.T) {
	p := newLevelProblem(t, cycle4(t), 0)
	stats, err := Enact[*levelProblem](context.Background(), device.New(0), p, levelFunctor{}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 2, 3}, p.labels)
	// 3 productive waves plus the one that proves the frontier drained.
	assert.Equal(t, int32(4), stats.Iterations)
	assert.Equal(t, []int32{1, 1, 1, 1}, stats.FrontierSizes)
	assert.Equal(t, int32(0), p.fr.Size())
	assert.Positive(t, stats.EdgesScanned)
}

func TestEnactZeroEdgesIsImmediateDone(t *testing.T) {
	g, err := graph.Build([]int32{0, 0, 0}, nil, nil)
	require.NoError(t, err)
	p := newLevelProblem(t, g, 0)
	launcher := device.New(0)
	stats, err := Enact[*levelProblem](context.Background(), launcher, p, levelFunctor{}, Options{})
	require.NoError(t, err)
	assert.Equal(t, int32(0), stats.Iterations)
	assert.Equal(t, int64(0), launcher.Launches())
	assert.Equal(t, []int32{0, math.MaxInt32}, p.labels)
}

func TestEnactEmptySeedSet(t *testing.T) {
	p := newLevelProblem(t, cycle4(t))
	stats, err := Enact[*levelProblem](context.Background(), device.New(0), p, levelFunctor{}, Options{})
	require.NoError(t, err)
	assert.Equal(t, int32(0), stats.Iterations)
}

func TestEnactReportsDivergence(t *testing.T) {
	p := newLevelProblem(t, cycle4(t), 0)
	stats, err := Enact[*levelProblem](context.Background(), device.New(0), p, alwaysWinFunctor{},
		Options{MaxIterations: 3})
	require.Error(t, err)
	assert.Equal(t, ErrDiverged, errors.Cause(err))
	assert.Equal(t, int32(3), stats.Iterations)
	assert.Contains(t, err.Error(), "frontier size")
}

func TestEnactStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := newLevelProblem(t, cycle4(t), 0)
	_, err := Enact[*levelProblem](ctx, device.New(0), p, levelFunctor{}, Options{})
	require.Error(t, err)
	assert.Equal(t, context.Canceled, errors.Cause(err))
	assert.Equal(t, []int32{0, math.MaxInt32, math.MaxInt32, math.MaxInt32}, p.labels,
		"no iteration may run after cancellation")
}

func TestEnactSurfacesLaunchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	launcher := mock_device.NewMockLauncher(ctrl)
	launcher.EXPECT().Launch(gomock.Any(), gomock.Any(), gomock.Any()).Return(device.ErrLaunch)

	p := newLevelProblem(t, cycle4(t), 0)
	_, err := Enact[*levelProblem](context.Background(), launcher, p, levelFunctor{}, Options{})
	require.Error(t, err)
	assert.Equal(t, device.ErrLaunch, errors.Cause(err))
}

func TestEnactPassesGridToLauncher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	launcher := mock_device.NewMockLauncher(ctrl)
	// One advance and one filter, both at the requested width; the filter
	// sees an empty candidate set because the mock never ran the kernel.
	launcher.EXPECT().Launch(int32(7), int32(1), gomock.Any()).Return(nil)
	launcher.EXPECT().Launch(int32(7), int32(0), gomock.Any()).Return(nil)

	p := newLevelProblem(t, cycle4(t), 0)
	_, err := Enact[*levelProblem](context.Background(), launcher, p, levelFunctor{}, Options{MaxGridSize: 7})
	require.NoError(t, err)
}

// A star of many sources aimed at one destination: every expansion offers
// the same label, so exactly one may win and the next wave holds a single
// copy of the destination.
func TestAdvanceRaceHasOneWinner(t *testing.T) {
	const k = 512
	offsets := make([]int32, k+2)
	cols := make([]graph.VertexID, k)
	seeds := make([]graph.VertexID, k)
	for i := 0; i < k; i++ {
		offsets[i+1] = int32(i + 1)
		cols[i] = k // all sources point at the hub
		seeds[i] = graph.VertexID(i)
	}
	offsets[k+1] = k
	g, err := graph.Build(offsets, cols, nil)
	require.NoError(t, err)

	p := newLevelProblem(t, g, seeds...)
	stats, err := Enact[*levelProblem](context.Background(), device.New(0), p, levelFunctor{}, Options{})
	require.NoError(t, err)
	assert.Equal(t, int32(1), p.labels[k])
	assert.Equal(t, []int32{k, 1}, stats.FrontierSizes)
}

func TestFullAdvanceStopsWhenNoEdgeWins(t *testing.T) {
	// Min-label propagation over an undirected path 0-1-2.
	g, err := graph.Build([]int32{0, 1, 3, 4}, []graph.VertexID{1, 0, 2, 1}, nil)
	require.NoError(t, err)
	p := newLevelProblem(t, g)
	for v := range p.labels {
		p.labels[v] = int32(v)
	}
	p.ready = true
	stats, err := Enact[*levelProblem](context.Background(), device.New(0), p, minLabelFunctor{},
		Options{Mode: FullAdvance})
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 0, 0}, p.labels)
	assert.Equal(t, int32(0), stats.FrontierSizes[stats.Iterations-1],
		"last iteration wins nothing")
}

type minLabelFunctor struct{}

func (minLabelFunctor) CondEdge(src, dst graph.VertexID, e graph.EdgeID, p *levelProblem) bool {
	_, won := device.MinInt32(&p.labels[dst], p.labels[src])
	return won
}
func (minLabelFunctor) ApplyEdge(src, dst graph.VertexID, e graph.EdgeID, p *levelProblem) {}
func (minLabelFunctor) CondFilter(v graph.VertexID, p *levelProblem) bool                  { return false }
func (minLabelFunctor) ApplyFilter(v graph.VertexID, p *levelProblem)                      {}

func TestFarPileOrdersByScore(t *testing.T) {
	var fp FarPile
	fp.Push(3, 3.5)
	fp.Push(1, 1.25)
	fp.Push(2, 2.0)
	assert.Equal(t, 3, fp.Len())
	assert.Equal(t, 1.25, fp.Min())

	assert.Equal(t, []graph.VertexID{1, 2}, fp.PopBelow(2.5))
	assert.Equal(t, 1, fp.Len())
	assert.Nil(t, fp.PopBelow(3.5))
	assert.Equal(t, []graph.VertexID{3}, fp.PopBelow(4))
	assert.Equal(t, 0, fp.Len())
}

func TestPartitionVerticesTilesTheRange(t *testing.T) {
	ranges, err := PartitionVertices(10, 3)
	require.NoError(t, err)
	assert.Equal(t, []Range{{0, 4}, {4, 7}, {7, 10}}, ranges)

	_, err = PartitionVertices(10, 0)
	assert.Error(t, err)

	ranges, err = PartitionVertices(2, 5)
	require.NoError(t, err)
	assert.Len(t, ranges, 2)
}

func TestFrontierSwapAndEmit(t *testing.T) {
	fr, err := NewFrontier(device.New(0), 8)
	require.NoError(t, err)
	defer fr.Free()

	require.NoError(t, fr.Load([]graph.VertexID{5, 6}))
	assert.Equal(t, int32(2), fr.Size())
	fr.Emit([]graph.VertexID{1})
	fr.Emit([]graph.VertexID{2, 3})
	assert.Equal(t, int32(3), fr.OutSize())

	fr.Swap()
	assert.Equal(t, int32(3), fr.Size())
	assert.ElementsMatch(t, []graph.VertexID{1, 2, 3}, fr.In())
	assert.Equal(t, int32(0), fr.OutSize())

	assert.Error(t, fr.Load(make([]graph.VertexID, 9)))
	fr.Clear()
	assert.Equal(t, int32(0), fr.Size())
}
