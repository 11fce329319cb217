// Package sssp computes single-source shortest path labels over
// non-negative edge weights. Relaxation follows the same win-by-lowering
// contract as level traversal; an optional near/far split processes close
// vertices first to cut redundant relaxations.
package sssp

import (
	"context"
	"math"

	"github.com/juju/errors"

	"github.com/vertexlabs/gryphon/device"
	"github.com/vertexlabs/gryphon/engine"
	"github.com/vertexlabs/gryphon/graph"
)

// NoPredecessor marks a vertex without a recorded parent.
const NoPredecessor graph.VertexID = -1

// Infinity returns the unreached sentinel for a label type.
func Infinity[W device.Value]() W {
	var inf W
	switch p := any(&inf).(type) {
	case *int32:
		*p = math.MaxInt32
	case *int64:
		*p = math.MaxInt64
	case *float32:
		*p = math.MaxFloat32
	case *float64:
		*p = math.MaxFloat64
	}
	return inf
}

// Config selects the optional parts of a run.
type Config struct {
	// NumPartitions is the partition count the state is sliced for,
	// 0 means 1.
	NumPartitions int32
	// MarkPaths allocates and fills the predecessor array.
	MarkPaths bool
	// Delta is the priority bucket width. 0 disables the near/far split;
	// labels then relax in plain wave order.
	Delta float64
	// MaxIterations caps the operator loop, 0 derives from graph size.
	MaxIterations int32
	// MaxGridSize is the launch width, 0 = auto.
	MaxGridSize int32
}

// Problem is the device-resident relaxation state for one label type.
type Problem[W device.Value] struct {
	engine.ProblemBase
	dist    *device.Array[W]
	weights *device.Array[W]
	preds   *device.Array[graph.VertexID]
	delta   float64
	source  graph.VertexID
}

// NewProblem allocates per-vertex and per-edge state for g. Edge values
// are staged onto the device once, converted to the label type; an
// unweighted graph relaxes with unit weights.
func NewProblem[W device.Value](dev *device.Context, g *graph.CSR, cfg Config) (*Problem[W], error) {
	if cfg.Delta < 0 {
		return nil, errors.Errorf("negative delta %v", cfg.Delta)
	}
	parts := cfg.NumPartitions
	if parts == 0 {
		parts = 1
	}
	p := &Problem[W]{delta: cfg.Delta}
	if err := p.InitBase(dev, g, parts); err != nil {
		return nil, errors.Trace(err)
	}
	free := func() { p.Free() }
	var err error
	if p.dist, err = device.Alloc[W](dev, g.NumNodes()); err != nil {
		free()
		return nil, errors.Trace(err)
	}
	if p.weights, err = device.Alloc[W](dev, g.NumEdges()); err != nil {
		free()
		return nil, errors.Trace(err)
	}
	staged := p.weights.Data()
	for e := range staged {
		staged[e] = W(g.Weight(graph.EdgeID(e)))
	}
	if cfg.MarkPaths {
		if p.preds, err = device.Alloc[graph.VertexID](dev, g.NumNodes()); err != nil {
			free()
			return nil, errors.Trace(err)
		}
	}
	return p, nil
}

// Reset prepares the problem for a run from source. Safe to call
// repeatedly on one allocation.
func (p *Problem[W]) Reset(source graph.VertexID) error {
	g := p.Graph()
	if source < 0 || source >= g.NumNodes() {
		return errors.Errorf("source vertex %d outside graph of %d nodes", source, g.NumNodes())
	}
	p.dist.Fill(Infinity[W]())
	var zero W
	p.dist.Data()[source] = zero
	if p.preds != nil {
		p.preds.Fill(NoPredecessor)
	}
	p.source = source
	return errors.Trace(p.SeedFrontier([]graph.VertexID{source}))
}

// ExtractLabels copies the distance array into dst.
func (p *Problem[W]) ExtractLabels(dst []W) error {
	if !p.Done() {
		return errors.Annotatef(engine.ErrNotReady, "extract before enactment finished")
	}
	return errors.Trace(p.dist.CopyToHost(dst))
}

// ExtractPredecessors copies the parent array into dst. Only available
// when the problem was built with MarkPaths.
func (p *Problem[W]) ExtractPredecessors(dst []graph.VertexID) error {
	if p.preds == nil {
		return errors.Errorf("predecessors were not requested at init")
	}
	if !p.Done() {
		return errors.Annotatef(engine.ErrNotReady, "extract before enactment finished")
	}
	return errors.Trace(p.preds.CopyToHost(dst))
}

// Free releases all device arrays.
func (p *Problem[W]) Free() {
	p.dist.Free()
	p.weights.Free()
	p.preds.Free()
	p.FreeBase()
}

// Functor is the distance-relaxation capability set.
type Functor[W device.Value] struct{}

// CondEdge offers dist[src]+weight(e) to dst; the thread whose write
// strictly lowered the label wins.
func (Functor[W]) CondEdge(src, dst graph.VertexID, e graph.EdgeID, p *Problem[W]) bool {
	d := p.dist.Data()
	candidate := d[src] + p.weights.Data()[e]
	_, won := device.Min(&d[dst], candidate)
	return won
}

// ApplyEdge records the parent when path marking is on. A third vertex can
// lower dst's label between this thread's win and this write, leaving a
// parent one relaxation behind the final label; accepted, not repaired.
func (Functor[W]) ApplyEdge(src, dst graph.VertexID, e graph.EdgeID, p *Problem[W]) {
	if p.preds != nil {
		p.preds.Data()[dst] = src
	}
}

// CondFilter drops sentinel ids.
func (Functor[W]) CondFilter(v graph.VertexID, p *Problem[W]) bool {
	return v >= 0
}

// ApplyFilter is pure compaction for this primitive.
func (Functor[W]) ApplyFilter(v graph.VertexID, p *Problem[W]) {}

// ComputePriorityScore buckets a vertex by its current label. Zero delta
// degrades to ordering by the raw label.
func (Functor[W]) ComputePriorityScore(v graph.VertexID, p *Problem[W]) float64 {
	label := float64(p.dist.Data()[v])
	if p.delta == 0 {
		return label
	}
	return label / p.delta
}

// Result is the host-side output of one run.
type Result[W device.Value] struct {
	Labels       []W
	Predecessors []graph.VertexID
	Stats        *engine.Stats
}

// Run performs a whole shortest-path computation: allocate, reset, enact,
// extract, free.
func Run[W device.Value](ctx context.Context, dev *device.Context, g *graph.CSR, source graph.VertexID, cfg Config) (*Result[W], error) {
	p, err := NewProblem[W](dev, g, cfg)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer p.Free()
	if err := p.Reset(source); err != nil {
		return nil, errors.Trace(err)
	}
	stats, err := engine.Enact[*Problem[W]](ctx, dev, p, Functor[W]{}, engine.Options{
		MaxIterations: cfg.MaxIterations,
		MaxGridSize:   cfg.MaxGridSize,
		Priority:      cfg.Delta > 0,
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	res := &Result[W]{Labels: make([]W, g.NumNodes()), Stats: stats}
	if err := p.ExtractLabels(res.Labels); err != nil {
		return nil, errors.Trace(err)
	}
	if cfg.MarkPaths {
		res.Predecessors = make([]graph.VertexID, g.NumNodes())
		if err := p.ExtractPredecessors(res.Predecessors); err != nil {
			return nil, errors.Trace(err)
		}
	}
	return res, nil
}
