// Package bfs computes hop distances from a source vertex. Expansion wins
// by atomically lowering the destination's level; losers drop out of the
// next wave, so each vertex enters the frontier at most once.
package bfs

import (
	"context"
	"math"

	"github.com/juju/errors"

	"github.com/vertexlabs/gryphon/device"
	"github.com/vertexlabs/gryphon/engine"
	"github.com/vertexlabs/gryphon/graph"
)

// Infinity is the level of a vertex no expansion has reached.
const Infinity int32 = math.MaxInt32

// NoPredecessor marks a vertex without a recorded parent.
const NoPredecessor graph.VertexID = -1

// Config selects the optional parts of a traversal.
type Config struct {
	// NumPartitions is the partition count the state is sliced for,
	// 0 means 1.
	NumPartitions int32
	// MarkPaths allocates and fills the predecessor array.
	MarkPaths bool
	// MaxIterations caps the operator loop, 0 derives from graph size.
	MaxIterations int32
	// MaxGridSize is the launch width, 0 = auto.
	MaxGridSize int32
}

// Problem is the device-resident traversal state.
type Problem struct {
	engine.ProblemBase
	labels    *device.Array[int32]
	preds     *device.Array[graph.VertexID]
	source    graph.VertexID
	markPaths bool
}

// NewProblem allocates per-vertex state for g.
func NewProblem(dev *device.Context, g *graph.CSR, cfg Config) (*Problem, error) {
	parts := cfg.NumPartitions
	if parts == 0 {
		parts = 1
	}
	p := &Problem{markPaths: cfg.MarkPaths}
	if err := p.InitBase(dev, g, parts); err != nil {
		return nil, errors.Trace(err)
	}
	var err error
	p.labels, err = device.Alloc[int32](dev, g.NumNodes())
	if err != nil {
		p.FreeBase()
		return nil, errors.Trace(err)
	}
	if cfg.MarkPaths {
		p.preds, err = device.Alloc[graph.VertexID](dev, g.NumNodes())
		if err != nil {
			p.labels.Free()
			p.FreeBase()
			return nil, errors.Trace(err)
		}
	}
	return p, nil
}

// Reset prepares the problem for a traversal from source. Safe to call
// repeatedly on one allocation.
func (p *Problem) Reset(source graph.VertexID) error {
	g := p.Graph()
	if source < 0 || source >= g.NumNodes() {
		return errors.Errorf("source vertex %d outside graph of %d nodes", source, g.NumNodes())
	}
	p.labels.Fill(Infinity)
	p.labels.Data()[source] = 0
	if p.preds != nil {
		p.preds.Fill(NoPredecessor)
	}
	p.source = source
	return errors.Trace(p.SeedFrontier([]graph.VertexID{source}))
}

// ExtractLabels copies the level array into dst.
func (p *Problem) ExtractLabels(dst []int32) error {
	if !p.Done() {
		return errors.Annotatef(engine.ErrNotReady, "extract before enactment finished")
	}
	return errors.Trace(p.labels.CopyToHost(dst))
}

// ExtractPredecessors copies the parent array into dst. Only available
// when the problem was built with MarkPaths.
func (p *Problem) ExtractPredecessors(dst []graph.VertexID) error {
	if p.preds == nil {
		return errors.Errorf("predecessors were not requested at init")
	}
	if !p.Done() {
		return errors.Annotatef(engine.ErrNotReady, "extract before enactment finished")
	}
	return errors.Trace(p.preds.CopyToHost(dst))
}

// Free releases all device arrays.
func (p *Problem) Free() {
	p.labels.Free()
	p.preds.Free()
	p.FreeBase()
}

// Functor is the level-relaxation capability set.
type Functor struct{}

// CondEdge claims dst for level labels[src]+1; the thread whose write
// strictly lowered the level wins.
func (Functor) CondEdge(src, dst graph.VertexID, e graph.EdgeID, p *Problem) bool {
	labels := p.labels.Data()
	_, won := device.MinInt32(&labels[dst], labels[src]+1)
	return won
}

// ApplyEdge records the parent when path marking is on. The level may drop
// again before this write lands, so the recorded parent can be stale
// relative to the final level; accepted for path reconstruction.
func (Functor) ApplyEdge(src, dst graph.VertexID, e graph.EdgeID, p *Problem) {
	if p.preds != nil {
		p.preds.Data()[dst] = src
	}
}

// CondFilter drops sentinel ids; race winners are already unique.
func (Functor) CondFilter(v graph.VertexID, p *Problem) bool {
	return v >= 0
}

// ApplyFilter is pure compaction for this primitive.
func (Functor) ApplyFilter(v graph.VertexID, p *Problem) {}

// Result is the host-side output of one traversal.
type Result struct {
	Labels       []int32
	Predecessors []graph.VertexID
	Stats        *engine.Stats
}

// Run performs a whole traversal: allocate, reset, enact, extract, free.
func Run(ctx context.Context, dev *device.Context, g *graph.CSR, source graph.VertexID, cfg Config) (*Result, error) {
	p, err := NewProblem(dev, g, cfg)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer p.Free()
	if err := p.Reset(source); err != nil {
		return nil, errors.Trace(err)
	}
	stats, err := engine.Enact[*Problem](ctx, dev, p, Functor{}, engine.Options{
		MaxIterations: cfg.MaxIterations,
		MaxGridSize:   cfg.MaxGridSize,
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	res := &Result{Labels: make([]int32, g.NumNodes()), Stats: stats}
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
