// Package cc labels weakly connected components. Every edge repeatedly
// tries to hook the larger of its endpoints' roots onto the smaller; a
// pointer-jumping pass after each wave keeps the trees shallow. The run
// converges when no edge can hook, at which point every vertex's label
// chases down to its component's smallest vertex id.
package cc

import (
	"context"
	"sort"

	"github.com/juju/errors"

	"github.com/vertexlabs/gryphon/device"
	"github.com/vertexlabs/gryphon/engine"
	"github.com/vertexlabs/gryphon/graph"
)

// Config selects the optional parts of a run.
type Config struct {
	// NumPartitions is the partition count the state is sliced for,
	// 0 means 1.
	NumPartitions int32
	// MaxIterations caps the operator loop, 0 derives from graph size.
	MaxIterations int32
	// MaxGridSize is the launch width, 0 = auto.
	MaxGridSize int32
}

// Problem is the device-resident component state.
type Problem struct {
	engine.ProblemBase
	cids *device.Array[graph.VertexID]
}

// NewProblem allocates per-vertex state for g.
func NewProblem(dev *device.Context, g *graph.CSR, cfg Config) (*Problem, error) {
	parts := cfg.NumPartitions
	if parts == 0 {
		parts = 1
	}
	p := &Problem{}
	if err := p.InitBase(dev, g, parts); err != nil {
		return nil, errors.Trace(err)
	}
	var err error
	if p.cids, err = device.Alloc[graph.VertexID](dev, g.NumNodes()); err != nil {
		p.FreeBase()
		return nil, errors.Trace(err)
	}
	return p, nil
}

// Reset points every vertex at itself. There is no seed set; expansion
// runs over the whole vertex set every iteration.
func (p *Problem) Reset() error {
	cids := p.cids.Data()
	for v := range cids {
		cids[v] = graph.VertexID(v)
	}
	return errors.Trace(p.SeedFrontier(nil))
}

// ExtractComponents copies the component labels into dst and flattens
// them, so every label is its component's self-rooted representative.
func (p *Problem) ExtractComponents(dst []graph.VertexID) error {
	if !p.Done() {
		return errors.Annotatef(engine.ErrNotReady, "extract before enactment finished")
	}
	if err := p.cids.CopyToHost(dst); err != nil {
		return errors.Trace(err)
	}
	Flatten(dst)
	return nil
}

// Free releases all device arrays.
func (p *Problem) Free() {
	p.cids.Free()
	p.FreeBase()
}

// Functor is the hook-and-jump capability set.
type Functor struct{}

// CondEdge hooks the larger of the two endpoint roots onto the smaller;
// winning means this edge lowered a root.
func (Functor) CondEdge(src, dst graph.VertexID, e graph.EdgeID, p *Problem) bool {
	cids := p.cids.Data()
	a, b := cids[src], cids[dst]
	if a == b {
		return false
	}
	if a < b {
		a, b = b, a
	}
	_, won := device.MinInt32(&cids[a], b)
	return won
}

// ApplyEdge has nothing left to do; the hook happens in CondEdge.
func (Functor) ApplyEdge(src, dst graph.VertexID, e graph.EdgeID, p *Problem) {}

// CondFilter admits every vertex to the jump pass.
func (Functor) CondFilter(v graph.VertexID, p *Problem) bool { return true }

// ApplyFilter jumps v's label to its current root. Concurrent jumps only
// shorten the chain further, so racing reads stay correct.
func (Functor) ApplyFilter(v graph.VertexID, p *Problem) {
	cids := p.cids.Data()
	for {
		c := cids[v]
		cc := cids[c]
		if c == cc {
			return
		}
		cids[v] = cc
	}
}

// Flatten chases every label to a self-rooted representative, in place.
func Flatten(cids []graph.VertexID) {
	for v := range cids {
		c := cids[v]
		for c != cids[c] {
			c = cids[c]
		}
		cids[v] = c
	}
}

// ComputeHistogram groups flattened labels, returning the distinct roots
// in ascending order with the member count of each.
func ComputeHistogram(cids []graph.VertexID) (roots []graph.VertexID, counts []int64) {
	sizes := make(map[graph.VertexID]int64)
	for _, c := range cids {
		sizes[c]++
	}
	roots = make([]graph.VertexID, 0, len(sizes))
	for c := range sizes {
		roots = append(roots, c)
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })
	counts = make([]int64, len(roots))
	for i, c := range roots {
		counts[i] = sizes[c]
	}
	return roots, counts
}

// Result is the host-side output of one run.
type Result struct {
	Components []graph.VertexID
	Roots      []graph.VertexID
	Counts     []int64
	Stats      *engine.Stats
}

// Run performs a whole component labeling: allocate, reset, enact,
// extract, post-process, free.
func Run(ctx context.Context, dev *device.Context, g *graph.CSR, cfg Config) (*Result, error) {
	p, err := NewProblem(dev, g, cfg)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer p.Free()
	if err := p.Reset(); err != nil {
		return nil, errors.Trace(err)
	}
	stats, err := engine.Enact[*Problem](ctx, dev, p, Functor{}, engine.Options{
		MaxIterations: cfg.MaxIterations,
		MaxGridSize:   cfg.MaxGridSize,
		Mode:          engine.FullAdvance,
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	res := &Result{Components: make([]graph.VertexID, g.NumNodes()), Stats: stats}
	if err := p.ExtractComponents(res.Components); err != nil {
		return nil, errors.Trace(err)
	}
	res.Roots, res.Counts = ComputeHistogram(res.Components)
	return res, nil
}
