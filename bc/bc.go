// Package bc computes single-source betweenness dependency scores in two
// sweeps. The forward sweep is a level traversal that counts shortest paths:
// every shortest-path edge contributes its source's count to the
// destination. The backward sweep walks the levels deepest-first and pulls
// each vertex's dependency share back from its successors.
package bc

import (
	"context"
	"math"

	"github.com/juju/errors"

	"github.com/vertexlabs/gryphon/device"
	"github.com/vertexlabs/gryphon/engine"
	"github.com/vertexlabs/gryphon/graph"
)

// Infinity is the level of a vertex the forward sweep never reached.
const Infinity int32 = math.MaxInt32

// Config selects the optional parts of a run.
type Config struct {
	// NumPartitions is the partition count the state is sliced for,
	// 0 means 1.
	NumPartitions int32
	// MaxIterations caps each operator loop, 0 derives from graph size.
	MaxIterations int32
	// MaxGridSize is the launch width, 0 = auto.
	MaxGridSize int32
}

// Problem is the device-resident state shared by both sweeps.
type Problem struct {
	engine.ProblemBase
	labels *device.Array[int32]   // level per vertex
	sigma  *device.Array[float64] // shortest-path counts
	delta  *device.Array[float64] // dependency accumulators
	marks  *device.Array[int32]   // iteration stamps for frontier dedup
	source graph.VertexID
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
	n := g.NumNodes()
	var err error
	if p.labels, err = device.Alloc[int32](dev, n); err == nil {
		if p.sigma, err = device.Alloc[float64](dev, n); err == nil {
			if p.delta, err = device.Alloc[float64](dev, n); err == nil {
				p.marks, err = device.Alloc[int32](dev, n)
			}
		}
	}
	if err != nil {
		p.Free()
		return nil, errors.Trace(err)
	}
	return p, nil
}

// Reset prepares both sweeps' state for a run from source.
func (p *Problem) Reset(source graph.VertexID) error {
	g := p.Graph()
	if source < 0 || source >= g.NumNodes() {
		return errors.Errorf("source vertex %d outside graph of %d nodes", source, g.NumNodes())
	}
	p.labels.Fill(Infinity)
	p.labels.Data()[source] = 0
	p.sigma.Fill(0)
	p.sigma.Data()[source] = 1
	p.delta.Fill(0)
	p.marks.Fill(-1)
	p.source = source
	return errors.Trace(p.SeedFrontier([]graph.VertexID{source}))
}

// ExtractScores copies the dependency scores into dst. The source's own
// slot is zero by convention.
func (p *Problem) ExtractScores(dst []float64) error {
	if !p.Done() {
		return errors.Annotatef(engine.ErrNotReady, "extract before enactment finished")
	}
	if err := p.delta.CopyToHost(dst); err != nil {
		return errors.Trace(err)
	}
	dst[p.source] = 0
	return nil
}

// ExtractSigmas copies the shortest-path counts into dst.
func (p *Problem) ExtractSigmas(dst []float64) error {
	if !p.Done() {
		return errors.Annotatef(engine.ErrNotReady, "extract before enactment finished")
	}
	return errors.Trace(p.sigma.CopyToHost(dst))
}

// Free releases all device arrays.
func (p *Problem) Free() {
	p.labels.Free()
	p.sigma.Free()
	p.delta.Free()
	p.marks.Free()
	p.FreeBase()
}

// ForwardFunctor counts shortest paths level by level.
type ForwardFunctor struct{}

// CondEdge claims dst for the next level, then treats every edge that
// lands on that level as a shortest-path edge, winner or not; each such
// edge contributes one sigma share.
func (ForwardFunctor) CondEdge(src, dst graph.VertexID, e graph.EdgeID, p *Problem) bool {
	labels := p.labels.Data()
	next := labels[src] + 1
	device.CASInt32(&labels[dst], Infinity, next)
	return device.LoadInt32(&labels[dst]) == next
}

// ApplyEdge adds the source's path count to the destination.
func (ForwardFunctor) ApplyEdge(src, dst graph.VertexID, e graph.EdgeID, p *Problem) {
	device.AddFloat64(&p.sigma.Data()[dst], p.sigma.Data()[src])
}

// CondFilter admits each vertex once per wave: shortest-path edges emit
// one copy of dst apiece, and only the first claim survives compaction.
func (ForwardFunctor) CondFilter(v graph.VertexID, p *Problem) bool {
	marks := p.marks.Data()
	it := p.Iteration()
	for {
		m := device.LoadInt32(&marks[v])
		if m == it {
			return false
		}
		if device.CASInt32(&marks[v], m, it) {
			return true
		}
	}
}

// ApplyFilter has no per-vertex work in the forward sweep.
func (ForwardFunctor) ApplyFilter(v graph.VertexID, p *Problem) {}

// BackwardFunctor pulls dependency shares back across shortest-path edges.
// Each enactment covers exactly one level: the filter admits nothing, so
// the frontier drains after a single wave.
type BackwardFunctor struct{}

// CondEdge qualifies the shortest-path edges out of the current level.
func (BackwardFunctor) CondEdge(src, dst graph.VertexID, e graph.EdgeID, p *Problem) bool {
	labels := p.labels.Data()
	return labels[dst] == labels[src]+1
}

// ApplyEdge accumulates src's share from dst. Only src's frontier slot
// touches delta[src], so the add needs no atomicity; sigma and the deeper
// delta are settled by the per-level barrier.
func (BackwardFunctor) ApplyEdge(src, dst graph.VertexID, e graph.EdgeID, p *Problem) {
	sigma := p.sigma.Data()
	delta := p.delta.Data()
	delta[src] += sigma[src] / sigma[dst] * (1 + delta[dst])
}

// CondFilter drains the frontier; the host reloads it with the next level.
func (BackwardFunctor) CondFilter(v graph.VertexID, p *Problem) bool { return false }

// ApplyFilter never runs in the backward sweep.
func (BackwardFunctor) ApplyFilter(v graph.VertexID, p *Problem) {}

// Result is the host-side output of one run.
type Result struct {
	Scores []float64
	Sigmas []float64
	Stats  *engine.Stats
}

// Run performs a whole dependency computation: the forward counting sweep,
// then one backward enactment per level, deepest first.
func Run(ctx context.Context, dev *device.Context, g *graph.CSR, source graph.VertexID, cfg Config) (*Result, error) {
	p, err := NewProblem(dev, g, cfg)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer p.Free()
	if err := p.Reset(source); err != nil {
		return nil, errors.Trace(err)
	}
	opts := engine.Options{MaxIterations: cfg.MaxIterations, MaxGridSize: cfg.MaxGridSize}
	stats, err := engine.Enact[*Problem](ctx, dev, p, ForwardFunctor{}, opts)
	if err != nil {
		return nil, errors.Trace(err)
	}

	// Bucket the reached vertices by level for the backward walk.
	levels := p.labels.Host()
	deepest := int32(0)
	for _, l := range levels {
		if l != Infinity && l > deepest {
			deepest = l
		}
	}
	buckets := make([][]graph.VertexID, deepest+1)
	for v, l := range levels {
		if l != Infinity {
			buckets[l] = append(buckets[l], graph.VertexID(v))
		}
	}
	for l := deepest - 1; l >= 0; l-- {
		if err := p.SeedFrontier(buckets[l]); err != nil {
			return nil, errors.Trace(err)
		}
		s, err := engine.Enact[*Problem](ctx, dev, p, BackwardFunctor{}, opts)
		if err != nil {
			return nil, errors.Trace(err)
		}
		mergeStats(stats, s)
	}

	res := &Result{
		Scores: make([]float64, g.NumNodes()),
		Sigmas: make([]float64, g.NumNodes()),
		Stats:  stats,
	}
	if err := p.ExtractScores(res.Scores); err != nil {
		return nil, errors.Trace(err)
	}
	if err := p.ExtractSigmas(res.Sigmas); err != nil {
		return nil, errors.Trace(err)
	}
	return res, nil
}

func mergeStats(dst, src *engine.Stats) {
	dst.Iterations += src.Iterations
	dst.FrontierSizes = append(dst.FrontierSizes, src.FrontierSizes...)
	dst.EdgesScanned += src.EdgesScanned
	dst.Deferred += src.Deferred
	dst.Elapsed += src.Elapsed
}
