package engine

import (
	"context"
	"math"
	"time"

	"github.com/juju/errors"

	"github.com/vertexlabs/gryphon/device"
	"github.com/vertexlabs/gryphon/graph"
)

// Mode selects what Advance expands.
type Mode int32

const (
	// FromFrontier expands the outgoing edges of the input frontier.
	FromFrontier Mode = iota
	// FullAdvance expands every vertex every iteration and stops once an
	// iteration wins no edge. For label-propagation style primitives
	// whose active set is the whole graph.
	FullAdvance
)

// Options tune one enactment.
type Options struct {
	// MaxIterations caps the operator loop. 0 derives a cap from the
	// graph size.
	MaxIterations int32
	// MaxGridSize is the launch width handed to the launcher, 0 = auto.
	MaxGridSize int32
	// Mode selects frontier-driven or full expansion.
	Mode Mode
	// Priority enables two-pile scheduling. The functor must implement
	// PriorityScorer.
	Priority bool
}

// Stats describes a finished enactment.
type Stats struct {
	Iterations    int32         `json:"iterations"`
	FrontierSizes []int32       `json:"frontierSizes"`
	EdgesScanned  int64         `json:"edgesScanned"`
	Deferred      int64         `json:"deferred"`
	Elapsed       time.Duration `json:"elapsedNanos"`
}

// Kernels append to frontiers through fixed-size local buffers, one flush
// per full buffer plus one per chunk tail.
const emitChunk = 256

// Enact drives fn over p until the frontier drains. Each iteration is one
// Advance and one Filter, separated by full barriers; ctx is consulted only
// between iterations, never mid-step. The problem must already be Reset.
func Enact[P Problem](ctx context.Context, l device.Launcher, p P, fn Functor[P], opts Options) (*Stats, error) {
	if !p.Ready() {
		return nil, errors.Annotatef(ErrNotReady, "enact before reset")
	}
	stats := &Stats{}
	start := time.Now()
	var err error
	if opts.Mode == FullAdvance {
		err = enactFull(ctx, l, p, fn, opts, stats)
	} else {
		err = enactFrontier(ctx, l, p, fn, opts, stats)
	}
	stats.Elapsed = time.Since(start)
	if err != nil {
		return stats, errors.Trace(err)
	}
	if c, ok := any(p).(Completable); ok {
		c.SetDone(true)
	}
	return stats, nil
}

func enactFrontier[P Problem](ctx context.Context, l device.Launcher, p P, fn Functor[P], opts Options, stats *Stats) error {
	g := p.Graph()
	if g.NumEdges() == 0 {
		// Nothing can ever be expanded; the seed labels are final.
		return nil
	}
	fr := p.Frontier()
	bound := iterationCap(opts.MaxIterations, g.NumNodes())
	scorer, scored := fn.(PriorityScorer[P])
	priority := opts.Priority && scored
	var far FarPile
	bucket := int32(0)

	for fr.Size() > 0 || (priority && far.Len() > 0) {
		if err := ctx.Err(); err != nil {
			return errors.Annotatef(err, "interrupted at iteration %d", stats.Iterations)
		}
		if int64(stats.Iterations) >= bound {
			return errors.Annotatef(ErrDiverged,
				"after %d iterations, frontier size %d", stats.Iterations, fr.Size())
		}
		if priority && fr.Size() == 0 {
			// The near pile drained; admit the next bucket.
			bucket = int32(far.Min())
			if err := fr.Load(far.PopBelow(float64(bucket + 1))); err != nil {
				return errors.Trace(err)
			}
		}
		if ia, ok := any(p).(IterationAware); ok {
			ia.SetIteration(stats.Iterations)
		}
		stats.FrontierSizes = append(stats.FrontierSizes, fr.Size())

		if err := advance(l, g, fr, p, fn, opts.MaxGridSize, stats); err != nil {
			return errors.Trace(err)
		}
		fr.Swap()
		if err := filter(l, fr, p, fn, opts.MaxGridSize); err != nil {
			return errors.Trace(err)
		}
		fr.Swap()

		if priority && fr.Size() > 0 {
			near := splitByScore(fr, p, scorer, &far, bucket, stats)
			if err := fr.Load(near); err != nil {
				return errors.Trace(err)
			}
		}
		stats.Iterations++
	}
	return nil
}

// advance expands the outgoing edges of every frontier vertex, invoking the
// edge functor once per (source, edge) pair. Winning destinations land in
// the output arena unordered and possibly duplicated.
func advance[P Problem](l device.Launcher, g *graph.CSR, fr *Frontier, p P, fn Functor[P], grid int32, stats *Stats) error {
	in := fr.In()
	return l.Launch(grid, int32(len(in)), func(lo, hi int32) {
		local := make([]graph.VertexID, 0, emitChunk)
		var scanned int64
		for i := lo; i < hi; i++ {
			src := in[i]
			elo, ehi := g.EdgeRange(src)
			scanned += int64(ehi - elo)
			for e := elo; e < ehi; e++ {
				dst := g.Dst(e)
				if fn.CondEdge(src, dst, e, p) {
					fn.ApplyEdge(src, dst, e, p)
					local = append(local, dst)
					if len(local) == emitChunk {
						fr.Emit(local)
						local = local[:0]
					}
				}
			}
		}
		fr.Emit(local)
		device.AddInt64(&stats.EdgesScanned, scanned)
	})
}

// filter compacts the raw advance output: survivors of the vertex functor
// form the next input frontier.
func filter[P Problem](l device.Launcher, fr *Frontier, p P, fn Functor[P], grid int32) error {
	in := fr.In()
	return l.Launch(grid, int32(len(in)), func(lo, hi int32) {
		local := make([]graph.VertexID, 0, emitChunk)
		for i := lo; i < hi; i++ {
			v := in[i]
			if fn.CondFilter(v, p) {
				fn.ApplyFilter(v, p)
				local = append(local, v)
				if len(local) == emitChunk {
					fr.Emit(local)
					local = local[:0]
				}
			}
		}
		fr.Emit(local)
	})
}

// splitByScore keeps the current bucket in the near frontier and defers the
// rest. Deferred vertices keep the score they were deferred at.
func splitByScore[P Problem](fr *Frontier, p P, scorer PriorityScorer[P], far *FarPile, bucket int32, stats *Stats) []graph.VertexID {
	near := make([]graph.VertexID, 0, fr.Size())
	limit := float64(bucket + 1)
	for _, v := range fr.In() {
		s := scorer.ComputePriorityScore(v, p)
		if s < limit {
			near = append(near, v)
		} else {
			far.Push(v, s)
			stats.Deferred++
		}
	}
	return near
}

// enactFull runs expansion over the whole vertex set each iteration. The
// frontier arenas stay unused; convergence is an iteration in which no
// edge functor wins.
func enactFull[P Problem](ctx context.Context, l device.Launcher, p P, fn Functor[P], opts Options, stats *Stats) error {
	g := p.Graph()
	if g.NumEdges() == 0 {
		return nil
	}
	n := g.NumNodes()
	bound := iterationCap(opts.MaxIterations, n)
	for {
		if err := ctx.Err(); err != nil {
			return errors.Annotatef(err, "interrupted at iteration %d", stats.Iterations)
		}
		if int64(stats.Iterations) >= bound {
			return errors.Annotatef(ErrDiverged,
				"after %d iterations over the full vertex set", stats.Iterations)
		}
		if ia, ok := any(p).(IterationAware); ok {
			ia.SetIteration(stats.Iterations)
		}
		var wins int64
		err := l.Launch(opts.MaxGridSize, n, func(lo, hi int32) {
			var scanned, won int64
			for v := lo; v < hi; v++ {
				elo, ehi := g.EdgeRange(v)
				scanned += int64(ehi - elo)
				for e := elo; e < ehi; e++ {
					dst := g.Dst(e)
					if fn.CondEdge(v, dst, e, p) {
						fn.ApplyEdge(v, dst, e, p)
						won++
					}
				}
			}
			device.AddInt64(&stats.EdgesScanned, scanned)
			if won > 0 {
				device.AddInt64(&wins, won)
			}
		})
		if err != nil {
			return errors.Trace(err)
		}
		stats.Iterations++
		if wins > math.MaxInt32 {
			wins = math.MaxInt32
		}
		stats.FrontierSizes = append(stats.FrontierSizes, int32(wins))
		if wins == 0 {
			return nil
		}
		err = l.Launch(opts.MaxGridSize, n, func(lo, hi int32) {
			for v := lo; v < hi; v++ {
				if fn.CondFilter(v, p) {
					fn.ApplyFilter(v, p)
				}
			}
		})
		if err != nil {
			return errors.Trace(err)
		}
	}
}

// iterationCap turns the configured bound into an effective one. The
// fallback is generous; primitives that legitimately need more pass their
// own bound.
func iterationCap(configured int32, nodes int32) int64 {
	if configured > 0 {
		return int64(configured)
	}
	bound := 4*int64(nodes) + 16
	if bound > math.MaxInt32 {
		bound = math.MaxInt32
	}
	return bound
}
