package engine

import (
	"github.com/juju/errors"

	"github.com/vertexlabs/gryphon/device"
	"github.com/vertexlabs/gryphon/graph"
)

// ProblemBase carries the state every primitive shares: the topology, the
// work queue, partition bookkeeping and the reset/ready lifecycle.
// Primitives embed it and add their own label arrays.
type ProblemBase struct {
	dev   *device.Context
	g     *graph.CSR
	fr    *Frontier
	parts []Range
	iter  int32
	ready bool
	done  bool
}

// InitBase binds the problem to a graph and allocates the frontier arenas.
// Arena capacity is the largest set one expansion can emit: every edge at
// most once, plus room for any seed set.
func (b *ProblemBase) InitBase(dev *device.Context, g *graph.CSR, numPartitions int32) error {
	parts, err := PartitionVertices(g.NumNodes(), numPartitions)
	if err != nil {
		return errors.Trace(err)
	}
	capacity := g.NumNodes()
	if g.NumEdges() > capacity {
		capacity = g.NumEdges()
	}
	fr, err := NewFrontier(dev, capacity)
	if err != nil {
		return errors.Trace(err)
	}
	b.dev = dev
	b.g = g
	b.fr = fr
	b.parts = parts
	b.ready = false
	return nil
}

// SeedFrontier empties both arenas, loads the seed set and marks the
// problem ready. Called at the end of every Reset, any number of times.
func (b *ProblemBase) SeedFrontier(seeds []graph.VertexID) error {
	b.fr.Clear()
	if err := b.fr.Load(seeds); err != nil {
		return errors.Trace(err)
	}
	b.iter = 0
	b.ready = true
	b.done = false
	return nil
}

func (b *ProblemBase) Graph() *graph.CSR       { return b.g }
func (b *ProblemBase) Frontier() *Frontier     { return b.fr }
func (b *ProblemBase) Ready() bool             { return b.ready }
func (b *ProblemBase) Device() *device.Context { return b.dev }
func (b *ProblemBase) Partitions() []Range     { return b.parts }

// SetIteration records the iteration the enactor is about to run.
func (b *ProblemBase) SetIteration(it int32) { b.iter = it }

// Iteration returns the number set by the enactor for the current wave.
func (b *ProblemBase) Iteration() int32 { return b.iter }

// SetDone records whether an enactment ran to completion. Extraction is
// only legal on a done problem.
func (b *ProblemBase) SetDone(done bool) { b.done = done }

// Done reports whether the last enactment completed.
func (b *ProblemBase) Done() bool { return b.done }

// FreeBase releases the frontier arenas.
func (b *ProblemBase) FreeBase() {
	if b.fr != nil {
		b.fr.Free()
	}
	b.ready = false
}
