// Package engine drives frontier-based graph primitives. A primitive is a
// problem (per-vertex state plus a frontier) and a functor (the per-edge and
// per-vertex decisions); the enactor alternates bulk edge expansion with
// vertex compaction until the frontier drains.
package engine

import (
	"github.com/vertexlabs/gryphon/graph"
)

// Problem is the state a primitive iterates on. Implementations own their
// label arrays and seed the frontier in their Reset.
type Problem interface {
	// Graph returns the topology the problem was initialized on.
	Graph() *graph.CSR
	// Frontier returns the problem's double-buffered work queue.
	Frontier() *Frontier
	// Ready reports whether Reset has seeded the problem.
	Ready() bool
}

// IterationAware problems are told the current iteration number before
// each expansion, so functors can stamp or compare against it.
type IterationAware interface {
	SetIteration(it int32)
}

// Completable problems are told when an enactment ran to completion;
// their Extract refuses to run until then.
type Completable interface {
	SetDone(done bool)
}

// Functor supplies the decisions of one primitive. Cond methods decide,
// Apply methods mutate; the enactor calls ApplyEdge only on edges whose
// CondEdge returned true, and ApplyFilter only on vertices whose CondFilter
// returned true. All four run concurrently with themselves and must resolve
// races through the device atomics.
type Functor[P Problem] interface {
	// CondEdge inspects edge e from src to dst during expansion. Returning
	// true marks the expansion successful: ApplyEdge runs and dst enters
	// the raw output frontier.
	CondEdge(src, dst graph.VertexID, e graph.EdgeID, p P) bool
	// ApplyEdge applies the side effects of a successful expansion.
	ApplyEdge(src, dst graph.VertexID, e graph.EdgeID, p P)
	// CondFilter decides whether v survives compaction into the next
	// input frontier.
	CondFilter(v graph.VertexID, p P) bool
	// ApplyFilter applies per-vertex work for each survivor.
	ApplyFilter(v graph.VertexID, p P)
}

// PriorityScorer orders frontier vertices for delta-stepping. Lower scores
// run earlier; a score's integer part is its bucket.
type PriorityScorer[P Problem] interface {
	ComputePriorityScore(v graph.VertexID, p P) float64
}
