// Package graph holds the immutable compressed-sparse-row topology shared
// by every primitive. A CSR is built once, validated up front, and never
// mutated afterwards; any number of concurrent runs may read it.
package graph

import (
	"github.com/juju/errors"
)

// VertexID identifies a vertex in the ordered 0..n-1 range.
type VertexID = int32

// EdgeID indexes into the column/weight arrays.
type EdgeID = int32

// ErrMalformed is returned by Build when the offsets or column indices do
// not describe a valid CSR. No partial graph is ever produced.
var ErrMalformed = errors.New("malformed graph")

// CSR is the compressed-sparse-row encoding: the outgoing edges of vertex v
// occupy colIndices[rowOffsets[v]:rowOffsets[v+1]].
type CSR struct {
	nodes      int32
	edges      int32
	rowOffsets []int32
	colIndices []VertexID
	weights    []float64 // nil for unweighted graphs
}

// Build validates and copies the caller's arrays into a new CSR.
// weights may be nil; otherwise it must hold one value per edge.
func Build(rowOffsets []int32, colIndices []VertexID, weights []float64) (*CSR, error) {
	if len(rowOffsets) < 1 {
		return nil, errors.Annotatef(ErrMalformed, "row offsets empty")
	}
	nodes := len(rowOffsets) - 1
	edges := len(colIndices)
	if rowOffsets[0] != 0 {
		return nil, errors.Annotatef(ErrMalformed, "row offsets start at %d, want 0", rowOffsets[0])
	}
	for v := 0; v < nodes; v++ {
		if rowOffsets[v+1] < rowOffsets[v] {
			return nil, errors.Annotatef(ErrMalformed,
				"row offsets decrease at vertex %d: %d -> %d", v, rowOffsets[v], rowOffsets[v+1])
		}
	}
	if int(rowOffsets[nodes]) != edges {
		return nil, errors.Annotatef(ErrMalformed,
			"row offsets end at %d, want edge count %d", rowOffsets[nodes], edges)
	}
	for e, dst := range colIndices {
		if dst < 0 || int(dst) >= nodes {
			return nil, errors.Annotatef(ErrMalformed,
				"edge %d points at vertex %d, graph has %d", e, dst, nodes)
		}
	}
	if weights != nil && len(weights) != edges {
		return nil, errors.Annotatef(ErrMalformed,
			"%d edge values for %d edges", len(weights), edges)
	}
	g := &CSR{
		nodes:      int32(nodes),
		edges:      int32(edges),
		rowOffsets: append([]int32(nil), rowOffsets...),
		colIndices: append([]VertexID(nil), colIndices...),
	}
	if weights != nil {
		g.weights = append([]float64(nil), weights...)
	}
	return g, nil
}

func (g *CSR) NumNodes() int32 { return g.nodes }
func (g *CSR) NumEdges() int32 { return g.edges }

// Weighted reports whether the graph carries per-edge values.
func (g *CSR) Weighted() bool { return g.weights != nil }

// OutDegree returns the number of outgoing edges of v.
func (g *CSR) OutDegree(v VertexID) int32 {
	return g.rowOffsets[v+1] - g.rowOffsets[v]
}

// EdgeRange returns the half-open edge id interval owned by v.
func (g *CSR) EdgeRange(v VertexID) (lo, hi EdgeID) {
	return g.rowOffsets[v], g.rowOffsets[v+1]
}

// Neighbors returns the destinations of v's outgoing edges.
// The slice is a view into the CSR and must not be modified.
func (g *CSR) Neighbors(v VertexID) []VertexID {
	return g.colIndices[g.rowOffsets[v]:g.rowOffsets[v+1]]
}

// Dst returns the destination of edge e.
func (g *CSR) Dst(e EdgeID) VertexID { return g.colIndices[e] }

// Weight returns the value of edge e, or 1 on unweighted graphs.
func (g *CSR) Weight(e EdgeID) float64 {
	if g.weights == nil {
		return 1
	}
	return g.weights[e]
}

// RowOffsets exposes the offset array as a read-only view.
func (g *CSR) RowOffsets() []int32 { return g.rowOffsets }

// ColIndices exposes the column array as a read-only view.
func (g *CSR) ColIndices() []VertexID { return g.colIndices }

// Weights exposes the edge values as a read-only view; nil if unweighted.
func (g *CSR) Weights() []float64 { return g.weights }

// Reverse builds a new CSR with every edge flipped, weights following their
// edges. Cost is O(nodes+edges) via a counting sort on destinations.
func (g *CSR) Reverse() *CSR {
	offsets := make([]int32, g.nodes+1)
	for _, dst := range g.colIndices {
		offsets[dst+1]++
	}
	for v := int32(0); v < g.nodes; v++ {
		offsets[v+1] += offsets[v]
	}
	cols := make([]VertexID, g.edges)
	var weights []float64
	if g.weights != nil {
		weights = make([]float64, g.edges)
	}
	cursor := append([]int32(nil), offsets[:g.nodes]...)
	for src := int32(0); src < g.nodes; src++ {
		for e := g.rowOffsets[src]; e < g.rowOffsets[src+1]; e++ {
			dst := g.colIndices[e]
			slot := cursor[dst]
			cursor[dst]++
			cols[slot] = src
			if weights != nil {
				weights[slot] = g.weights[e]
			}
		}
	}
	return &CSR{
		nodes:      g.nodes,
		edges:      g.edges,
		rowOffsets: offsets,
		colIndices: cols,
		weights:    weights,
	}
}

// Symmetrize returns the union of the graph and its reverse, so that every
// edge is traversable in both directions. Parallel duplicates are kept;
// relaxation-style traversals tolerate them.
func (g *CSR) Symmetrize() *CSR {
	rev := g.Reverse()
	offsets := make([]int32, g.nodes+1)
	for v := int32(0); v < g.nodes; v++ {
		offsets[v+1] = offsets[v] + g.OutDegree(v) + rev.OutDegree(v)
	}
	cols := make([]VertexID, 2*g.edges)
	var weights []float64
	if g.weights != nil {
		weights = make([]float64, 2*g.edges)
	}
	for v := int32(0); v < g.nodes; v++ {
		slot := offsets[v]
		for e := g.rowOffsets[v]; e < g.rowOffsets[v+1]; e++ {
			cols[slot] = g.colIndices[e]
			if weights != nil {
				weights[slot] = g.weights[e]
			}
			slot++
		}
		for e := rev.rowOffsets[v]; e < rev.rowOffsets[v+1]; e++ {
			cols[slot] = rev.colIndices[e]
			if weights != nil {
				weights[slot] = rev.weights[e]
			}
			slot++
		}
	}
	return &CSR{
		nodes:      g.nodes,
		edges:      2 * g.edges,
		rowOffsets: offsets,
		colIndices: cols,
		weights:    weights,
	}
}
