// The far pile follows the container/heap package documentation example;
// that is still the idiomatic way to get a typed priority queue.
package engine

import (
	"container/heap"

	"github.com/vertexlabs/gryphon/graph"
)

// An item is one deferred vertex with the score it was deferred at.
type item struct {
	vertex graph.VertexID
	score  float64
	// The index is maintained by the heap.Interface methods.
	index int
}

type itemHeap []*item

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	return h[i].score < h[j].score
}

func (h itemHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *itemHeap) Push(x interface{}) {
	n := len(*h)
	it := x.(*item)
	it.index = n
	*h = append(*h, it)
}

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	it.index = -1 // for safety
	*h = old[0 : n-1]
	return it
}

// FarPile holds vertices whose priority score put them beyond the current
// bucket. Lowest score comes out first. Vertices may sit in the pile with a
// stale score after their label improves; re-admitting them late is safe
// because expansion re-checks labels.
type FarPile struct {
	h itemHeap
}

// Push defers v at the given score.
func (fp *FarPile) Push(v graph.VertexID, score float64) {
	heap.Push(&fp.h, &item{vertex: v, score: score})
}

// Len returns the number of deferred vertices.
func (fp *FarPile) Len() int {
	return fp.h.Len()
}

// Min returns the smallest deferred score. The pile must not be empty.
func (fp *FarPile) Min() float64 {
	return fp.h[0].score
}

// PopBelow removes and returns every vertex deferred at a score below
// limit, in ascending score order.
func (fp *FarPile) PopBelow(limit float64) []graph.VertexID {
	var out []graph.VertexID
	for fp.h.Len() > 0 && fp.h[0].score < limit {
		out = append(out, heap.Pop(&fp.h).(*item).vertex)
	}
	return out
}
