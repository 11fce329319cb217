package engine

import (
	"sync/atomic"

	"github.com/juju/errors"

	"github.com/vertexlabs/gryphon/device"
	"github.com/vertexlabs/gryphon/graph"
)

// Frontier is a double-buffered vertex queue. Kernels read the input arena
// and append to the output arena through chunk-local buffers; between
// launches the host swaps the two. Both arenas are sized once, at the
// largest set one expansion can emit, so appends never reallocate.
type Frontier struct {
	in, out *device.Array[graph.VertexID]
	inLen   int32
	outLen  int32
}

// NewFrontier allocates both arenas at the given capacity on c.
func NewFrontier(c *device.Context, capacity int32) (*Frontier, error) {
	in, err := device.Alloc[graph.VertexID](c, capacity)
	if err != nil {
		return nil, errors.Trace(err)
	}
	out, err := device.Alloc[graph.VertexID](c, capacity)
	if err != nil {
		in.Free()
		return nil, errors.Trace(err)
	}
	return &Frontier{in: in, out: out}, nil
}

// Capacity returns the arena size in vertices.
func (f *Frontier) Capacity() int32 { return f.in.Len() }

// Size returns the number of vertices in the input arena.
func (f *Frontier) Size() int32 { return f.inLen }

// In returns the input arena's live prefix. Valid until the next Swap.
func (f *Frontier) In() []graph.VertexID {
	return f.in.Data()[:f.inLen]
}

// Load replaces the input arena's contents with vs.
func (f *Frontier) Load(vs []graph.VertexID) error {
	if int32(len(vs)) > f.in.Len() {
		return errors.Errorf("frontier load of %d vertices exceeds capacity %d", len(vs), f.in.Len())
	}
	copy(f.in.Data(), vs)
	f.inLen = int32(len(vs))
	return nil
}

// Emit appends a kernel's local buffer to the output arena. Chunks reserve
// their slot with one atomic bump, so concurrent emitters never interleave.
func (f *Frontier) Emit(local []graph.VertexID) {
	n := int32(len(local))
	if n == 0 {
		return
	}
	lo := device.AddInt32(&f.outLen, n)
	if lo+n > f.out.Len() {
		panic("frontier output arena overflow")
	}
	copy(f.out.Data()[lo:lo+n], local)
}

// OutSize returns the number of vertices emitted since the last Swap.
func (f *Frontier) OutSize() int32 { return atomic.LoadInt32(&f.outLen) }

// Swap promotes the output arena to input and empties the new output.
// Callers must not hold views from In across a Swap.
func (f *Frontier) Swap() {
	f.in, f.out = f.out, f.in
	f.inLen = atomic.LoadInt32(&f.outLen)
	f.outLen = 0
}

// Clear empties both arenas without releasing them.
func (f *Frontier) Clear() {
	f.inLen = 0
	f.outLen = 0
}

// Free releases both arenas.
func (f *Frontier) Free() {
	f.in.Free()
	f.out.Free()
}
