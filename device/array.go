package device

import (
	"unsafe"

	"github.com/juju/errors"
)

// ErrAllocation is the cause of every failed array allocation.
var ErrAllocation = errors.New("array allocation failed")

// Value enumerates the element types arrays and atomics support.
type Value interface {
	int32 | int64 | float32 | float64
}

// Array is a flat, fixed-length buffer charged against a context's budget.
// Kernels operate on it through Data; hosts move data in and out through
// the copy methods.
type Array[T Value] struct {
	ctx   *Context
	data  []T
	bytes int64
}

// Alloc reserves an n-element array on c, zero-initialized.
func Alloc[T Value](c *Context, n int32) (*Array[T], error) {
	if n < 0 {
		return nil, errors.Annotatef(ErrAllocation, "negative length %d", n)
	}
	var zero T
	bytes := int64(n) * int64(unsafe.Sizeof(zero))
	if !c.reserve(bytes) {
		return nil, errors.Annotatef(ErrAllocation,
			"%d bytes requested, %d of %d in use", bytes, c.MemInUse(), c.budget)
	}
	return &Array[T]{ctx: c, data: make([]T, n), bytes: bytes}, nil
}

// Len returns the element count.
func (a *Array[T]) Len() int32 { return int32(len(a.data)) }

// Data returns the backing slice for kernel access.
func (a *Array[T]) Data() []T { return a.data }

// Fill sets every element to v.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// CopyFromHost copies src into the array; lengths must match.
func (a *Array[T]) CopyFromHost(src []T) error {
	if len(src) != len(a.data) {
		return errors.Errorf("copy of %d elements into array of %d", len(src), len(a.data))
	}
	copy(a.data, src)
	return nil
}

// CopyToHost copies the array into dst; lengths must match.
func (a *Array[T]) CopyToHost(dst []T) error {
	if len(dst) != len(a.data) {
		return errors.Errorf("copy of %d elements into buffer of %d", len(a.data), len(dst))
	}
	copy(dst, a.data)
	return nil
}

// Host returns a fresh host-side copy of the array.
func (a *Array[T]) Host() []T {
	out := make([]T, len(a.data))
	copy(out, a.data)
	return out
}

// Free releases the array's budget reservation. Safe on nil arrays and
// safe to call twice.
func (a *Array[T]) Free() {
	if a == nil || a.data == nil {
		return
	}
	a.ctx.release(a.bytes)
	a.data = nil
	a.bytes = 0
}
