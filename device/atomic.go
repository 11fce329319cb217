package device

import (
	"math"
	"sync/atomic"
	"unsafe"
)

// The atomic minimum family lowers *addr to v if v is smaller. It returns
// the value observed before the update and whether this caller performed
// it. Under contention exactly one writer of the winning value wins; the
// rest observe a value at most theirs and lose.

func MinInt32(addr *int32, v int32) (int32, bool) {
	for {
		old := atomic.LoadInt32(addr)
		if v >= old {
			return old, false
		}
		if atomic.CompareAndSwapInt32(addr, old, v) {
			return old, true
		}
	}
}

func MinInt64(addr *int64, v int64) (int64, bool) {
	for {
		old := atomic.LoadInt64(addr)
		if v >= old {
			return old, false
		}
		if atomic.CompareAndSwapInt64(addr, old, v) {
			return old, true
		}
	}
}

// Float minima go through the bit pattern so the compare-and-swap stays a
// single word-sized operation. Comparison is on the float value.

func MinFloat32(addr *float32, v float32) (float32, bool) {
	bits := (*uint32)(unsafe.Pointer(addr))
	for {
		old := atomic.LoadUint32(bits)
		cur := math.Float32frombits(old)
		if v >= cur {
			return cur, false
		}
		if atomic.CompareAndSwapUint32(bits, old, math.Float32bits(v)) {
			return cur, true
		}
	}
}

func MinFloat64(addr *float64, v float64) (float64, bool) {
	bits := (*uint64)(unsafe.Pointer(addr))
	for {
		old := atomic.LoadUint64(bits)
		cur := math.Float64frombits(old)
		if v >= cur {
			return cur, false
		}
		if atomic.CompareAndSwapUint64(bits, old, math.Float64bits(v)) {
			return cur, true
		}
	}
}

// Min dispatches to the width-specific minimum for any supported element
// type, so generic kernels can share one spelling.
func Min[T Value](addr *T, v T) (T, bool) {
	switch p := any(addr).(type) {
	case *int32:
		old, won := MinInt32(p, any(v).(int32))
		return any(old).(T), won
	case *int64:
		old, won := MinInt64(p, any(v).(int64))
		return any(old).(T), won
	case *float32:
		old, won := MinFloat32(p, any(v).(float32))
		return any(old).(T), won
	case *float64:
		old, won := MinFloat64(p, any(v).(float64))
		return any(old).(T), won
	}
	panic("device: unsupported atomic element type")
}

// The atomic add family returns the value observed before the addition.

func AddInt32(addr *int32, delta int32) int32 {
	return atomic.AddInt32(addr, delta) - delta
}

func AddInt64(addr *int64, delta int64) int64 {
	return atomic.AddInt64(addr, delta) - delta
}

func AddFloat32(addr *float32, delta float32) float32 {
	bits := (*uint32)(unsafe.Pointer(addr))
	for {
		old := atomic.LoadUint32(bits)
		cur := math.Float32frombits(old)
		if atomic.CompareAndSwapUint32(bits, old, math.Float32bits(cur+delta)) {
			return cur
		}
	}
}

func AddFloat64(addr *float64, delta float64) float64 {
	bits := (*uint64)(unsafe.Pointer(addr))
	for {
		old := atomic.LoadUint64(bits)
		cur := math.Float64frombits(old)
		if atomic.CompareAndSwapUint64(bits, old, math.Float64bits(cur+delta)) {
			return cur
		}
	}
}

// LoadInt32 reads *addr with the ordering the CAS family publishes under.
func LoadInt32(addr *int32) int32 {
	return atomic.LoadInt32(addr)
}

// CASInt32 publishes v into *addr only if it still holds expect.
func CASInt32(addr *int32, expect, v int32) bool {
	return atomic.CompareAndSwapInt32(addr, expect, v)
}

// CASInt64 publishes v into *addr only if it still holds expect.
func CASInt64(addr *int64, expect, v int64) bool {
	return atomic.CompareAndSwapInt64(addr, expect, v)
}
