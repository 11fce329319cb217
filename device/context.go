// Package device is the execution substrate of the primitives: bulk kernel
// launches over integer ranges, allocation of budgeted flat arrays, and the
// atomic operations kernels use to resolve concurrent write races.
package device

import (
	"sync/atomic"

	"github.com/intel/forGoParallel/parallel"
	"github.com/juju/errors"
)

// ErrLaunch is the cause of every kernel launch failure.
var ErrLaunch = errors.New("kernel launch failed")

// Kernel is the body of a launch. It is invoked once per chunk with a
// half-open index range and must be safe to run concurrently with itself.
type Kernel func(lo, hi int32)

// Launcher runs kernels. grid is the requested launch width in chunks;
// 0 lets the launcher choose. A launch over zero work items returns
// immediately without invoking the kernel.
type Launcher interface {
	Launch(grid, work int32, kernel Kernel) error
}

// Context owns the memory budget and the launch machinery. The zero value
// is not usable; call New.
type Context struct {
	budget   int64 // bytes, 0 means unlimited
	inUse    int64
	launches int64
}

// New returns a context with the given memory budget in bytes.
// budget <= 0 disables budget enforcement.
func New(budget int64) *Context {
	if budget < 0 {
		budget = 0
	}
	return &Context{budget: budget}
}

// Launch cuts [0, work) into chunks and runs kernel over them in parallel,
// returning only when every chunk has finished. A panicking kernel is
// reported as an ErrLaunch instead of unwinding into the caller.
func (c *Context) Launch(grid, work int32, kernel Kernel) (err error) {
	if work <= 0 {
		return nil
	}
	atomic.AddInt64(&c.launches, 1)
	defer func() {
		if r := recover(); r != nil {
			err = errors.Annotatef(ErrLaunch, "kernel panic: %v", r)
		}
	}()
	if grid <= 0 || grid >= work {
		parallel.Range(0, int(work), 0, func(low, high int) {
			kernel(int32(low), int32(high))
		})
		return nil
	}
	chunk := (work + grid - 1) / grid
	tasks := make([]func(), 0, grid)
	for lo := int32(0); lo < work; lo += chunk {
		hi := lo + chunk
		if hi > work {
			hi = work
		}
		lo, hi := lo, hi
		tasks = append(tasks, func() { kernel(lo, hi) })
	}
	parallel.Do(tasks...)
	return nil
}

// Launches returns how many kernels have been launched on this context.
func (c *Context) Launches() int64 { return atomic.LoadInt64(&c.launches) }

// MemInUse returns the bytes currently reserved by live arrays.
func (c *Context) MemInUse() int64 { return atomic.LoadInt64(&c.inUse) }

// MemBudget returns the configured budget in bytes, 0 if unlimited.
func (c *Context) MemBudget() int64 { return c.budget }

func (c *Context) reserve(bytes int64) bool {
	for {
		used := atomic.LoadInt64(&c.inUse)
		if c.budget > 0 && used+bytes > c.budget {
			return false
		}
		if atomic.CompareAndSwapInt64(&c.inUse, used, used+bytes) {
			return true
		}
	}
}

func (c *Context) release(bytes int64) {
	atomic.AddInt64(&c.inUse, -bytes)
}
