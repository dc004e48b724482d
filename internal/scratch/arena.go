// Package scratch provides growth-only scratch buffers reused across
// transform calls.
package scratch

// Arena hands out a single reusable buffer. A slice returned by Alloc is valid
// until the next Alloc on the same Arena. Contents are not zeroed.
//
// An Arena is not safe for concurrent use.
type Arena[T any] struct {
	buf []T
}

// Alloc returns a slice of length n backed by the arena. The backing storage
// grows when n exceeds the current capacity and never shrinks.
func (a *Arena[T]) Alloc(n int) []T {
	if n < 0 {
		n = 0
	}
	if cap(a.buf) < n {
		a.buf = make([]T, n)
	}
	return a.buf[:n]
}

// Cap returns the current capacity in elements.
func (a *Arena[T]) Cap() int {
	return cap(a.buf)
}
