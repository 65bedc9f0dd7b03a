package core

import "sync/atomic"

// TickCounter counts handler invocations. Add is safe from interrupt
// context while Count and Reset run in normal context, which is exactly
// the sharing a tick handler needs; no critical section required.
//
// The zero value is ready to use. The count survives Disarm: it belongs
// to the application, not the peripheral, and only Reset zeroes it.
type TickCounter struct {
	n uint32
}

// Add records one tick and returns its sequence number, counting from zero.
func (c *TickCounter) Add() uint32 {
	return atomic.AddUint32(&c.n, 1) - 1
}

// Count returns the number of ticks recorded so far.
func (c *TickCounter) Count() uint32 {
	return atomic.LoadUint32(&c.n)
}

// Reset zeroes the counter.
func (c *TickCounter) Reset() {
	atomic.StoreUint32(&c.n, 0)
}
