package book

import "sync/atomic"

// Sequencer is the external contract the book relies on for fresh
// order and execution identifiers. It is a pure function from the
// book's point of view; the book makes no assumption about its
// internal synchronization beyond single-threaded use.
type Sequencer interface {
	NextOrderID() uint64
	NextExecutionID() uint64
}

// AtomicSequencer is the reference Sequencer: two independent
// monotonic counters, each returning a raw uint64 id with no
// string-formatting in the hot path.
type AtomicSequencer struct {
	orderCounter atomic.Uint64
	execCounter  atomic.Uint64
}

// NewAtomicSequencer returns a Sequencer starting both counters at 1.
func NewAtomicSequencer() *AtomicSequencer {
	return &AtomicSequencer{}
}

// NextOrderID returns the next monotonic order id, starting at 1.
func (s *AtomicSequencer) NextOrderID() uint64 {
	return s.orderCounter.Add(1)
}

// NextExecutionID returns the next monotonic execution id, starting at 1.
func (s *AtomicSequencer) NextExecutionID() uint64 {
	return s.execCounter.Add(1)
}
