package book

import "limitbook/domain"

// ExecutionQueue is the FIFO hand-off buffer of completed Executions
// awaiting pickup by the session layer. Push is O(1); Drain is O(n)
// and empties the queue, transferring ownership of every queued
// Execution to the caller.
//
// It is a power-of-two ring buffer indexed by a write/read sequence
// pair masked against the buffer length. The core is strictly
// single-threaded, so there is no producer/consumer blocking to manage
// here; overflow simply grows the buffer instead of blocking.
type ExecutionQueue struct {
	buffer []domain.Execution
	mask   int
	write  int64
	read   int64
}

// NewExecutionQueue creates a queue with the given initial capacity,
// rounded up to the next power of two (minimum 16).
func NewExecutionQueue(initialCapacity int) *ExecutionQueue {
	size := 16
	for size < initialCapacity {
		size <<= 1
	}
	return &ExecutionQueue{
		buffer: make([]domain.Execution, size),
		mask:   size - 1,
	}
}

// Push appends one Execution to the tail of the queue, growing the
// backing buffer first if it is full.
func (q *ExecutionQueue) Push(exec domain.Execution) {
	if q.write-q.read == int64(len(q.buffer)) {
		q.grow()
	}
	q.buffer[q.write&int64(q.mask)] = exec
	q.write++
}

// Len is the number of Executions currently queued.
func (q *ExecutionQueue) Len() int {
	return int(q.write - q.read)
}

// Drain returns every queued Execution in the exact order it was
// pushed and empties the queue.
func (q *ExecutionQueue) Drain() []domain.Execution {
	n := q.Len()
	if n == 0 {
		return nil
	}
	out := make([]domain.Execution, n)
	for i := 0; i < n; i++ {
		out[i] = q.buffer[(q.read+int64(i))&int64(q.mask)]
	}
	q.read = q.write
	return out
}

// grow doubles the backing buffer, preserving FIFO order.
func (q *ExecutionQueue) grow() {
	n := q.Len()
	newBuf := make([]domain.Execution, len(q.buffer)*2)
	for i := 0; i < n; i++ {
		newBuf[i] = q.buffer[(q.read+int64(i))&int64(q.mask)]
	}
	q.buffer = newBuf
	q.mask = len(newBuf) - 1
	q.write = int64(n)
	q.read = 0
}
