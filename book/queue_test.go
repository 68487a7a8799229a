package book

import (
	"testing"

	"limitbook/domain"
)

func TestExecutionQueueFIFOOrder(t *testing.T) {
	q := NewExecutionQueue(4)
	for i := 0; i < 5; i++ {
		q.Push(domain.Execution{ExecutionID: uint64(i)})
	}

	execs := q.Drain()
	if len(execs) != 5 {
		t.Fatalf("want 5 executions, got %d", len(execs))
	}
	for i, e := range execs {
		if e.ExecutionID != uint64(i) {
			t.Fatalf("execution %d out of order: got id %d", i, e.ExecutionID)
		}
	}
	if q.Len() != 0 {
		t.Fatalf("queue should be empty after drain, got len=%d", q.Len())
	}
}

func TestExecutionQueueGrowsPastInitialCapacity(t *testing.T) {
	q := NewExecutionQueue(2)
	const n = 100
	for i := 0; i < n; i++ {
		q.Push(domain.Execution{ExecutionID: uint64(i)})
	}
	execs := q.Drain()
	if len(execs) != n {
		t.Fatalf("want %d executions, got %d", n, len(execs))
	}
	for i, e := range execs {
		if e.ExecutionID != uint64(i) {
			t.Fatalf("execution %d out of order after growth: got id %d", i, e.ExecutionID)
		}
	}
}

func TestExecutionQueueDrainThenPushAgain(t *testing.T) {
	q := NewExecutionQueue(4)
	q.Push(domain.Execution{ExecutionID: 1})
	_ = q.Drain()

	q.Push(domain.Execution{ExecutionID: 2})
	execs := q.Drain()
	if len(execs) != 1 || execs[0].ExecutionID != 2 {
		t.Fatalf("want single execution id=2, got %+v", execs)
	}
}
