package book

import "limitbook/domain"

// Limit is the FIFO queue of resting orders at one (side, price). Size
// and TotalVolume are maintained as running aggregates rather than
// recomputed from the queue, so every append/unlink keeps them in
// lockstep with the queue's actual contents instead of paying an O(n)
// walk to answer either question.
type Limit struct {
	LimitPrice  int64
	Side        domain.Side
	size        int
	totalVolume int64
	head        *domain.Order
	tail        *domain.Order
}

func newLimit(side domain.Side, price int64) *Limit {
	return &Limit{Side: side, LimitPrice: price}
}

// Size is the number of resting orders at this level.
func (l *Limit) Size() int { return l.size }

// TotalVolume is the sum of remaining shares of every resting order.
func (l *Limit) TotalVolume() int64 { return l.totalVolume }

// Head is the earliest-arrived resting order (time priority).
func (l *Limit) Head() *domain.Order { return l.head }

func (l *Limit) isEmpty() bool { return l.size == 0 }

// append adds an order at the tail of the FIFO queue (newest arrival).
func (l *Limit) append(o *domain.Order) {
	o.Level = l
	o.SetLinks(l.tail, nil)
	if l.tail != nil {
		l.tail.SetLinks(l.tail.Prev(), o)
	} else {
		l.head = o
	}
	l.tail = o
	l.size++
	l.totalVolume += o.Shares
}

// unlink removes an order from the FIFO queue. The caller is
// responsible for any OrderIndex bookkeeping; unlink only maintains
// this Limit's own invariants.
func (l *Limit) unlink(o *domain.Order) {
	prev, next := o.Prev(), o.Next()
	if prev != nil {
		prev.SetLinks(prev.Prev(), next)
	} else {
		l.head = next
	}
	if next != nil {
		next.SetLinks(prev, next.Next())
	} else {
		l.tail = prev
	}
	o.SetLinks(nil, nil)
	o.Level = nil
	l.size--
	l.totalVolume -= o.Shares
}

// removeFullyFilled drops a maker order that has reached zero shares
// from the FIFO queue and decrements size, without touching
// totalVolume again: the caller already subtracted execVolume from
// totalVolume before calling this.
func (l *Limit) removeFullyFilled(o *domain.Order) {
	prev, next := o.Prev(), o.Next()
	if prev != nil {
		prev.SetLinks(prev.Prev(), next)
	} else {
		l.head = next
	}
	if next != nil {
		next.SetLinks(prev, next.Next())
	} else {
		l.tail = prev
	}
	o.SetLinks(nil, nil)
	o.Level = nil
	l.size--
}

// ProcessFill walks this Limit's FIFO queue from head to tail, matching
// the taker intent against resting makers in strict time priority. It
// stops when the Limit empties or the taker is exhausted. Filled
// orders whose shares reach zero are unlinked and reported via
// onMakerDrained so the caller (Book) can remove them from its
// OrderIndex and, if the Limit emptied, from the PriceLadder.
//
// If a resting maker shares the taker's ClientID, ProcessFill stops
// immediately and returns selfTrade=true without consuming that maker;
// any executions already pushed onto queue from earlier makers in this
// call remain there. Nothing already executed is rolled back.
func (l *Limit) ProcessFill(
	symbol string,
	taker *domain.OrderData,
	takerOrderID uint64,
	queue *ExecutionQueue,
	seq Sequencer,
	onMakerDrained func(*domain.Order),
) (selfTrade bool) {
	for taker.Shares > 0 && !l.isEmpty() {
		maker := l.head
		if maker.ClientID == taker.ClientID {
			return true
		}

		makerSharesBefore := maker.Shares
		execVolume := min(makerSharesBefore, taker.Shares)
		execPrice := maker.LimitPrice

		maker.RecordFill(execPrice, execVolume)
		taker.ExecutedQuantity += execVolume

		l.totalVolume -= execVolume
		makerFullyFilled := execVolume == makerSharesBefore
		if makerFullyFilled {
			maker.Shares = 0
			l.removeFullyFilled(maker)
			onMakerDrained(maker)
		} else {
			maker.Shares -= execVolume
		}
		taker.Shares -= execVolume

		makerExecType := domain.PartialFill
		if makerFullyFilled {
			makerExecType = domain.FullFill
		}
		takerExecType := domain.PartialFill
		if taker.Shares == 0 {
			takerExecType = domain.FullFill
		}

		exec := domain.Execution{
			Symbol:         symbol,
			ExecutionID:    seq.NextExecutionID(),
			MakerOrderID:   maker.ID,
			TakerOrderID:   takerOrderID,
			ExecPrice:      execPrice,
			ExecSize:       execVolume,
			MakerSide:      maker.Side,
			TakerSide:      taker.Side,
			MakerExecType:  makerExecType,
			TakerExecType:  takerExecType,
			MakerClientID:  maker.ClientID,
			TakerClientID:  taker.ClientID,
			MakerCumQty:    maker.ExecutedQuantity,
			TakerCumQty:    taker.ExecutedQuantity,
			MakerLeavesQty: maker.Shares,
			TakerLeavesQty: taker.Shares,
			MakerAvgPrice:  maker.AvgPrice(),
		}
		taker.AvgPrice = takerRunningAvg(taker, execPrice, execVolume)
		exec.TakerAvgPrice = taker.AvgPrice

		queue.Push(exec)
	}
	return false
}

// takerRunningAvg folds one fill into the taker intent's volume
// weighted average: newAvg = (oldCum*oldAvg + execVolume*execPrice) /
// newCum. The taker's ExecutedQuantity has already been incremented to
// newCum by the time this is called.
func takerRunningAvg(taker *domain.OrderData, execPrice, execVolume int64) int64 {
	newCum := taker.ExecutedQuantity
	if newCum == 0 {
		return 0
	}
	oldCum := newCum - execVolume
	return (oldCum*taker.AvgPrice + execVolume*execPrice) / newCum
}
