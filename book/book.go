// Package book implements a single-symbol, in-memory, price/time
// priority limit order book. A Book is a synchronous, single-threaded
// state machine. Callers are responsible for serializing
// Submit/Cancel/DrainExecutions themselves; nothing in this package
// spawns a goroutine or touches a channel.
package book

import "limitbook/domain"

// DepthLevel is one row of a Book.Depth/Snapshot query.
type DepthLevel struct {
	Price       int64
	TotalVolume int64
	Size        int
}

// BookSnapshot is a full top-to-bottom dump of both ladders, used by
// the CLI's replay command and invariant-checking tests.
type BookSnapshot struct {
	Bids []DepthLevel
	Asks []DepthLevel
}

// Book is the matching coordinator for one symbol. It owns both
// ladders, the order index, the execution queue, the symbol, and
// drives every submission/cancellation to completion before another
// can begin.
type Book struct {
	symbol string
	bids   *PriceLadder
	asks   *PriceLadder
	index  *OrderIndex
	queue  *ExecutionQueue
	seq    Sequencer
}

// NewBook creates an empty book for one symbol. seq supplies fresh
// order and execution ids; it is an external collaborator, not owned
// or created by the book itself.
func NewBook(symbol string, seq Sequencer) *Book {
	return &Book{
		symbol: symbol,
		bids:   NewPriceLadder(domain.Buy),
		asks:   NewPriceLadder(domain.Sell),
		index:  NewOrderIndex(),
		queue:  NewExecutionQueue(256),
		seq:    seq,
	}
}

// Symbol returns the single symbol this book manages.
func (b *Book) Symbol() string { return b.symbol }

// ladderFor returns the own-side ladder an order of this side rests on.
func (b *Book) ladderFor(side domain.Side) *PriceLadder {
	if side == domain.Buy {
		return b.bids
	}
	return b.asks
}

// Submit matches intent against the opposite ladder and rests any
// residual on its own side. It returns the id of the resting order,
// or 0 if the intent fully filled and nothing rests.
func (b *Book) Submit(intent *domain.OrderData) (uint64, error) {
	if intent.Shares <= 0 {
		return 0, &SubmitError{Kind: InvalidOrder, Reason: ReasonNonPositiveShares}
	}
	if intent.LimitPrice <= 0 {
		return 0, &SubmitError{Kind: InvalidOrder, Reason: ReasonNonPositivePrice}
	}
	if intent.Side != domain.Buy && intent.Side != domain.Sell {
		return 0, &SubmitError{Kind: InvalidOrder, Reason: ReasonUnknownSide}
	}

	takerOrderID := b.seq.NextOrderID()
	opposite := b.ladderFor(intent.Side.Opposite())

	for intent.Shares > 0 {
		limit := opposite.Best()
		if limit == nil || !opposite.Crosses(intent.LimitPrice) {
			break
		}

		selfTrade := limit.ProcessFill(b.symbol, intent, takerOrderID, b.queue, b.seq, func(maker *domain.Order) {
			b.index.Delete(maker.ID)
		})
		if limit.isEmpty() {
			opposite.Remove(limit.LimitPrice)
		}
		if selfTrade {
			return 0, &SubmitError{Kind: SelfTradeRejected}
		}
	}

	if intent.Shares == 0 {
		return 0, nil
	}

	own := b.ladderFor(intent.Side)
	limit := own.FindOrInsert(intent.LimitPrice)
	resting := domain.NewOrder(takerOrderID, intent.ClientID, intent.Side, intent.LimitPrice, intent.Shares)
	resting.SeedFills(intent.ExecutedQuantity, intent.AvgPrice)
	limit.append(resting)
	b.index.Put(resting)

	return resting.ID, nil
}

// Cancel unlinks a resting order from its Limit and removes it from
// the book entirely.
func (b *Book) Cancel(orderID uint64) error {
	o, ok := b.index.Get(orderID)
	if !ok {
		return &CancelError{Kind: UnknownOrder}
	}

	limit, ok := o.Level.(*Limit)
	if !ok || limit == nil {
		panic(InvariantViolation{What: "indexed order has no owning limit"})
	}
	limit.unlink(o)
	if limit.isEmpty() {
		b.ladderFor(o.Side).Remove(limit.LimitPrice)
	}
	b.index.Delete(orderID)
	return nil
}

// BestBid returns the best bid price, or ok=false if the bid side is empty.
func (b *Book) BestBid() (price int64, ok bool) { return b.bids.BestPrice() }

// BestAsk returns the best ask price, or ok=false if the ask side is empty.
func (b *Book) BestAsk() (price int64, ok bool) { return b.asks.BestPrice() }

// Depth returns up to levels price rows for side, best first.
func (b *Book) Depth(side domain.Side, levels int) []DepthLevel {
	return toDepthLevels(b.ladderFor(side).Levels(levels))
}

// Snapshot returns every resting price level on both sides, best first.
func (b *Book) Snapshot() BookSnapshot {
	return BookSnapshot{
		Bids: toDepthLevels(b.bids.Levels(b.bids.Size())),
		Asks: toDepthLevels(b.asks.Levels(b.asks.Size())),
	}
}

func toDepthLevels(limits []*Limit) []DepthLevel {
	if len(limits) == 0 {
		return nil
	}
	out := make([]DepthLevel, len(limits))
	for i, l := range limits {
		out[i] = DepthLevel{Price: l.LimitPrice, TotalVolume: l.TotalVolume(), Size: l.Size()}
	}
	return out
}

// DrainExecutions transfers ownership of every queued Execution to the
// caller and empties the queue.
func (b *Book) DrainExecutions() []domain.Execution {
	return b.queue.Drain()
}
