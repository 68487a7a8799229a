package domain

// Order is a resting order: created by the book when a submission's
// residual must wait for a counterparty. ID, ClientID, Side and
// LimitPrice are immutable once created; Shares and the fill
// accumulators are mutated in place by the matcher.
//
// Prev/Next form the intrusive doubly-linked FIFO queue of a price
// level: the level owns the Order, an index keyed by ID only holds a
// non-owning handle to it. Level is stored as interface{} rather than
// a typed back-reference to avoid an import cycle with the book
// package that owns price levels; the book package type-asserts it
// back to *book.Limit.
type Order struct {
	ID         uint64
	ClientID   uint64
	Side       Side
	LimitPrice int64

	Shares           int64
	ExecutedQuantity int64

	cumValue int64 // Σ execPrice*execSize, for avg price on read
	cumQty   int64

	Level interface{}

	prev *Order
	next *Order
}

// NewOrder creates a resting order from a taker intent's residual.
func NewOrder(id uint64, clientID uint64, side Side, limitPrice, shares int64) *Order {
	return &Order{
		ID:         id,
		ClientID:   clientID,
		Side:       side,
		LimitPrice: limitPrice,
		Shares:     shares,
	}
}

// SeedFills carries a taker intent's prior fill history onto the
// resting order created from its residual, so the running average
// continues from where the intent left off instead of resetting.
func (o *Order) SeedFills(executedQuantity, avgPrice int64) {
	o.ExecutedQuantity = executedQuantity
	o.cumQty = executedQuantity
	o.cumValue = executedQuantity * avgPrice
}

// AvgPrice returns the volume-weighted average fill price accumulated
// so far, or 0 if nothing has been filled yet.
func (o *Order) AvgPrice() int64 {
	if o.cumQty == 0 {
		return 0
	}
	return o.cumValue / o.cumQty
}

// RecordFill folds one execution's price/size into the running average
// and cumulative filled quantity. Division is always safe: cumQty only
// grows from zero by positive execSize values.
func (o *Order) RecordFill(execPrice, execSize int64) {
	o.cumValue += execPrice * execSize
	o.cumQty += execSize
	o.ExecutedQuantity = o.cumQty
}

// Prev returns the predecessor in the owning price level's FIFO queue.
func (o *Order) Prev() *Order { return o.prev }

// Next returns the successor in the owning price level's FIFO queue.
func (o *Order) Next() *Order { return o.next }

// SetLinks wires this order into its owning FIFO queue. Exported
// because the queue lives in a different package, but deliberately
// terse: callers outside book are not expected to touch queue
// structure directly.
func (o *Order) SetLinks(prev, next *Order) {
	o.prev = prev
	o.next = next
}
