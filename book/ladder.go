package book

import (
	rbt "github.com/emirpasic/gods/v2/trees/redblacktree"

	"limitbook/domain"
)

// PriceLadder is the ordered per-side index of Limits. Bids sort by
// descending price, asks by ascending price; either way the best
// Limit is whichever sorts first under the ladder's comparator. A
// red-black tree gives O(log n) insert/remove, and a cached pointer to
// the tree's leftmost node gives O(1) best-price access without
// walking the tree on every lookup.
type PriceLadder struct {
	side   domain.Side
	levels *rbt.Tree[int64, *Limit]
	best   *rbt.Node[int64, *Limit]
}

// NewPriceLadder creates an empty ladder for one side of one book.
func NewPriceLadder(side domain.Side) *PriceLadder {
	var cmp func(a, b int64) int
	if side == domain.Buy {
		cmp = func(a, b int64) int {
			switch {
			case a > b:
				return -1
			case a < b:
				return 1
			default:
				return 0
			}
		}
	} else {
		cmp = func(a, b int64) int {
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			default:
				return 0
			}
		}
	}
	return &PriceLadder{
		side:   side,
		levels: rbt.NewWith[int64, *Limit](cmp),
	}
}

// Best returns the best Limit in the ladder, or nil if the ladder is
// empty.
func (pl *PriceLadder) Best() *Limit {
	if pl.best == nil {
		return nil
	}
	return pl.best.Value
}

// BestPrice returns the best price and whether the ladder is non-empty.
func (pl *PriceLadder) BestPrice() (int64, bool) {
	if pl.best == nil {
		return 0, false
	}
	return pl.best.Key, true
}

// FindOrInsert returns the Limit resting at price, creating an empty
// one and inserting it into the tree if none exists yet.
func (pl *PriceLadder) FindOrInsert(price int64) *Limit {
	if limit, ok := pl.levels.Get(price); ok {
		return limit
	}
	limit := newLimit(pl.side, price)
	pl.levels.Put(price, limit)
	pl.refreshBest()
	return limit
}

// Find returns the Limit at price without creating one.
func (pl *PriceLadder) Find(price int64) (*Limit, bool) {
	return pl.levels.Get(price)
}

// Remove deletes the Limit at price from the ladder. Callers must only
// call this once the Limit's size has reached 0: a Limit is absent
// from the ladder iff it has size == 0.
func (pl *PriceLadder) Remove(price int64) {
	pl.levels.Remove(price)
	pl.refreshBest()
}

// Size is the number of price levels resting in the ladder.
func (pl *PriceLadder) Size() int {
	return pl.levels.Size()
}

// IsEmpty reports whether the ladder has no resting price levels.
func (pl *PriceLadder) IsEmpty() bool {
	return pl.levels.Empty()
}

// Crosses reports whether price would cross this ladder's best level,
// i.e. whether an incoming order at price on the opposite side would
// match against this ladder's best Limit.
func (pl *PriceLadder) Crosses(price int64) bool {
	best, ok := pl.BestPrice()
	if !ok {
		return false
	}
	if pl.side == domain.Sell {
		// this ladder is asks: taker is a buy, crosses while best ask <= price
		return best <= price
	}
	// this ladder is bids: taker is a sell, crosses while best bid >= price
	return best >= price
}

// Levels returns up to n price levels from best to worst, for
// Book.Depth/Book.Snapshot. It never panics on n <= 0 or n larger than
// the ladder's size.
func (pl *PriceLadder) Levels(n int) []*Limit {
	if n <= 0 || pl.levels.Empty() {
		return nil
	}
	out := make([]*Limit, 0, n)
	it := pl.levels.Iterator()
	for it.Next() && len(out) < n {
		out = append(out, it.Value())
	}
	return out
}

// refreshBest re-derives the cached best-node pointer from the tree.
// Called after any structural change (insert/remove); O(log n), same
// cost as the structural change itself. The tree's leftmost node is
// always the best one, since the ladder's comparator already encodes
// side direction (descending for bids, ascending for asks).
func (pl *PriceLadder) refreshBest() {
	pl.best = pl.levels.Left()
}
