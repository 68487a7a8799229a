package book_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"limitbook/book"
	"limitbook/domain"
)

// TestConservationOfShares checks that share quantity is conserved
// across a mixed stream of random non-self-trading submissions:
// nothing submitted is created or destroyed, only moved between
// resting and executed.
func TestConservationOfShares(t *testing.T) {
	b := book.NewBook("TEST", book.NewAtomicSequencer())
	rng := rand.New(rand.NewSource(7))

	var submitted int64
	for i := 0; i < 500; i++ {
		clientID := uint64(i + 1) // every order has a unique client, no self-trades
		side := domain.Buy
		if rng.Intn(2) == 1 {
			side = domain.Sell
		}
		price := int64(90 + rng.Intn(21))
		shares := int64(1 + rng.Intn(50))
		submitted += shares

		_, err := b.Submit(&domain.OrderData{ClientID: clientID, Side: side, LimitPrice: price, Shares: shares})
		require.NoError(t, err)
	}

	var executed int64
	for _, exec := range b.DrainExecutions() {
		executed += exec.ExecSize
	}

	snap := b.Snapshot()
	var resting int64
	for _, lvl := range snap.Bids {
		resting += lvl.TotalVolume
	}
	for _, lvl := range snap.Asks {
		resting += lvl.TotalVolume
	}

	// Every execution debits execSize from a maker's resting balance and
	// execSize from a taker's remaining balance at the same time, so
	// each trade removes 2*execSize units of share-quantity from the
	// "still live" population; whatever is left over is still resting.
	require.Equal(t, submitted, resting+2*executed)
}

func TestBidsNeverCrossAsksAfterRandomizedStream(t *testing.T) {
	b := book.NewBook("TEST", book.NewAtomicSequencer())
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 300; i++ {
		clientID := uint64(i + 1)
		side := domain.Buy
		if rng.Intn(2) == 1 {
			side = domain.Sell
		}
		price := int64(90 + rng.Intn(21))
		shares := int64(1 + rng.Intn(50))
		_, err := b.Submit(&domain.OrderData{ClientID: clientID, Side: side, LimitPrice: price, Shares: shares})
		require.NoError(t, err)

		bid, bidOk := b.BestBid()
		ask, askOk := b.BestAsk()
		if bidOk && askOk {
			require.LessOrEqual(t, bid, ask)
		}
	}
}
