package cmd

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"limitbook/book"
	"limitbook/domain"
)

// newBenchCmd measures Book.Submit throughput in a tight synchronous
// loop. The core is single-threaded, so there is exactly one submitter
// here, not a pool of them racing a channel.
func newBenchCmd() *cobra.Command {
	var (
		symbol   string
		orders   int
		seed     int64
		priceLow int64
		priceHi  int64
		maxSize  int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure synchronous Book.Submit throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			runBench(symbol, orders, seed, priceLow, priceHi, maxSize)
			return nil
		},
	}

	cmd.Flags().StringVar(&symbol, "symbol", "SYMB", "symbol this book manages")
	cmd.Flags().IntVar(&orders, "orders", 1_000_000, "number of synthetic orders to submit")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed for the synthetic order stream")
	cmd.Flags().Int64Var(&priceLow, "price-low", 95, "lowest synthetic limit price")
	cmd.Flags().Int64Var(&priceHi, "price-high", 105, "highest synthetic limit price")
	cmd.Flags().Int64Var(&maxSize, "max-size", 100, "largest synthetic order size")
	return cmd
}

func runBench(symbol string, orders int, seed, priceLow, priceHi, maxSize int64) {
	b := book.NewBook(symbol, book.NewAtomicSequencer())
	rng := rand.New(rand.NewSource(seed))
	priceRange := int(priceHi-priceLow) + 1

	start := time.Now()
	var executed int64
	var rejected int64

	for i := 0; i < orders; i++ {
		side := domain.Buy
		if rng.Intn(2) == 1 {
			side = domain.Sell
		}
		intent := &domain.OrderData{
			ClientID:   uint64(i) + 1,
			Side:       side,
			LimitPrice: priceLow + int64(rng.Intn(priceRange)),
			Shares:     1 + int64(rng.Intn(int(maxSize))),
		}

		if _, err := b.Submit(intent); err != nil {
			rejected++
			continue
		}
		executed += int64(len(b.DrainExecutions()))
	}

	elapsed := time.Since(start)
	log.Info().
		Int("orders", orders).
		Int64("executions", executed).
		Int64("rejected", rejected).
		Dur("elapsed", elapsed).
		Float64("orders_per_sec", float64(orders)/elapsed.Seconds()).
		Msg("bench complete")
}
