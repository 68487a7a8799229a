package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"limitbook/book"
	"limitbook/domain"
)

// newReplayCmd feeds a scenario file through one Book, one line at a
// time, logging every execution as it is produced and printing the
// final book snapshot. Scenario lines are: "BUY|SELL clientID price
// shares", one submission per line; blank lines and lines starting
// with '#' are ignored.
func newReplayCmd() *cobra.Command {
	var symbol string

	cmd := &cobra.Command{
		Use:   "replay [scenario-file]",
		Short: "Replay a scripted order stream through one book",
		Long: `Replay reads a scenario file of "SIDE clientID price shares" lines and
submits each one synchronously to a single book.Book, logging every
execution it produces and printing the resulting book depth.

Example:
  limitbook replay testdata/s1_rest_then_match.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(symbol, args[0])
		},
	}

	cmd.Flags().StringVar(&symbol, "symbol", "SYMB", "symbol this book manages")
	return cmd
}

func runReplay(symbol, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open scenario file: %w", err)
	}
	defer f.Close()

	b := book.NewBook(symbol, book.NewAtomicSequencer())

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		intent, err := parseScenarioLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		orderID, err := b.Submit(intent)
		for _, exec := range b.DrainExecutions() {
			logExecution(exec)
		}
		if err != nil {
			log.Warn().Int("line", lineNo).Err(err).Msg("submission rejected")
			continue
		}

		if orderID != 0 {
			log.Info().Int("line", lineNo).Uint64("order_id", orderID).Msg("residual rested")
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read scenario file: %w", err)
	}

	printSnapshot(b)
	return nil
}

func parseScenarioLine(line string) (*domain.OrderData, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return nil, fmt.Errorf("want 4 fields \"SIDE clientID price shares\", got %d", len(fields))
	}

	var side domain.Side
	switch strings.ToUpper(fields[0]) {
	case "BUY":
		side = domain.Buy
	case "SELL":
		side = domain.Sell
	default:
		return nil, fmt.Errorf("unknown side %q", fields[0])
	}

	clientID, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse clientID: %w", err)
	}
	price, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse price: %w", err)
	}
	shares, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse shares: %w", err)
	}

	return &domain.OrderData{ClientID: clientID, Side: side, LimitPrice: price, Shares: shares}, nil
}

func logExecution(exec domain.Execution) {
	log.Info().
		Uint64("exec_id", exec.ExecutionID).
		Uint64("maker_order_id", exec.MakerOrderID).
		Uint64("taker_order_id", exec.TakerOrderID).
		Int64("price", exec.ExecPrice).
		Int64("size", exec.ExecSize).
		Str("maker_fill", exec.MakerExecType.String()).
		Str("taker_fill", exec.TakerExecType.String()).
		Msg("execution")
}

func printSnapshot(b *book.Book) {
	snap := b.Snapshot()
	fmt.Printf("%s book\nbids:\n", b.Symbol())
	for _, lvl := range snap.Bids {
		fmt.Printf("  %6d  size=%-4d volume=%d\n", lvl.Price, lvl.Size, lvl.TotalVolume)
	}
	fmt.Println("asks:")
	for _, lvl := range snap.Asks {
		fmt.Printf("  %6d  size=%-4d volume=%d\n", lvl.Price, lvl.Size, lvl.TotalVolume)
	}
}
