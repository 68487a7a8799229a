package domain

import "testing"

func TestAvgPriceAccumulatesAcrossFills(t *testing.T) {
	o := NewOrder(1, 1, Buy, 100, 20)
	o.RecordFill(100, 5)
	o.RecordFill(104, 5)
	o.RecordFill(106, 10)

	if got := o.AvgPrice(); got != 104 {
		t.Fatalf("want avg price 104, got %d", got)
	}
	if o.ExecutedQuantity != 20 {
		t.Fatalf("want executed quantity 20, got %d", o.ExecutedQuantity)
	}
}

func TestAvgPriceZeroBeforeAnyFill(t *testing.T) {
	o := NewOrder(1, 1, Sell, 100, 10)
	if got := o.AvgPrice(); got != 0 {
		t.Fatalf("want avg price 0 before any fill, got %d", got)
	}
}

func TestSeedFillsCarriesPriorHistory(t *testing.T) {
	o := NewOrder(1, 1, Buy, 100, 10)
	o.SeedFills(5, 101)
	o.RecordFill(103, 5)

	if got := o.AvgPrice(); got != 102 {
		t.Fatalf("want avg price 102 after seeding + one more fill, got %d", got)
	}
}

func TestSideOpposite(t *testing.T) {
	if Buy.Opposite() != Sell {
		t.Fatal("Buy.Opposite() should be Sell")
	}
	if Sell.Opposite() != Buy {
		t.Fatal("Sell.Opposite() should be Buy")
	}
}
