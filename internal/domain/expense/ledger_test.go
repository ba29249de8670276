package expense

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestLedgerRecordIdempotent(t *testing.T) {
	ledger := NewLedger()
	ledger.Record("Food", "Groceries", 300)
	once := ledger.Totals()

	ledger.Record("Food", "Groceries", 300)
	twice := ledger.Totals()

	if once.GrandTotal != twice.GrandTotal {
		t.Fatalf("repeated record changed grand total: %v vs %v", once.GrandTotal, twice.GrandTotal)
	}
	if once.PerCategory["Food"] != twice.PerCategory["Food"] {
		t.Fatalf("repeated record changed category subtotal")
	}
}

func TestLedgerRecordReplacesAmount(t *testing.T) {
	ledger := NewLedger()
	ledger.Record("Food", "Groceries", 300)
	ledger.Record("Food", "Groceries", 250)

	totals := ledger.Totals()
	if !almostEqual(totals.GrandTotal, 250) {
		t.Fatalf("expected replaced amount 250, got %v", totals.GrandTotal)
	}
}

func TestLedgerTotalsExcludeZeroFromCategories(t *testing.T) {
	ledger := NewLedger()
	ledger.Record("Food", "Groceries", 300)
	ledger.Record("Food", "Dining Out", 0)

	totals := ledger.Totals()
	if !almostEqual(totals.PerCategory["Food"], 300) {
		t.Fatalf("expected Food subtotal 300, got %v", totals.PerCategory["Food"])
	}
	if !almostEqual(totals.GrandTotal, 300) {
		t.Fatalf("expected grand total 300, got %v", totals.GrandTotal)
	}
}

func TestLedgerTotalsProjection(t *testing.T) {
	ledger := NewLedger()
	ledger.Record("Housing", "Rent/Mortgage", 1800)
	ledger.Record("Food", "Groceries", 200)

	totals := ledger.Totals()
	if !almostEqual(totals.MonthlyTotal, 2000) {
		t.Fatalf("expected monthly total 2000, got %v", totals.MonthlyTotal)
	}
	if !almostEqual(totals.AnnualTotal, 24000) {
		t.Fatalf("expected annual total 24000, got %v", totals.AnnualTotal)
	}
}

func TestLedgerProportions(t *testing.T) {
	ledger := NewLedger()
	ledger.Record("Housing", "Rent/Mortgage", 750)
	ledger.Record("Food", "Groceries", 250)

	proportions := ledger.Proportions()
	if !almostEqual(proportions["Housing"], 0.75) {
		t.Fatalf("expected Housing share 0.75, got %v", proportions["Housing"])
	}
	if !almostEqual(proportions["Food"], 0.25) {
		t.Fatalf("expected Food share 0.25, got %v", proportions["Food"])
	}

	if got := NewLedger().Proportions(); len(got) != 0 {
		t.Fatalf("expected empty proportions for empty ledger, got %v", got)
	}
}

func TestLedgerEntriesSorted(t *testing.T) {
	ledger := NewLedger()
	ledger.Record("Food", "Groceries", 10)
	ledger.Record("Debt", "Credit Cards", 20)
	ledger.Record("Food", "Delivery", 5)

	entries := ledger.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Category != "Debt" || entries[1].Item != "Delivery" || entries[2].Item != "Groceries" {
		t.Fatalf("entries not sorted: %+v", entries)
	}
}

func TestFromMapRoundTrip(t *testing.T) {
	source := map[Key]float64{
		{Category: "Food", Item: "Groceries"}: 300,
		{Category: "Other", Item: "Gifts"}:    50,
	}
	ledger := FromMap(source)

	stored := ledger.Map()
	if len(stored) != len(source) {
		t.Fatalf("expected %d entries, got %d", len(source), len(stored))
	}
	for key, amount := range source {
		if stored[key] != amount {
			t.Fatalf("entry %v mismatch: %v vs %v", key, stored[key], amount)
		}
	}

	// The copy is detached from the ledger.
	stored[Key{Category: "Food", Item: "Groceries"}] = 999
	if ledger.Totals().GrandTotal != 350 {
		t.Fatalf("mutating the copy changed the ledger")
	}
}
