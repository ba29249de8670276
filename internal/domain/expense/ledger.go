package expense

import "sort"

// MonthsPerYear projects monthly expense entries to an annual figure.
const MonthsPerYear = 12

// Ledger holds one user's expense entries keyed by (category, item).
// Guest sessions use an ephemeral ledger of the same shape.
type Ledger struct {
	entries map[Key]float64
}

func NewLedger() *Ledger {
	return &Ledger{entries: make(map[Key]float64)}
}

// FromMap builds a ledger from a stored mapping.
func FromMap(entries map[Key]float64) *Ledger {
	ledger := NewLedger()
	for key, amount := range entries {
		ledger.entries[key] = amount
	}
	return ledger
}

// Record upserts one entry, replacing any prior amount for the key.
func (l *Ledger) Record(category, item string, amount float64) {
	l.entries[Key{Category: category, Item: item}] = amount
}

// Map returns a copy of the entries for persistence.
func (l *Ledger) Map() map[Key]float64 {
	out := make(map[Key]float64, len(l.entries))
	for key, amount := range l.entries {
		out[key] = amount
	}
	return out
}

// Entries returns the ledger sorted by category then item.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, 0, len(l.entries))
	for key, amount := range l.entries {
		out = append(out, Entry{Category: key.Category, Item: key.Item, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category == out[j].Category {
			return out[i].Item < out[j].Item
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Totals sums the ledger. Zero-amount entries count toward the grand total
// trivially but do not appear in the per-category breakdown.
func (l *Ledger) Totals() Totals {
	totals := Totals{PerCategory: make(map[string]float64)}
	for key, amount := range l.entries {
		totals.GrandTotal += amount
		if amount > 0 {
			totals.PerCategory[key.Category] += amount
		}
	}
	totals.MonthlyTotal = totals.GrandTotal
	totals.AnnualTotal = totals.GrandTotal * MonthsPerYear
	return totals
}

// Proportions returns each category's share of the grand total, for the
// category chart. An empty ledger yields an empty map.
func (l *Ledger) Proportions() map[string]float64 {
	totals := l.Totals()
	out := make(map[string]float64, len(totals.PerCategory))
	if totals.GrandTotal <= 0 {
		return out
	}
	for category, subtotal := range totals.PerCategory {
		out[category] = subtotal / totals.GrandTotal
	}
	return out
}
