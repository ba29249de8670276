package payroll

import (
	"errors"
	"math"
)

// Bracket is one progressive tax segment. Width is the slice of income taxed
// at Rate; the final segment of a table must be unbounded (math.Inf).
type Bracket struct {
	Width float64
	Rate  float64
}

type BracketTable []Bracket

// Validate checks the structural invariants of a bracket table. Rates being
// non-decreasing is a domain expectation, not enforced here.
func (t BracketTable) Validate() error {
	if len(t) == 0 {
		return errors.New("bracket table is empty")
	}
	for i, bracket := range t {
		if bracket.Width < 0 {
			return errors.New("bracket width must be non-negative")
		}
		if bracket.Rate < 0 || bracket.Rate > 1 {
			return errors.New("bracket rate must be in [0,1]")
		}
		if i < len(t)-1 && math.IsInf(bracket.Width, 1) {
			return errors.New("only the final bracket may be unbounded")
		}
	}
	if !math.IsInf(t[len(t)-1].Width, 1) {
		return errors.New("final bracket must be unbounded")
	}
	return nil
}

// ComputeBracketTax walks the table in order, taxing each consumed slice of
// income at its segment rate. Taxable income must already be clamped to zero
// by the caller.
func ComputeBracketTax(taxableIncome float64, table BracketTable) float64 {
	tax := 0.0
	remaining := taxableIncome
	for _, bracket := range table {
		if remaining <= 0 {
			break
		}
		consumed := math.Min(remaining, bracket.Width)
		tax += consumed * bracket.Rate
		remaining -= consumed
	}
	return tax
}
