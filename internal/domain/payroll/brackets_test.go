package payroll

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestComputeBracketTaxConcrete(t *testing.T) {
	table := DefaultParams().Brackets

	// 11,925*0.10 + 36,550*0.12 + 51,525*0.22
	tax := ComputeBracketTax(100000, table)
	if !almostEqual(tax, 16914) {
		t.Fatalf("expected tax 16914, got %v", tax)
	}
}

func TestComputeBracketTaxZeroIncome(t *testing.T) {
	if tax := ComputeBracketTax(0, DefaultParams().Brackets); tax != 0 {
		t.Fatalf("expected zero tax, got %v", tax)
	}
}

func TestComputeBracketTaxFirstBracketOnly(t *testing.T) {
	table := DefaultParams().Brackets
	if tax := ComputeBracketTax(10000, table); !almostEqual(tax, 1000) {
		t.Fatalf("expected 1000, got %v", tax)
	}

	// Exactly at the first bracket edge.
	if tax := ComputeBracketTax(11925, table); !almostEqual(tax, 1192.5) {
		t.Fatalf("expected 1192.5, got %v", tax)
	}
}

func TestComputeBracketTaxNonDecreasing(t *testing.T) {
	table := DefaultParams().Brackets
	previous := 0.0
	for income := 0.0; income <= 700000; income += 1000 {
		tax := ComputeBracketTax(income, table)
		if tax < previous {
			t.Fatalf("tax decreased at income %v: %v < %v", income, tax, previous)
		}
		previous = tax
	}
}

func TestBracketTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   BracketTable
		wantErr bool
	}{
		{
			name:  "valid",
			table: BracketTable{{Width: 100, Rate: 0.1}, {Width: math.Inf(1), Rate: 0.2}},
		},
		{
			name:    "empty",
			table:   BracketTable{},
			wantErr: true,
		},
		{
			name:    "bounded final bracket",
			table:   BracketTable{{Width: 100, Rate: 0.1}, {Width: 200, Rate: 0.2}},
			wantErr: true,
		},
		{
			name:    "unbounded middle bracket",
			table:   BracketTable{{Width: math.Inf(1), Rate: 0.1}, {Width: math.Inf(1), Rate: 0.2}},
			wantErr: true,
		},
		{
			name:    "negative width",
			table:   BracketTable{{Width: -5, Rate: 0.1}, {Width: math.Inf(1), Rate: 0.2}},
			wantErr: true,
		},
		{
			name:    "rate above one",
			table:   BracketTable{{Width: 100, Rate: 1.5}, {Width: math.Inf(1), Rate: 0.2}},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.table.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
