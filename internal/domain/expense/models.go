package expense

// Key identifies one ledger entry. Using a structured key avoids the
// ambiguity of separator-joined category/item strings.
type Key struct {
	Category string
	Item     string
}

type Entry struct {
	Category string  `json:"category"`
	Item     string  `json:"item"`
	Amount   float64 `json:"amount"`
}

// Totals summarizes a ledger. Amounts are entered monthly, so the annual
// total is a fixed x12 projection.
type Totals struct {
	GrandTotal   float64            `json:"grandTotal"`
	MonthlyTotal float64            `json:"monthlyTotal"`
	AnnualTotal  float64            `json:"annualTotal"`
	PerCategory  map[string]float64 `json:"perCategory"`
}
