package payroll

import "strings"

const (
	MonthsPerYear     = 12
	PayPeriodsPerYear = 26
)

const (
	CategoryGrossIncome     = "Gross Income"
	Category401k            = "401(k) Contribution"
	CategoryRothIRA         = "Roth IRA Contribution"
	CategoryTaxes           = "Taxes"
	CategoryLivingExpenses  = "Living Expenses"
	CategoryRemainingIncome = "Remaining Income"
)

// BreakdownCategories fixes the order of the income breakdown rows.
var BreakdownCategories = []string{
	CategoryGrossIncome,
	Category401k,
	CategoryRothIRA,
	CategoryTaxes,
	CategoryLivingExpenses,
	CategoryRemainingIncome,
}

// States lists the supported work jurisdictions.
var States = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
	"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
	"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana", "Maine",
	"Maryland", "Massachusetts", "Michigan", "Minnesota", "Mississippi",
	"Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire", "New Jersey",
	"New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
	"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina",
	"South Dakota", "Tennessee", "Texas", "Utah", "Vermont", "Virginia",
	"Washington", "West Virginia", "Wisconsin", "Wyoming",
}

// CanonicalState resolves a state name case-insensitively to its canonical
// spelling. Rate tables are keyed by the canonical form, so inputs must be
// mapped through here before any lookup.
func CanonicalState(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	for _, state := range States {
		if strings.EqualFold(state, trimmed) {
			return state, true
		}
	}
	return "", false
}
