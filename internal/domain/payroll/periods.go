package payroll

// ConvertAnnual turns a set of annual figures into an ordered breakdown with
// monthly and bi-weekly equivalents. Every periodic figure divides the same
// annual value; there is no independent rounding path.
func ConvertAnnual(categories []string, annual map[string]float64) []CategoryBreakdown {
	rows := make([]CategoryBreakdown, 0, len(categories))
	for _, category := range categories {
		amount := annual[category]
		rows = append(rows, CategoryBreakdown{
			Category: category,
			Annual:   amount,
			Monthly:  amount / MonthsPerYear,
			Biweekly: amount / PayPeriodsPerYear,
		})
	}
	return rows
}

// BuildBreakdown assembles the six-category income breakdown for an input
// and its computed taxes. Remaining income is what is left of gross after
// contributions, taxes, and living expenses, and may be negative.
func BuildBreakdown(input Input, taxes TaxResult) []CategoryBreakdown {
	remaining := input.AnnualSalary - input.Contribution401k - input.RothIRAContribution - taxes.TotalTax - input.LivingExpenses
	annual := map[string]float64{
		CategoryGrossIncome:     input.AnnualSalary,
		Category401k:            input.Contribution401k,
		CategoryRothIRA:         input.RothIRAContribution,
		CategoryTaxes:           taxes.TotalTax,
		CategoryLivingExpenses:  input.LivingExpenses,
		CategoryRemainingIncome: remaining,
	}
	return ConvertAnnual(BreakdownCategories, annual)
}
