package payroll

// Engine derives the annual tax picture from a payroll input using the
// configured tax-year parameters.
type Engine struct {
	params Params
}

func NewEngine(params Params) *Engine {
	return &Engine{params: params}
}

func (e *Engine) Params() Params {
	return e.params
}

// Compute derives taxable income, applies the federal bracket table, the
// optional FICA components, and the flat state rate.
func (e *Engine) Compute(input Input) TaxResult {
	taxable := input.AnnualSalary - input.Contribution401k - e.params.StandardDeduction
	if taxable < 0 {
		taxable = 0
	}

	federal := ComputeBracketTax(taxable, e.params.Brackets)

	payrollTax := 0.0
	if input.IncludePayrollTax {
		payrollTax = ComputePayrollTax(input.AnnualSalary, e.params.PayrollTax).Total
	}

	stateTax := taxable * e.params.StateRate(input.State)

	return TaxResult{
		FederalTax: federal,
		PayrollTax: payrollTax,
		StateTax:   stateTax,
		TotalTax:   federal + payrollTax + stateTax,
	}
}

// PayrollTaxes exposes the FICA component detail for an input regardless of
// the IncludePayrollTax flag, for display alongside the totals.
func (e *Engine) PayrollTaxes(input Input) PayrollTaxes {
	return ComputePayrollTax(input.AnnualSalary, e.params.PayrollTax)
}

// Schedule builds the paycheck rows for an input over the configured
// calendar. Per-period figures are bi-weekly slices of the annual ones.
func (e *Engine) Schedule(input Input, taxes TaxResult) []ScheduleRow {
	biweeklyGross := input.AnnualSalary / PayPeriodsPerYear
	biweeklyRetirement := input.Contribution401k / PayPeriodsPerYear
	biweeklyTax := taxes.TotalTax / PayPeriodsPerYear
	return BuildSchedule(biweeklyGross, biweeklyRetirement, biweeklyTax, e.params.Calendar.PayDates, e.params.Calendar.FirstPeriodFraction)
}
