package payroll

// Input carries one payroll computation request. Values are validated for
// range by the transport layer before they reach the engine.
type Input struct {
	AnnualSalary        float64 `json:"annualSalary"`
	Contribution401k    float64 `json:"contribution401k"`
	RothIRAContribution float64 `json:"rothIraContribution"`
	LivingExpenses      float64 `json:"livingExpenses"`
	State               string  `json:"state"`
	IncludePayrollTax   bool    `json:"includePayrollTax"`
}

// TaxResult is the annual tax picture derived from a single Input.
type TaxResult struct {
	FederalTax float64 `json:"federalTax"`
	PayrollTax float64 `json:"payrollTax"`
	StateTax   float64 `json:"stateTax"`
	TotalTax   float64 `json:"totalTax"`
}

// PayrollTaxes breaks the FICA total into its components.
type PayrollTaxes struct {
	SocialSecurity     float64 `json:"socialSecurity"`
	Medicare           float64 `json:"medicare"`
	AdditionalMedicare float64 `json:"additionalMedicare"`
	Total              float64 `json:"total"`
}

// CategoryBreakdown is one row of the annual/monthly/bi-weekly view. Monthly
// and bi-weekly figures always derive from the same annual figure.
type CategoryBreakdown struct {
	Category string  `json:"category"`
	Annual   float64 `json:"annual"`
	Monthly  float64 `json:"monthly"`
	Biweekly float64 `json:"biweekly"`
}

// ScheduleRow is one paycheck. Deductions are stored as negative magnitudes
// so the row reads like a pay stub.
type ScheduleRow struct {
	PayDate             string  `json:"payDate"`
	GrossPay            float64 `json:"grossPay"`
	RetirementDeduction float64 `json:"retirementDeduction"`
	TaxDeduction        float64 `json:"taxDeduction"`
	NetPay              float64 `json:"netPay"`
}
