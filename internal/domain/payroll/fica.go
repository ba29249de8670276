package payroll

import "math"

// PayrollTaxParams holds the FICA constants for one tax year. They are
// configuration so future years can be supplied without a code change.
type PayrollTaxParams struct {
	SSWageCap                   float64
	SSRate                      float64
	MedicareRate                float64
	AdditionalMedicareThreshold float64
	AdditionalMedicareRate      float64
}

// ComputePayrollTax computes the FICA components from gross salary: the
// capped social-security portion, flat Medicare, and the additional Medicare
// rate on wages above the threshold.
func ComputePayrollTax(grossSalary float64, p PayrollTaxParams) PayrollTaxes {
	socialSecurity := math.Min(grossSalary, p.SSWageCap) * p.SSRate
	medicare := grossSalary * p.MedicareRate
	additionalMedicare := math.Max(0, grossSalary-p.AdditionalMedicareThreshold) * p.AdditionalMedicareRate
	return PayrollTaxes{
		SocialSecurity:     socialSecurity,
		Medicare:           medicare,
		AdditionalMedicare: additionalMedicare,
		Total:              socialSecurity + medicare + additionalMedicare,
	}
}
