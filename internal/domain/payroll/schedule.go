package payroll

// BuildSchedule produces one row per pay date. The first row is scaled by
// firstPeriodFraction, the fraction of a standard pay period actually worked
// when the schedule starts mid-cycle; all later rows use the full bi-weekly
// figures. Net pay is computed per row, not divided down from the annual net.
func BuildSchedule(biweeklyGross, biweeklyRetirement, biweeklyTax float64, payDates []string, firstPeriodFraction float64) []ScheduleRow {
	rows := make([]ScheduleRow, 0, len(payDates))
	for i, payDate := range payDates {
		gross := biweeklyGross
		retirement := biweeklyRetirement
		tax := biweeklyTax
		if i == 0 {
			gross *= firstPeriodFraction
			retirement *= firstPeriodFraction
			tax *= firstPeriodFraction
		}
		rows = append(rows, ScheduleRow{
			PayDate:             payDate,
			GrossPay:            gross,
			RetirementDeduction: -retirement,
			TaxDeduction:        -tax,
			NetPay:              gross - retirement - tax,
		})
	}
	return rows
}
