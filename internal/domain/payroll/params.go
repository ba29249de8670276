package payroll

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/BurntSushi/toml"
)

// Calendar is the fixed pay-date sequence for the year, supplied as external
// data rather than computed from a start date.
type Calendar struct {
	PayDates            []string
	FirstPeriodFraction float64
}

// Params bundles every configured constant for one tax year.
type Params struct {
	Year              int
	StandardDeduction float64
	Brackets          BracketTable
	PayrollTax        PayrollTaxParams
	StateRates        map[string]float64
	Calendar          Calendar
}

// StateRate returns the flat placeholder rate for a jurisdiction. States
// without a configured rate are treated as zero; LoadParams warns about them.
func (p Params) StateRate(state string) float64 {
	return p.StateRates[state]
}

func (p Params) Validate() error {
	if err := p.Brackets.Validate(); err != nil {
		return err
	}
	if p.StandardDeduction < 0 {
		return errors.New("standard deduction must be non-negative")
	}
	if p.PayrollTax.SSWageCap < 0 || p.PayrollTax.SSRate < 0 || p.PayrollTax.MedicareRate < 0 ||
		p.PayrollTax.AdditionalMedicareThreshold < 0 || p.PayrollTax.AdditionalMedicareRate < 0 {
		return errors.New("payroll tax parameters must be non-negative")
	}
	for state, rate := range p.StateRates {
		if rate < 0 || rate > 1 {
			return fmt.Errorf("state rate for %s must be in [0,1]", state)
		}
	}
	if len(p.Calendar.PayDates) == 0 {
		return errors.New("pay calendar is empty")
	}
	if p.Calendar.FirstPeriodFraction <= 0 || p.Calendar.FirstPeriodFraction > 1 {
		return errors.New("first period fraction must be in (0,1]")
	}
	return nil
}

type tomlBracket struct {
	Upper *float64 `toml:"upper"`
	Rate  float64  `toml:"rate"`
}

type tomlPayrollTax struct {
	SSWageCap                   float64 `toml:"social_security_wage_cap"`
	SSRate                      float64 `toml:"social_security_rate"`
	MedicareRate                float64 `toml:"medicare_rate"`
	AdditionalMedicareThreshold float64 `toml:"additional_medicare_threshold"`
	AdditionalMedicareRate      float64 `toml:"additional_medicare_rate"`
}

type tomlCalendar struct {
	FirstPeriodFraction float64  `toml:"first_period_fraction"`
	PayDates            []string `toml:"pay_dates"`
}

type tomlParams struct {
	Year              int                `toml:"year"`
	StandardDeduction float64            `toml:"standard_deduction"`
	Brackets          []tomlBracket      `toml:"bracket"`
	PayrollTax        tomlPayrollTax     `toml:"payroll_tax"`
	StateRates        map[string]float64 `toml:"state_rates"`
	Calendar          tomlCalendar       `toml:"calendar"`
}

// LoadParams reads a tax-year file. Brackets are declared as upper income
// bounds and converted to widths; the final bracket omits its upper bound.
func LoadParams(path string) (Params, error) {
	var raw tomlParams
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return Params{}, fmt.Errorf("tax config %s: %w", path, err)
	}

	brackets, err := bracketsFromBounds(raw.Brackets)
	if err != nil {
		return Params{}, fmt.Errorf("tax config %s: %w", path, err)
	}

	params := Params{
		Year:              raw.Year,
		StandardDeduction: raw.StandardDeduction,
		Brackets:          brackets,
		PayrollTax: PayrollTaxParams{
			SSWageCap:                   raw.PayrollTax.SSWageCap,
			SSRate:                      raw.PayrollTax.SSRate,
			MedicareRate:                raw.PayrollTax.MedicareRate,
			AdditionalMedicareThreshold: raw.PayrollTax.AdditionalMedicareThreshold,
			AdditionalMedicareRate:      raw.PayrollTax.AdditionalMedicareRate,
		},
		StateRates: raw.StateRates,
		Calendar: Calendar{
			PayDates:            raw.Calendar.PayDates,
			FirstPeriodFraction: raw.Calendar.FirstPeriodFraction,
		},
	}
	if params.StateRates == nil {
		params.StateRates = map[string]float64{}
	}
	if err := params.Validate(); err != nil {
		return Params{}, fmt.Errorf("tax config %s: %w", path, err)
	}

	if unmodeled := countUnmodeledStates(params.StateRates); unmodeled > 0 {
		slog.Warn("state income tax not modeled for some jurisdictions, treating their rate as zero",
			"year", params.Year, "unmodeledStates", unmodeled)
	}

	return params, nil
}

func bracketsFromBounds(raw []tomlBracket) (BracketTable, error) {
	if len(raw) == 0 {
		return nil, errors.New("no brackets declared")
	}
	table := make(BracketTable, 0, len(raw))
	lower := 0.0
	for i, bracket := range raw {
		if bracket.Upper == nil {
			if i != len(raw)-1 {
				return nil, errors.New("only the final bracket may omit its upper bound")
			}
			table = append(table, Bracket{Width: math.Inf(1), Rate: bracket.Rate})
			continue
		}
		if *bracket.Upper <= lower {
			return nil, fmt.Errorf("bracket upper bound %v must exceed %v", *bracket.Upper, lower)
		}
		table = append(table, Bracket{Width: *bracket.Upper - lower, Rate: bracket.Rate})
		lower = *bracket.Upper
	}
	return table, nil
}

func countUnmodeledStates(rates map[string]float64) int {
	unmodeled := 0
	for _, state := range States {
		if _, ok := rates[state]; !ok {
			unmodeled++
		}
	}
	return unmodeled
}

// DefaultParams returns the built-in 2025 single-filer parameters used when
// no tax-year file is configured.
func DefaultParams() Params {
	return Params{
		Year:              2025,
		StandardDeduction: 15000,
		Brackets: BracketTable{
			{Width: 11925, Rate: 0.10},
			{Width: 48475 - 11925, Rate: 0.12},
			{Width: 103350 - 48475, Rate: 0.22},
			{Width: 197300 - 103350, Rate: 0.24},
			{Width: 250525 - 197300, Rate: 0.32},
			{Width: 626350 - 250525, Rate: 0.35},
			{Width: math.Inf(1), Rate: 0.37},
		},
		PayrollTax: PayrollTaxParams{
			SSWageCap:                   176100,
			SSRate:                      0.062,
			MedicareRate:                0.0145,
			AdditionalMedicareThreshold: 200000,
			AdditionalMedicareRate:      0.009,
		},
		StateRates: map[string]float64{
			"Alaska":        0,
			"Florida":       0,
			"Nevada":        0,
			"New Hampshire": 0,
			"South Dakota":  0,
			"Tennessee":     0,
			"Texas":         0,
			"Washington":    0,
			"Wyoming":       0,
		},
		Calendar: Calendar{
			FirstPeriodFraction: 0.4,
			PayDates: []string{
				"Feb 14", "Feb 28", "Mar 14", "Mar 28", "Apr 11", "Apr 25",
				"May 9", "May 23", "Jun 6", "Jun 20", "Jul 4", "Jul 18",
				"Aug 1", "Aug 15", "Aug 29", "Sep 12", "Sep 26", "Oct 10",
				"Oct 24", "Nov 7", "Nov 21", "Dec 5", "Dec 19",
			},
		},
	}
}
