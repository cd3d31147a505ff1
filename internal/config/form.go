// Package config is the boundary between loosely-typed form values and the
// engine's typed input. Every numeric field arrives as a string and degrades
// to a documented default instead of erroring; the engine must always have
// something to evaluate.
package config

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wagewise/wagewise/internal/domain"
)

// Form mirrors the raw input surface field for field: free-text decimal
// strings plus the loan checkbox. It is what the HTTP API accepts and what
// evaluation files deserialize into.
type Form struct {
	Wage        string `yaml:"wage" json:"wage"`
	WagePeriod  string `yaml:"wage_period" json:"wage_period"`
	HoursPerDay string `yaml:"hours_per_day" json:"hours_per_day"`
	DaysPerWeek string `yaml:"days_per_week" json:"days_per_week"`
	TaxRate     string `yaml:"tax_rate" json:"tax_rate"`

	ItemCost            string `yaml:"item_cost" json:"item_cost"`
	HasLoan             bool   `yaml:"has_loan" json:"has_loan"`
	InterestRate        string `yaml:"interest_rate" json:"interest_rate"`
	LoanDuration        string `yaml:"loan_duration" json:"loan_duration"`
	DurationUnit        string `yaml:"duration_unit" json:"duration_unit"`
	AdditionalPrincipal string `yaml:"additional_principal" json:"additional_principal"`
	AdditionalFrequency string `yaml:"additional_frequency" json:"additional_frequency"`

	RetirementBalance string `yaml:"retirement_balance" json:"retirement_balance"`

	Expenses map[string]string `yaml:"expenses" json:"expenses"`
}

// parseDecimal parses a loose decimal string; empty or unparseable input is
// zero.
func parseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseNonNegative is parseDecimal with negatives clamped to zero.
func parseNonNegative(s string) decimal.Decimal {
	d := parseDecimal(s)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func parsePeriod(s string) domain.WagePeriod {
	p := domain.WagePeriod(strings.TrimSpace(strings.ToLower(s)))
	if !p.Valid() {
		return domain.PeriodHourly
	}
	return p
}

func parseDurationUnit(s string) domain.DurationUnit {
	if strings.TrimSpace(strings.ToLower(s)) == string(domain.DurationYears) {
		return domain.DurationYears
	}
	return domain.DurationMonths
}

func parseExtraFrequency(s string) domain.ExtraFrequency {
	if strings.TrimSpace(strings.ToLower(s)) == string(domain.ExtraYearly) {
		return domain.ExtraYearly
	}
	return domain.ExtraMonthly
}

// Input converts the form into a typed evaluation snapshot, applying the
// documented defaults. It never fails.
func (f Form) Input() domain.Input {
	expenses := domain.NewExpenseSet()
	for _, c := range domain.Categories {
		if raw, ok := f.Expenses[string(c)]; ok {
			expenses[c] = parseNonNegative(raw)
		}
	}

	return domain.Input{
		Wage: domain.WageInput{
			Amount:         parseDecimal(f.Wage),
			Period:         parsePeriod(f.WagePeriod),
			HoursPerDay:    parseNonNegative(f.HoursPerDay),
			DaysPerWeek:    parseNonNegative(f.DaysPerWeek),
			TaxRatePercent: parseNonNegative(f.TaxRate),
		},
		Loan: domain.LoanInput{
			Principal:         parseNonNegative(f.ItemCost),
			HasLoan:           f.HasLoan,
			AnnualRatePercent: parseNonNegative(f.InterestRate),
			Duration:          parseNonNegative(f.LoanDuration),
			DurationUnit:      parseDurationUnit(f.DurationUnit),
			ExtraPrincipal:    parseNonNegative(f.AdditionalPrincipal),
			ExtraFrequency:    parseExtraFrequency(f.AdditionalFrequency),
		},
		Expenses:          expenses,
		RetirementBalance: parseNonNegative(f.RetirementBalance),
	}
}
