package domain

import "github.com/shopspring/decimal"

// WagePeriod identifies the pay period a wage amount was entered in.
type WagePeriod string

const (
	PeriodHourly  WagePeriod = "hourly"
	PeriodDaily   WagePeriod = "daily"
	PeriodWeekly  WagePeriod = "weekly"
	PeriodMonthly WagePeriod = "monthly"
	PeriodYearly  WagePeriod = "yearly"
)

// Valid reports whether the period is one of the recognized values.
func (p WagePeriod) Valid() bool {
	switch p {
	case PeriodHourly, PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// DurationUnit identifies the unit a loan duration was entered in.
// Anything other than years is treated as already-months.
type DurationUnit string

const (
	DurationMonths DurationUnit = "months"
	DurationYears  DurationUnit = "years"
)

// ExtraFrequency identifies how often an extra principal payment is made.
type ExtraFrequency string

const (
	ExtraMonthly ExtraFrequency = "monthly"
	ExtraYearly  ExtraFrequency = "yearly"
)

// WageInput describes earnings and the work schedule they are earned on.
type WageInput struct {
	Amount         decimal.Decimal `yaml:"amount" json:"amount"`
	Period         WagePeriod      `yaml:"period" json:"period"`
	HoursPerDay    decimal.Decimal `yaml:"hours_per_day" json:"hours_per_day"`
	DaysPerWeek    decimal.Decimal `yaml:"days_per_week" json:"days_per_week"`
	TaxRatePercent decimal.Decimal `yaml:"tax_rate_percent" json:"tax_rate_percent"`
}

// TaxRate returns the tax rate as a fraction (26% -> 0.26).
func (w WageInput) TaxRate() decimal.Decimal {
	return w.TaxRatePercent.Div(decimal.NewFromInt(100))
}

// LoanInput describes an optional financed purchase. When HasLoan is false
// the purchase is a cash cost equal to Principal regardless of the other
// fields.
type LoanInput struct {
	Principal         decimal.Decimal `yaml:"principal" json:"principal"`
	HasLoan           bool            `yaml:"has_loan" json:"has_loan"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	Duration          decimal.Decimal `yaml:"duration" json:"duration"`
	DurationUnit      DurationUnit    `yaml:"duration_unit" json:"duration_unit"`
	ExtraPrincipal    decimal.Decimal `yaml:"extra_principal" json:"extra_principal"`
	ExtraFrequency    ExtraFrequency  `yaml:"extra_frequency" json:"extra_frequency"`
}

// Input is one complete evaluation snapshot.
type Input struct {
	Wage              WageInput       `yaml:"wage" json:"wage"`
	Loan              LoanInput       `yaml:"loan" json:"loan"`
	Expenses          ExpenseSet      `yaml:"expenses" json:"expenses"`
	RetirementBalance decimal.Decimal `yaml:"retirement_balance" json:"retirement_balance"`
}
