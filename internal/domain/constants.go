package domain

import "github.com/shopspring/decimal"

// Fixed calendar conventions shared by every calculation. Real day-count
// handling is deliberately out of scope; these constants are the contract.
var (
	WeeksPerMonth = decimal.NewFromFloat(4.33)
	WeeksPerYear  = decimal.NewFromInt(52)
	DaysPerMonth  = decimal.NewFromInt(30)
	DaysPerYear   = decimal.NewFromInt(365)
	DaysPerWeek   = decimal.NewFromInt(7)
	MonthsPerYear = decimal.NewFromInt(12)
	HoursPerYear  = decimal.NewFromInt(8760)

	// SleepHoursPerDay feeds the fixed Sleep bucket of the annual time chart.
	SleepHoursPerDay = decimal.NewFromInt(8)

	// CashSpreadMonths spreads a cash purchase over a fixed window so it is
	// comparable to a monthly loan payment. It is not a payment plan.
	CashSpreadMonths = decimal.NewFromInt(12)

	// RetirementReturnRate is the assumed annual growth rate for projections.
	RetirementReturnRate = decimal.NewFromFloat(0.07)
)

// RetirementHorizons are the projection horizons in years.
var RetirementHorizons = []int{5, 10, 15, 20}

// DefaultHoursPerDay and DefaultDaysPerWeek back-fill a missing or invalid
// work schedule.
var (
	DefaultHoursPerDay = decimal.NewFromInt(8)
	DefaultDaysPerWeek = decimal.NewFromInt(5)
)
