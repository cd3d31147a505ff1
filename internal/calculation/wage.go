package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wagewise/wagewise/internal/domain"
)

// scheduleOrDefault back-fills a missing or non-positive work schedule with
// the standard 8 hours / 5 days. Out-of-range positive values pass through
// as given; range limits belong to the input layer.
func scheduleOrDefault(hoursPerDay, daysPerWeek decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if hoursPerDay.LessThanOrEqual(decimal.Zero) {
		hoursPerDay = domain.DefaultHoursPerDay
	}
	if daysPerWeek.LessThanOrEqual(decimal.Zero) {
		daysPerWeek = domain.DefaultDaysPerWeek
	}
	return hoursPerDay, daysPerWeek
}

// NormalizeToHourly converts a wage entered in any pay period into an hourly
// rate. A non-positive amount or an unrecognized period yields zero.
func NormalizeToHourly(amount decimal.Decimal, period domain.WagePeriod, hoursPerDay, daysPerWeek decimal.Decimal) decimal.Decimal {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	hoursPerDay, daysPerWeek = scheduleOrDefault(hoursPerDay, daysPerWeek)

	switch period {
	case domain.PeriodHourly:
		return amount
	case domain.PeriodDaily:
		return amount.Div(hoursPerDay)
	case domain.PeriodWeekly:
		return amount.Div(hoursPerDay.Mul(daysPerWeek))
	case domain.PeriodMonthly:
		return amount.Div(hoursPerDay.Mul(daysPerWeek).Mul(domain.WeeksPerMonth))
	case domain.PeriodYearly:
		return amount.Div(hoursPerDay.Mul(daysPerWeek).Mul(domain.WeeksPerYear))
	default:
		return decimal.Zero
	}
}
