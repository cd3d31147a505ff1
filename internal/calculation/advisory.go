package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wagewise/wagewise/internal/domain"
)

// maxWorkableHoursPerDay caps how far "work more hours" is considered a
// realistic answer to a shortfall.
var maxWorkableHoursPerDay = decimal.NewFromInt(16)

// surplusHeadroom targets income 20% above expenditure when a wage change is
// the only way out.
var surplusHeadroom = decimal.NewFromFloat(1.2)

// ComputePurchaseEffort translates the purchase's total cost into the work
// time needed to earn it at the net wage. Zero when there is no purchase or
// the net wage is zero.
func ComputePurchaseEffort(in domain.Input, budget domain.BudgetSummary, loan domain.LoanDetails) domain.PurchaseEffort {
	if in.Loan.Principal.LessThanOrEqual(decimal.Zero) || budget.NetHourlyWage.LessThanOrEqual(decimal.Zero) {
		return domain.PurchaseEffort{Hours: decimal.Zero, Days: decimal.Zero, Weeks: decimal.Zero}
	}
	hoursPerDay, daysPerWeek := scheduleOrDefault(in.Wage.HoursPerDay, in.Wage.DaysPerWeek)

	hours := loan.TotalCost.Div(budget.NetHourlyWage)
	return domain.PurchaseEffort{
		Hours: hours,
		Days:  hours.Div(hoursPerDay),
		Weeks: hours.Div(hoursPerDay.Mul(daysPerWeek)),
	}
}

// BuildAdvisory suggests how to close a shortfall: extra daily hours at the
// current net wage when that stays within a workable day, otherwise the
// hourly wage a standard schedule would need to cover expenditure with
// headroom. Nil when the budget has no shortfall.
func BuildAdvisory(in domain.Input, budget domain.BudgetSummary) *domain.Advisory {
	if !budget.HasShortfall || budget.NetHourlyWage.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	hoursPerDay, _ := scheduleOrDefault(in.Wage.HoursPerDay, in.Wage.DaysPerWeek)

	additional := budget.MonthlyShortfall.Div(budget.NetHourlyWage.Mul(budget.WorkDaysPerMonth))
	total := hoursPerDay.Add(additional)

	advisory := &domain.Advisory{
		AdditionalHoursPerDay: additional,
		TotalHoursPerDay:      total,
		Feasible:              total.LessThanOrEqual(maxWorkableHoursPerDay),
	}
	if !advisory.Feasible {
		target := budget.TotalMonthlyExpenditure.Mul(surplusHeadroom)
		standardMonthlyHours := domain.DefaultHoursPerDay.Mul(domain.DefaultDaysPerWeek).Mul(domain.WeeksPerMonth)
		advisory.TargetMonthlyIncome = target
		advisory.RequiredHourlyWage = target.Div(standardMonthlyHours)
	}
	return advisory
}
