package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wagewise/wagewise/internal/domain"
)

// AggregateBudget derives the monthly cash-flow position from the normalized
// hourly wage, the work schedule, the recurring expenses and the purchase.
// Pure function of its inputs.
func AggregateBudget(in domain.Input, hourlyWage decimal.Decimal, loan domain.LoanDetails) domain.BudgetSummary {
	hoursPerDay, daysPerWeek := scheduleOrDefault(in.Wage.HoursPerDay, in.Wage.DaysPerWeek)
	taxRate := in.Wage.TaxRate()

	grossDailyWage := hourlyWage.Mul(hoursPerDay)
	dailyTaxes := grossDailyWage.Mul(taxRate)
	netDailyWage := grossDailyWage.Sub(dailyTaxes)
	netHourlyWage := hourlyWage.Mul(decimal.NewFromInt(1).Sub(taxRate))

	// Working days in the fixed 30-day month.
	workDaysPerMonth := daysPerWeek.Div(domain.DaysPerWeek).Mul(domain.DaysPerMonth)
	netMonthlyIncome := netDailyWage.Mul(workDaysPerMonth)

	monthlyPurchasePayment := decimal.Zero
	if in.Loan.Principal.GreaterThan(decimal.Zero) {
		if loan.Financed {
			monthlyPurchasePayment = loan.EffectiveMonthlyPayment
		} else {
			// Cash purchases are spread over a fixed window so they are
			// comparable to a loan payment.
			monthlyPurchasePayment = in.Loan.Principal.Div(domain.CashSpreadMonths)
		}
	}

	totalMonthlyExpenses := in.Expenses.Total()
	totalMonthlyExpenditure := totalMonthlyExpenses.Add(monthlyPurchasePayment)

	shortfall := totalMonthlyExpenditure.Sub(netMonthlyIncome)
	hasShortfall := shortfall.GreaterThan(decimal.Zero)

	return domain.BudgetSummary{
		HourlyWage:              hourlyWage,
		NetHourlyWage:           netHourlyWage,
		GrossDailyWage:          grossDailyWage,
		DailyTaxes:              dailyTaxes,
		NetDailyWage:            netDailyWage,
		WorkDaysPerMonth:        workDaysPerMonth,
		NetMonthlyIncome:        netMonthlyIncome,
		MonthlyPurchasePayment:  monthlyPurchasePayment,
		TotalMonthlyExpenses:    totalMonthlyExpenses,
		TotalMonthlyExpenditure: totalMonthlyExpenditure,
		MonthlyShortfall:        shortfall.Abs(),
		HasShortfall:            hasShortfall,
	}
}
