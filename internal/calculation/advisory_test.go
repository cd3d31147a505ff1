package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagewise/wagewise/internal/domain"
)

func TestComputePurchaseEffort(t *testing.T) {
	in := hourlyInput(20, 8, 5, 25)
	in.Loan = domain.LoanInput{Principal: decimal.NewFromInt(1200)}
	loan := ComputeLoanDetails(in.Loan)
	budget := AggregateBudget(in, in.Wage.Amount, loan)

	effort := ComputePurchaseEffort(in, budget, loan)

	// 1200 at a net 15/hour.
	assert.True(t, effort.Hours.Equal(decimal.NewFromInt(80)), "hours, got %s", effort.Hours)
	assert.True(t, effort.Days.Equal(decimal.NewFromInt(10)), "days, got %s", effort.Days)
	assert.True(t, effort.Weeks.Equal(decimal.NewFromInt(2)), "weeks, got %s", effort.Weeks)
}

func TestComputePurchaseEffort_FinancedUsesTotalCost(t *testing.T) {
	in := hourlyInput(20, 8, 5, 25)
	in.Loan = financedLoan(12000, 5, 12, domain.DurationMonths)
	loan := ComputeLoanDetails(in.Loan)
	budget := AggregateBudget(in, in.Wage.Amount, loan)

	effort := ComputePurchaseEffort(in, budget, loan)

	want := loan.TotalCost.Div(decimal.NewFromInt(15))
	assert.True(t, effort.Hours.Equal(want), "interest is part of the effort")
}

func TestComputePurchaseEffort_NoPurchase(t *testing.T) {
	in := hourlyInput(20, 8, 5, 25)
	budget := AggregateBudget(in, in.Wage.Amount, domain.LoanDetails{})

	effort := ComputePurchaseEffort(in, budget, domain.LoanDetails{})

	assert.True(t, effort.Hours.IsZero())
	assert.True(t, effort.Days.IsZero())
	assert.True(t, effort.Weeks.IsZero())
}

func TestBuildAdvisory_NilWithoutShortfall(t *testing.T) {
	in := hourlyInput(20, 8, 5, 0)
	budget := AggregateBudget(in, in.Wage.Amount, domain.LoanDetails{})

	assert.Nil(t, BuildAdvisory(in, budget))
}

func TestBuildAdvisory_FeasibleExtraHours(t *testing.T) {
	in := hourlyInput(10, 8, 5, 0)
	in.Expenses[domain.CategoryRent] = decimal.NewFromInt(2000)
	budget := AggregateBudget(in, in.Wage.Amount, domain.LoanDetails{})
	require.True(t, budget.HasShortfall)

	advisory := BuildAdvisory(in, budget)
	require.NotNil(t, advisory)

	// 285.71 short, each extra daily hour earns 10 on 21.43 work days.
	assert.InDelta(t, 1.3333, advisory.AdditionalHoursPerDay.InexactFloat64(), 0.001)
	assert.InDelta(t, 9.3333, advisory.TotalHoursPerDay.InexactFloat64(), 0.001)
	assert.True(t, advisory.Feasible)
	assert.True(t, advisory.RequiredHourlyWage.IsZero(), "no wage change needed when hours suffice")
}

func TestBuildAdvisory_InfeasibleFallsBackToWage(t *testing.T) {
	in := hourlyInput(10, 8, 5, 0)
	in.Expenses[domain.CategoryRent] = decimal.NewFromInt(4000)
	budget := AggregateBudget(in, in.Wage.Amount, domain.LoanDetails{})

	advisory := BuildAdvisory(in, budget)
	require.NotNil(t, advisory)

	assert.InDelta(t, 18.6667, advisory.TotalHoursPerDay.InexactFloat64(), 0.001, "past the 16-hour cap")
	assert.False(t, advisory.Feasible)

	// 20% headroom over 4000, earned on a standard 8x5 month.
	assert.True(t, advisory.TargetMonthlyIncome.Equal(decimal.NewFromInt(4800)))
	assert.InDelta(t, 27.71, advisory.RequiredHourlyWage.InexactFloat64(), 0.01)
}

func TestBuildAdvisory_ExactBreakEvenIsNotShortfall(t *testing.T) {
	// 8x7 schedule nets exactly 2400.
	in := hourlyInput(10, 8, 7, 0)
	in.Expenses[domain.CategoryRent] = decimal.NewFromInt(2400)
	budget := AggregateBudget(in, in.Wage.Amount, domain.LoanDetails{})

	assert.False(t, budget.HasShortfall)
	assert.Nil(t, BuildAdvisory(in, budget))
}
