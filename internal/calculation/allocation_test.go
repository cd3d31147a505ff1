package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagewise/wagewise/internal/domain"
)

// allocationScenario is the shared fixture: 20/hour, 8x5 schedule, 25% tax,
// rent 1000 and groceries 300. Net hourly is exactly 15.
func allocationScenario() (domain.Input, domain.BudgetSummary) {
	in := hourlyInput(20, 8, 5, 25)
	in.Expenses[domain.CategoryRent] = decimal.NewFromInt(1000)
	in.Expenses[domain.CategoryGroceries] = decimal.NewFromInt(300)
	budget := AggregateBudget(in, in.Wage.Amount, domain.LoanDetails{})
	return in, budget
}

func bucketByLabel(t *testing.T, chart domain.Chart, label string) domain.Bucket {
	t.Helper()
	for _, b := range chart.Buckets {
		if b.Label == label {
			return b
		}
	}
	t.Fatalf("chart %q has no bucket %q", chart.Name, label)
	return domain.Bucket{}
}

func hasBucket(chart domain.Chart, label string) bool {
	for _, b := range chart.Buckets {
		if b.Label == label {
			return true
		}
	}
	return false
}

func TestBuildDailyChart_SurplusDay(t *testing.T) {
	in, budget := allocationScenario()
	chart := BuildDailyChart(in, budget)

	assert.True(t, chart.Base.Equal(decimal.NewFromInt(160)), "base is the gross daily wage")

	taxes := bucketByLabel(t, chart, "Taxes")
	assert.True(t, taxes.Value.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, "#000000", taxes.Color)

	rent := bucketByLabel(t, chart, "Rent/Mortgage")
	assert.InDelta(t, 46.6667, rent.Value.InexactFloat64(), 0.001, "1000 over 21.43 work days")
	assert.Equal(t, "#CC8899", rent.Color, "rent keeps its pinned color")

	groceries := bucketByLabel(t, chart, "Groceries")
	assert.InDelta(t, 14.0, groceries.Value.InexactFloat64(), 0.001)

	remaining := bucketByLabel(t, chart, "Remaining Income")
	assert.InDelta(t, 59.3333, remaining.Value.InexactFloat64(), 0.001)
	assert.False(t, hasBucket(chart, "Shortfall (Deficit)"))

	// With the remainder bucket present, the buckets tile the full day.
	assert.InDelta(t, 160, chart.Total().InexactFloat64(), 1e-9)

	// Descending by value.
	for i := 1; i < len(chart.Buckets); i++ {
		assert.False(t, chart.Buckets[i].Value.GreaterThan(chart.Buckets[i-1].Value),
			"buckets must be sorted descending")
	}
}

func TestBuildDailyChart_DeficitDay(t *testing.T) {
	in := hourlyInput(10, 8, 7, 0)
	in.Expenses[domain.CategoryRent] = decimal.NewFromInt(2900)
	budget := AggregateBudget(in, in.Wage.Amount, domain.LoanDetails{})

	chart := BuildDailyChart(in, budget)

	shortfall := bucketByLabel(t, chart, "Shortfall (Deficit)")
	assert.True(t, shortfall.Value.GreaterThan(decimal.Zero))
	assert.Equal(t, "#FF0000", shortfall.Color)
	assert.InDelta(t, 16.6667, shortfall.Value.InexactFloat64(), 0.001, "rent overshoots net daily by 2900/30-80")
	assert.False(t, hasBucket(chart, "Remaining Income"))
}

func TestBuildDailyChart_ZeroBucketsDropped(t *testing.T) {
	in := hourlyInput(20, 8, 5, 0)
	budget := AggregateBudget(in, in.Wage.Amount, domain.LoanDetails{})

	chart := BuildDailyChart(in, budget)

	assert.False(t, hasBucket(chart, "Taxes"), "zero tax produces no bucket")
	assert.False(t, hasBucket(chart, "New Purchase (Total)"))
	require.Len(t, chart.Buckets, 1)
	assert.Equal(t, "Remaining Income", chart.Buckets[0].Label)
}

func TestBuildDailyChart_PercentageAgainstBase(t *testing.T) {
	in, budget := allocationScenario()
	chart := BuildDailyChart(in, budget)

	taxes := bucketByLabel(t, chart, "Taxes")
	assert.True(t, taxes.Percentage.Equal(decimal.NewFromInt(25)), "40 of 160 is 25 percent, got %s", taxes.Percentage)
}

func TestBuildAnnualTimeChart_AccountsForAllHours(t *testing.T) {
	in, budget := allocationScenario()
	chart := BuildAnnualTimeChart(in, budget)

	assert.True(t, chart.Base.Equal(decimal.NewFromInt(8760)))

	sleep := bucketByLabel(t, chart, "Sleep")
	assert.True(t, sleep.Value.Equal(decimal.NewFromInt(2920)), "365 nights of 8 hours")
	assert.Equal(t, "#6B7280", sleep.Color)

	rent := bucketByLabel(t, chart, "Rent/Mortgage")
	assert.InDelta(t, 800, rent.Value.InexactFloat64(), 0.001, "12000/year at 15 net")

	groceries := bucketByLabel(t, chart, "Groceries")
	assert.InDelta(t, 240, groceries.Value.InexactFloat64(), 0.001)

	taxes := bucketByLabel(t, chart, "Taxes")
	assert.InDelta(t, 520, taxes.Value.InexactFloat64(), 0.001, "10400/year at the gross 20")

	unallocated := bucketByLabel(t, chart, "Work (Unallocated)")
	assert.InDelta(t, 520, unallocated.Value.InexactFloat64(), 0.001, "2080 work hours minus 1560 allocated")
	assert.Equal(t, "#F59E0B", unallocated.Color)

	free := bucketByLabel(t, chart, "Free Time")
	assert.InDelta(t, 3760, free.Value.InexactFloat64(), 0.001)

	assert.InDelta(t, 8760, chart.Total().InexactFloat64(), 1e-6, "every hour of the year is in some bucket")
}

func TestBuildAnnualTimeChart_NoPurchaseBucketWithoutPurchase(t *testing.T) {
	in, budget := allocationScenario()
	chart := BuildAnnualTimeChart(in, budget)
	assert.False(t, hasBucket(chart, "New Purchase (Total)"))
}

func TestBuildAnnualWorkTimeChart_WorkYearOnly(t *testing.T) {
	in, budget := allocationScenario()
	chart := BuildAnnualWorkTimeChart(in, budget)

	assert.True(t, chart.Base.Equal(decimal.NewFromInt(2080)), "8x5x52 scheduled hours")
	assert.False(t, hasBucket(chart, "Sleep"))
	assert.False(t, hasBucket(chart, "Free Time"))

	unallocated := bucketByLabel(t, chart, "Work (Unallocated)")
	assert.InDelta(t, 520, unallocated.Value.InexactFloat64(), 0.001)
	assert.Equal(t, "#10B981", unallocated.Color, "green marks the unallocated remainder")

	// Green is reserved for the remainder, no rotated bucket may reuse it.
	for _, b := range chart.Buckets {
		if b.Label == "Work (Unallocated)" {
			continue
		}
		assert.NotEqual(t, "#10B981", b.Color, "bucket %q must not reuse the remainder color", b.Label)
	}

	assert.InDelta(t, 2080, chart.Total().InexactFloat64(), 1e-6)
}

func TestBuildAnnualWorkTimeChart_PurchaseBucket(t *testing.T) {
	in, _ := allocationScenario()
	in.Loan = financedLoan(12000, 5, 12, domain.DurationMonths)
	loan := ComputeLoanDetails(in.Loan)
	budget := AggregateBudget(in, in.Wage.Amount, loan)

	chart := BuildAnnualWorkTimeChart(in, budget)

	purchase := bucketByLabel(t, chart, "New Purchase (Total)")
	assert.Equal(t, "#DC2626", purchase.Color)
	// 12 effective payments a year, bought at the net hourly wage.
	want := loan.EffectiveMonthlyPayment.Mul(decimal.NewFromInt(12)).Div(decimal.NewFromInt(15))
	assert.InDelta(t, want.InexactFloat64(), purchase.Value.InexactFloat64(), 0.001)
}

func TestBuildLoanBreakdown(t *testing.T) {
	principal := decimal.NewFromInt(12000)
	loan := ComputeLoanDetails(financedLoan(12000, 5, 12, domain.DurationMonths))

	chart := BuildLoanBreakdown(principal, loan)
	require.NotNil(t, chart)
	require.Len(t, chart.Buckets, 2)

	p := bucketByLabel(t, *chart, "Principal")
	assert.True(t, p.Value.Equal(principal))
	i := bucketByLabel(t, *chart, "Interest")
	assert.InDelta(t, 327.46, i.Value.InexactFloat64(), 0.05)
	assert.True(t, chart.Base.Equal(loan.TotalCost))
}

func TestBuildLoanBreakdown_NilCases(t *testing.T) {
	cash := ComputeLoanDetails(domain.LoanInput{Principal: decimal.NewFromInt(1200)})
	assert.Nil(t, BuildLoanBreakdown(decimal.NewFromInt(1200), cash), "cash purchases pay no interest")

	zeroRate := ComputeLoanDetails(financedLoan(1200, 0, 12, domain.DurationMonths))
	assert.Nil(t, BuildLoanBreakdown(decimal.NewFromInt(1200), zeroRate), "zero-rate financing pays no interest")
}
