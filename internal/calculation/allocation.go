package calculation

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/wagewise/wagewise/internal/domain"
)

// Color tags are cosmetic. The contract is only that a given category maps
// to a stable identifier; consumers decide what to render.
const (
	colorTaxes       = "#000000"
	colorPurchase    = "#DC2626"
	colorRemaining   = "#10B981"
	colorShortfall   = "#FF0000"
	colorSleep       = "#6B7280"
	colorUnallocated = "#F59E0B"
	colorFreeTime    = "#10B981"
	colorPrincipal   = "#10B981"
	colorInterest    = "#EF4444"
)

// rotationPalette colors categories without a fixed assignment, keyed by the
// bucket's position in its chart.
var rotationPalette = []string{
	"#3B82F6", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6", "#06B6D4",
	"#84CC16", "#F97316", "#EC4899", "#6B7280", "#14B8A6", "#DC2626",
	"#991B1B",
}

// fixedCategoryColors pins a handful of categories to a constant color so
// they are recognizable across charts.
var fixedCategoryColors = map[domain.ExpenseCategory]string{
	domain.CategoryRent:  "#CC8899",
	domain.CategoryWifi:  "#8B5CF6",
	domain.CategoryWater: "#3B82F6",
}

func categoryColor(c domain.ExpenseCategory, position int, palette []string) string {
	if color, ok := fixedCategoryColors[c]; ok {
		return color
	}
	return palette[position%len(palette)]
}

// chartBuilder accumulates strictly-positive buckets against a fixed base.
type chartBuilder struct {
	chart domain.Chart
}

func newChartBuilder(name string, base decimal.Decimal) *chartBuilder {
	return &chartBuilder{chart: domain.Chart{Name: name, Base: base}}
}

// add appends a bucket unless its value is zero or negative. The percentage
// is measured against the chart base and rounded to one decimal.
func (cb *chartBuilder) add(label string, value decimal.Decimal, color string) {
	if value.LessThanOrEqual(decimal.Zero) || cb.chart.Base.LessThanOrEqual(decimal.Zero) {
		return
	}
	cb.chart.Buckets = append(cb.chart.Buckets, domain.Bucket{
		Label:      label,
		Value:      value,
		Percentage: value.Div(cb.chart.Base).Mul(decimal.NewFromInt(100)).Round(1),
		Color:      color,
	})
}

func (cb *chartBuilder) size() int { return len(cb.chart.Buckets) }

// build sorts descending by value and returns the finished chart.
func (cb *chartBuilder) build() domain.Chart {
	sort.SliceStable(cb.chart.Buckets, func(i, j int) bool {
		return cb.chart.Buckets[i].Value.GreaterThan(cb.chart.Buckets[j].Value)
	})
	return cb.chart
}

// BuildDailyChart decomposes the gross daily wage into taxes, per-category
// daily expense shares, the daily purchase share, and either the remaining
// income or the daily deficit.
func BuildDailyChart(in domain.Input, budget domain.BudgetSummary) domain.Chart {
	cb := newChartBuilder("Daily Wage Breakdown", budget.GrossDailyWage)

	cb.add("Taxes", budget.DailyTaxes, colorTaxes)

	dailyTotal := decimal.Zero
	for _, c := range domain.Categories {
		monthly := in.Expenses.Amount(c)
		if monthly.LessThanOrEqual(decimal.Zero) {
			continue
		}
		daily := monthly.Div(budget.WorkDaysPerMonth)
		cb.add(c.Label(), daily, categoryColor(c, cb.size(), rotationPalette))
		dailyTotal = dailyTotal.Add(daily)
	}

	dailyPurchase := budget.MonthlyPurchasePayment.Div(budget.WorkDaysPerMonth)
	cb.add("New Purchase (Total)", dailyPurchase, colorPurchase)

	remaining := budget.NetDailyWage.Sub(dailyTotal).Sub(dailyPurchase)
	if remaining.GreaterThan(decimal.Zero) {
		cb.add("Remaining Income", remaining, colorRemaining)
	} else if remaining.IsNegative() {
		cb.add("Shortfall (Deficit)", remaining.Abs(), colorShortfall)
	}

	return cb.build()
}

// workHoursPerYear is the scheduled annual work time.
func workHoursPerYear(hoursPerDay, daysPerWeek decimal.Decimal) decimal.Decimal {
	return hoursPerDay.Mul(daysPerWeek).Mul(domain.WeeksPerYear)
}

// annualWorkHours converts a monthly dollar amount into the work hours per
// year needed to earn it at the net wage.
func annualWorkHours(monthly, netHourlyWage decimal.Decimal) decimal.Decimal {
	if netHourlyWage.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return monthly.Mul(domain.MonthsPerYear).Div(netHourlyWage)
}

// taxWorkHours is the annual work time consumed by taxes. Taxes come out of
// the gross wage, so the gross rate is the right divisor.
func taxWorkHours(budget domain.BudgetSummary, daysPerWeek decimal.Decimal) decimal.Decimal {
	if budget.HourlyWage.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	annualTaxes := budget.DailyTaxes.Mul(daysPerWeek).Mul(domain.WeeksPerYear)
	return annualTaxes.Div(budget.HourlyWage)
}

// BuildAnnualTimeChart decomposes all 8,760 hours of a year: fixed sleep,
// work hours bought by each expense, the purchase and taxes, unallocated
// work time, and whatever is left as free time.
func BuildAnnualTimeChart(in domain.Input, budget domain.BudgetSummary) domain.Chart {
	hoursPerDay, daysPerWeek := scheduleOrDefault(in.Wage.HoursPerDay, in.Wage.DaysPerWeek)
	cb := newChartBuilder("Annual Time Breakdown", domain.HoursPerYear)

	sleep := domain.DaysPerYear.Mul(domain.SleepHoursPerDay)
	cb.add("Sleep", sleep, colorSleep)

	allocated := decimal.Zero
	for _, c := range domain.Categories {
		monthly := in.Expenses.Amount(c)
		if monthly.LessThanOrEqual(decimal.Zero) {
			continue
		}
		hours := annualWorkHours(monthly, budget.NetHourlyWage)
		cb.add(c.Label(), hours, categoryColor(c, cb.size(), rotationPalette))
		allocated = allocated.Add(hours)
	}

	if in.Loan.Principal.GreaterThan(decimal.Zero) {
		hours := annualWorkHours(budget.MonthlyPurchasePayment, budget.NetHourlyWage)
		cb.add("New Purchase (Total)", hours, colorPurchase)
		allocated = allocated.Add(hours)
	}

	taxHours := taxWorkHours(budget, daysPerWeek)
	cb.add("Taxes", taxHours, colorTaxes)
	allocated = allocated.Add(taxHours)

	workYear := workHoursPerYear(hoursPerDay, daysPerWeek)
	unallocated := workYear.Sub(allocated)
	cb.add("Work (Unallocated)", unallocated, colorUnallocated)

	accounted := sleep.Add(allocated)
	if unallocated.GreaterThan(decimal.Zero) {
		accounted = accounted.Add(unallocated)
	}
	cb.add("Free Time", domain.HoursPerYear.Sub(accounted), colorFreeTime)

	return cb.build()
}

// BuildAnnualWorkTimeChart is the work-hours-only view: the same expense,
// purchase and tax buckets normalized against the scheduled work year, with
// an unallocated remainder and no sleep or free time.
func BuildAnnualWorkTimeChart(in domain.Input, budget domain.BudgetSummary) domain.Chart {
	hoursPerDay, daysPerWeek := scheduleOrDefault(in.Wage.HoursPerDay, in.Wage.DaysPerWeek)
	workYear := workHoursPerYear(hoursPerDay, daysPerWeek)
	cb := newChartBuilder("Annual Work Time Breakdown", workYear)

	// Green is reserved for the unallocated remainder in this chart.
	palette := make([]string, 0, len(rotationPalette))
	for _, color := range rotationPalette {
		if color != colorRemaining {
			palette = append(palette, color)
		}
	}

	allocated := decimal.Zero
	for _, c := range domain.Categories {
		monthly := in.Expenses.Amount(c)
		if monthly.LessThanOrEqual(decimal.Zero) {
			continue
		}
		hours := annualWorkHours(monthly, budget.NetHourlyWage)
		cb.add(c.Label(), hours, categoryColor(c, cb.size(), palette))
		allocated = allocated.Add(hours)
	}

	if in.Loan.Principal.GreaterThan(decimal.Zero) {
		hours := annualWorkHours(budget.MonthlyPurchasePayment, budget.NetHourlyWage)
		cb.add("New Purchase (Total)", hours, colorPurchase)
		allocated = allocated.Add(hours)
	}

	taxHours := taxWorkHours(budget, daysPerWeek)
	cb.add("Taxes", taxHours, colorTaxes)
	allocated = allocated.Add(taxHours)

	cb.add("Work (Unallocated)", workYear.Sub(allocated), colorRemaining)

	return cb.build()
}

// BuildLoanBreakdown splits a financed purchase's total cost into principal
// and interest. Nil when nothing was financed or no interest is paid.
func BuildLoanBreakdown(principal decimal.Decimal, loan domain.LoanDetails) *domain.Chart {
	if !loan.Financed {
		return nil
	}
	interest := loan.TotalCost.Sub(principal)
	if interest.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	cb := newChartBuilder("Loan Cost Breakdown", loan.TotalCost)
	cb.add("Principal", principal, colorPrincipal)
	cb.add("Interest", interest, colorInterest)
	chart := cb.build()
	return &chart
}
