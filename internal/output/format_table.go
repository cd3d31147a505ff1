package output

import (
	"fmt"
	"strings"

	"github.com/wagewise/wagewise/internal/domain"
)

// TableFormatter renders the Result as a console report.
type TableFormatter struct{}

// Format generates the full text report: wage summary, budget position,
// loan details, the three allocation charts, purchase effort and the
// retirement projections.
func (tf *TableFormatter) Format(result *domain.Result) string {
	var sb strings.Builder

	sb.WriteString("WAGE ALLOCATION REPORT\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n\n")

	tf.writeSummary(&sb, result)
	tf.writeLoan(&sb, result)
	tf.writeChart(&sb, result.Daily, "$")
	if result.LoanBreakdown != nil {
		tf.writeChart(&sb, *result.LoanBreakdown, "$")
	}
	tf.writeChart(&sb, result.AnnualTime, "h")
	tf.writeChart(&sb, result.AnnualWorkTime, "h")
	tf.writeRetirement(&sb, result.Retirement)
	tf.writeAdvisory(&sb, result.Advisory)

	return sb.String()
}

func (tf *TableFormatter) writeSummary(sb *strings.Builder, result *domain.Result) {
	b := result.Budget
	sb.WriteString("SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	fmt.Fprintf(sb, "  %-28s $%s\n", "Hourly Wage", b.HourlyWage.StringFixed(2))
	fmt.Fprintf(sb, "  %-28s $%s\n", "Gross Daily Wage", b.GrossDailyWage.StringFixed(2))
	fmt.Fprintf(sb, "  %-28s $%s\n", "Daily Taxes", b.DailyTaxes.StringFixed(2))
	fmt.Fprintf(sb, "  %-28s $%s\n", "Net Daily Wage", b.NetDailyWage.StringFixed(2))
	fmt.Fprintf(sb, "  %-28s $%s\n", "Net Monthly Income", b.NetMonthlyIncome.StringFixed(2))
	fmt.Fprintf(sb, "  %-28s $%s\n", "Monthly Expenses", b.TotalMonthlyExpenses.StringFixed(2))
	fmt.Fprintf(sb, "  %-28s $%s\n", "Monthly Purchase Payment", b.MonthlyPurchasePayment.StringFixed(2))
	fmt.Fprintf(sb, "  %-28s $%s\n", "Total Monthly Expenditure", b.TotalMonthlyExpenditure.StringFixed(2))
	if b.HasShortfall {
		fmt.Fprintf(sb, "  %-28s $%s\n", "MONTHLY SHORTFALL", b.MonthlyShortfall.StringFixed(2))
	} else {
		fmt.Fprintf(sb, "  %-28s $%s\n", "Monthly Surplus", b.MonthlySurplus().StringFixed(2))
	}
	if result.Effort.Hours.IsPositive() {
		fmt.Fprintf(sb, "  %-28s %s hours (%s days, %s weeks)\n", "Work Time for Purchase",
			result.Effort.Hours.StringFixed(1),
			result.Effort.Days.StringFixed(1),
			result.Effort.Weeks.StringFixed(1))
	}
	sb.WriteString("\n")
}

func (tf *TableFormatter) writeLoan(sb *strings.Builder, result *domain.Result) {
	loan := result.Loan
	if !loan.Financed {
		return
	}
	sb.WriteString("LOAN\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	fmt.Fprintf(sb, "  %-28s $%s\n", "Total Cost", loan.TotalCost.StringFixed(2))
	fmt.Fprintf(sb, "  %-28s $%s\n", "Base Monthly Payment", loan.MonthlyPayment.StringFixed(2))
	fmt.Fprintf(sb, "  %-28s $%s\n", "Effective Monthly Payment", loan.EffectiveMonthlyPayment.StringFixed(2))
	fmt.Fprintf(sb, "  %-28s $%s\n", "Interest Paid", result.InterestPaid.StringFixed(2))
	if loan.InterestSaved.IsPositive() || loan.TimeSavedMonths > 0 {
		fmt.Fprintf(sb, "  %-28s $%s\n", "Interest Saved", loan.InterestSaved.StringFixed(2))
		fmt.Fprintf(sb, "  %-28s %d months\n", "Time Saved", loan.TimeSavedMonths)
	}
	if !loan.PaidOff {
		fmt.Fprintf(sb, "  WARNING: payment does not cover accruing interest; balance remains after %d months\n", loan.MonthsPaid)
	}
	sb.WriteString("\n")
}

func (tf *TableFormatter) writeChart(sb *strings.Builder, chart domain.Chart, unit string) {
	sb.WriteString(strings.ToUpper(chart.Name) + "\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	for _, bucket := range chart.Buckets {
		value := bucket.Value.StringFixed(2)
		if unit == "$" {
			value = "$" + value
		} else {
			value += " " + unit
		}
		fmt.Fprintf(sb, "  %-32s %14s %7s%%\n", bucket.Label, value, bucket.Percentage.StringFixed(1))
	}
	sb.WriteString("\n")
}

func (tf *TableFormatter) writeRetirement(sb *strings.Builder, projections []domain.RetirementProjection) {
	if len(projections) == 0 {
		return
	}
	sb.WriteString("RETIREMENT PROJECTIONS (7% annual return)\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	fmt.Fprintf(sb, "  %-10s %16s %16s %16s\n", "Horizon", "Balance Growth", "Contributions", "Total")
	for _, p := range projections {
		fmt.Fprintf(sb, "  %-10s %16s %16s %16s\n",
			fmt.Sprintf("%d years", p.HorizonYears),
			"$"+p.CurrentBalanceGrowth.StringFixed(2),
			"$"+p.NewContributions.StringFixed(2),
			"$"+p.Total.StringFixed(2))
	}
	sb.WriteString("\n")
}

func (tf *TableFormatter) writeAdvisory(sb *strings.Builder, advisory *domain.Advisory) {
	if advisory == nil {
		return
	}
	sb.WriteString("SHORTFALL ADVISORY\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	if advisory.Feasible {
		fmt.Fprintf(sb, "  Work an additional %s hours per day (%s total hours/day) to cover the shortfall.\n",
			advisory.AdditionalHoursPerDay.StringFixed(1),
			advisory.TotalHoursPerDay.StringFixed(1))
	} else {
		fmt.Fprintf(sb, "  Longer days alone cannot close the gap. A standard schedule needs $%s/hour ($%s/month) to cover expenses with a 20%% surplus.\n",
			advisory.RequiredHourlyWage.StringFixed(2),
			advisory.TargetMonthlyIncome.StringFixed(2))
	}
	sb.WriteString("\n")
}
