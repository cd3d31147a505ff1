// Package calculation is the decision engine: it turns one input snapshot
// into a complete, immutable Result. Every function here is pure; callers
// re-run Evaluate after each input change and replace the previous Result
// wholesale.
package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wagewise/wagewise/internal/domain"
)

// Logger is the minimal logging surface the engine needs. The CLI and the
// server back it with zap; tests use NopLogger.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// Engine wires the calculators together and owns the derived intermediate
// quantities they share.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger replaces the engine logger; nil restores the no-op logger.
func (e *Engine) SetLogger(logger Logger) {
	if logger == nil {
		logger = NopLogger{}
	}
	e.Logger = logger
}

// Evaluate derives the full Result for one input snapshot. It returns nil
// when the wage is absent or non-positive: that is the documented
// "insufficient input" signal, not an error.
func (e *Engine) Evaluate(in domain.Input) *domain.Result {
	hourlyWage := NormalizeToHourly(in.Wage.Amount, in.Wage.Period, in.Wage.HoursPerDay, in.Wage.DaysPerWeek)
	if hourlyWage.LessThanOrEqual(decimal.Zero) {
		e.Logger.Debugf("evaluate: no usable wage (amount=%s period=%s)", in.Wage.Amount, in.Wage.Period)
		return nil
	}

	loan := ComputeLoanDetails(in.Loan)
	budget := AggregateBudget(in, hourlyWage, loan)
	if budget.HasShortfall {
		e.Logger.Warnf("evaluate: monthly shortfall of %s", budget.MonthlyShortfall.StringFixed(2))
	}

	interestPaid := loan.TotalCost.Sub(in.Loan.Principal)
	if interestPaid.IsNegative() {
		interestPaid = decimal.Zero
	}

	result := &domain.Result{
		Budget:         budget,
		Loan:           loan,
		InterestPaid:   interestPaid,
		Daily:          BuildDailyChart(in, budget),
		AnnualTime:     BuildAnnualTimeChart(in, budget),
		AnnualWorkTime: BuildAnnualWorkTimeChart(in, budget),
		LoanBreakdown:  BuildLoanBreakdown(in.Loan.Principal, loan),
		Effort:         ComputePurchaseEffort(in, budget, loan),
		Retirement:     ProjectRetirement(in.RetirementBalance, budget.MonthlySurplus()),
		Advisory:       BuildAdvisory(in, budget),
	}

	e.Logger.Debugf("evaluate: hourly=%s netMonthly=%s expenditure=%s",
		hourlyWage.StringFixed(2),
		budget.NetMonthlyIncome.StringFixed(2),
		budget.TotalMonthlyExpenditure.StringFixed(2))
	return result
}
