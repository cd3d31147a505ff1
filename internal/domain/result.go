package domain

import "github.com/shopspring/decimal"

// LoanDetails is the derived amortization picture for one evaluation.
// When the purchase is cash (or absent) all payment fields are zero and
// TotalCost equals the principal.
type LoanDetails struct {
	TotalCost               decimal.Decimal `json:"total_cost"`
	MonthlyPayment          decimal.Decimal `json:"monthly_payment"`
	EffectiveMonthlyPayment decimal.Decimal `json:"effective_monthly_payment"`
	InterestSaved           decimal.Decimal `json:"interest_saved"`
	TimeSavedMonths         int             `json:"time_saved_months"`
	MonthsPaid              int             `json:"months_paid"`

	// PaidOff is false only when the combined payment failed to cover the
	// accruing interest and the simulation halted early.
	PaidOff bool `json:"paid_off"`

	// Financed is true when the purchase actually ran through the loan path.
	Financed bool `json:"financed"`
}

// Bucket is one slice of a categorical breakdown. Value carries the chart's
// unit (dollars or hours); Percentage is measured against the chart's base
// and rounded to one decimal.
type Bucket struct {
	Label      string          `json:"name"`
	Value      decimal.Decimal `json:"value"`
	Percentage decimal.Decimal `json:"percentage"`
	Color      string          `json:"color"`
}

// Chart is an ordered bucket sequence. Buckets are strictly positive and
// sorted descending by value; their values sum to Base within tolerance.
type Chart struct {
	Name    string          `json:"name"`
	Base    decimal.Decimal `json:"base"`
	Buckets []Bucket        `json:"buckets"`
}

// Total sums the bucket values.
func (c Chart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, b := range c.Buckets {
		total = total.Add(b.Value)
	}
	return total
}

// BudgetSummary holds the normalized wage figures and the monthly cash-flow
// position derived from them.
type BudgetSummary struct {
	HourlyWage       decimal.Decimal `json:"hourly_wage"`
	NetHourlyWage    decimal.Decimal `json:"net_hourly_wage"`
	GrossDailyWage   decimal.Decimal `json:"gross_daily_wage"`
	DailyTaxes       decimal.Decimal `json:"daily_taxes"`
	NetDailyWage     decimal.Decimal `json:"net_daily_wage"`
	WorkDaysPerMonth decimal.Decimal `json:"work_days_per_month"`
	NetMonthlyIncome decimal.Decimal `json:"net_monthly_income"`

	MonthlyPurchasePayment  decimal.Decimal `json:"monthly_purchase_payment"`
	TotalMonthlyExpenses    decimal.Decimal `json:"total_monthly_expenses"`
	TotalMonthlyExpenditure decimal.Decimal `json:"total_monthly_expenditure"`

	// MonthlyShortfall is the absolute gap between expenditure and income;
	// HasShortfall tells which side it falls on.
	MonthlyShortfall decimal.Decimal `json:"monthly_shortfall"`
	HasShortfall     bool            `json:"has_shortfall"`
}

// MonthlySurplus is the amount available for savings; never negative.
func (b BudgetSummary) MonthlySurplus() decimal.Decimal {
	surplus := b.NetMonthlyIncome.Sub(b.TotalMonthlyExpenditure)
	if surplus.IsNegative() {
		return decimal.Zero
	}
	return surplus
}

// RetirementProjection is the projected balance after one fixed horizon.
type RetirementProjection struct {
	HorizonYears         int             `json:"horizon_years"`
	CurrentBalanceGrowth decimal.Decimal `json:"current_balance_growth"`
	NewContributions     decimal.Decimal `json:"new_contributions"`
	Total                decimal.Decimal `json:"total"`
	MonthlySurplus       decimal.Decimal `json:"monthly_surplus"`
}

// PurchaseEffort translates the purchase's total cost into work time at the
// net wage.
type PurchaseEffort struct {
	Hours decimal.Decimal `json:"hours"`
	Days  decimal.Decimal `json:"days"`
	Weeks decimal.Decimal `json:"weeks"`
}

// Advisory suggests how to close a budget shortfall: either extra daily
// hours at the current wage, or, when that would exceed a workable day, the
// wage a standard schedule would need to carry the budget with headroom.
type Advisory struct {
	AdditionalHoursPerDay decimal.Decimal `json:"additional_hours_per_day"`
	TotalHoursPerDay      decimal.Decimal `json:"total_hours_per_day"`
	Feasible              bool            `json:"feasible"`

	RequiredHourlyWage  decimal.Decimal `json:"required_hourly_wage,omitempty"`
	TargetMonthlyIncome decimal.Decimal `json:"target_monthly_income,omitempty"`
}

// Result aggregates every derived quantity for one evaluation. It is
// reconstructed wholesale on each input change and never mutated.
type Result struct {
	Budget       BudgetSummary   `json:"budget"`
	Loan         LoanDetails     `json:"loan"`
	InterestPaid decimal.Decimal `json:"interest_paid"`

	Daily          Chart  `json:"daily"`
	AnnualTime     Chart  `json:"annual_time"`
	AnnualWorkTime Chart  `json:"annual_work_time"`
	LoanBreakdown  *Chart `json:"loan_breakdown,omitempty"`

	Effort     PurchaseEffort         `json:"effort"`
	Retirement []RetirementProjection `json:"retirement"`
	Advisory   *Advisory              `json:"advisory,omitempty"`
}
