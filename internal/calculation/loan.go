package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wagewise/wagewise/internal/domain"
)

// payoffThreshold is the residual balance at which a loan counts as paid.
var payoffThreshold = decimal.NewFromFloat(0.01)

var percentDivisor = decimal.NewFromInt(100)

// durationInMonths converts a loan duration to whole months. Years multiply
// by 12; any other unit is treated as already-months.
func durationInMonths(duration decimal.Decimal, unit domain.DurationUnit) int {
	if unit == domain.DurationYears {
		duration = duration.Mul(domain.MonthsPerYear)
	}
	return int(duration.Round(0).IntPart())
}

// baseMonthlyPayment computes the standard annuity payment
// P*r*(1+r)^n / ((1+r)^n - 1). A zero monthly rate takes the simple-division
// branch: the payment is principal/n and no interest ever accrues.
func baseMonthlyPayment(principal, monthlyRate decimal.Decimal, months int) decimal.Decimal {
	n := decimal.NewFromInt(int64(months))
	if monthlyRate.IsZero() {
		return principal.Div(n)
	}
	compound := decimal.NewFromInt(1).Add(monthlyRate).Pow(n)
	return principal.Mul(monthlyRate).Mul(compound).Div(compound.Sub(decimal.NewFromInt(1)))
}

// simulateAcceleratedPayoff walks the loan month by month at the given
// combined payment. It stops once the balance falls to the payoff threshold
// or the scheduled term runs out, and halts early without paying off when
// the payment does not cover the accruing interest.
func simulateAcceleratedPayoff(principal, monthlyRate decimal.Decimal, months int, payment decimal.Decimal) (totalPaid decimal.Decimal, monthsPaid int, paidOff bool) {
	balance := principal
	totalPaid = decimal.Zero

	for balance.GreaterThan(payoffThreshold) && monthsPaid < months {
		// Bounded scale keeps long-horizon loops from accumulating digits.
		interest := balance.Mul(monthlyRate).Round(10)
		principalPortion := decimal.Min(payment.Sub(interest), balance)
		if principalPortion.LessThanOrEqual(decimal.Zero) {
			return totalPaid, monthsPaid, false
		}
		balance = balance.Sub(principalPortion)
		totalPaid = totalPaid.Add(interest).Add(principalPortion)
		monthsPaid++
	}
	return totalPaid, monthsPaid, balance.LessThanOrEqual(payoffThreshold)
}

// ComputeLoanDetails derives the full amortization picture for a purchase.
// Without a loan (or with a degenerate term) the purchase is a cash cost
// equal to the principal.
func ComputeLoanDetails(loan domain.LoanInput) domain.LoanDetails {
	principal := loan.Principal
	if principal.LessThanOrEqual(decimal.Zero) {
		return domain.LoanDetails{TotalCost: decimal.Zero, InterestSaved: decimal.Zero, PaidOff: true}
	}

	months := durationInMonths(loan.Duration, loan.DurationUnit)
	if !loan.HasLoan || months <= 0 || loan.AnnualRatePercent.IsNegative() {
		return domain.LoanDetails{TotalCost: principal, InterestSaved: decimal.Zero, PaidOff: true}
	}

	monthlyRate := loan.AnnualRatePercent.Div(percentDivisor).Div(domain.MonthsPerYear)
	payment := baseMonthlyPayment(principal, monthlyRate, months)
	originalTotalCost := payment.Mul(decimal.NewFromInt(int64(months)))
	if monthlyRate.IsZero() {
		// Simple division keeps the rounding remainder out of the total.
		originalTotalCost = principal
	}

	extraMonthly := loan.ExtraPrincipal
	if loan.ExtraFrequency == domain.ExtraYearly {
		extraMonthly = extraMonthly.Div(domain.MonthsPerYear)
	}

	if extraMonthly.LessThanOrEqual(decimal.Zero) {
		return domain.LoanDetails{
			TotalCost:               originalTotalCost,
			MonthlyPayment:          payment,
			EffectiveMonthlyPayment: payment,
			InterestSaved:           decimal.Zero,
			TimeSavedMonths:         0,
			MonthsPaid:              months,
			PaidOff:                 true,
			Financed:                true,
		}
	}

	effective := payment.Add(extraMonthly)
	totalPaid, monthsPaid, paidOff := simulateAcceleratedPayoff(principal, monthlyRate, months, effective)

	interestSaved := originalTotalCost.Sub(totalPaid)
	if interestSaved.IsNegative() {
		interestSaved = decimal.Zero
	}
	timeSaved := months - monthsPaid
	if timeSaved < 0 {
		timeSaved = 0
	}

	return domain.LoanDetails{
		TotalCost:               totalPaid,
		MonthlyPayment:          payment,
		EffectiveMonthlyPayment: effective,
		InterestSaved:           interestSaved,
		TimeSavedMonths:         timeSaved,
		MonthsPaid:              monthsPaid,
		PaidOff:                 paidOff,
		Financed:                true,
	}
}
