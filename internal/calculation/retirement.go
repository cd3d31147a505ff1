package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wagewise/wagewise/internal/domain"
)

// ProjectRetirement compounds the current balance and the monthly surplus
// forward over the fixed horizons at the assumed annual return. A deficit
// contributes nothing; it does not accelerate decline.
func ProjectRetirement(currentBalance, monthlySurplus decimal.Decimal) []domain.RetirementProjection {
	if currentBalance.IsNegative() {
		currentBalance = decimal.Zero
	}
	if monthlySurplus.IsNegative() {
		monthlySurplus = decimal.Zero
	}
	annualSavings := monthlySurplus.Mul(domain.MonthsPerYear)
	one := decimal.NewFromInt(1)

	projections := make([]domain.RetirementProjection, 0, len(domain.RetirementHorizons))
	for _, years := range domain.RetirementHorizons {
		growthFactor := one.Add(domain.RetirementReturnRate).Pow(decimal.NewFromInt(int64(years)))
		balanceGrowth := currentBalance.Mul(growthFactor)

		// Future value of an ordinary annuity.
		contributions := decimal.Zero
		if annualSavings.GreaterThan(decimal.Zero) {
			contributions = annualSavings.Mul(growthFactor.Sub(one).Div(domain.RetirementReturnRate))
		}

		projections = append(projections, domain.RetirementProjection{
			HorizonYears:         years,
			CurrentBalanceGrowth: balanceGrowth,
			NewContributions:     contributions,
			Total:                balanceGrowth.Add(contributions),
			MonthlySurplus:       monthlySurplus,
		})
	}
	return projections
}
