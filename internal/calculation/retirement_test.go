package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRetirement_BalanceGrowthOnly(t *testing.T) {
	projections := ProjectRetirement(decimal.NewFromInt(10000), decimal.Zero)

	require.Len(t, projections, 4)
	assert.Equal(t, []int{5, 10, 15, 20}, []int{
		projections[0].HorizonYears,
		projections[1].HorizonYears,
		projections[2].HorizonYears,
		projections[3].HorizonYears,
	})

	// 10000 * 1.07^10
	ten := projections[1]
	assert.InDelta(t, 19671.51, ten.CurrentBalanceGrowth.InexactFloat64(), 0.01)
	assert.True(t, ten.NewContributions.IsZero(), "no surplus means no contributions")
	assert.InDelta(t, 19671.51, ten.Total.InexactFloat64(), 0.01)
}

func TestProjectRetirement_ContributionAnnuity(t *testing.T) {
	projections := ProjectRetirement(decimal.Zero, decimal.NewFromInt(100))

	// 1200/year for 10 years: 1200 * ((1.07^10 - 1) / 0.07)
	ten := projections[1]
	assert.InDelta(t, 16579.74, ten.NewContributions.InexactFloat64(), 0.05)
	assert.True(t, ten.CurrentBalanceGrowth.IsZero())
	assert.True(t, ten.Total.Equal(ten.NewContributions))
	assert.True(t, ten.MonthlySurplus.Equal(decimal.NewFromInt(100)))
}

func TestProjectRetirement_HorizonsGrowMonotonically(t *testing.T) {
	projections := ProjectRetirement(decimal.NewFromInt(5000), decimal.NewFromInt(250))

	for i := 1; i < len(projections); i++ {
		assert.True(t, projections[i].Total.GreaterThan(projections[i-1].Total),
			"a longer horizon compounds to more")
	}
}

func TestProjectRetirement_NegativesClampToZero(t *testing.T) {
	projections := ProjectRetirement(decimal.NewFromInt(-500), decimal.NewFromInt(-100))

	for _, p := range projections {
		assert.True(t, p.Total.IsZero(), "negative inputs project nothing at %d years", p.HorizonYears)
	}
}
