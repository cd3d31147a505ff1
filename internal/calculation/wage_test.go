package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/wagewise/wagewise/internal/domain"
)

func TestNormalizeToHourly_AllPeriods(t *testing.T) {
	hours := decimal.NewFromInt(8)
	days := decimal.NewFromInt(5)

	tests := []struct {
		name   string
		amount decimal.Decimal
		period domain.WagePeriod
		want   decimal.Decimal
	}{
		{"hourly passes through", decimal.NewFromInt(20), domain.PeriodHourly, decimal.NewFromInt(20)},
		{"daily divides by hours", decimal.NewFromInt(160), domain.PeriodDaily, decimal.NewFromInt(20)},
		{"weekly divides by hours*days", decimal.NewFromInt(800), domain.PeriodWeekly, decimal.NewFromInt(20)},
		{"monthly divides by hours*days*4.33", decimal.NewFromFloat(3464), domain.PeriodMonthly, decimal.NewFromInt(20)},
		{"yearly divides by hours*days*52", decimal.NewFromInt(41600), domain.PeriodYearly, decimal.NewFromInt(20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeToHourly(tt.amount, tt.period, hours, days)
			assert.True(t, got.Sub(tt.want).Abs().LessThan(decimal.NewFromFloat(0.0001)),
				"want %s, got %s", tt.want, got)
		})
	}
}

func TestNormalizeToHourly_InverseReconstructsPeriodAmount(t *testing.T) {
	hours := decimal.NewFromInt(8)
	days := decimal.NewFromInt(5)
	hourly := NormalizeToHourly(decimal.NewFromInt(20), domain.PeriodHourly, hours, days)

	weekly := hourly.Mul(hours).Mul(days)
	assert.True(t, weekly.Equal(decimal.NewFromInt(800)), "weekly gross should be 800, got %s", weekly)
}

func TestNormalizeToHourly_NonPositiveAmount(t *testing.T) {
	hours := decimal.NewFromInt(8)
	days := decimal.NewFromInt(5)

	assert.True(t, NormalizeToHourly(decimal.Zero, domain.PeriodHourly, hours, days).IsZero(), "zero amount should normalize to zero")
	assert.True(t, NormalizeToHourly(decimal.NewFromInt(-5), domain.PeriodHourly, hours, days).IsZero(), "negative amount should normalize to zero")
}

func TestNormalizeToHourly_UnknownPeriod(t *testing.T) {
	got := NormalizeToHourly(decimal.NewFromInt(20), domain.WagePeriod("fortnightly"), decimal.NewFromInt(8), decimal.NewFromInt(5))
	assert.True(t, got.IsZero(), "unknown period should normalize to zero")
}

func TestNormalizeToHourly_ScheduleDefaults(t *testing.T) {
	// Missing schedule falls back to 8 hours / 5 days.
	got := NormalizeToHourly(decimal.NewFromInt(800), domain.PeriodWeekly, decimal.Zero, decimal.Zero)
	assert.True(t, got.Equal(decimal.NewFromInt(20)), "weekly 800 at default schedule should be 20/hour, got %s", got)
}

func TestNormalizeToHourly_OutOfRangeScheduleUsedAsGiven(t *testing.T) {
	// Range limits belong to the input layer; the normalizer uses
	// whatever positive schedule it is handed.
	got := NormalizeToHourly(decimal.NewFromInt(300), domain.PeriodDaily, decimal.NewFromInt(30), decimal.NewFromInt(5))
	assert.True(t, got.Equal(decimal.NewFromInt(10)), "30-hour day should divide as given, got %s", got)
}
