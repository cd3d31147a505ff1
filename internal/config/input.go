package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/wagewise/wagewise/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser loads evaluation forms from YAML files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a Form from a YAML file and validates the resulting
// input. Lenient string parsing still applies; validation only rejects
// structurally nonsensical files.
func (ip *InputParser) LoadFromFile(filename string) (domain.Input, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.Input{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var form Form
	if err := yaml.Unmarshal(data, &form); err != nil {
		return domain.Input{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	in := form.Input()
	if err := ip.Validate(in); err != nil {
		return domain.Input{}, fmt.Errorf("input validation failed: %w", err)
	}
	return in, nil
}

// Validate enforces the range limits the surrounding input surface is
// responsible for. The engine itself accepts anything.
func (ip *InputParser) Validate(in domain.Input) error {
	if in.Wage.Amount.IsNegative() {
		return fmt.Errorf("wage amount cannot be negative")
	}
	if in.Wage.TaxRatePercent.IsNegative() || in.Wage.TaxRatePercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("tax rate must be between 0 and 100")
	}
	if !in.Wage.HoursPerDay.IsZero() && in.Wage.HoursPerDay.GreaterThan(decimal.NewFromInt(24)) {
		return fmt.Errorf("hours per day must be between 1 and 24")
	}
	if !in.Wage.DaysPerWeek.IsZero() && in.Wage.DaysPerWeek.GreaterThan(decimal.NewFromInt(7)) {
		return fmt.Errorf("days per week must be between 1 and 7")
	}
	if in.Loan.HasLoan && in.Loan.Principal.GreaterThan(decimal.Zero) && in.Loan.Duration.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("loan duration must be positive when the purchase is financed")
	}
	return nil
}
