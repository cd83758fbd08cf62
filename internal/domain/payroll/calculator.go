package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rates is the immutable contribution-rate configuration the calculator
// runs with. Rates are illustrative, not statutory.
type Rates struct {
	// BaseMonthlyHours is the legal monthly-hours divisor (151.67 h for a
	// 35-hour week).
	BaseMonthlyHours    decimal.Decimal
	HealthInsuranceRate decimal.Decimal
	PensionRate         decimal.Decimal
	UnemploymentRate    decimal.Decimal
	// OvertimeDefaultRate is the overtime premium in percent applied when
	// the caller does not supply one.
	OvertimeDefaultRate decimal.Decimal
}

func DefaultRates() Rates {
	return Rates{
		BaseMonthlyHours:    decimal.RequireFromString("151.67"),
		HealthInsuranceRate: decimal.RequireFromString("0.073"),
		PensionRate:         decimal.RequireFromString("0.0315"),
		UnemploymentRate:    decimal.RequireFromString("0.024"),
		OvertimeDefaultRate: decimal.RequireFromString("25"),
	}
}

type deductionCategory struct {
	Label string
	Rate  decimal.Decimal
	// NonDeductible contributions are added back into taxable income.
	NonDeductible bool
}

// deductionCategories fixes the order deduction lines appear in on every
// payslip.
func (r Rates) deductionCategories() []deductionCategory {
	return []deductionCategory{
		{Label: "Assurance maladie", Rate: r.HealthInsuranceRate, NonDeductible: true},
		{Label: "Retraite complémentaire", Rate: r.PensionRate},
		{Label: "Assurance chômage", Rate: r.UnemploymentRate},
	}
}

type CalculationInput struct {
	BaseSalary    decimal.Decimal
	OvertimeHours decimal.Decimal
	// OvertimeRate is the premium in percent (25 means time-and-a-quarter).
	OvertimeRate decimal.Decimal
}

// Computation is the full salary breakdown for one period. Lines holds the
// earning lines followed by the deduction lines in category order.
type Computation struct {
	BaseSalary      decimal.Decimal
	HourlyRate      decimal.Decimal
	OvertimeHours   decimal.Decimal
	OvertimeRate    decimal.Decimal
	OvertimeAmount  decimal.Decimal
	GrossSalary     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
	// TaxableIncome is the net imposable approximation: net salary with
	// the non-deductible health contribution added back.
	TaxableIncome decimal.Decimal
	HoursWorked   decimal.Decimal
	Lines         []PayslipLine
}

var oneHundred = decimal.NewFromInt(100)

// Compute derives the gross/deduction/net breakdown from a base salary and
// overtime parameters. Pure: no side effects, safe to call concurrently.
func (r Rates) Compute(in CalculationInput) (Computation, error) {
	if !in.BaseSalary.IsPositive() {
		return Computation{}, fmt.Errorf("%w: base salary must be positive", ErrInvalidInput)
	}
	if in.OvertimeHours.IsNegative() {
		return Computation{}, fmt.Errorf("%w: overtime hours must be non-negative", ErrInvalidInput)
	}
	if in.OvertimeRate.IsNegative() {
		return Computation{}, fmt.Errorf("%w: overtime rate must be non-negative", ErrInvalidInput)
	}

	baseSalary := in.BaseSalary.Round(2)
	hourlyRate := in.BaseSalary.Div(r.BaseMonthlyHours)

	// overtimeAmount = hours × hourlyRate × (1 + rate/100)
	premium := decimal.NewFromInt(1).Add(in.OvertimeRate.Div(oneHundred))
	overtimeAmount := in.OvertimeHours.Mul(hourlyRate).Mul(premium).Round(2)

	grossSalary := baseSalary.Add(overtimeAmount)

	lines := []PayslipLine{{
		Label:  "Salaire de base",
		Base:   r.BaseMonthlyHours.StringFixed(2) + " h",
		Amount: baseSalary,
		Kind:   LineKindEarning,
	}}
	if in.OvertimeHours.IsPositive() {
		lines = append(lines, PayslipLine{
			Label:  "Heures supplémentaires",
			Base:   in.OvertimeHours.StringFixed(2) + " h",
			Rate:   "+" + in.OvertimeRate.StringFixed(2) + " %",
			Amount: overtimeAmount,
			Kind:   LineKindEarning,
		})
	}

	totalDeductions := decimal.Zero
	addBack := decimal.Zero
	for _, category := range r.deductionCategories() {
		amount := grossSalary.Mul(category.Rate).Round(2)
		totalDeductions = totalDeductions.Add(amount)
		if category.NonDeductible {
			addBack = addBack.Add(amount)
		}
		lines = append(lines, PayslipLine{
			Label:  category.Label,
			Base:   grossSalary.StringFixed(2),
			Rate:   category.Rate.Mul(oneHundred).StringFixed(2) + " %",
			Amount: amount,
			Kind:   LineKindDeduction,
		})
	}

	return Computation{
		BaseSalary:      baseSalary,
		HourlyRate:      hourlyRate,
		OvertimeHours:   in.OvertimeHours,
		OvertimeRate:    in.OvertimeRate,
		OvertimeAmount:  overtimeAmount,
		GrossSalary:     grossSalary,
		TotalDeductions: totalDeductions,
		NetSalary:       grossSalary.Sub(totalDeductions),
		TaxableIncome:   grossSalary.Sub(totalDeductions).Add(addBack),
		HoursWorked:     r.BaseMonthlyHours.Add(in.OvertimeHours),
		Lines:           lines,
	}, nil
}
