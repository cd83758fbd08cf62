package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCompute_WithOvertime(t *testing.T) {
	got, err := DefaultRates().Compute(CalculationInput{
		BaseSalary:    dec("2500"),
		OvertimeHours: dec("10"),
		OvertimeRate:  dec("25"),
	})
	require.NoError(t, err)

	// 2500 / 151.67 ≈ 16.4832; × 10 h × 1.25 ≈ 206.04
	assert.True(t, got.OvertimeAmount.Equal(dec("206.04")), "overtime = %s", got.OvertimeAmount)
	assert.True(t, got.GrossSalary.Equal(dec("2706.04")), "gross = %s", got.GrossSalary)
	assert.True(t, got.NetSalary.Equal(got.GrossSalary.Sub(got.TotalDeductions)))
	assert.True(t, got.HoursWorked.Equal(dec("161.67")))
}

func TestCompute_NoOvertime(t *testing.T) {
	got, err := DefaultRates().Compute(CalculationInput{BaseSalary: dec("2500")})
	require.NoError(t, err)

	assert.True(t, got.GrossSalary.Equal(dec("2500")), "gross = %s", got.GrossSalary)
	assert.True(t, got.OvertimeAmount.IsZero())
	for _, line := range got.Lines {
		assert.NotEqual(t, "Heures supplémentaires", line.Label)
	}
}

func TestCompute_LineSumsMatchTotals(t *testing.T) {
	got, err := DefaultRates().Compute(CalculationInput{
		BaseSalary:    dec("3123.45"),
		OvertimeHours: dec("7.5"),
		OvertimeRate:  dec("50"),
	})
	require.NoError(t, err)

	earnings := decimal.Zero
	deductions := decimal.Zero
	for _, line := range got.Lines {
		assert.False(t, line.Amount.IsNegative(), "line %q", line.Label)
		switch line.Kind {
		case LineKindEarning:
			earnings = earnings.Add(line.Amount)
		case LineKindDeduction:
			deductions = deductions.Add(line.Amount)
		}
	}
	assert.True(t, earnings.Equal(got.GrossSalary), "earnings %s, gross %s", earnings, got.GrossSalary)
	assert.True(t, deductions.Equal(got.TotalDeductions), "deductions %s, total %s", deductions, got.TotalDeductions)
	assert.True(t, got.NetSalary.Equal(got.GrossSalary.Sub(got.TotalDeductions)))
}

func TestCompute_DeductionOrderIsFixed(t *testing.T) {
	got, err := DefaultRates().Compute(CalculationInput{BaseSalary: dec("2000")})
	require.NoError(t, err)

	var labels []string
	for _, line := range got.Lines {
		if line.Kind == LineKindDeduction {
			labels = append(labels, line.Label)
		}
	}
	assert.Equal(t, []string{"Assurance maladie", "Retraite complémentaire", "Assurance chômage"}, labels)
}

func TestCompute_RateOverrides(t *testing.T) {
	rates := DefaultRates()
	rates.HealthInsuranceRate = dec("0.10")
	rates.PensionRate = decimal.Zero
	rates.UnemploymentRate = decimal.Zero

	got, err := rates.Compute(CalculationInput{BaseSalary: dec("2000")})
	require.NoError(t, err)

	assert.True(t, got.TotalDeductions.Equal(dec("200")), "deductions = %s", got.TotalDeductions)
	assert.True(t, got.NetSalary.Equal(dec("1800")), "net = %s", got.NetSalary)
}

func TestCompute_InvalidInput(t *testing.T) {
	cases := []struct {
		name string
		in   CalculationInput
	}{
		{"zero base salary", CalculationInput{BaseSalary: decimal.Zero}},
		{"negative base salary", CalculationInput{BaseSalary: dec("-100")}},
		{"negative overtime hours", CalculationInput{BaseSalary: dec("2000"), OvertimeHours: dec("-1")}},
		{"negative overtime rate", CalculationInput{BaseSalary: dec("2000"), OvertimeRate: dec("-25")}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DefaultRates().Compute(c.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
