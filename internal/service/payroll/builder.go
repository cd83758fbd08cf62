package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gestia-app/paie-backend-go/internal/domain/payroll"
	"github.com/gestia-app/paie-backend-go/internal/pkg/validator"
)

// roundingTolerance is the largest arithmetic drift (in currency units) the
// builder accepts between net and gross − deductions.
var roundingTolerance = decimal.RequireFromString("0.01")

// BuildPayslip assembles a full payslip from the upstream pieces and is the
// single seam where everything is cross-checked before persistence. The
// result carries status Généré and no id; id and createdAt are stamped by
// the repository on save.
func BuildPayslip(
	emp payroll.EmployeeSnapshot,
	comp payroll.CompanySnapshot,
	month, year int,
	calc payroll.Computation,
	leaves payroll.LeaveSummary,
	cumulative payroll.AnnualCumulative,
) (payroll.Payslip, error) {
	if validator.IsEmpty(emp.EmployeeID) {
		return payroll.Payslip{}, fmt.Errorf("%w: employee id is blank", payroll.ErrIncompleteInput)
	}
	if validator.IsEmpty(comp.CompanyID) {
		return payroll.Payslip{}, fmt.Errorf("%w: company id is blank", payroll.ErrIncompleteInput)
	}
	period := validator.PeriodLabel(month, year)
	if !validator.IsValidPeriod(month, year) || period == "" {
		return payroll.Payslip{}, fmt.Errorf("%w: period %d/%d is not usable", payroll.ErrIncompleteInput, month, year)
	}
	if !calc.GrossSalary.IsPositive() {
		return payroll.Payslip{}, fmt.Errorf("%w: gross salary must be positive", payroll.ErrIncompleteInput)
	}

	// Snapshot identity fields are optional but must be well formed when
	// present; a payslip is a legal document once issued.
	if comp.SIRET != "" && !validator.IsValidSIRET(comp.SIRET) {
		return payroll.Payslip{}, fmt.Errorf("%w: company SIRET is malformed", payroll.ErrInvalidInput)
	}
	if emp.SocialSecurityNumber != "" && !validator.IsValidSocialSecurityNumber(emp.SocialSecurityNumber) {
		return payroll.Payslip{}, fmt.Errorf("%w: employee social security number is malformed", payroll.ErrInvalidInput)
	}
	if emp.StartDate != "" {
		if _, ok := validator.IsValidDate(emp.StartDate); !ok {
			return payroll.Payslip{}, fmt.Errorf("%w: employee start date is malformed", payroll.ErrInvalidInput)
		}
	}

	if err := checkComputation(calc); err != nil {
		return payroll.Payslip{}, err
	}
	if err := checkLeave(leaves); err != nil {
		return payroll.Payslip{}, err
	}

	return payroll.Payslip{
		Employee:         emp,
		Company:          comp,
		EmployeeID:       emp.EmployeeID,
		EmployeeName:     emp.FirstName + " " + emp.LastName,
		Period:           period,
		Month:            month,
		Year:             year,
		GrossSalary:      calc.GrossSalary,
		TotalDeductions:  calc.TotalDeductions,
		NetSalary:        calc.NetSalary,
		TaxableIncome:    calc.TaxableIncome,
		HoursWorked:      calc.HoursWorked,
		Lines:            calc.Lines,
		Leave:            leaves,
		AnnualCumulative: cumulative,
		Status:           payroll.StatusGenerated,
	}, nil
}

// checkComputation re-verifies the calculator's arithmetic invariants: the
// earning lines sum to the gross, the deduction lines sum to the total, and
// net equals gross − deductions within the rounding tolerance.
func checkComputation(calc payroll.Computation) error {
	earnings := decimal.Zero
	deductions := decimal.Zero
	for _, line := range calc.Lines {
		if line.Amount.IsNegative() {
			return fmt.Errorf("%w: line %q has negative amount", payroll.ErrInvalidInput, line.Label)
		}
		switch line.Kind {
		case payroll.LineKindEarning:
			earnings = earnings.Add(line.Amount)
		case payroll.LineKindDeduction:
			deductions = deductions.Add(line.Amount)
		default:
			return fmt.Errorf("%w: line %q has unknown kind %q", payroll.ErrInvalidInput, line.Label, line.Kind)
		}
	}

	if !earnings.Sub(calc.GrossSalary).Abs().LessThanOrEqual(roundingTolerance) {
		return fmt.Errorf("%w: earning lines sum to %s, gross is %s", payroll.ErrInvalidInput, earnings, calc.GrossSalary)
	}
	if !deductions.Sub(calc.TotalDeductions).Abs().LessThanOrEqual(roundingTolerance) {
		return fmt.Errorf("%w: deduction lines sum to %s, total is %s", payroll.ErrInvalidInput, deductions, calc.TotalDeductions)
	}
	residual := calc.GrossSalary.Sub(calc.TotalDeductions).Sub(calc.NetSalary)
	if !residual.Abs().LessThanOrEqual(roundingTolerance) {
		return fmt.Errorf("%w: net %s does not equal gross %s minus deductions %s",
			payroll.ErrInvalidInput, calc.NetSalary, calc.GrossSalary, calc.TotalDeductions)
	}
	return nil
}

func checkLeave(leaves payroll.LeaveSummary) error {
	for _, bal := range []struct {
		name    string
		balance decimal.Decimal
	}{
		{"conges", leaves.Conges.Balance},
		{"rtt", leaves.RTT.Balance},
	} {
		if bal.balance.IsNegative() {
			return fmt.Errorf("%w: %s balance is negative", payroll.ErrInvalidInput, bal.name)
		}
	}
	return nil
}
