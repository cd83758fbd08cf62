package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/gestia-app/paie-backend-go/internal/pkg/validator"
)

type GeneratePayslipRequest struct {
	EmployeeID    string          `json:"employee_id"`
	CompanyID     string          `json:"company_id"`
	PeriodMonth   int             `json:"period_month"`
	PeriodYear    int             `json:"period_year"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	// OvertimeRate is the premium in percent; nil means the configured
	// default (25).
	OvertimeRate *decimal.Decimal `json:"overtime_rate,omitempty"`

	// Leave days consumed this period.
	CongesTaken decimal.Decimal `json:"conges_taken"`
	RTTTaken    decimal.Decimal `json:"rtt_taken"`

	// IdempotencyKey makes a retried generation return the already stored
	// payslip instead of creating a second one.
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

func (r *GeneratePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{Field: "company_id", Message: "is required"})
	}
	if !validator.IsValidPeriod(r.PeriodMonth, r.PeriodYear) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "month must be 1-12 and year 2000 or later"})
	}
	if !r.BaseSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be positive"})
	}
	if r.OvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}
	if r.OvertimeRate != nil && r.OvertimeRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_rate", Message: "must be non-negative"})
	}
	if r.CongesTaken.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "conges_taken", Message: "must be non-negative"})
	}
	if r.RTTTaken.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rtt_taken", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePayslipStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdatePayslipStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is required"})
	} else if !PayslipStatus(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of Généré, Envoyé, Validé"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodSummaryResponse struct {
	Period          string          `json:"period"`
	PayslipCount    int             `json:"payslip_count"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNet        decimal.Decimal `json:"total_net"`
}
