package payroll

import "context"

// PayslipRepository defines persistence for payslips. Save assigns the id;
// everything else never mutates a stored payslip except its status and
// payment timestamp.
type PayslipRepository interface {
	// Save assigns a fresh id and createdAt stamp and stores the payslip.
	// When the payslip carries an idempotency key already stored, the
	// existing payslip is returned unchanged instead of a duplicate.
	Save(ctx context.Context, slip Payslip) (Payslip, error)

	FindByID(ctx context.Context, id string) (Payslip, error)

	// FindByEmployee returns the employee's payslips ordered most recent
	// period first. No payslips is an empty slice, not an error.
	FindByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)

	// FindByEmployeePeriod is the pre-save existence hook for callers that
	// want at most one payslip per employee per period.
	FindByEmployeePeriod(ctx context.Context, employeeID string, month, year int) ([]Payslip, error)

	FindByPeriod(ctx context.Context, month, year int) ([]Payslip, error)

	// FindByIdempotencyKey returns the payslip previously saved with the
	// given caller-supplied key, or ErrPayslipNotFound.
	FindByIdempotencyKey(ctx context.Context, key string) (Payslip, error)

	// UpdateStatus advances the lifecycle state, enforcing the forward-only
	// machine, and stamps the payment date when the slip reaches Validé.
	UpdateStatus(ctx context.Context, id string, status PayslipStatus) (Payslip, error)
}
