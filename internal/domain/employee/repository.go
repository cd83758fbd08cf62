package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) error
	GetByID(ctx context.Context, id string) (Employee, error)

	// LinkPayslip appends payslipID to the employee's payslip list iff it
	// is not already present. Idempotent: a retried link leaves the list
	// unchanged. Fails with ErrEmployeeNotFound when the record is missing,
	// distinct from a store outage.
	LinkPayslip(ctx context.Context, employeeID, payslipID string) error

	// UpdateLeaveBalances writes the rolled-forward balances back onto the
	// employee record.
	UpdateLeaveBalances(ctx context.Context, employeeID string, conges, rtt decimal.Decimal) error

	// AddDocument files an entry into the employee's document archive,
	// at most once per payslip id.
	AddDocument(ctx context.Context, employeeID string, entry DocumentEntry) error
}
