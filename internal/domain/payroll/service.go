package payroll

import "context"

// PayrollService is the generation and lifecycle surface the transport
// layer calls.
type PayrollService interface {
	GeneratePayslip(ctx context.Context, req GeneratePayslipRequest) (Payslip, error)
	GetPayslip(ctx context.Context, id string) (Payslip, error)
	ListEmployeePayslips(ctx context.Context, employeeID string) ([]Payslip, error)
	UpdateStatus(ctx context.Context, id string, req UpdatePayslipStatusRequest) (Payslip, error)
	PeriodSummary(ctx context.Context, month, year int) (PeriodSummaryResponse, error)

	// ArchivePayslip renders the payslip through the configured Renderer
	// and files the artifact into the employee's document archive. The
	// linkage is idempotent: archiving twice leaves one entry.
	ArchivePayslip(ctx context.Context, id string) error
}

// Renderer turns a finalized payslip into a document artifact (PDF bytes).
// Layout is an external concern; the payslip carries everything a renderer
// needs without further lookups.
type Renderer interface {
	Render(ctx context.Context, slip Payslip) ([]byte, error)
}

// ArtifactStorage stores a rendered artifact and returns an opaque storage
// reference for the employee's document entry.
type ArtifactStorage interface {
	Put(ctx context.Context, name string, data []byte) (ref string, err error)
}
