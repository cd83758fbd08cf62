package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/gestia-app/paie-backend-go/internal/domain/employee"
	"github.com/gestia-app/paie-backend-go/internal/domain/payroll"
)

// ArchivePayslip renders the finalized payslip through the configured
// renderer, stores the artifact, and files a document entry on the
// employee record. Archiving the same payslip twice leaves one entry.
func (s *PayrollServiceImpl) ArchivePayslip(ctx context.Context, id string) error {
	if s.renderer == nil || s.artifacts == nil {
		return payroll.ErrRendererNotConfigured
	}

	slip, err := s.payslipRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	artifact, err := s.renderer.Render(ctx, slip)
	if err != nil {
		return fmt.Errorf("failed to render payslip %s: %w", id, err)
	}

	name := fmt.Sprintf("Bulletin de paie %s", slip.Period)
	ref, err := s.artifacts.Put(ctx, slip.ID+".pdf", artifact)
	if err != nil {
		return fmt.Errorf("failed to store payslip artifact %s: %w", id, err)
	}

	return s.employeeRepo.AddDocument(ctx, slip.EmployeeID, employee.DocumentEntry{
		Name:       name,
		Kind:       employee.DocumentKindPayslip,
		PayslipID:  slip.ID,
		StorageRef: ref,
		AddedAt:    time.Now().UTC(),
	})
}
