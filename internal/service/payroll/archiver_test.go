package payroll

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestia-app/paie-backend-go/internal/domain/employee"
	"github.com/gestia-app/paie-backend-go/internal/domain/payroll"
	repo "github.com/gestia-app/paie-backend-go/internal/repository/docstore"
)

type stubRenderer struct {
	calls int
	err   error
}

func (r *stubRenderer) Render(_ context.Context, slip payroll.Payslip) ([]byte, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return []byte("PDF " + slip.Period), nil
}

type stubStorage struct {
	stored map[string][]byte
}

func (s *stubStorage) Put(_ context.Context, name string, data []byte) (string, error) {
	if s.stored == nil {
		s.stored = make(map[string][]byte)
	}
	s.stored[name] = data
	return "payslips/" + name, nil
}

func newArchiveFixture(t *testing.T, renderer payroll.Renderer, storage payroll.ArtifactStorage) (fixture, payroll.Payslip) {
	t.Helper()
	f := newFixture(t, Config{})

	payslipRepo := repo.NewPayslipRepository(f.store)
	companyRepo := repo.NewCompanyRepository(f.store)
	f.service = NewPayrollService(Config{}, payslipRepo, f.employeeRepo, companyRepo, renderer, storage)

	slip, err := f.service.GeneratePayslip(context.Background(), generateRequest())
	require.NoError(t, err)
	return f, slip
}

func TestArchivePayslip(t *testing.T) {
	ctx := context.Background()
	renderer := &stubRenderer{}
	storage := &stubStorage{}
	f, slip := newArchiveFixture(t, renderer, storage)

	require.NoError(t, f.service.ArchivePayslip(ctx, slip.ID))

	assert.Equal(t, []byte("PDF Juin 2025"), storage.stored[slip.ID+".pdf"])

	emp, err := f.employeeRepo.GetByID(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, emp.Documents, 1)
	doc := emp.Documents[0]
	assert.Equal(t, "Bulletin de paie Juin 2025", doc.Name)
	assert.Equal(t, employee.DocumentKindPayslip, doc.Kind)
	assert.Equal(t, slip.ID, doc.PayslipID)
	assert.Equal(t, "payslips/"+slip.ID+".pdf", doc.StorageRef)
}

func TestArchivePayslip_Idempotent(t *testing.T) {
	ctx := context.Background()
	f, slip := newArchiveFixture(t, &stubRenderer{}, &stubStorage{})

	require.NoError(t, f.service.ArchivePayslip(ctx, slip.ID))
	require.NoError(t, f.service.ArchivePayslip(ctx, slip.ID))

	emp, err := f.employeeRepo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Len(t, emp.Documents, 1)
}

func TestArchivePayslip_RendererNotConfigured(t *testing.T) {
	f := newFixture(t, Config{})
	err := f.service.ArchivePayslip(context.Background(), "any")
	assert.ErrorIs(t, err, payroll.ErrRendererNotConfigured)
}

func TestArchivePayslip_RenderFailure(t *testing.T) {
	ctx := context.Background()
	renderer := &stubRenderer{err: fmt.Errorf("layout engine crashed")}
	f, slip := newArchiveFixture(t, renderer, &stubStorage{})

	err := f.service.ArchivePayslip(ctx, slip.ID)
	assert.ErrorContains(t, err, "layout engine crashed")
}

func TestArchivePayslip_MissingPayslip(t *testing.T) {
	f, _ := newArchiveFixture(t, &stubRenderer{}, &stubStorage{})
	err := f.service.ArchivePayslip(context.Background(), "0198a000-0000-7000-8000-000000000000")
	assert.True(t, errors.Is(err, payroll.ErrPayslipNotFound))
}
