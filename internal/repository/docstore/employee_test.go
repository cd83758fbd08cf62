package docstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestia-app/paie-backend-go/internal/domain/employee"
	store "github.com/gestia-app/paie-backend-go/internal/pkg/docstore"
)

func testEmployee(id string) employee.Employee {
	return employee.Employee{
		ID:            id,
		FirstName:     "Claire",
		LastName:      "Dubois",
		Role:          "Comptable",
		CongesBalance: dec("5"),
		RTTBalance:    dec("2"),
	}
}

func TestEmployeeRepository_CreateGet(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(store.NewMemoryStore())

	require.NoError(t, repo.Create(ctx, testEmployee("e1")))

	got, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Claire Dubois", got.FullName())
	assert.NotNil(t, got.Payslips)
	assert.Empty(t, got.Payslips)
}

func TestEmployeeRepository_GetMissing(t *testing.T) {
	_, err := NewEmployeeRepository(store.NewMemoryStore()).GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_LinkPayslipIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(store.NewMemoryStore())
	require.NoError(t, repo.Create(ctx, testEmployee("e1")))

	require.NoError(t, repo.LinkPayslip(ctx, "e1", "p1"))
	require.NoError(t, repo.LinkPayslip(ctx, "e1", "p1"))
	require.NoError(t, repo.LinkPayslip(ctx, "e1", "p2"))

	got, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, got.Payslips)
}

func TestEmployeeRepository_LinkPayslipMissingEmployee(t *testing.T) {
	err := NewEmployeeRepository(store.NewMemoryStore()).LinkPayslip(context.Background(), "nope", "p1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_UpdateLeaveBalances(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(store.NewMemoryStore())
	require.NoError(t, repo.Create(ctx, testEmployee("e1")))

	require.NoError(t, repo.UpdateLeaveBalances(ctx, "e1", dec("6.5"), dec("3")))

	got, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.True(t, got.CongesBalance.Equal(dec("6.5")), "conges = %s", got.CongesBalance)
	assert.True(t, got.RTTBalance.Equal(dec("3")), "rtt = %s", got.RTTBalance)
}

func TestEmployeeRepository_AddDocumentDedupesByPayslip(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(store.NewMemoryStore())
	require.NoError(t, repo.Create(ctx, testEmployee("e1")))

	entry := employee.DocumentEntry{
		Name:      "Bulletin Juin 2025",
		Kind:      employee.DocumentKindPayslip,
		PayslipID: "p1",
		AddedAt:   time.Now().UTC(),
	}
	require.NoError(t, repo.AddDocument(ctx, "e1", entry))
	require.NoError(t, repo.AddDocument(ctx, "e1", entry))

	got, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, got.Documents, 1)
	assert.Equal(t, "Bulletin Juin 2025", got.Documents[0].Name)
}
