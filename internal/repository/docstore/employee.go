package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestia-app/paie-backend-go/internal/domain/employee"
	store "github.com/gestia-app/paie-backend-go/internal/pkg/docstore"
)

const employeeCollection = "employees"

type employeeRepository struct {
	store store.Store
}

func NewEmployeeRepository(s store.Store) employee.EmployeeRepository {
	return &employeeRepository{store: s}
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) error {
	if emp.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate employee id: %w", err)
		}
		emp.ID = id.String()
	}
	if emp.Payslips == nil {
		emp.Payslips = []string{}
	}
	if err := r.store.Set(ctx, employeeCollection, emp.ID, emp); err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	doc, err := r.store.Get(ctx, employeeCollection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	var emp employee.Employee
	if err := doc.Decode(&emp); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to decode employee: %w", err)
	}
	return emp, nil
}

func (r *employeeRepository) LinkPayslip(ctx context.Context, employeeID, payslipID string) error {
	err := r.store.ArrayUnion(ctx, employeeCollection, employeeID, "payslips", payslipID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to link payslip to employee: %w", err)
	}
	return nil
}

func (r *employeeRepository) UpdateLeaveBalances(ctx context.Context, employeeID string, conges, rtt decimal.Decimal) error {
	err := r.store.Update(ctx, employeeCollection, employeeID, map[string]interface{}{
		"congesBalance": conges,
		"rttBalance":    rtt,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update leave balances: %w", err)
	}
	return nil
}

func (r *employeeRepository) AddDocument(ctx context.Context, employeeID string, entry employee.DocumentEntry) error {
	emp, err := r.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}

	if entry.PayslipID != "" {
		for _, doc := range emp.Documents {
			if doc.PayslipID == entry.PayslipID {
				// Already archived.
				return nil
			}
		}
	}

	docs := append(emp.Documents, entry)
	err = r.store.Update(ctx, employeeCollection, employeeID, map[string]interface{}{
		"documents": docs,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to add document to employee: %w", err)
	}
	return nil
}
