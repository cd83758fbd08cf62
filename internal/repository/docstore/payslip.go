package docstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/gestia-app/paie-backend-go/internal/domain/payroll"
	store "github.com/gestia-app/paie-backend-go/internal/pkg/docstore"
)

const payslipCollection = "payslips"

type payslipRepository struct {
	store store.Store
}

func NewPayslipRepository(s store.Store) payroll.PayslipRepository {
	return &payslipRepository{store: s}
}

func (r *payslipRepository) Save(ctx context.Context, slip payroll.Payslip) (payroll.Payslip, error) {
	if slip.IdempotencyKey != "" {
		existing, err := r.FindByIdempotencyKey(ctx, slip.IdempotencyKey)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, payroll.ErrPayslipNotFound) {
			return payroll.Payslip{}, err
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to generate payslip id: %w", err)
	}
	slip.ID = id.String()
	slip.CreatedAt = time.Now().UTC()
	slip.UpdatedAt = slip.CreatedAt

	if err := r.store.Set(ctx, payslipCollection, slip.ID, slip); err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to save payslip: %w", err)
	}
	return slip, nil
}

func (r *payslipRepository) FindByIdempotencyKey(ctx context.Context, key string) (payroll.Payslip, error) {
	docs, err := r.store.Query(ctx, payslipCollection, store.Filter{Field: "idempotencyKey", Value: key})
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to query payslips by idempotency key: %w", err)
	}
	if len(docs) == 0 {
		return payroll.Payslip{}, payroll.ErrPayslipNotFound
	}
	var slip payroll.Payslip
	if err := docs[0].Decode(&slip); err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to decode payslip: %w", err)
	}
	return slip, nil
}

func (r *payslipRepository) FindByID(ctx context.Context, id string) (payroll.Payslip, error) {
	doc, err := r.store.Get(ctx, payslipCollection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	var slip payroll.Payslip
	if err := doc.Decode(&slip); err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to decode payslip: %w", err)
	}
	return slip, nil
}

func (r *payslipRepository) FindByEmployee(ctx context.Context, employeeID string) ([]payroll.Payslip, error) {
	return r.query(ctx, store.Filter{Field: "employeeId", Value: employeeID})
}

func (r *payslipRepository) FindByEmployeePeriod(ctx context.Context, employeeID string, month, year int) ([]payroll.Payslip, error) {
	return r.query(ctx,
		store.Filter{Field: "employeeId", Value: employeeID},
		store.Filter{Field: "month", Value: month},
		store.Filter{Field: "year", Value: year},
	)
}

func (r *payslipRepository) FindByPeriod(ctx context.Context, month, year int) ([]payroll.Payslip, error) {
	return r.query(ctx,
		store.Filter{Field: "month", Value: month},
		store.Filter{Field: "year", Value: year},
	)
}

func (r *payslipRepository) query(ctx context.Context, filters ...store.Filter) ([]payroll.Payslip, error) {
	docs, err := r.store.Query(ctx, payslipCollection, filters...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payslips: %w", err)
	}

	slips := make([]payroll.Payslip, 0, len(docs))
	for _, doc := range docs {
		var slip payroll.Payslip
		if err := doc.Decode(&slip); err != nil {
			return nil, fmt.Errorf("failed to decode payslip %s: %w", doc.ID, err)
		}
		slips = append(slips, slip)
	}

	// Most recent period first.
	sort.Slice(slips, func(i, j int) bool {
		if slips[i].Year != slips[j].Year {
			return slips[i].Year > slips[j].Year
		}
		if slips[i].Month != slips[j].Month {
			return slips[i].Month > slips[j].Month
		}
		return slips[i].CreatedAt.After(slips[j].CreatedAt)
	})
	return slips, nil
}

func (r *payslipRepository) UpdateStatus(ctx context.Context, id string, status payroll.PayslipStatus) (payroll.Payslip, error) {
	slip, err := r.FindByID(ctx, id)
	if err != nil {
		return payroll.Payslip{}, err
	}

	if err := payroll.CheckTransition(slip.Status, status); err != nil {
		return payroll.Payslip{}, err
	}
	if slip.Status == status {
		// Idempotent no-op.
		return slip, nil
	}

	now := time.Now().UTC()
	partial := map[string]interface{}{
		"status":    status,
		"updatedAt": now,
	}
	if status == payroll.StatusValidated && slip.PaymentDate == nil {
		partial["paymentDate"] = now
		slip.PaymentDate = &now
	}

	if err := r.store.Update(ctx, payslipCollection, id, partial); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to update payslip status: %w", err)
	}

	slip.Status = status
	slip.UpdatedAt = now
	return slip, nil
}
