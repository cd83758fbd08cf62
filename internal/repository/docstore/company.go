package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gestia-app/paie-backend-go/internal/domain/company"
	store "github.com/gestia-app/paie-backend-go/internal/pkg/docstore"
)

const companyCollection = "companies"

type companyRepository struct {
	store store.Store
}

func NewCompanyRepository(s store.Store) company.CompanyRepository {
	return &companyRepository{store: s}
}

func (r *companyRepository) Create(ctx context.Context, comp company.Company) error {
	if comp.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate company id: %w", err)
		}
		comp.ID = id.String()
	}
	if err := r.store.Set(ctx, companyCollection, comp.ID, comp); err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (company.Company, error) {
	doc, err := r.store.Get(ctx, companyCollection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}

	var comp company.Company
	if err := doc.Decode(&comp); err != nil {
		return company.Company{}, fmt.Errorf("failed to decode company: %w", err)
	}
	return comp, nil
}
