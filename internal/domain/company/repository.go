package company

import "context"

type CompanyRepository interface {
	Create(ctx context.Context, comp Company) error
	GetByID(ctx context.Context, id string) (Company, error)
}
