package company

import (
	"context"
)

type CompanyRepository interface {
	Create(ctx context.Context, newCompany Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	List(ctx context.Context, filter Filter) ([]Company, int64, error)
	Update(ctx context.Context, c Company) error
	Delete(ctx context.Context, id string) error
}
