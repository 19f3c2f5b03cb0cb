package company

import (
	"context"
)

// CompanyService defines business logic for the security company registry
type CompanyService interface {
	Register(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	Get(ctx context.Context, id string) (CompanyResponse, error)
	List(ctx context.Context, filter Filter) (ListCompaniesResponse, error)
	Update(ctx context.Context, req UpdateCompanyRequest) (CompanyResponse, error)
	Delete(ctx context.Context, id string) error
}
