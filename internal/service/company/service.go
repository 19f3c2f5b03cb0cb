package company

import (
	"context"
	"time"

	"github.com/frd-security/attendance-backend-go/internal/domain/company"
)

type CompanyServiceImpl struct {
	company.CompanyRepository
}

func toCompanyResponse(c company.Company) company.CompanyResponse {
	return company.CompanyResponse{
		ID:             c.ID,
		Name:           c.Name,
		RegistrationNo: c.RegistrationNo,
		Address:        c.Address,
		ContactNo:      c.ContactNo,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      c.UpdatedAt.Format(time.RFC3339),
	}
}

// Register implements company.CompanyService.
func (s *CompanyServiceImpl) Register(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	created, err := s.CompanyRepository.Create(ctx, company.Company{
		Name:           req.Name,
		RegistrationNo: req.RegistrationNo,
		Address:        req.Address,
		ContactNo:      req.ContactNo,
	})
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return toCompanyResponse(created), nil
}

// Get implements company.CompanyService.
func (s *CompanyServiceImpl) Get(ctx context.Context, id string) (company.CompanyResponse, error) {
	found, err := s.CompanyRepository.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return toCompanyResponse(found), nil
}

// List implements company.CompanyService.
func (s *CompanyServiceImpl) List(ctx context.Context, filter company.Filter) (company.ListCompaniesResponse, error) {
	if err := filter.Validate(); err != nil {
		return company.ListCompaniesResponse{}, err
	}

	companies, total, err := s.CompanyRepository.List(ctx, filter)
	if err != nil {
		return company.ListCompaniesResponse{}, err
	}

	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		responses = append(responses, toCompanyResponse(c))
	}

	return company.ListCompaniesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Companies:  responses,
	}, nil
}

// Update implements company.CompanyService.
func (s *CompanyServiceImpl) Update(ctx context.Context, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	existing, err := s.CompanyRepository.GetByID(ctx, req.ID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Address != nil {
		existing.Address = req.Address
	}
	if req.ContactNo != nil {
		existing.ContactNo = req.ContactNo
	}

	if err := s.CompanyRepository.Update(ctx, existing); err != nil {
		return company.CompanyResponse{}, err
	}

	updated, err := s.CompanyRepository.GetByID(ctx, req.ID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return toCompanyResponse(updated), nil
}

// Delete implements company.CompanyService.
func (s *CompanyServiceImpl) Delete(ctx context.Context, id string) error {
	return s.CompanyRepository.Delete(ctx, id)
}

func NewCompanyService(companyRepo company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{
		CompanyRepository: companyRepo,
	}
}
