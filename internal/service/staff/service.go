package staff

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/frd-security/attendance-backend-go/internal/domain/company"
	"github.com/frd-security/attendance-backend-go/internal/domain/staff"
)

type StaffServiceImpl struct {
	staff.StaffRepository
	company.CompanyRepository
}

func toStaffResponse(s staff.Staff) staff.StaffResponse {
	return staff.StaffResponse{
		EmpID:        s.EmpID,
		Name:         s.Name,
		SupervisorNo: s.SupervisorNo,
		CompanyID:    s.CompanyID,
		ContactNo:    s.ContactNo,
		CreatedAt:    s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    s.UpdatedAt.Format(time.RFC3339),
	}
}

// Register implements staff.StaffService.
func (s *StaffServiceImpl) Register(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	// The company must exist before officers can be registered under it.
	if _, err := s.CompanyRepository.GetByID(ctx, req.CompanyID); err != nil {
		return staff.StaffResponse{}, err
	}

	if _, err := s.StaffRepository.GetByEmpID(ctx, req.EmpID); err == nil {
		return staff.StaffResponse{}, staff.ErrEmpIDExists
	} else if !errors.Is(err, staff.ErrStaffNotFound) {
		return staff.StaffResponse{}, fmt.Errorf("failed to check emp ID: %w", err)
	}

	created, err := s.StaffRepository.Create(ctx, staff.Staff{
		EmpID:        req.EmpID,
		Name:         req.Name,
		SupervisorNo: req.SupervisorNo,
		CompanyID:    req.CompanyID,
		ContactNo:    req.ContactNo,
	})
	if err != nil {
		return staff.StaffResponse{}, err
	}

	return toStaffResponse(created), nil
}

// Get implements staff.StaffService.
func (s *StaffServiceImpl) Get(ctx context.Context, empID string) (staff.StaffResponse, error) {
	found, err := s.StaffRepository.GetByEmpID(ctx, empID)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	return toStaffResponse(found), nil
}

// ListBySupervisor implements staff.StaffService.
func (s *StaffServiceImpl) ListBySupervisor(ctx context.Context, supervisorNo string) ([]staff.StaffResponse, error) {
	officers, err := s.StaffRepository.ListBySupervisor(ctx, supervisorNo)
	if err != nil {
		return nil, err
	}

	responses := make([]staff.StaffResponse, 0, len(officers))
	for _, officer := range officers {
		responses = append(responses, toStaffResponse(officer))
	}

	return responses, nil
}

// List implements staff.StaffService.
func (s *StaffServiceImpl) List(ctx context.Context, filter staff.Filter) (staff.ListStaffResponse, error) {
	if err := filter.Validate(); err != nil {
		return staff.ListStaffResponse{}, err
	}

	officers, total, err := s.StaffRepository.List(ctx, filter)
	if err != nil {
		return staff.ListStaffResponse{}, err
	}

	responses := make([]staff.StaffResponse, 0, len(officers))
	for _, officer := range officers {
		responses = append(responses, toStaffResponse(officer))
	}

	return staff.ListStaffResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Staff:      responses,
	}, nil
}

// Update implements staff.StaffService.
func (s *StaffServiceImpl) Update(ctx context.Context, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	existing, err := s.StaffRepository.GetByEmpID(ctx, req.EmpID)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.SupervisorNo != nil {
		existing.SupervisorNo = *req.SupervisorNo
	}
	if req.ContactNo != nil {
		existing.ContactNo = req.ContactNo
	}

	if err := s.StaffRepository.Update(ctx, existing); err != nil {
		return staff.StaffResponse{}, err
	}

	updated, err := s.StaffRepository.GetByEmpID(ctx, req.EmpID)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	return toStaffResponse(updated), nil
}

// Delete implements staff.StaffService.
func (s *StaffServiceImpl) Delete(ctx context.Context, empID string) error {
	return s.StaffRepository.Delete(ctx, empID)
}

func NewStaffService(staffRepo staff.StaffRepository, companyRepo company.CompanyRepository) staff.StaffService {
	return &StaffServiceImpl{
		StaffRepository:   staffRepo,
		CompanyRepository: companyRepo,
	}
}
