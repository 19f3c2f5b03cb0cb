package staff

import (
	"context"
)

// StaffService defines business logic for the security staff registry
type StaffService interface {
	Register(ctx context.Context, req CreateStaffRequest) (StaffResponse, error)
	Get(ctx context.Context, empID string) (StaffResponse, error)
	ListBySupervisor(ctx context.Context, supervisorNo string) ([]StaffResponse, error)
	List(ctx context.Context, filter Filter) (ListStaffResponse, error)
	Update(ctx context.Context, req UpdateStaffRequest) (StaffResponse, error)
	Delete(ctx context.Context, empID string) error
}
