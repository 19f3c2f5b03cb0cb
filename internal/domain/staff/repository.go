package staff

import (
	"context"
)

type StaffRepository interface {
	Create(ctx context.Context, newStaff Staff) (Staff, error)
	GetByEmpID(ctx context.Context, empID string) (Staff, error)
	ListBySupervisor(ctx context.Context, supervisorNo string) ([]Staff, error)
	List(ctx context.Context, filter Filter) ([]Staff, int64, error)
	Update(ctx context.Context, s Staff) error
	Delete(ctx context.Context, empID string) error
}
