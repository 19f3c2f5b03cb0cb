package user

import (
	"context"
)

// UserService defines business logic for internal user management
type UserService interface {
	Register(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Get(ctx context.Context, id string) (UserResponse, error)
	List(ctx context.Context, filter Filter) (ListUsersResponse, error)
	UpdateRole(ctx context.Context, req UpdateUserRoleRequest) (UserResponse, error)
	Delete(ctx context.Context, id string) error
}
