package services

import (
	"context"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
	"github.com/velorent/insurance_sales_app/internal/dto"
)

// UserReader exposes read operations on users.
type UserReader interface {
	GetUserByID(ctx context.Context, actor domain.Actor, userID string) (domain.User, error)
	ListUsers(ctx context.Context, actor domain.Actor, includeInactive bool) ([]domain.User, error)
}

// UserWriter exposes mutating operations on users.
type UserWriter interface {
	CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (domain.User, error)
	UpdateUser(ctx context.Context, actor domain.Actor, userID string, req dto.UpdateUserRequest) (domain.User, error)
	ResetPassword(ctx context.Context, actor domain.Actor, userID string, newPassword string) error
	ChangePassword(ctx context.Context, actor domain.Actor, currentPassword, newPassword string) error
}

// UserLifecycle exposes deletion and bootstrap operations.
type UserLifecycle interface {
	DeleteUser(ctx context.Context, actor domain.Actor, userID string) error
	SeedDefaults(ctx context.Context, actor domain.Actor) (dto.SeedDefaultsResponse, error)
}

// UserSvcFacade is the full user service surface handlers depend on.
type UserSvcFacade interface {
	UserReader
	UserWriter
	UserLifecycle
}
