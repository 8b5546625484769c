package repositories

import (
	"context"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	GetUserByID(ctx context.Context, userID string) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
	GetUserByProviderID(ctx context.Context, provider string, providerUserID string) (domain.User, error)
	GetUserByRefreshTokenHash(ctx context.Context, refreshTokenHash string) (domain.User, error)
	ListUsers(ctx context.Context, includeInactive bool) ([]domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) (domain.User, error)
	UpdatePasswordHash(ctx context.Context, userID string, passwordHash string, updatedBy string) error
	UpdateRefreshToken(ctx context.Context, user domain.User) error
	DeleteUser(ctx context.Context, userID string, deletedBy string) error
	CountActiveAdmins(ctx context.Context) (int, error)
}
