package dto

import (
	"time"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
)

// CreateUserRequest is the payload to register a new user (admin only).
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=ADMIN EMPLOYEE"`
}

// UpdateUserRequest carries partial updates; nil fields are left untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Role     *string `json:"role,omitempty" binding:"omitempty,oneof=ADMIN EMPLOYEE"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// ResetPasswordRequest carries the replacement password for a user.
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required"`
}

// ChangePasswordRequest lets a user rotate their own password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse maps a domain user to its public view.
func ToUserResponse(u domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// ToUserResponses maps a slice of domain users.
func ToUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}

// SeedDefaultsResponse reports what the idempotent seed actually created.
type SeedDefaultsResponse struct {
	UsersCreated          []string `json:"usersCreated"`
	InsuranceTypesCreated []string `json:"insuranceTypesCreated"`
}
