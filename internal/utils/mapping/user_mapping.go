package mapping

import (
	"database/sql"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
	"github.com/velorent/insurance_sales_app/internal/models"
)

// ToModelUser converts a domain User to its database model.
func ToModelUser(u domain.User) models.User {
	m := models.User{
		UserID:        u.UserID,
		Username:      u.Username,
		Name:          u.Name,
		Role:          string(u.Role),
		IsActive:      u.IsActive,
		CreatedAt:     u.CreatedAt,
		CreatedBy:     u.CreatedBy,
		LastUpdatedAt: u.LastUpdatedAt,
		LastUpdatedBy: u.LastUpdatedBy,
	}
	if u.PasswordHash != "" {
		m.PasswordHash = sql.NullString{String: u.PasswordHash, Valid: true}
	}
	if u.RefreshTokenHash != "" {
		m.RefreshTokenHash = sql.NullString{String: u.RefreshTokenHash, Valid: true}
	}
	if u.RefreshTokenExpiryTime != nil {
		m.RefreshTokenExpiryTime = sql.NullTime{Time: *u.RefreshTokenExpiryTime, Valid: true}
	}
	if u.AuthProvider != "" {
		m.AuthProvider = sql.NullString{String: u.AuthProvider, Valid: true}
	}
	if u.ProviderUserID != "" {
		m.ProviderUserID = sql.NullString{String: u.ProviderUserID, Valid: true}
	}
	if u.DeletedAt != nil {
		m.DeletedAt = sql.NullTime{Time: *u.DeletedAt, Valid: true}
	}
	return m
}

// ToDomainUser converts a database model User to its domain form.
func ToDomainUser(m models.User) domain.User {
	u := domain.User{
		UserID:   m.UserID,
		Username: m.Username,
		Name:     m.Name,
		Role:     domain.UserRole(m.Role),
		IsActive: m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.PasswordHash.Valid {
		u.PasswordHash = m.PasswordHash.String
	}
	if m.RefreshTokenHash.Valid {
		u.RefreshTokenHash = m.RefreshTokenHash.String
	}
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		u.RefreshTokenExpiryTime = &t
	}
	if m.AuthProvider.Valid {
		u.AuthProvider = m.AuthProvider.String
	}
	if m.ProviderUserID.Valid {
		u.ProviderUserID = m.ProviderUserID.String
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		u.DeletedAt = &t
	}
	return u
}
