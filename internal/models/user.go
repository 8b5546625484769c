package models

import (
	"database/sql"
	"time"
)

// User is the database row shape for the users table.
type User struct {
	UserID                 string
	Username               string
	Name                   string
	Role                   string
	IsActive               bool
	PasswordHash           sql.NullString
	RefreshTokenHash       sql.NullString
	RefreshTokenExpiryTime sql.NullTime
	AuthProvider           sql.NullString
	ProviderUserID         sql.NullString
	CreatedAt              time.Time
	CreatedBy              string
	LastUpdatedAt          time.Time
	LastUpdatedBy          string
	DeletedAt              sql.NullTime
}
