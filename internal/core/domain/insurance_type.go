package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InsuranceType is a catalog entry for a sellable insurance product.
// Commission is a flat amount per sale; sales snapshot the amount at
// creation time so later catalog edits do not rewrite history.
type InsuranceType struct {
	InsuranceTypeID  string          `json:"insuranceTypeID"` // Primary Key (UUID)
	Name             string          `json:"name"`            // Unique, non-empty
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	IsActive         bool            `json:"isActive"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft-deleted types stay referenced by old sales
}
