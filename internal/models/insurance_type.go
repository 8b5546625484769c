package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// InsuranceType is the database row shape for the insurance_types table.
type InsuranceType struct {
	InsuranceTypeID  string
	Name             string
	CommissionAmount decimal.Decimal
	IsActive         bool
	CreatedAt        time.Time
	CreatedBy        string
	LastUpdatedAt    time.Time
	LastUpdatedBy    string
	DeletedAt        sql.NullTime
}
