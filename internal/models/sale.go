package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the database row shape for the sales table. Insurance type
// references live in the sale_insurance_types join table and are loaded
// separately.
type Sale struct {
	SaleID            string
	EmployeeID        string
	EmployeeName      string
	ClientName        string
	ReservationNumber string
	CommissionAmount  decimal.Decimal
	Status            string
	SaleDate          time.Time
	Notes             sql.NullString
	CreatedAt         time.Time
	CreatedBy         string
	LastUpdatedAt     time.Time
	LastUpdatedBy     string
}
