package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus tracks the lifecycle of a sale. Sales are never physically
// removed; cancellation is a soft delete that keeps the row for history.
type SaleStatus string

const (
	SaleStatusActive    SaleStatus = "ACTIVE"
	SaleStatusCancelled SaleStatus = "CANCELLED"
)

// Sale records one add-on insurance sale against a rental reservation.
type Sale struct {
	SaleID            string          `json:"saleID"` // Primary Key (UUID)
	EmployeeID        string          `json:"employeeID"`
	EmployeeName      string          `json:"employeeName"`
	ClientName        string          `json:"clientName"`
	ReservationNumber string          `json:"reservationNumber"`
	InsuranceTypeIDs  []string        `json:"insuranceTypeIDs"` // At least one
	CommissionAmount  decimal.Decimal `json:"commissionAmount"` // Always >= 0
	Status            SaleStatus      `json:"status"`
	SaleDate          time.Time       `json:"saleDate"`
	Notes             string          `json:"notes,omitempty"`
	AuditFields
}

// IsActive reports whether the sale still counts toward statistics.
func (s Sale) IsActive() bool {
	return s.Status == SaleStatusActive
}
