package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
)

// CreateSaleRequest is the payload to record a new sale. SaleDate uses the
// YYYY-MM-DD form; commission is computed server-side from the catalog.
type CreateSaleRequest struct {
	ClientName        string   `json:"clientName" binding:"required"`
	ReservationNumber string   `json:"reservationNumber" binding:"required"`
	InsuranceTypeIDs  []string `json:"insuranceTypeIDs" binding:"required"`
	SaleDate          string   `json:"saleDate" binding:"required"`
	Notes             string   `json:"notes,omitempty"`
	// EmployeeID is honored only for admin callers recording on behalf of
	// someone else; employees always record against themselves.
	EmployeeID string `json:"employeeID,omitempty"`
}

// UpdateSaleRequest carries partial updates to an existing sale.
type UpdateSaleRequest struct {
	ClientName        *string   `json:"clientName,omitempty"`
	ReservationNumber *string   `json:"reservationNumber,omitempty"`
	InsuranceTypeIDs  *[]string `json:"insuranceTypeIDs,omitempty"`
	SaleDate          *string   `json:"saleDate,omitempty"`
	Notes             *string   `json:"notes,omitempty"`
}

// ListSalesQuery captures the supported filter parameters.
type ListSalesQuery struct {
	EmployeeID string `form:"employeeId"`
	From       string `form:"from"`
	To         string `form:"to"`
	Status     string `form:"status" binding:"omitempty,oneof=ACTIVE CANCELLED"`
}

// SaleResponse is the public view of a sale.
type SaleResponse struct {
	SaleID            string          `json:"saleID"`
	EmployeeID        string          `json:"employeeID"`
	EmployeeName      string          `json:"employeeName"`
	ClientName        string          `json:"clientName"`
	ReservationNumber string          `json:"reservationNumber"`
	InsuranceTypeIDs  []string        `json:"insuranceTypeIDs"`
	CommissionAmount  decimal.Decimal `json:"commissionAmount"`
	Status            string          `json:"status"`
	SaleDate          time.Time       `json:"saleDate"`
	Notes             string          `json:"notes,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	LastUpdatedAt     time.Time       `json:"lastUpdatedAt"`
}

// ToSaleResponse maps a domain sale to its public view.
func ToSaleResponse(s domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:            s.SaleID,
		EmployeeID:        s.EmployeeID,
		EmployeeName:      s.EmployeeName,
		ClientName:        s.ClientName,
		ReservationNumber: s.ReservationNumber,
		InsuranceTypeIDs:  s.InsuranceTypeIDs,
		CommissionAmount:  s.CommissionAmount,
		Status:            string(s.Status),
		SaleDate:          s.SaleDate,
		Notes:             s.Notes,
		CreatedAt:         s.CreatedAt,
		LastUpdatedAt:     s.LastUpdatedAt,
	}
}

// ToSaleResponses maps a slice of domain sales.
func ToSaleResponses(sales []domain.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, ToSaleResponse(s))
	}
	return out
}
