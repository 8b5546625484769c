package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
)

// CreateInsuranceTypeRequest is the payload to add a catalog entry.
type CreateInsuranceTypeRequest struct {
	Name             string          `json:"name" binding:"required"`
	CommissionAmount decimal.Decimal `json:"commissionAmount" binding:"required"`
}

// UpdateInsuranceTypeRequest carries partial updates to a catalog entry.
type UpdateInsuranceTypeRequest struct {
	Name             *string          `json:"name,omitempty"`
	CommissionAmount *decimal.Decimal `json:"commissionAmount,omitempty"`
	IsActive         *bool            `json:"isActive,omitempty"`
}

// InsuranceTypeResponse is the public view of a catalog entry.
type InsuranceTypeResponse struct {
	InsuranceTypeID  string          `json:"insuranceTypeID"`
	Name             string          `json:"name"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	IsActive         bool            `json:"isActive"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ToInsuranceTypeResponse maps a domain insurance type to its public view.
func ToInsuranceTypeResponse(it domain.InsuranceType) InsuranceTypeResponse {
	return InsuranceTypeResponse{
		InsuranceTypeID:  it.InsuranceTypeID,
		Name:             it.Name,
		CommissionAmount: it.CommissionAmount,
		IsActive:         it.IsActive,
		CreatedAt:        it.CreatedAt,
	}
}

// ToInsuranceTypeResponses maps a slice of domain insurance types.
func ToInsuranceTypeResponses(types []domain.InsuranceType) []InsuranceTypeResponse {
	out := make([]InsuranceTypeResponse, 0, len(types))
	for _, it := range types {
		out = append(out, ToInsuranceTypeResponse(it))
	}
	return out
}
