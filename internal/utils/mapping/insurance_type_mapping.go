package mapping

import (
	"database/sql"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
	"github.com/velorent/insurance_sales_app/internal/models"
)

// ToModelInsuranceType converts a domain InsuranceType to its database model.
func ToModelInsuranceType(it domain.InsuranceType) models.InsuranceType {
	m := models.InsuranceType{
		InsuranceTypeID:  it.InsuranceTypeID,
		Name:             it.Name,
		CommissionAmount: it.CommissionAmount,
		IsActive:         it.IsActive,
		CreatedAt:        it.CreatedAt,
		CreatedBy:        it.CreatedBy,
		LastUpdatedAt:    it.LastUpdatedAt,
		LastUpdatedBy:    it.LastUpdatedBy,
	}
	if it.DeletedAt != nil {
		m.DeletedAt = sql.NullTime{Time: *it.DeletedAt, Valid: true}
	}
	return m
}

// ToDomainInsuranceType converts a database model InsuranceType to its domain form.
func ToDomainInsuranceType(m models.InsuranceType) domain.InsuranceType {
	it := domain.InsuranceType{
		InsuranceTypeID:  m.InsuranceTypeID,
		Name:             m.Name,
		CommissionAmount: m.CommissionAmount,
		IsActive:         m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		it.DeletedAt = &t
	}
	return it
}
