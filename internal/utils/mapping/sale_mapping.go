package mapping

import (
	"database/sql"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
	"github.com/velorent/insurance_sales_app/internal/models"
)

// ToModelSale converts a domain Sale to its database model. Insurance type
// links are persisted separately through the join table.
func ToModelSale(s domain.Sale) models.Sale {
	m := models.Sale{
		SaleID:            s.SaleID,
		EmployeeID:        s.EmployeeID,
		EmployeeName:      s.EmployeeName,
		ClientName:        s.ClientName,
		ReservationNumber: s.ReservationNumber,
		CommissionAmount:  s.CommissionAmount,
		Status:            string(s.Status),
		SaleDate:          s.SaleDate,
		CreatedAt:         s.CreatedAt,
		CreatedBy:         s.CreatedBy,
		LastUpdatedAt:     s.LastUpdatedAt,
		LastUpdatedBy:     s.LastUpdatedBy,
	}
	if s.Notes != "" {
		m.Notes = sql.NullString{String: s.Notes, Valid: true}
	}
	return m
}

// ToDomainSale converts a database model Sale to its domain form.
func ToDomainSale(m models.Sale, insuranceTypeIDs []string) domain.Sale {
	s := domain.Sale{
		SaleID:            m.SaleID,
		EmployeeID:        m.EmployeeID,
		EmployeeName:      m.EmployeeName,
		ClientName:        m.ClientName,
		ReservationNumber: m.ReservationNumber,
		InsuranceTypeIDs:  insuranceTypeIDs,
		CommissionAmount:  m.CommissionAmount,
		Status:            domain.SaleStatus(m.Status),
		SaleDate:          m.SaleDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.Notes.Valid {
		s.Notes = m.Notes.String
	}
	return s
}
