package repositories

import (
	"context"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
)

// InsuranceTypeRepository defines persistence operations for the catalog.
type InsuranceTypeRepository interface {
	CreateInsuranceType(ctx context.Context, it domain.InsuranceType) (domain.InsuranceType, error)
	GetInsuranceTypeByID(ctx context.Context, id string) (domain.InsuranceType, error)
	GetInsuranceTypeByName(ctx context.Context, name string) (domain.InsuranceType, error)
	GetInsuranceTypesByIDs(ctx context.Context, ids []string) ([]domain.InsuranceType, error)
	ListInsuranceTypes(ctx context.Context, includeInactive bool) ([]domain.InsuranceType, error)
	UpdateInsuranceType(ctx context.Context, it domain.InsuranceType) (domain.InsuranceType, error)
	DeleteInsuranceType(ctx context.Context, id string, deletedBy string) error
}
