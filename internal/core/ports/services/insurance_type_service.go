package services

import (
	"context"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
	"github.com/velorent/insurance_sales_app/internal/dto"
)

// InsuranceTypeSvcFacade manages the sellable product catalog. Reads are
// open to any authenticated user; writes are admin-only.
type InsuranceTypeSvcFacade interface {
	CreateInsuranceType(ctx context.Context, actor domain.Actor, req dto.CreateInsuranceTypeRequest) (domain.InsuranceType, error)
	GetInsuranceTypeByID(ctx context.Context, actor domain.Actor, id string) (domain.InsuranceType, error)
	ListInsuranceTypes(ctx context.Context, actor domain.Actor, includeInactive bool) ([]domain.InsuranceType, error)
	UpdateInsuranceType(ctx context.Context, actor domain.Actor, id string, req dto.UpdateInsuranceTypeRequest) (domain.InsuranceType, error)
	DeleteInsuranceType(ctx context.Context, actor domain.Actor, id string) error
}
