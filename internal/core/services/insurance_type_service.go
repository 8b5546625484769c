package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velorent/insurance_sales_app/internal/apperrors"
	"github.com/velorent/insurance_sales_app/internal/core/domain"
	portsrepo "github.com/velorent/insurance_sales_app/internal/core/ports/repositories"
	portssvc "github.com/velorent/insurance_sales_app/internal/core/ports/services"
	"github.com/velorent/insurance_sales_app/internal/dto"
)

type insuranceTypeService struct {
	BaseService
	accessPolicy
	repo portsrepo.InsuranceTypeRepository
}

// NewInsuranceTypeService builds the catalog service.
func NewInsuranceTypeService(repo portsrepo.InsuranceTypeRepository) portssvc.InsuranceTypeSvcFacade {
	return &insuranceTypeService{repo: repo}
}

var _ portssvc.InsuranceTypeSvcFacade = (*insuranceTypeService)(nil)

func (s *insuranceTypeService) CreateInsuranceType(ctx context.Context, actor domain.Actor, req dto.CreateInsuranceTypeRequest) (domain.InsuranceType, error) {
	if err := s.requireAdmin(actor); err != nil {
		return domain.InsuranceType{}, err
	}

	name := strings.TrimSpace(req.Name)
	fields := map[string]string{}
	if name == "" {
		fields["name"] = "name is required"
	}
	if req.CommissionAmount.LessThan(decimal.Zero) {
		fields["commissionAmount"] = "commission amount cannot be negative"
	}
	if len(fields) > 0 {
		return domain.InsuranceType{}, apperrors.NewValidationError(fields)
	}

	now := time.Now()
	it := domain.InsuranceType{
		InsuranceTypeID:  uuid.NewString(),
		Name:             name,
		CommissionAmount: req.CommissionAmount,
		IsActive:         true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	created, err := s.repo.CreateInsuranceType(ctx, it)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return domain.InsuranceType{}, apperrors.NewValidationError(map[string]string{"name": "an insurance type with this name already exists"})
		}
		s.LogError(ctx, err, "Failed to create insurance type")
		return domain.InsuranceType{}, err
	}
	s.LogInfo(ctx, "Insurance type created", "insurance_type_id", created.InsuranceTypeID)
	return created, nil
}

func (s *insuranceTypeService) GetInsuranceTypeByID(ctx context.Context, actor domain.Actor, id string) (domain.InsuranceType, error) {
	// Catalog reads are open to all authenticated users.
	return s.repo.GetInsuranceTypeByID(ctx, id)
}

func (s *insuranceTypeService) ListInsuranceTypes(ctx context.Context, actor domain.Actor, includeInactive bool) ([]domain.InsuranceType, error) {
	// Only admins see retired catalog entries.
	if includeInactive && !actor.IsAdmin() {
		includeInactive = false
	}
	return s.repo.ListInsuranceTypes(ctx, includeInactive)
}

func (s *insuranceTypeService) UpdateInsuranceType(ctx context.Context, actor domain.Actor, id string, req dto.UpdateInsuranceTypeRequest) (domain.InsuranceType, error) {
	if err := s.requireAdmin(actor); err != nil {
		return domain.InsuranceType{}, err
	}

	it, err := s.repo.GetInsuranceTypeByID(ctx, id)
	if err != nil {
		return domain.InsuranceType{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.InsuranceType{}, apperrors.NewValidationError(map[string]string{"name": "name is required"})
		}
		it.Name = name
	}
	if req.CommissionAmount != nil {
		if req.CommissionAmount.LessThan(decimal.Zero) {
			return domain.InsuranceType{}, apperrors.NewValidationError(map[string]string{"commissionAmount": "commission amount cannot be negative"})
		}
		// Existing sales keep their snapshot; only future sales pick this up.
		it.CommissionAmount = *req.CommissionAmount
	}
	if req.IsActive != nil {
		it.IsActive = *req.IsActive
	}
	it.LastUpdatedAt = time.Now()
	it.LastUpdatedBy = actor.UserID

	updated, err := s.repo.UpdateInsuranceType(ctx, it)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return domain.InsuranceType{}, apperrors.NewValidationError(map[string]string{"name": "an insurance type with this name already exists"})
		}
		s.LogError(ctx, err, "Failed to update insurance type", "insurance_type_id", id)
		return domain.InsuranceType{}, err
	}
	return updated, nil
}

func (s *insuranceTypeService) DeleteInsuranceType(ctx context.Context, actor domain.Actor, id string) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}
	if err := s.repo.DeleteInsuranceType(ctx, id, actor.UserID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Insurance type deleted", "insurance_type_id", id)
	return nil
}
