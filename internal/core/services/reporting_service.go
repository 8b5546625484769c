package services

import (
	"context"
	"time"

	"github.com/velorent/insurance_sales_app/internal/apperrors"
	"github.com/velorent/insurance_sales_app/internal/core/domain"
	portsrepo "github.com/velorent/insurance_sales_app/internal/core/ports/repositories"
	portssvc "github.com/velorent/insurance_sales_app/internal/core/ports/services"
	"github.com/velorent/insurance_sales_app/internal/utils/stats"
)

const (
	defaultTrailingMonths = 6
	topSellersLimit       = 5
)

type reportingService struct {
	BaseService
	accessPolicy
	saleRepo          portsrepo.SaleRepository
	objectiveRepo     portsrepo.ObjectiveRepository
	insuranceTypeRepo portsrepo.InsuranceTypeRepository
}

// NewReportingService builds the dashboard aggregation service. All math
// lives in the stats package; this layer only loads data and applies the
// visibility rules.
func NewReportingService(
	saleRepo portsrepo.SaleRepository,
	objectiveRepo portsrepo.ObjectiveRepository,
	insuranceTypeRepo portsrepo.InsuranceTypeRepository,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		saleRepo:          saleRepo,
		objectiveRepo:     objectiveRepo,
		insuranceTypeRepo: insuranceTypeRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) Summary(ctx context.Context, actor domain.Actor, employeeID string, from, to *time.Time) (domain.SalesSummary, error) {
	scoped, err := s.scopeEmployeeID(actor, employeeID)
	if err != nil {
		return domain.SalesSummary{}, err
	}
	sales, err := s.saleRepo.ListSales(ctx, portsrepo.SaleFilter{
		EmployeeID: scoped,
		From:       from,
		To:         to,
		Status:     domain.SaleStatusActive,
	})
	if err != nil {
		return domain.SalesSummary{}, err
	}
	return stats.Summarize(sales), nil
}

func (s *reportingService) MonthlyBreakdown(ctx context.Context, actor domain.Actor, employeeID string, months int, now time.Time) ([]domain.MonthBucket, error) {
	scoped, err := s.scopeEmployeeID(actor, employeeID)
	if err != nil {
		return nil, err
	}
	if months <= 0 {
		months = defaultTrailingMonths
	}

	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)
	sales, err := s.saleRepo.ListSales(ctx, portsrepo.SaleFilter{
		EmployeeID: scoped,
		From:       &from,
		Status:     domain.SaleStatusActive,
	})
	if err != nil {
		return nil, err
	}
	return stats.MonthlyBuckets(sales, months, now), nil
}

func (s *reportingService) ByInsuranceType(ctx context.Context, actor domain.Actor, employeeID string, now time.Time) ([]domain.InsuranceTypeBreakdown, error) {
	scoped, err := s.scopeEmployeeID(actor, employeeID)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	sales, err := s.saleRepo.ListSales(ctx, portsrepo.SaleFilter{
		EmployeeID: scoped,
		From:       &monthStart,
		Status:     domain.SaleStatusActive,
	})
	if err != nil {
		return nil, err
	}

	// Include retired entries so old sales still resolve to a name.
	types, err := s.insuranceTypeRepo.ListInsuranceTypes(ctx, true)
	if err != nil {
		return nil, err
	}
	namesByID := make(map[string]string, len(types))
	for _, it := range types {
		namesByID[it.InsuranceTypeID] = it.Name
	}

	return stats.ByInsuranceType(sales, namesByID, now), nil
}

func (s *reportingService) ByEmployee(ctx context.Context, actor domain.Actor, from, to *time.Time) ([]domain.EmployeeSales, error) {
	// Per-employee comparisons expose other people's commissions, so this
	// view is admin-only.
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.ListSales(ctx, portsrepo.SaleFilter{
		From:   from,
		To:     to,
		Status: domain.SaleStatusActive,
	})
	if err != nil {
		return nil, err
	}
	return stats.ByEmployee(sales), nil
}

func (s *reportingService) TopSellers(ctx context.Context, actor domain.Actor, limit int, from, to *time.Time) ([]domain.EmployeeSales, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = topSellersLimit
	}
	sales, err := s.saleRepo.ListSales(ctx, portsrepo.SaleFilter{
		From:   from,
		To:     to,
		Status: domain.SaleStatusActive,
	})
	if err != nil {
		return nil, err
	}
	return stats.TopSellers(sales, limit), nil
}

func (s *reportingService) ObjectiveProgress(ctx context.Context, actor domain.Actor, employeeID string, now time.Time) (domain.ObjectiveProgress, error) {
	scoped, err := s.scopeEmployeeID(actor, employeeID)
	if err != nil {
		return domain.ObjectiveProgress{}, err
	}
	if scoped == "" {
		return domain.ObjectiveProgress{}, apperrors.NewValidationError(map[string]string{"employeeId": "employeeId is required"})
	}

	candidates, err := s.objectiveRepo.ListObjectivesContaining(ctx, scoped, now)
	if err != nil {
		return domain.ObjectiveProgress{}, err
	}
	if len(candidates) == 0 {
		return domain.ObjectiveProgress{}, apperrors.ErrNotFound
	}
	objective := candidates[0]

	periodEnd := objective.PeriodEnd
	sales, err := s.saleRepo.ListSales(ctx, portsrepo.SaleFilter{
		EmployeeID: scoped,
		From:       &objective.PeriodStart,
		To:         &periodEnd,
		Status:     domain.SaleStatusActive,
	})
	if err != nil {
		return domain.ObjectiveProgress{}, err
	}

	return stats.Progress(objective, sales, now), nil
}
