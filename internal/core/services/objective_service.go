package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velorent/insurance_sales_app/internal/apperrors"
	"github.com/velorent/insurance_sales_app/internal/core/domain"
	portsrepo "github.com/velorent/insurance_sales_app/internal/core/ports/repositories"
	portssvc "github.com/velorent/insurance_sales_app/internal/core/ports/services"
	"github.com/velorent/insurance_sales_app/internal/dto"
	"github.com/velorent/insurance_sales_app/internal/utils/stats"
)

type objectiveService struct {
	BaseService
	accessPolicy
	objectiveRepo portsrepo.ObjectiveRepository
	userRepo      portsrepo.UserRepository
	saleRepo      portsrepo.SaleRepository
	now           func() time.Time
}

// NewObjectiveService builds the objective service. The sale repository is
// needed to compute achieved totals at archival time.
func NewObjectiveService(
	objectiveRepo portsrepo.ObjectiveRepository,
	userRepo portsrepo.UserRepository,
	saleRepo portsrepo.SaleRepository,
) portssvc.ObjectiveSvcFacade {
	return &objectiveService{
		objectiveRepo: objectiveRepo,
		userRepo:      userRepo,
		saleRepo:      saleRepo,
		now:           time.Now,
	}
}

var _ portssvc.ObjectiveSvcFacade = (*objectiveService)(nil)

func (s *objectiveService) CreateObjective(ctx context.Context, actor domain.Actor, req dto.CreateObjectiveRequest) (domain.Objective, error) {
	if err := s.requireAdmin(actor); err != nil {
		return domain.Objective{}, err
	}

	employee, err := s.userRepo.GetUserByID(ctx, req.EmployeeID)
	if err != nil {
		return domain.Objective{}, err
	}

	fields := map[string]string{}
	start, end, dateFields := parsePeriod(req.PeriodStart, req.PeriodEnd)
	for k, v := range dateFields {
		fields[k] = v
	}
	if req.TargetAmount.LessThan(decimal.Zero) {
		fields["targetAmount"] = "target amount cannot be negative"
	}
	if req.TargetSalesCount < 0 {
		fields["targetSalesCount"] = "target sales count cannot be negative"
	}
	if len(fields) > 0 {
		return domain.Objective{}, apperrors.NewValidationError(fields)
	}

	overlap, err := s.objectiveRepo.HasOverlappingObjective(ctx, employee.UserID, start, end, "")
	if err != nil {
		return domain.Objective{}, err
	}
	if overlap {
		return domain.Objective{}, apperrors.NewValidationError(map[string]string{
			"periodStart": "the period overlaps an existing active objective for this employee",
		})
	}

	now := s.now()
	objective := domain.Objective{
		ObjectiveID:      uuid.NewString(),
		EmployeeID:       employee.UserID,
		EmployeeName:     employee.Name,
		Type:             domain.ObjectiveType(req.Type),
		TargetAmount:     req.TargetAmount,
		TargetSalesCount: req.TargetSalesCount,
		PeriodStart:      start,
		PeriodEnd:        end,
		IsActive:         true,
		Description:      req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	created, err := s.objectiveRepo.CreateObjective(ctx, objective)
	if err != nil {
		s.LogError(ctx, err, "Failed to create objective")
		return domain.Objective{}, err
	}
	s.LogInfo(ctx, "Objective created", "objective_id", created.ObjectiveID, "employee_id", created.EmployeeID)
	return created, nil
}

func (s *objectiveService) GetObjectiveByID(ctx context.Context, actor domain.Actor, objectiveID string) (domain.Objective, error) {
	objective, err := s.objectiveRepo.GetObjectiveByID(ctx, objectiveID)
	if err != nil {
		return domain.Objective{}, err
	}
	if !s.canAccessEmployee(actor, objective.EmployeeID) {
		return domain.Objective{}, apperrors.ErrForbidden
	}
	return objective, nil
}

func (s *objectiveService) ListObjectives(ctx context.Context, actor domain.Actor, employeeID string, activeOnly bool) ([]domain.Objective, error) {
	scoped, err := s.scopeEmployeeID(actor, employeeID)
	if err != nil {
		return nil, err
	}
	return s.objectiveRepo.ListObjectives(ctx, scoped, activeOnly)
}

func (s *objectiveService) CurrentObjective(ctx context.Context, actor domain.Actor, employeeID string, at time.Time) (domain.Objective, error) {
	scoped, err := s.scopeEmployeeID(actor, employeeID)
	if err != nil {
		return domain.Objective{}, err
	}
	if scoped == "" {
		// "Current for everyone" is not a meaningful question.
		return domain.Objective{}, apperrors.NewValidationError(map[string]string{"employeeId": "employeeId is required"})
	}

	candidates, err := s.objectiveRepo.ListObjectivesContaining(ctx, scoped, at)
	if err != nil {
		return domain.Objective{}, err
	}
	if len(candidates) == 0 {
		return domain.Objective{}, apperrors.ErrNotFound
	}
	// Repository orders by creation time descending, so the first entry is
	// the most recently created of any overlapping set.
	return candidates[0], nil
}

func (s *objectiveService) UpdateObjective(ctx context.Context, actor domain.Actor, objectiveID string, req dto.UpdateObjectiveRequest) (domain.Objective, error) {
	if err := s.requireAdmin(actor); err != nil {
		return domain.Objective{}, err
	}

	objective, err := s.objectiveRepo.GetObjectiveByID(ctx, objectiveID)
	if err != nil {
		return domain.Objective{}, err
	}

	fields := map[string]string{}
	startStr := objective.PeriodStart.Format(saleDateLayout)
	endStr := objective.PeriodEnd.Format(saleDateLayout)
	if req.PeriodStart != nil {
		startStr = *req.PeriodStart
	}
	if req.PeriodEnd != nil {
		endStr = *req.PeriodEnd
	}
	start, end, dateFields := parsePeriod(startStr, endStr)
	for k, v := range dateFields {
		fields[k] = v
	}
	if req.TargetAmount != nil && req.TargetAmount.LessThan(decimal.Zero) {
		fields["targetAmount"] = "target amount cannot be negative"
	}
	if req.TargetSalesCount != nil && *req.TargetSalesCount < 0 {
		fields["targetSalesCount"] = "target sales count cannot be negative"
	}
	if len(fields) > 0 {
		return domain.Objective{}, apperrors.NewValidationError(fields)
	}

	if req.PeriodStart != nil || req.PeriodEnd != nil {
		overlap, err := s.objectiveRepo.HasOverlappingObjective(ctx, objective.EmployeeID, start, end, objective.ObjectiveID)
		if err != nil {
			return domain.Objective{}, err
		}
		if overlap {
			return domain.Objective{}, apperrors.NewValidationError(map[string]string{
				"periodStart": "the period overlaps an existing active objective for this employee",
			})
		}
	}

	objective.PeriodStart = start
	objective.PeriodEnd = end
	if req.TargetAmount != nil {
		objective.TargetAmount = *req.TargetAmount
	}
	if req.TargetSalesCount != nil {
		objective.TargetSalesCount = *req.TargetSalesCount
	}
	if req.Description != nil {
		objective.Description = *req.Description
	}
	if req.IsActive != nil {
		objective.IsActive = *req.IsActive
	}
	objective.LastUpdatedAt = s.now()
	objective.LastUpdatedBy = actor.UserID

	updated, err := s.objectiveRepo.UpdateObjective(ctx, objective)
	if err != nil {
		s.LogError(ctx, err, "Failed to update objective", "objective_id", objectiveID)
		return domain.Objective{}, err
	}
	return updated, nil
}

func (s *objectiveService) ArchiveObjective(ctx context.Context, actor domain.Actor, objectiveID string) (domain.ObjectiveHistory, error) {
	if err := s.requireAdmin(actor); err != nil {
		return domain.ObjectiveHistory{}, err
	}

	objective, err := s.objectiveRepo.GetObjectiveByID(ctx, objectiveID)
	if err != nil {
		return domain.ObjectiveHistory{}, err
	}
	if !objective.IsActive {
		return domain.ObjectiveHistory{}, apperrors.NewValidationError(map[string]string{"objectiveID": "objective is already archived"})
	}

	periodEnd := objective.PeriodEnd
	sales, err := s.saleRepo.ListSales(ctx, portsrepo.SaleFilter{
		EmployeeID: objective.EmployeeID,
		From:       &objective.PeriodStart,
		To:         &periodEnd,
		Status:     domain.SaleStatusActive,
	})
	if err != nil {
		return domain.ObjectiveHistory{}, err
	}

	now := s.now()
	progress := stats.Progress(objective, sales, now)
	history := domain.ObjectiveHistory{
		HistoryID:          uuid.NewString(),
		ObjectiveID:        objective.ObjectiveID,
		EmployeeID:         objective.EmployeeID,
		EmployeeName:       objective.EmployeeName,
		Type:               objective.Type,
		TargetAmount:       objective.TargetAmount,
		TargetSalesCount:   objective.TargetSalesCount,
		PeriodStart:        objective.PeriodStart,
		PeriodEnd:          objective.PeriodEnd,
		AchievedAmount:     progress.AchievedAmount,
		AchievedSalesCount: progress.AchievedSalesCount,
		Achieved: progress.AchievedAmount.GreaterThanOrEqual(objective.TargetAmount) &&
			progress.AchievedSalesCount >= objective.TargetSalesCount,
		ArchivedAt: now,
		ArchivedBy: actor.UserID,
	}

	created, err := s.objectiveRepo.CreateObjectiveHistory(ctx, history)
	if err != nil {
		s.LogError(ctx, err, "Failed to archive objective", "objective_id", objectiveID)
		return domain.ObjectiveHistory{}, err
	}

	objective.IsActive = false
	objective.LastUpdatedAt = now
	objective.LastUpdatedBy = actor.UserID
	if _, err := s.objectiveRepo.UpdateObjective(ctx, objective); err != nil {
		s.LogError(ctx, err, "Failed to retire archived objective", "objective_id", objectiveID)
		return domain.ObjectiveHistory{}, err
	}

	s.LogInfo(ctx, "Objective archived", "objective_id", objectiveID, "achieved", created.Achieved)
	return created, nil
}

func (s *objectiveService) DeleteObjective(ctx context.Context, actor domain.Actor, objectiveID string) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}
	if err := s.objectiveRepo.DeleteObjective(ctx, objectiveID, actor.UserID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Objective deleted", "objective_id", objectiveID)
	return nil
}

func (s *objectiveService) ListObjectiveHistory(ctx context.Context, actor domain.Actor, employeeID string) ([]domain.ObjectiveHistory, error) {
	scoped, err := s.scopeEmployeeID(actor, employeeID)
	if err != nil {
		return nil, err
	}
	return s.objectiveRepo.ListObjectiveHistory(ctx, scoped)
}

// parsePeriod parses the inclusive YYYY-MM-DD period boundaries and checks
// their ordering.
func parsePeriod(startStr, endStr string) (time.Time, time.Time, map[string]string) {
	fields := map[string]string{}
	start, err := time.Parse(saleDateLayout, startStr)
	if err != nil {
		fields["periodStart"] = "invalid date, expected YYYY-MM-DD"
	}
	end, err := time.Parse(saleDateLayout, endStr)
	if err != nil {
		fields["periodEnd"] = "invalid date, expected YYYY-MM-DD"
	}
	if len(fields) == 0 {
		// Period boundaries are inclusive: stretch the end to the last
		// instant of its day.
		end = end.Add(24*time.Hour - time.Second)
		if end.Before(start) {
			fields["periodEnd"] = "period end must not be before period start"
		}
	}
	return start, end, fields
}
