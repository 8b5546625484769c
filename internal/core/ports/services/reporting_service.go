package services

import (
	"context"
	"time"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
)

// ReportingSvcFacade computes dashboard aggregates. Employees see their own
// numbers; admins may pass any employeeID or leave it empty for everyone.
type ReportingSvcFacade interface {
	Summary(ctx context.Context, actor domain.Actor, employeeID string, from, to *time.Time) (domain.SalesSummary, error)
	MonthlyBreakdown(ctx context.Context, actor domain.Actor, employeeID string, months int, now time.Time) ([]domain.MonthBucket, error)
	ByInsuranceType(ctx context.Context, actor domain.Actor, employeeID string, now time.Time) ([]domain.InsuranceTypeBreakdown, error)
	ByEmployee(ctx context.Context, actor domain.Actor, from, to *time.Time) ([]domain.EmployeeSales, error)
	TopSellers(ctx context.Context, actor domain.Actor, limit int, from, to *time.Time) ([]domain.EmployeeSales, error)
	ObjectiveProgress(ctx context.Context, actor domain.Actor, employeeID string, now time.Time) (domain.ObjectiveProgress, error)
}
