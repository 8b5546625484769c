package repositories

import (
	"context"
	"time"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
)

// ObjectiveRepository defines persistence operations for objectives and
// their archival history.
type ObjectiveRepository interface {
	CreateObjective(ctx context.Context, o domain.Objective) (domain.Objective, error)
	GetObjectiveByID(ctx context.Context, objectiveID string) (domain.Objective, error)
	ListObjectives(ctx context.Context, employeeID string, activeOnly bool) ([]domain.Objective, error)
	// ListObjectivesContaining returns active objectives whose period covers
	// the given instant, most recently created first.
	ListObjectivesContaining(ctx context.Context, employeeID string, at time.Time) ([]domain.Objective, error)
	// HasOverlappingObjective reports whether an active objective for the
	// employee intersects [start, end], ignoring excludeObjectiveID.
	HasOverlappingObjective(ctx context.Context, employeeID string, start, end time.Time, excludeObjectiveID string) (bool, error)
	UpdateObjective(ctx context.Context, o domain.Objective) (domain.Objective, error)
	DeleteObjective(ctx context.Context, objectiveID string, deletedBy string) error

	CreateObjectiveHistory(ctx context.Context, h domain.ObjectiveHistory) (domain.ObjectiveHistory, error)
	ListObjectiveHistory(ctx context.Context, employeeID string) ([]domain.ObjectiveHistory, error)
}
