package services

import (
	"context"
	"time"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
	"github.com/velorent/insurance_sales_app/internal/dto"
)

// ObjectiveSvcFacade manages sales objectives and their archival history.
type ObjectiveSvcFacade interface {
	CreateObjective(ctx context.Context, actor domain.Actor, req dto.CreateObjectiveRequest) (domain.Objective, error)
	GetObjectiveByID(ctx context.Context, actor domain.Actor, objectiveID string) (domain.Objective, error)
	ListObjectives(ctx context.Context, actor domain.Actor, employeeID string, activeOnly bool) ([]domain.Objective, error)
	// CurrentObjective returns the active objective covering the instant for
	// the employee. When several qualify the most recently created wins.
	CurrentObjective(ctx context.Context, actor domain.Actor, employeeID string, at time.Time) (domain.Objective, error)
	UpdateObjective(ctx context.Context, actor domain.Actor, objectiveID string, req dto.UpdateObjectiveRequest) (domain.Objective, error)
	// ArchiveObjective snapshots achieved totals into history and retires
	// the objective.
	ArchiveObjective(ctx context.Context, actor domain.Actor, objectiveID string) (domain.ObjectiveHistory, error)
	DeleteObjective(ctx context.Context, actor domain.Actor, objectiveID string) error
	ListObjectiveHistory(ctx context.Context, actor domain.Actor, employeeID string) ([]domain.ObjectiveHistory, error)
}
