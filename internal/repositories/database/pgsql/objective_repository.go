package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velorent/insurance_sales_app/internal/apperrors"
	"github.com/velorent/insurance_sales_app/internal/core/domain"
	portsrepo "github.com/velorent/insurance_sales_app/internal/core/ports/repositories"
	"github.com/velorent/insurance_sales_app/internal/models"
	"github.com/velorent/insurance_sales_app/internal/utils/mapping"
)

type PgxObjectiveRepository struct {
	db *pgxpool.Pool
}

func newPgxObjectiveRepository(db *pgxpool.Pool) portsrepo.ObjectiveRepository {
	return &PgxObjectiveRepository{db: db}
}

// Ensure PgxObjectiveRepository implements portsrepo.ObjectiveRepository
var _ portsrepo.ObjectiveRepository = (*PgxObjectiveRepository)(nil)

const objectiveColumns = `objective_id, employee_id, employee_name, type, target_amount,
	target_sales_count, period_start, period_end, is_active, description,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanObjective(row pgx.Row) (models.Objective, error) {
	var m models.Objective
	err := row.Scan(
		&m.ObjectiveID,
		&m.EmployeeID,
		&m.EmployeeName,
		&m.Type,
		&m.TargetAmount,
		&m.TargetSalesCount,
		&m.PeriodStart,
		&m.PeriodEnd,
		&m.IsActive,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

func (r *PgxObjectiveRepository) CreateObjective(ctx context.Context, o domain.Objective) (domain.Objective, error) {
	m := mapping.ToModelObjective(o)
	query := `
		INSERT INTO objectives (objective_id, employee_id, employee_name, type, target_amount,
			target_sales_count, period_start, period_end, is_active, description,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.db.Exec(ctx, query,
		m.ObjectiveID,
		m.EmployeeID,
		m.EmployeeName,
		m.Type,
		m.TargetAmount,
		m.TargetSalesCount,
		m.PeriodStart,
		m.PeriodEnd,
		m.IsActive,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Objective{}, fmt.Errorf("failed to create objective: %w", err)
	}
	return o, nil
}

func (r *PgxObjectiveRepository) GetObjectiveByID(ctx context.Context, objectiveID string) (domain.Objective, error) {
	query := `SELECT ` + objectiveColumns + ` FROM objectives WHERE objective_id = $1 AND deleted_at IS NULL;`
	m, err := scanObjective(r.db.QueryRow(ctx, query, objectiveID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Objective{}, apperrors.ErrNotFound
		}
		return domain.Objective{}, fmt.Errorf("failed to find objective by ID %s: %w", objectiveID, err)
	}
	return mapping.ToDomainObjective(m), nil
}

func (r *PgxObjectiveRepository) ListObjectives(ctx context.Context, employeeID string, activeOnly bool) ([]domain.Objective, error) {
	query := `SELECT ` + objectiveColumns + ` FROM objectives WHERE deleted_at IS NULL`
	args := []any{}
	argPos := 1
	if employeeID != "" {
		query += fmt.Sprintf(" AND employee_id = $%d", argPos)
		args = append(args, employeeID)
		argPos++
	}
	if activeOnly {
		query += " AND is_active = TRUE"
	}
	query += " ORDER BY period_start DESC, created_at DESC;"

	return r.queryObjectives(ctx, query, args...)
}

func (r *PgxObjectiveRepository) ListObjectivesContaining(ctx context.Context, employeeID string, at time.Time) ([]domain.Objective, error) {
	query := `
		SELECT ` + objectiveColumns + `
		FROM objectives
		WHERE deleted_at IS NULL AND is_active = TRUE
			AND employee_id = $1
			AND period_start <= $2 AND period_end >= $2
		ORDER BY created_at DESC;
	`
	return r.queryObjectives(ctx, query, employeeID, at)
}

func (r *PgxObjectiveRepository) HasOverlappingObjective(ctx context.Context, employeeID string, start, end time.Time, excludeObjectiveID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM objectives
			WHERE deleted_at IS NULL AND is_active = TRUE
				AND employee_id = $1
				AND objective_id <> $2
				AND period_start <= $4 AND period_end >= $3
		);
	`
	var exists bool
	err := r.db.QueryRow(ctx, query, employeeID, excludeObjectiveID, start, end).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check objective overlap: %w", err)
	}
	return exists, nil
}

func (r *PgxObjectiveRepository) queryObjectives(ctx context.Context, query string, args ...any) ([]domain.Objective, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query objectives: %w", err)
	}
	defer rows.Close()

	var objectives []domain.Objective
	for rows.Next() {
		m, err := scanObjective(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan objective row: %w", err)
		}
		objectives = append(objectives, mapping.ToDomainObjective(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating objective rows: %w", err)
	}
	return objectives, nil
}

func (r *PgxObjectiveRepository) UpdateObjective(ctx context.Context, o domain.Objective) (domain.Objective, error) {
	m := mapping.ToModelObjective(o)
	query := `
		UPDATE objectives
		SET target_amount = $2, target_sales_count = $3, period_start = $4, period_end = $5,
			is_active = $6, description = $7, last_updated_at = $8, last_updated_by = $9
		WHERE objective_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.db.Exec(ctx, query,
		m.ObjectiveID,
		m.TargetAmount,
		m.TargetSalesCount,
		m.PeriodStart,
		m.PeriodEnd,
		m.IsActive,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Objective{}, fmt.Errorf("failed to update objective %s: %w", o.ObjectiveID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Objective{}, apperrors.ErrNotFound
	}
	return o, nil
}

func (r *PgxObjectiveRepository) DeleteObjective(ctx context.Context, objectiveID string, deletedBy string) error {
	now := time.Now()
	query := `
		UPDATE objectives
		SET deleted_at = $2, is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE objective_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.db.Exec(ctx, query, objectiveID, now, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete objective %s: %w", objectiveID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxObjectiveRepository) CreateObjectiveHistory(ctx context.Context, h domain.ObjectiveHistory) (domain.ObjectiveHistory, error) {
	m := mapping.ToModelObjectiveHistory(h)
	query := `
		INSERT INTO objective_history (history_id, objective_id, employee_id, employee_name, type,
			target_amount, target_sales_count, period_start, period_end,
			achieved_amount, achieved_sales_count, achieved, archived_at, archived_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.db.Exec(ctx, query,
		m.HistoryID,
		m.ObjectiveID,
		m.EmployeeID,
		m.EmployeeName,
		m.Type,
		m.TargetAmount,
		m.TargetSalesCount,
		m.PeriodStart,
		m.PeriodEnd,
		m.AchievedAmount,
		m.AchievedSalesCount,
		m.Achieved,
		m.ArchivedAt,
		m.ArchivedBy,
	)
	if err != nil {
		return domain.ObjectiveHistory{}, fmt.Errorf("failed to create objective history: %w", err)
	}
	return h, nil
}

func (r *PgxObjectiveRepository) ListObjectiveHistory(ctx context.Context, employeeID string) ([]domain.ObjectiveHistory, error) {
	query := `
		SELECT history_id, objective_id, employee_id, employee_name, type,
			target_amount, target_sales_count, period_start, period_end,
			achieved_amount, achieved_sales_count, achieved, archived_at, archived_by
		FROM objective_history
		WHERE 1=1
	`
	args := []any{}
	if employeeID != "" {
		query += " AND employee_id = $1"
		args = append(args, employeeID)
	}
	query += " ORDER BY archived_at DESC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query objective history: %w", err)
	}
	defer rows.Close()

	var history []domain.ObjectiveHistory
	for rows.Next() {
		var m models.ObjectiveHistory
		err := rows.Scan(
			&m.HistoryID,
			&m.ObjectiveID,
			&m.EmployeeID,
			&m.EmployeeName,
			&m.Type,
			&m.TargetAmount,
			&m.TargetSalesCount,
			&m.PeriodStart,
			&m.PeriodEnd,
			&m.AchievedAmount,
			&m.AchievedSalesCount,
			&m.Achieved,
			&m.ArchivedAt,
			&m.ArchivedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan objective history row: %w", err)
		}
		history = append(history, mapping.ToDomainObjectiveHistory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating objective history rows: %w", err)
	}
	return history, nil
}
