package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velorent/insurance_sales_app/internal/apperrors"
	"github.com/velorent/insurance_sales_app/internal/core/domain"
	portsrepo "github.com/velorent/insurance_sales_app/internal/core/ports/repositories"
	"github.com/velorent/insurance_sales_app/internal/models"
	"github.com/velorent/insurance_sales_app/internal/utils/mapping"
)

type PgxInsuranceTypeRepository struct {
	db *pgxpool.Pool
}

func newPgxInsuranceTypeRepository(db *pgxpool.Pool) portsrepo.InsuranceTypeRepository {
	return &PgxInsuranceTypeRepository{db: db}
}

// Ensure PgxInsuranceTypeRepository implements portsrepo.InsuranceTypeRepository
var _ portsrepo.InsuranceTypeRepository = (*PgxInsuranceTypeRepository)(nil)

const insuranceTypeColumns = `insurance_type_id, name, commission_amount, is_active,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanInsuranceType(row pgx.Row) (models.InsuranceType, error) {
	var m models.InsuranceType
	err := row.Scan(
		&m.InsuranceTypeID,
		&m.Name,
		&m.CommissionAmount,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

func (r *PgxInsuranceTypeRepository) CreateInsuranceType(ctx context.Context, it domain.InsuranceType) (domain.InsuranceType, error) {
	m := mapping.ToModelInsuranceType(it)
	query := `
		INSERT INTO insurance_types (insurance_type_id, name, commission_amount, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		m.InsuranceTypeID,
		m.Name,
		m.CommissionAmount,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.InsuranceType{}, apperrors.ErrDuplicate
		}
		return domain.InsuranceType{}, fmt.Errorf("failed to create insurance type: %w", err)
	}
	return it, nil
}

func (r *PgxInsuranceTypeRepository) GetInsuranceTypeByID(ctx context.Context, id string) (domain.InsuranceType, error) {
	query := `SELECT ` + insuranceTypeColumns + ` FROM insurance_types WHERE insurance_type_id = $1 AND deleted_at IS NULL;`
	m, err := scanInsuranceType(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.InsuranceType{}, apperrors.ErrNotFound
		}
		return domain.InsuranceType{}, fmt.Errorf("failed to find insurance type by ID %s: %w", id, err)
	}
	return mapping.ToDomainInsuranceType(m), nil
}

func (r *PgxInsuranceTypeRepository) GetInsuranceTypeByName(ctx context.Context, name string) (domain.InsuranceType, error) {
	query := `SELECT ` + insuranceTypeColumns + ` FROM insurance_types WHERE name = $1 AND deleted_at IS NULL;`
	m, err := scanInsuranceType(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.InsuranceType{}, apperrors.ErrNotFound
		}
		return domain.InsuranceType{}, fmt.Errorf("failed to find insurance type by name: %w", err)
	}
	return mapping.ToDomainInsuranceType(m), nil
}

func (r *PgxInsuranceTypeRepository) GetInsuranceTypesByIDs(ctx context.Context, ids []string) ([]domain.InsuranceType, error) {
	if len(ids) == 0 {
		return []domain.InsuranceType{}, nil
	}
	query := `SELECT ` + insuranceTypeColumns + ` FROM insurance_types WHERE insurance_type_id = ANY($1) AND deleted_at IS NULL;`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query insurance types by IDs: %w", err)
	}
	defer rows.Close()

	var types []domain.InsuranceType
	for rows.Next() {
		m, err := scanInsuranceType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan insurance type row: %w", err)
		}
		types = append(types, mapping.ToDomainInsuranceType(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating insurance type rows: %w", err)
	}
	return types, nil
}

func (r *PgxInsuranceTypeRepository) ListInsuranceTypes(ctx context.Context, includeInactive bool) ([]domain.InsuranceType, error) {
	query := `SELECT ` + insuranceTypeColumns + ` FROM insurance_types WHERE deleted_at IS NULL`
	if !includeInactive {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name ASC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query insurance types: %w", err)
	}
	defer rows.Close()

	var types []domain.InsuranceType
	for rows.Next() {
		m, err := scanInsuranceType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan insurance type row: %w", err)
		}
		types = append(types, mapping.ToDomainInsuranceType(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating insurance type rows: %w", err)
	}
	return types, nil
}

func (r *PgxInsuranceTypeRepository) UpdateInsuranceType(ctx context.Context, it domain.InsuranceType) (domain.InsuranceType, error) {
	m := mapping.ToModelInsuranceType(it)
	query := `
		UPDATE insurance_types
		SET name = $2, commission_amount = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE insurance_type_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.db.Exec(ctx, query,
		m.InsuranceTypeID,
		m.Name,
		m.CommissionAmount,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.InsuranceType{}, apperrors.ErrDuplicate
		}
		return domain.InsuranceType{}, fmt.Errorf("failed to update insurance type %s: %w", it.InsuranceTypeID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.InsuranceType{}, apperrors.ErrNotFound
	}
	return it, nil
}

func (r *PgxInsuranceTypeRepository) DeleteInsuranceType(ctx context.Context, id string, deletedBy string) error {
	now := time.Now()
	query := `
		UPDATE insurance_types
		SET deleted_at = $2, is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE insurance_type_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.db.Exec(ctx, query, id, now, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete insurance type %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
