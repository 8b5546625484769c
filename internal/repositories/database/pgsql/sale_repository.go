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

type PgxSaleRepository struct {
	db *pgxpool.Pool
}

func newPgxSaleRepository(db *pgxpool.Pool) portsrepo.SaleRepository {
	return &PgxSaleRepository{db: db}
}

// Ensure PgxSaleRepository implements portsrepo.SaleRepository
var _ portsrepo.SaleRepository = (*PgxSaleRepository)(nil)

const saleColumns = `sale_id, employee_id, employee_name, client_name, reservation_number,
	commission_amount, status, sale_date, notes,
	created_at, created_by, last_updated_at, last_updated_by`

func scanSale(row pgx.Row) (models.Sale, error) {
	var m models.Sale
	err := row.Scan(
		&m.SaleID,
		&m.EmployeeID,
		&m.EmployeeName,
		&m.ClientName,
		&m.ReservationNumber,
		&m.CommissionAmount,
		&m.Status,
		&m.SaleDate,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxSaleRepository) CreateSale(ctx context.Context, sale domain.Sale) (domain.Sale, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	m := mapping.ToModelSale(sale)
	query := `
		INSERT INTO sales (sale_id, employee_id, employee_name, client_name, reservation_number,
			commission_amount, status, sale_date, notes,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, query,
		m.SaleID,
		m.EmployeeID,
		m.EmployeeName,
		m.ClientName,
		m.ReservationNumber,
		m.CommissionAmount,
		m.Status,
		m.SaleDate,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.Sale{}, apperrors.ErrDuplicate
		}
		return domain.Sale{}, fmt.Errorf("failed to insert sale: %w", err)
	}

	if err := insertSaleTypes(ctx, tx, sale.SaleID, sale.InsuranceTypeIDs); err != nil {
		return domain.Sale{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Sale{}, fmt.Errorf("failed to commit sale: %w", err)
	}
	return sale, nil
}

func insertSaleTypes(ctx context.Context, tx pgx.Tx, saleID string, typeIDs []string) error {
	for _, typeID := range typeIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO sale_insurance_types (sale_id, insurance_type_id) VALUES ($1, $2);`,
			saleID, typeID,
		)
		if err != nil {
			return fmt.Errorf("failed to link sale %s to insurance type %s: %w", saleID, typeID, err)
		}
	}
	return nil
}

func (r *PgxSaleRepository) GetSaleByID(ctx context.Context, saleID string) (domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_id = $1;`
	m, err := scanSale(r.db.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Sale{}, apperrors.ErrNotFound
		}
		return domain.Sale{}, fmt.Errorf("failed to find sale by ID %s: %w", saleID, err)
	}

	typeIDs, err := r.loadSaleTypeIDs(ctx, []string{saleID})
	if err != nil {
		return domain.Sale{}, err
	}
	return mapping.ToDomainSale(m, typeIDs[saleID]), nil
}

func (r *PgxSaleRepository) ListSales(ctx context.Context, filter portsrepo.SaleFilter) ([]domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE 1=1`
	args := []any{}
	argPos := 1

	// Visibility is enforced here: a non-empty EmployeeID keeps other
	// employees' rows out of the result set entirely.
	if filter.EmployeeID != "" {
		query += fmt.Sprintf(" AND employee_id = $%d", argPos)
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND sale_date >= $%d", argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND sale_date <= $%d", argPos)
		args = append(args, *filter.To)
		argPos++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, string(filter.Status))
		argPos++
	}
	query += " ORDER BY sale_date DESC, created_at DESC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	var saleModels []models.Sale
	var saleIDs []string
	for rows.Next() {
		m, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		saleModels = append(saleModels, m)
		saleIDs = append(saleIDs, m.SaleID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", err)
	}

	typeIDs, err := r.loadSaleTypeIDs(ctx, saleIDs)
	if err != nil {
		return nil, err
	}

	sales := make([]domain.Sale, 0, len(saleModels))
	for _, m := range saleModels {
		sales = append(sales, mapping.ToDomainSale(m, typeIDs[m.SaleID]))
	}
	return sales, nil
}

// loadSaleTypeIDs fetches insurance type links for a batch of sales in one
// round trip.
func (r *PgxSaleRepository) loadSaleTypeIDs(ctx context.Context, saleIDs []string) (map[string][]string, error) {
	result := make(map[string][]string, len(saleIDs))
	if len(saleIDs) == 0 {
		return result, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT sale_id, insurance_type_id FROM sale_insurance_types WHERE sale_id = ANY($1) ORDER BY insurance_type_id;`,
		saleIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale insurance types: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var saleID, typeID string
		if err := rows.Scan(&saleID, &typeID); err != nil {
			return nil, fmt.Errorf("failed to scan sale insurance type row: %w", err)
		}
		result[saleID] = append(result[saleID], typeID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale insurance type rows: %w", err)
	}
	return result, nil
}

func (r *PgxSaleRepository) UpdateSale(ctx context.Context, sale domain.Sale) (domain.Sale, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	m := mapping.ToModelSale(sale)
	query := `
		UPDATE sales
		SET client_name = $2, reservation_number = $3, commission_amount = $4,
			sale_date = $5, notes = $6, last_updated_at = $7, last_updated_by = $8
		WHERE sale_id = $1 AND status = $9;
	`
	tag, err := tx.Exec(ctx, query,
		m.SaleID,
		m.ClientName,
		m.ReservationNumber,
		m.CommissionAmount,
		m.SaleDate,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		string(domain.SaleStatusActive),
	)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("failed to update sale %s: %w", sale.SaleID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Sale{}, apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM sale_insurance_types WHERE sale_id = $1;`, sale.SaleID); err != nil {
		return domain.Sale{}, fmt.Errorf("failed to clear sale insurance types: %w", err)
	}
	if err := insertSaleTypes(ctx, tx, sale.SaleID, sale.InsuranceTypeIDs); err != nil {
		return domain.Sale{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Sale{}, fmt.Errorf("failed to commit sale update: %w", err)
	}
	return sale, nil
}

func (r *PgxSaleRepository) CancelSale(ctx context.Context, saleID string, cancelledBy string) error {
	query := `
		UPDATE sales
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE sale_id = $1 AND status = $5;
	`
	tag, err := r.db.Exec(ctx, query, saleID, string(domain.SaleStatusCancelled), time.Now(), cancelledBy, string(domain.SaleStatusActive))
	if err != nil {
		return fmt.Errorf("failed to cancel sale %s: %w", saleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSaleRepository) ReservationExists(ctx context.Context, reservationNumber string, excludeSaleID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM sales
			WHERE reservation_number = $1 AND status = $2 AND sale_id <> $3
		);
	`
	var exists bool
	err := r.db.QueryRow(ctx, query, reservationNumber, string(domain.SaleStatusActive), excludeSaleID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check reservation number: %w", err)
	}
	return exists, nil
}
