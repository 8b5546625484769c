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

const uniqueViolationCode = "23505"

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

const userColumns = `user_id, username, name, role, is_active, password_hash,
	refresh_token_hash, refresh_token_expiry_time, auth_provider, provider_user_id,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.Name,
		&m.Role,
		&m.IsActive,
		&m.PasswordHash,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

func (r *PgxUserRepository) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (user_id, username, name, role, is_active, password_hash,
			refresh_token_hash, refresh_token_expiry_time, auth_provider, provider_user_id,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.db.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.Name,
		m.Role,
		m.IsActive,
		m.PasswordHash,
		m.RefreshTokenHash,
		m.RefreshTokenExpiryTime,
		m.AuthProvider,
		m.ProviderUserID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.User{}, apperrors.ErrDuplicate
		}
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 AND deleted_at IS NULL;`
	m, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, apperrors.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	return mapping.ToDomainUser(m), nil
}

func (r *PgxUserRepository) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(username) = lower($1) AND deleted_at IS NULL;`
	m, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, apperrors.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("failed to find user by username: %w", err)
	}
	return mapping.ToDomainUser(m), nil
}

func (r *PgxUserRepository) GetUserByProviderID(ctx context.Context, provider string, providerUserID string) (domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		WHERE auth_provider = $1 AND provider_user_id = $2 AND deleted_at IS NULL;`
	m, err := scanUser(r.db.QueryRow(ctx, query, provider, providerUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, apperrors.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("failed to find user by provider ID: %w", err)
	}
	return mapping.ToDomainUser(m), nil
}

func (r *PgxUserRepository) GetUserByRefreshTokenHash(ctx context.Context, refreshTokenHash string) (domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE refresh_token_hash = $1 AND deleted_at IS NULL;`
	m, err := scanUser(r.db.QueryRow(ctx, query, refreshTokenHash))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, apperrors.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("failed to find user by refresh token: %w", err)
	}
	return mapping.ToDomainUser(m), nil
}

func (r *PgxUserRepository) ListUsers(ctx context.Context, includeInactive bool) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE deleted_at IS NULL`
	if !includeInactive {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name ASC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, mapping.ToDomainUser(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) (domain.User, error) {
	m := mapping.ToModelUser(user)
	query := `
		UPDATE users
		SET name = $2, role = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.db.Exec(ctx, query,
		m.UserID,
		m.Name,
		m.Role,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to update user %s: %w", user.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.User{}, apperrors.ErrNotFound
	}
	return user, nil
}

func (r *PgxUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string, updatedBy string) error {
	query := `
		UPDATE users
		SET password_hash = $2, last_updated_at = $3, last_updated_by = $4
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.db.Exec(ctx, query, userID, passwordHash, time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update password for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		UPDATE users
		SET refresh_token_hash = $2, refresh_token_expiry_time = $3, last_updated_at = $4
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.db.Exec(ctx, query, m.UserID, m.RefreshTokenHash, m.RefreshTokenExpiryTime, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update refresh token for user %s: %w", user.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string, deletedBy string) error {
	now := time.Now()
	query := `
		UPDATE users
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.db.Exec(ctx, query, userID, now, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) CountActiveAdmins(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM users WHERE role = $1 AND is_active = TRUE AND deleted_at IS NULL;`
	var count int
	if err := r.db.QueryRow(ctx, query, string(domain.RoleAdmin)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active admins: %w", err)
	}
	return count, nil
}
