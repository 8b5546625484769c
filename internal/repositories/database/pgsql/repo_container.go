package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/velorent/insurance_sales_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository against the pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:          newPgxUserRepository(dbPool),
		SaleRepo:          newPgxSaleRepository(dbPool),
		InsuranceTypeRepo: newPgxInsuranceTypeRepository(dbPool),
		ObjectiveRepo:     newPgxObjectiveRepository(dbPool),
	}
}
