package repositories

import (
	"context"
	"time"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
)

// SaleFilter narrows sale queries. A non-empty EmployeeID restricts results
// to that employee at the SQL predicate level, which is how per-employee
// visibility is enforced below the service layer.
type SaleFilter struct {
	EmployeeID string
	From       *time.Time
	To         *time.Time
	Status     domain.SaleStatus
}

// SaleRepository defines persistence operations for sales.
type SaleRepository interface {
	CreateSale(ctx context.Context, sale domain.Sale) (domain.Sale, error)
	GetSaleByID(ctx context.Context, saleID string) (domain.Sale, error)
	ListSales(ctx context.Context, filter SaleFilter) ([]domain.Sale, error)
	UpdateSale(ctx context.Context, sale domain.Sale) (domain.Sale, error)
	CancelSale(ctx context.Context, saleID string, cancelledBy string) error
	ReservationExists(ctx context.Context, reservationNumber string, excludeSaleID string) (bool, error)
}
