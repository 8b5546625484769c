package services

import (
	"context"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
	"github.com/velorent/insurance_sales_app/internal/dto"
)

// SaleSvcFacade exposes sale recording and retrieval. Every operation takes
// the acting user so per-employee visibility is decided here, not in the
// handlers.
type SaleSvcFacade interface {
	CreateSale(ctx context.Context, actor domain.Actor, req dto.CreateSaleRequest) (domain.Sale, error)
	GetSaleByID(ctx context.Context, actor domain.Actor, saleID string) (domain.Sale, error)
	ListSales(ctx context.Context, actor domain.Actor, q dto.ListSalesQuery) ([]domain.Sale, error)
	UpdateSale(ctx context.Context, actor domain.Actor, saleID string, req dto.UpdateSaleRequest) (domain.Sale, error)
	CancelSale(ctx context.Context, actor domain.Actor, saleID string) error
}

// SaleEventPublisher receives sale change notifications for live dashboards.
type SaleEventPublisher interface {
	Publish(event domain.SaleEvent)
}
