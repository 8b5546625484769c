package services

import (
	"context"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
	"github.com/velorent/insurance_sales_app/internal/dto"
)

// ExportSvcFacade renders sale listings to downloadable documents. The
// same visibility rules as SaleSvcFacade.ListSales apply.
type ExportSvcFacade interface {
	ExportSalesExcel(ctx context.Context, actor domain.Actor, q dto.ListSalesQuery) ([]byte, string, error)
	ExportSalesPDF(ctx context.Context, actor domain.Actor, q dto.ListSalesQuery) ([]byte, string, error)
}
