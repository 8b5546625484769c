package services

import (
	"context"
	"fmt"
	"time"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
	portssvc "github.com/velorent/insurance_sales_app/internal/core/ports/services"
	"github.com/velorent/insurance_sales_app/internal/dto"
	"github.com/velorent/insurance_sales_app/internal/export"
)

type exportService struct {
	BaseService
	saleSvc portssvc.SaleSvcFacade
	now     func() time.Time
}

// NewExportService builds the document export service. It goes through the
// sale service so the same visibility rules apply to downloads.
func NewExportService(saleSvc portssvc.SaleSvcFacade) portssvc.ExportSvcFacade {
	return &exportService{saleSvc: saleSvc, now: time.Now}
}

var _ portssvc.ExportSvcFacade = (*exportService)(nil)

func (s *exportService) ExportSalesExcel(ctx context.Context, actor domain.Actor, q dto.ListSalesQuery) ([]byte, string, error) {
	sales, err := s.saleSvc.ListSales(ctx, actor, q)
	if err != nil {
		return nil, "", err
	}
	data, err := export.SalesExcel(sales)
	if err != nil {
		s.LogError(ctx, err, "Failed to build sales workbook")
		return nil, "", err
	}
	filename := fmt.Sprintf("sales_%s.xlsx", s.now().Format("20060102"))
	s.LogInfo(ctx, "Sales exported", "format", "xlsx", "rows", len(sales))
	return data, filename, nil
}

func (s *exportService) ExportSalesPDF(ctx context.Context, actor domain.Actor, q dto.ListSalesQuery) ([]byte, string, error) {
	sales, err := s.saleSvc.ListSales(ctx, actor, q)
	if err != nil {
		return nil, "", err
	}
	title := fmt.Sprintf("Insurance sales report - %s", s.now().Format("Jan 2, 2006"))
	data, err := export.SalesPDF(title, sales)
	if err != nil {
		s.LogError(ctx, err, "Failed to build sales pdf")
		return nil, "", err
	}
	filename := fmt.Sprintf("sales_%s.pdf", s.now().Format("20060102"))
	s.LogInfo(ctx, "Sales exported", "format", "pdf", "rows", len(sales))
	return data, filename, nil
}
