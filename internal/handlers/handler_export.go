package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/velorent/insurance_sales_app/internal/core/ports/services"
	"github.com/velorent/insurance_sales_app/internal/dto"
)

const (
	excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType   = "application/pdf"
)

// exportHandler serves downloadable sale reports.
type exportHandler struct {
	exportService portssvc.ExportSvcFacade
}

func newExportHandler(es portssvc.ExportSvcFacade) *exportHandler {
	return &exportHandler{exportService: es}
}

// registerExportRoutes registers the export routes.
func registerExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportSvcFacade) {
	h := newExportHandler(exportService)

	exports := rg.Group("/exports")
	{
		exports.GET("/sales.xlsx", h.exportSalesExcel)
		exports.GET("/sales.pdf", h.exportSalesPDF)
	}
}

// exportSalesExcel godoc
// @Summary Download the visible sales as an Excel workbook
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param employeeId query string false "Filter by employee (admin only)"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param status query string false "ACTIVE or CANCELLED"
// @Success 200 {file} binary
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /exports/sales.xlsx [get]
func (h *exportHandler) exportSalesExcel(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	var q dto.ListSalesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindingError(c, err)
		return
	}

	data, filename, err := h.exportService.ExportSalesExcel(c.Request.Context(), actor, q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, excelContentType, data)
}

// exportSalesPDF godoc
// @Summary Download the visible sales as a PDF report
// @Tags exports
// @Produce application/pdf
// @Param employeeId query string false "Filter by employee (admin only)"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param status query string false "ACTIVE or CANCELLED"
// @Success 200 {file} binary
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /exports/sales.pdf [get]
func (h *exportHandler) exportSalesPDF(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	var q dto.ListSalesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindingError(c, err)
		return
	}

	data, filename, err := h.exportService.ExportSalesPDF(c.Request.Context(), actor, q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, pdfContentType, data)
}
