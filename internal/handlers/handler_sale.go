package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/velorent/insurance_sales_app/internal/core/ports/services"
	"github.com/velorent/insurance_sales_app/internal/dto"
)

// saleHandler handles HTTP requests related to sales.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{saleService: ss}
}

// registerSaleRoutes registers all sale-related routes.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := newSaleHandler(saleService)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.createSale)
		sales.GET("", h.listSales)
		sales.GET("/:id", h.getSale)
		sales.PUT("/:id", h.updateSale)
		sales.DELETE("/:id", h.cancelSale)
	}
}

// createSale godoc
// @Summary Record a new insurance sale
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	created, err := h.saleService.CreateSale(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToSaleResponse(created))
}

// listSales godoc
// @Summary List sales visible to the caller
// @Description Admins see everyone's sales; employees only their own.
// @Tags sales
// @Produce json
// @Param employeeId query string false "Filter by employee (admin only)"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param status query string false "ACTIVE or CANCELLED"
// @Success 200 {array} dto.SaleResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	var q dto.ListSalesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindingError(c, err)
		return
	}

	sales, err := h.saleService.ListSales(c.Request.Context(), actor, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponses(sales))
}

// getSale godoc
// @Summary Get a sale by ID
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	sale, err := h.saleService.GetSaleByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// updateSale godoc
// @Summary Update an active sale
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "Sale ID"
// @Param sale body dto.UpdateSaleRequest true "Fields to update"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [put]
func (h *saleHandler) updateSale(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	var req dto.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	updated, err := h.saleService.UpdateSale(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(updated))
}

// cancelSale godoc
// @Summary Cancel a sale
// @Description Cancellation is a soft delete; the row stays for history
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [delete]
func (h *saleHandler) cancelSale(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	if err := h.saleService.CancelSale(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Sale cancelled"})
}
