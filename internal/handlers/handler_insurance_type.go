package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/velorent/insurance_sales_app/internal/core/ports/services"
	"github.com/velorent/insurance_sales_app/internal/dto"
)

// insuranceTypeHandler handles HTTP requests for the product catalog.
type insuranceTypeHandler struct {
	typeService portssvc.InsuranceTypeSvcFacade
}

func newInsuranceTypeHandler(ts portssvc.InsuranceTypeSvcFacade) *insuranceTypeHandler {
	return &insuranceTypeHandler{typeService: ts}
}

// registerInsuranceTypeRoutes registers the catalog routes. Reads are open
// to all authenticated users; writes are admin-only in the service layer.
func registerInsuranceTypeRoutes(rg *gin.RouterGroup, typeService portssvc.InsuranceTypeSvcFacade) {
	h := newInsuranceTypeHandler(typeService)

	types := rg.Group("/insurance-types")
	{
		types.POST("", h.createInsuranceType)
		types.GET("", h.listInsuranceTypes)
		types.GET("/:id", h.getInsuranceType)
		types.PUT("/:id", h.updateInsuranceType)
		types.DELETE("/:id", h.deleteInsuranceType)
	}
}

// createInsuranceType godoc
// @Summary Add an insurance type to the catalog
// @Tags insurance-types
// @Accept json
// @Produce json
// @Param insuranceType body dto.CreateInsuranceTypeRequest true "Catalog entry"
// @Success 201 {object} dto.InsuranceTypeResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /insurance-types [post]
func (h *insuranceTypeHandler) createInsuranceType(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	var req dto.CreateInsuranceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	created, err := h.typeService.CreateInsuranceType(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToInsuranceTypeResponse(created))
}

// listInsuranceTypes godoc
// @Summary List the insurance catalog
// @Tags insurance-types
// @Produce json
// @Param includeInactive query bool false "Include retired entries (admin only)"
// @Success 200 {array} dto.InsuranceTypeResponse
// @Security BearerAuth
// @Router /insurance-types [get]
func (h *insuranceTypeHandler) listInsuranceTypes(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	includeInactive := c.Query("includeInactive") == "true"

	types, err := h.typeService.ListInsuranceTypes(c.Request.Context(), actor, includeInactive)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInsuranceTypeResponses(types))
}

// getInsuranceType godoc
// @Summary Get a catalog entry by ID
// @Tags insurance-types
// @Produce json
// @Param id path string true "Insurance type ID"
// @Success 200 {object} dto.InsuranceTypeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /insurance-types/{id} [get]
func (h *insuranceTypeHandler) getInsuranceType(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	it, err := h.typeService.GetInsuranceTypeByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInsuranceTypeResponse(it))
}

// updateInsuranceType godoc
// @Summary Update a catalog entry
// @Description Commission changes only affect future sales; existing sales keep their snapshot.
// @Tags insurance-types
// @Accept json
// @Produce json
// @Param id path string true "Insurance type ID"
// @Param insuranceType body dto.UpdateInsuranceTypeRequest true "Fields to update"
// @Success 200 {object} dto.InsuranceTypeResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /insurance-types/{id} [put]
func (h *insuranceTypeHandler) updateInsuranceType(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	var req dto.UpdateInsuranceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	updated, err := h.typeService.UpdateInsuranceType(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInsuranceTypeResponse(updated))
}

// deleteInsuranceType godoc
// @Summary Retire a catalog entry
// @Tags insurance-types
// @Produce json
// @Param id path string true "Insurance type ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /insurance-types/{id} [delete]
func (h *insuranceTypeHandler) deleteInsuranceType(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	if err := h.typeService.DeleteInsuranceType(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Insurance type deleted"})
}
