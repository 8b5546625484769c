package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/velorent/insurance_sales_app/internal/core/ports/services"
	"github.com/velorent/insurance_sales_app/internal/dto"
)

// objectiveHandler handles HTTP requests related to sales objectives.
type objectiveHandler struct {
	objectiveService portssvc.ObjectiveSvcFacade
}

func newObjectiveHandler(os portssvc.ObjectiveSvcFacade) *objectiveHandler {
	return &objectiveHandler{objectiveService: os}
}

// registerObjectiveRoutes registers all objective-related routes.
func registerObjectiveRoutes(rg *gin.RouterGroup, objectiveService portssvc.ObjectiveSvcFacade) {
	h := newObjectiveHandler(objectiveService)

	objectives := rg.Group("/objectives")
	{
		objectives.POST("", h.createObjective)           // Admin only
		objectives.GET("", h.listObjectives)             // Scoped
		objectives.GET("/current", h.currentObjective)   // Scoped
		objectives.GET("/history", h.listHistory)        // Scoped
		objectives.GET("/:id", h.getObjective)           // Scoped
		objectives.PUT("/:id", h.updateObjective)        // Admin only
		objectives.POST("/:id/archive", h.archiveObjective) // Admin only
		objectives.DELETE("/:id", h.deleteObjective)     // Admin only
	}
}

// createObjective godoc
// @Summary Assign a sales objective to an employee
// @Tags objectives
// @Accept json
// @Produce json
// @Param objective body dto.CreateObjectiveRequest true "Objective details"
// @Success 201 {object} dto.ObjectiveResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /objectives [post]
func (h *objectiveHandler) createObjective(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	var req dto.CreateObjectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	created, err := h.objectiveService.CreateObjective(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToObjectiveResponse(created))
}

// listObjectives godoc
// @Summary List objectives visible to the caller
// @Tags objectives
// @Produce json
// @Param employeeId query string false "Filter by employee (admin only)"
// @Param activeOnly query bool false "Only active objectives"
// @Success 200 {array} dto.ObjectiveResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /objectives [get]
func (h *objectiveHandler) listObjectives(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	employeeID := c.Query("employeeId")
	activeOnly := c.Query("activeOnly") == "true"

	objectives, err := h.objectiveService.ListObjectives(c.Request.Context(), actor, employeeID, activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToObjectiveResponses(objectives))
}

// currentObjective godoc
// @Summary Get the objective covering today for an employee
// @Description When several active objectives cover today, the most recently created wins.
// @Tags objectives
// @Produce json
// @Param employeeId query string false "Employee (admins only; defaults to the caller)"
// @Success 200 {object} dto.ObjectiveResponse
// @Failure 404 {object} dto.ErrorResponse "No objective covers today"
// @Security BearerAuth
// @Router /objectives/current [get]
func (h *objectiveHandler) currentObjective(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	objective, err := h.objectiveService.CurrentObjective(c.Request.Context(), actor, c.Query("employeeId"), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToObjectiveResponse(objective))
}

// getObjective godoc
// @Summary Get an objective by ID
// @Tags objectives
// @Produce json
// @Param id path string true "Objective ID"
// @Success 200 {object} dto.ObjectiveResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /objectives/{id} [get]
func (h *objectiveHandler) getObjective(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	objective, err := h.objectiveService.GetObjectiveByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToObjectiveResponse(objective))
}

// updateObjective godoc
// @Summary Update an objective
// @Tags objectives
// @Accept json
// @Produce json
// @Param id path string true "Objective ID"
// @Param objective body dto.UpdateObjectiveRequest true "Fields to update"
// @Success 200 {object} dto.ObjectiveResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /objectives/{id} [put]
func (h *objectiveHandler) updateObjective(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	var req dto.UpdateObjectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	updated, err := h.objectiveService.UpdateObjective(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToObjectiveResponse(updated))
}

// archiveObjective godoc
// @Summary Archive an objective into immutable history
// @Description Snapshots achieved totals; the history record is never modified afterwards.
// @Tags objectives
// @Produce json
// @Param id path string true "Objective ID"
// @Success 200 {object} dto.ObjectiveHistoryResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /objectives/{id}/archive [post]
func (h *objectiveHandler) archiveObjective(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	history, err := h.objectiveService.ArchiveObjective(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToObjectiveHistoryResponse(history))
}

// deleteObjective godoc
// @Summary Soft-delete an objective
// @Tags objectives
// @Produce json
// @Param id path string true "Objective ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /objectives/{id} [delete]
func (h *objectiveHandler) deleteObjective(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	if err := h.objectiveService.DeleteObjective(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Objective deleted"})
}

// listHistory godoc
// @Summary List archived objective snapshots
// @Tags objectives
// @Produce json
// @Param employeeId query string false "Filter by employee (admin only)"
// @Success 200 {array} dto.ObjectiveHistoryResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /objectives/history [get]
func (h *objectiveHandler) listHistory(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	history, err := h.objectiveService.ListObjectiveHistory(c.Request.Context(), actor, c.Query("employeeId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToObjectiveHistoryResponses(history))
}
