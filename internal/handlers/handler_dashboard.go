package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/velorent/insurance_sales_app/internal/core/ports/services"
	"github.com/velorent/insurance_sales_app/internal/dto"
)

// dashboardHandler serves the aggregate endpoints behind the SPA dashboard.
type dashboardHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newDashboardHandler(rs portssvc.ReportingSvcFacade) *dashboardHandler {
	return &dashboardHandler{reportingService: rs}
}

// registerDashboardRoutes registers the reporting routes.
func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newDashboardHandler(reportingService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/summary", h.summary)
		dashboard.GET("/monthly", h.monthly)
		dashboard.GET("/by-insurance-type", h.byInsuranceType)
		dashboard.GET("/by-employee", h.byEmployee)   // Admin only
		dashboard.GET("/top-sellers", h.topSellers)   // Admin only
		dashboard.GET("/progress", h.progress)
	}
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter.
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + " date, expected YYYY-MM-DD"})
		return nil, false
	}
	return &t, true
}

// summary godoc
// @Summary Total commission, sale count and average for a period
// @Tags dashboard
// @Produce json
// @Param employeeId query string false "Employee (admin only; empty means everyone)"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *dashboardHandler) summary(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}

	summary, err := h.reportingService.Summary(c.Request.Context(), actor, c.Query("employeeId"), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// monthly godoc
// @Summary Trailing monthly commission buckets, oldest first
// @Tags dashboard
// @Produce json
// @Param employeeId query string false "Employee (admin only)"
// @Param months query int false "Number of trailing months (default 6)"
// @Success 200 {array} dto.MonthBucketResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /dashboard/monthly [get]
func (h *dashboardHandler) monthly(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	months, _ := strconv.Atoi(c.Query("months"))

	buckets, err := h.reportingService.MonthlyBreakdown(c.Request.Context(), actor, c.Query("employeeId"), months, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthBucketResponses(buckets))
}

// byInsuranceType godoc
// @Summary Current-month commission split by insurance type
// @Tags dashboard
// @Produce json
// @Param employeeId query string false "Employee (admin only)"
// @Success 200 {array} dto.TypeBreakdownResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /dashboard/by-insurance-type [get]
func (h *dashboardHandler) byInsuranceType(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	rows, err := h.reportingService.ByInsuranceType(c.Request.Context(), actor, c.Query("employeeId"), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTypeBreakdownResponses(rows))
}

// byEmployee godoc
// @Summary Commission rollup per employee
// @Tags dashboard
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.EmployeeSalesResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /dashboard/by-employee [get]
func (h *dashboardHandler) byEmployee(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}

	rows, err := h.reportingService.ByEmployee(c.Request.Context(), actor, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeSalesResponses(rows))
}

// topSellers godoc
// @Summary Leaderboard of the best-selling employees
// @Tags dashboard
// @Produce json
// @Param limit query int false "Maximum rows (default 5)"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.EmployeeSalesResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /dashboard/top-sellers [get]
func (h *dashboardHandler) topSellers(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	rows, err := h.reportingService.TopSellers(c.Request.Context(), actor, limit, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeSalesResponses(rows))
}

// progress godoc
// @Summary Progress toward the objective covering today
// @Tags dashboard
// @Produce json
// @Param employeeId query string false "Employee (admin only; defaults to the caller)"
// @Success 200 {object} dto.ObjectiveProgressResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "No objective covers today"
// @Security BearerAuth
// @Router /dashboard/progress [get]
func (h *dashboardHandler) progress(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	report, err := h.reportingService.ObjectiveProgress(c.Request.Context(), actor, c.Query("employeeId"), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToObjectiveProgressResponse(report))
}
