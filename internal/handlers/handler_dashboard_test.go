package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/velorent/insurance_sales_app/internal/apperrors"
	"github.com/velorent/insurance_sales_app/internal/core/domain"
	portssvc "github.com/velorent/insurance_sales_app/internal/core/ports/services"
	"github.com/velorent/insurance_sales_app/internal/dto"
	"github.com/velorent/insurance_sales_app/internal/events"
	"github.com/velorent/insurance_sales_app/internal/handlers"
	"github.com/velorent/insurance_sales_app/internal/platform/config"
	"github.com/velorent/insurance_sales_app/internal/utils"
)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Summary(ctx context.Context, actor domain.Actor, employeeID string, from, to *time.Time) (domain.SalesSummary, error) {
	args := m.Called(ctx, actor, employeeID, from, to)
	return args.Get(0).(domain.SalesSummary), args.Error(1)
}

func (m *MockReportingService) MonthlyBreakdown(ctx context.Context, actor domain.Actor, employeeID string, months int, now time.Time) ([]domain.MonthBucket, error) {
	args := m.Called(ctx, actor, employeeID, months, now)
	var buckets []domain.MonthBucket
	if args.Get(0) != nil {
		buckets = args.Get(0).([]domain.MonthBucket)
	}
	return buckets, args.Error(1)
}

func (m *MockReportingService) ByInsuranceType(ctx context.Context, actor domain.Actor, employeeID string, now time.Time) ([]domain.InsuranceTypeBreakdown, error) {
	args := m.Called(ctx, actor, employeeID, now)
	var rows []domain.InsuranceTypeBreakdown
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.InsuranceTypeBreakdown)
	}
	return rows, args.Error(1)
}

func (m *MockReportingService) ByEmployee(ctx context.Context, actor domain.Actor, from, to *time.Time) ([]domain.EmployeeSales, error) {
	args := m.Called(ctx, actor, from, to)
	var rows []domain.EmployeeSales
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.EmployeeSales)
	}
	return rows, args.Error(1)
}

func (m *MockReportingService) TopSellers(ctx context.Context, actor domain.Actor, limit int, from, to *time.Time) ([]domain.EmployeeSales, error) {
	args := m.Called(ctx, actor, limit, from, to)
	var rows []domain.EmployeeSales
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.EmployeeSales)
	}
	return rows, args.Error(1)
}

func (m *MockReportingService) ObjectiveProgress(ctx context.Context, actor domain.Actor, employeeID string, now time.Time) (domain.ObjectiveProgress, error) {
	args := m.Called(ctx, actor, employeeID, now)
	return args.Get(0).(domain.ObjectiveProgress), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Test Suite ---
type DashboardHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	reportingSvc *MockReportingService
	jwtSecret    string
}

func (suite *DashboardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.reportingSvc = new(MockReportingService)

	cfg := &config.Config{
		JWTSecret:      suite.jwtSecret,
		LoginRateLimit: "5-M",
		IsProduction:   true,
	}
	services := &portssvc.ServiceContainer{ReportingSvc: suite.reportingSvc}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services, events.NewHub())
}

func TestDashboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

func (suite *DashboardHandlerTestSuite) get(url, userID string, role domain.UserRole) *httptest.ResponseRecorder {
	token, err := utils.GenerateJWT(userID, string(role), suite.jwtSecret, 60)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *DashboardHandlerTestSuite) TestSummary() {
	suite.reportingSvc.On("Summary",
		mock.Anything,
		domain.Actor{UserID: "emp-1", Role: domain.RoleEmployee},
		"", (*time.Time)(nil), (*time.Time)(nil),
	).Return(domain.SalesSummary{
		TotalCommission: decimal.RequireFromString("30"),
		SaleCount:       2,
		AverageAmount:   decimal.RequireFromString("15"),
	}, nil).Once()

	w := suite.get("/api/v1/dashboard/summary", "emp-1", domain.RoleEmployee)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(2, resp.SaleCount)
	suite.True(resp.TotalCommission.Equal(decimal.RequireFromString("30")))
}

func (suite *DashboardHandlerTestSuite) TestSummaryParsesDates() {
	suite.reportingSvc.On("Summary",
		mock.Anything, mock.Anything, "emp-1",
		mock.MatchedBy(func(from *time.Time) bool {
			return from != nil && from.Format("2006-01-02") == "2025-06-01"
		}),
		mock.MatchedBy(func(to *time.Time) bool {
			return to != nil && to.Format("2006-01-02") == "2025-06-30"
		}),
	).Return(domain.SalesSummary{}, nil).Once()

	w := suite.get("/api/v1/dashboard/summary?employeeId=emp-1&from=2025-06-01&to=2025-06-30", "admin-1", domain.RoleAdmin)
	suite.Equal(http.StatusOK, w.Code)
	suite.reportingSvc.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestSummaryRejectsBadDate() {
	w := suite.get("/api/v1/dashboard/summary?from=June-1st", "emp-1", domain.RoleEmployee)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.reportingSvc.AssertNotCalled(suite.T(), "Summary",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DashboardHandlerTestSuite) TestTopSellersForbiddenForEmployees() {
	suite.reportingSvc.On("TopSellers",
		mock.Anything, domain.Actor{UserID: "emp-1", Role: domain.RoleEmployee},
		0, (*time.Time)(nil), (*time.Time)(nil),
	).Return(nil, apperrors.ErrForbidden).Once()

	w := suite.get("/api/v1/dashboard/top-sellers", "emp-1", domain.RoleEmployee)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *DashboardHandlerTestSuite) TestProgressNoObjective() {
	suite.reportingSvc.On("ObjectiveProgress",
		mock.Anything, mock.Anything, "", mock.Anything,
	).Return(domain.ObjectiveProgress{}, apperrors.ErrNotFound).Once()

	w := suite.get("/api/v1/dashboard/progress", "emp-1", domain.RoleEmployee)
	suite.Equal(http.StatusNotFound, w.Code)
}
