package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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

// --- Mock SaleService ---
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) CreateSale(ctx context.Context, actor domain.Actor, req dto.CreateSaleRequest) (domain.Sale, error) {
	args := m.Called(ctx, actor, req)
	return args.Get(0).(domain.Sale), args.Error(1)
}

func (m *MockSaleService) GetSaleByID(ctx context.Context, actor domain.Actor, saleID string) (domain.Sale, error) {
	args := m.Called(ctx, actor, saleID)
	return args.Get(0).(domain.Sale), args.Error(1)
}

func (m *MockSaleService) ListSales(ctx context.Context, actor domain.Actor, q dto.ListSalesQuery) ([]domain.Sale, error) {
	args := m.Called(ctx, actor, q)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	return sales, args.Error(1)
}

func (m *MockSaleService) UpdateSale(ctx context.Context, actor domain.Actor, saleID string, req dto.UpdateSaleRequest) (domain.Sale, error) {
	args := m.Called(ctx, actor, saleID, req)
	return args.Get(0).(domain.Sale), args.Error(1)
}

func (m *MockSaleService) CancelSale(ctx context.Context, actor domain.Actor, saleID string) error {
	args := m.Called(ctx, actor, saleID)
	return args.Error(0)
}

var _ portssvc.SaleSvcFacade = (*MockSaleService)(nil)

// --- Test Suite ---
type SaleHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	saleSvc   *MockSaleService
	jwtSecret string
}

func (suite *SaleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.saleSvc = new(MockSaleService)

	cfg := &config.Config{
		JWTSecret:      suite.jwtSecret,
		LoginRateLimit: "5-M",
		IsProduction:   true, // keeps swagger routes out of the test router
	}
	services := &portssvc.ServiceContainer{SaleSvc: suite.saleSvc}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services, events.NewHub())
}

func TestSaleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SaleHandlerTestSuite))
}

func (suite *SaleHandlerTestSuite) token(userID string, role domain.UserRole) string {
	signed, err := utils.GenerateJWT(userID, string(role), suite.jwtSecret, 60)
	suite.Require().NoError(err)
	return signed
}

func (suite *SaleHandlerTestSuite) doJSON(method, url, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SaleHandlerTestSuite) TestCreateSaleSuccess() {
	body := dto.CreateSaleRequest{
		ClientName:        "Alice Martin",
		ReservationNumber: "RES-1001",
		InsuranceTypeIDs:  []string{"t1"},
		SaleDate:          "2025-01-15",
	}
	created := domain.Sale{
		SaleID:           "sale-1",
		EmployeeID:       "emp-1",
		ClientName:       "Alice Martin",
		CommissionAmount: decimal.RequireFromString("15.00"),
		Status:           domain.SaleStatusActive,
	}

	suite.saleSvc.On("CreateSale",
		mock.Anything,
		domain.Actor{UserID: "emp-1", Role: domain.RoleEmployee},
		mock.MatchedBy(func(req dto.CreateSaleRequest) bool {
			return req.ReservationNumber == "RES-1001"
		}),
	).Return(created, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/sales", suite.token("emp-1", domain.RoleEmployee), body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.SaleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("sale-1", resp.SaleID)
	suite.saleSvc.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestCreateSaleValidationErrorExposesFields() {
	body := dto.CreateSaleRequest{
		ClientName:        "X",
		ReservationNumber: "RES-1001",
		InsuranceTypeIDs:  []string{"t1"},
		SaleDate:          "2025-01-15",
	}
	suite.saleSvc.On("CreateSale", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Sale{}, apperrors.NewValidationError(map[string]string{
			"clientName": "client name must be between 2 and 100 characters",
		})).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/sales", suite.token("emp-1", domain.RoleEmployee), body)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp dto.ValidationErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp.Fields, "clientName")
}

func (suite *SaleHandlerTestSuite) TestCreateSaleMissingBodyFields() {
	w := suite.doJSON(http.MethodPost, "/api/v1/sales", suite.token("emp-1", domain.RoleEmployee), map[string]any{
		"clientName": "Alice Martin",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.saleSvc.AssertNotCalled(suite.T(), "CreateSale", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleHandlerTestSuite) TestGetSaleForbidden() {
	suite.saleSvc.On("GetSaleByID", mock.Anything, mock.Anything, "sale-1").
		Return(domain.Sale{}, apperrors.ErrForbidden).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/sales/sale-1", suite.token("emp-1", domain.RoleEmployee), nil)

	suite.Equal(http.StatusForbidden, w.Code)
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Access refused", resp.Error)
}

func (suite *SaleHandlerTestSuite) TestGetSaleNotFound() {
	suite.saleSvc.On("GetSaleByID", mock.Anything, mock.Anything, "nope").
		Return(domain.Sale{}, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/sales/nope", suite.token("emp-1", domain.RoleEmployee), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SaleHandlerTestSuite) TestListSalesBindsQuery() {
	suite.saleSvc.On("ListSales",
		mock.Anything,
		domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin},
		dto.ListSalesQuery{EmployeeID: "emp-1", From: "2025-01-01", To: "2025-01-31", Status: "ACTIVE"},
	).Return([]domain.Sale{}, nil).Once()

	url := "/api/v1/sales?employeeId=emp-1&from=2025-01-01&to=2025-01-31&status=ACTIVE"
	w := suite.doJSON(http.MethodGet, url, suite.token("admin-1", domain.RoleAdmin), nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.saleSvc.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestListSalesRejectsBadStatus() {
	w := suite.doJSON(http.MethodGet, "/api/v1/sales?status=WRONG", suite.token("emp-1", domain.RoleEmployee), nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *SaleHandlerTestSuite) TestCancelSale() {
	suite.saleSvc.On("CancelSale", mock.Anything, mock.Anything, "sale-1").Return(nil).Once()

	w := suite.doJSON(http.MethodDelete, "/api/v1/sales/sale-1", suite.token("emp-1", domain.RoleEmployee), nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *SaleHandlerTestSuite) TestRequestsWithoutTokenRefused() {
	w := suite.doJSON(http.MethodGet, "/api/v1/sales", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.saleSvc.AssertNotCalled(suite.T(), "ListSales", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleHandlerTestSuite) TestExpiredTokenRefused() {
	signed, err := utils.GenerateJWT("emp-1", string(domain.RoleEmployee), suite.jwtSecret, -5)
	suite.Require().NoError(err)

	w := suite.doJSON(http.MethodGet, "/api/v1/sales", signed, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}
