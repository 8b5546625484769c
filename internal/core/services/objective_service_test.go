package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/velorent/insurance_sales_app/internal/apperrors"
	"github.com/velorent/insurance_sales_app/internal/core/domain"
	portsrepo "github.com/velorent/insurance_sales_app/internal/core/ports/repositories"
	portssvc "github.com/velorent/insurance_sales_app/internal/core/ports/services"
	"github.com/velorent/insurance_sales_app/internal/core/services"
	"github.com/velorent/insurance_sales_app/internal/dto"
)

type ObjectiveServiceTestSuite struct {
	suite.Suite
	objectiveRepo *MockObjectiveRepository
	userRepo      *MockUserRepository
	saleRepo      *MockSaleRepository
	service       portssvc.ObjectiveSvcFacade
	ctx           context.Context

	admin    domain.Actor
	employee domain.Actor
}

func (s *ObjectiveServiceTestSuite) SetupTest() {
	s.objectiveRepo = new(MockObjectiveRepository)
	s.userRepo = new(MockUserRepository)
	s.saleRepo = new(MockSaleRepository)
	s.service = services.NewObjectiveService(s.objectiveRepo, s.userRepo, s.saleRepo)
	s.ctx = context.Background()

	s.admin = domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin}
	s.employee = domain.Actor{UserID: "emp-1", Role: domain.RoleEmployee}
}

func TestObjectiveServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ObjectiveServiceTestSuite))
}

func (s *ObjectiveServiceTestSuite) validCreateRequest() dto.CreateObjectiveRequest {
	return dto.CreateObjectiveRequest{
		EmployeeID:       "emp-1",
		Type:             "MONTHLY",
		TargetAmount:     decimal.RequireFromString("500"),
		TargetSalesCount: 20,
		PeriodStart:      "2025-06-01",
		PeriodEnd:        "2025-06-30",
	}
}

func (s *ObjectiveServiceTestSuite) TestCreateObjectiveRequiresAdmin() {
	_, err := s.service.CreateObjective(s.ctx, s.employee, s.validCreateRequest())
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *ObjectiveServiceTestSuite) TestCreateObjectiveStretchesPeriodEnd() {
	s.userRepo.On("GetUserByID", s.ctx, "emp-1").
		Return(domain.User{UserID: "emp-1", Name: "Julie"}, nil)
	s.objectiveRepo.On("HasOverlappingObjective", s.ctx, "emp-1", mock.Anything, mock.Anything, "").
		Return(false, nil)
	s.objectiveRepo.On("CreateObjective", s.ctx, mock.MatchedBy(func(o domain.Objective) bool {
		// The inclusive end date covers the whole final day.
		return o.PeriodEnd.Hour() == 23 && o.PeriodEnd.Day() == 30 && o.IsActive
	})).Return(domain.Objective{ObjectiveID: "obj-1"}, nil)

	created, err := s.service.CreateObjective(s.ctx, s.admin, s.validCreateRequest())
	s.NoError(err)
	s.Equal("obj-1", created.ObjectiveID)
}

func (s *ObjectiveServiceTestSuite) TestCreateObjectiveRejectsOverlap() {
	s.userRepo.On("GetUserByID", s.ctx, "emp-1").
		Return(domain.User{UserID: "emp-1", Name: "Julie"}, nil)
	s.objectiveRepo.On("HasOverlappingObjective", s.ctx, "emp-1", mock.Anything, mock.Anything, "").
		Return(true, nil)

	_, err := s.service.CreateObjective(s.ctx, s.admin, s.validCreateRequest())

	var vErr *apperrors.ValidationError
	s.ErrorAs(err, &vErr)
	s.Contains(vErr.Fields, "periodStart")
	s.objectiveRepo.AssertNotCalled(s.T(), "CreateObjective", mock.Anything, mock.Anything)
}

func (s *ObjectiveServiceTestSuite) TestCreateObjectiveRejectsInvertedPeriod() {
	req := s.validCreateRequest()
	req.PeriodStart = "2025-07-01"
	req.PeriodEnd = "2025-06-01"

	s.userRepo.On("GetUserByID", s.ctx, "emp-1").
		Return(domain.User{UserID: "emp-1", Name: "Julie"}, nil)

	_, err := s.service.CreateObjective(s.ctx, s.admin, req)

	var vErr *apperrors.ValidationError
	s.ErrorAs(err, &vErr)
	s.Contains(vErr.Fields, "periodEnd")
}

func (s *ObjectiveServiceTestSuite) TestCurrentObjectivePicksMostRecentlyCreated() {
	at := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	// The repository returns creation-time descending.
	s.objectiveRepo.On("ListObjectivesContaining", s.ctx, "emp-1", at).
		Return([]domain.Objective{
			{ObjectiveID: "newer"},
			{ObjectiveID: "older"},
		}, nil)

	current, err := s.service.CurrentObjective(s.ctx, s.employee, "", at)
	s.NoError(err)
	s.Equal("newer", current.ObjectiveID)
}

func (s *ObjectiveServiceTestSuite) TestCurrentObjectiveNone() {
	at := time.Now()
	s.objectiveRepo.On("ListObjectivesContaining", s.ctx, "emp-1", at).
		Return([]domain.Objective{}, nil)

	_, err := s.service.CurrentObjective(s.ctx, s.employee, "", at)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ObjectiveServiceTestSuite) TestCurrentObjectiveForeignEmployeeRefused() {
	_, err := s.service.CurrentObjective(s.ctx, s.employee, "emp-2", time.Now())
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *ObjectiveServiceTestSuite) TestGetObjectiveByIDScoping() {
	objective := domain.Objective{ObjectiveID: "obj-1", EmployeeID: "emp-2"}
	s.objectiveRepo.On("GetObjectiveByID", s.ctx, "obj-1").Return(objective, nil)

	_, err := s.service.GetObjectiveByID(s.ctx, s.employee, "obj-1")
	s.ErrorIs(err, apperrors.ErrForbidden)

	got, err := s.service.GetObjectiveByID(s.ctx, s.admin, "obj-1")
	s.NoError(err)
	s.Equal("obj-1", got.ObjectiveID)
}

func (s *ObjectiveServiceTestSuite) TestArchiveObjectiveSnapshotsProgress() {
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC)
	objective := domain.Objective{
		ObjectiveID:      "obj-1",
		EmployeeID:       "emp-1",
		EmployeeName:     "Julie",
		TargetAmount:     decimal.RequireFromString("20"),
		TargetSalesCount: 1,
		PeriodStart:      start,
		PeriodEnd:        end,
		IsActive:         true,
	}

	s.objectiveRepo.On("GetObjectiveByID", s.ctx, "obj-1").Return(objective, nil)
	s.saleRepo.On("ListSales", s.ctx, mock.MatchedBy(func(f portsrepo.SaleFilter) bool {
		return f.EmployeeID == "emp-1" && f.Status == domain.SaleStatusActive
	})).Return([]domain.Sale{
		{
			EmployeeID:       "emp-1",
			CommissionAmount: decimal.RequireFromString("25"),
			Status:           domain.SaleStatusActive,
			SaleDate:         time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		},
	}, nil)
	s.objectiveRepo.On("CreateObjectiveHistory", s.ctx, mock.MatchedBy(func(h domain.ObjectiveHistory) bool {
		return h.ObjectiveID == "obj-1" &&
			h.AchievedAmount.Equal(decimal.RequireFromString("25")) &&
			h.AchievedSalesCount == 1 &&
			h.Achieved
	})).Return(domain.ObjectiveHistory{HistoryID: "hist-1", Achieved: true}, nil)
	s.objectiveRepo.On("UpdateObjective", s.ctx, mock.MatchedBy(func(o domain.Objective) bool {
		return !o.IsActive
	})).Return(objective, nil)

	history, err := s.service.ArchiveObjective(s.ctx, s.admin, "obj-1")
	s.NoError(err)
	s.True(history.Achieved)
	s.objectiveRepo.AssertExpectations(s.T())
}

func (s *ObjectiveServiceTestSuite) TestArchiveObjectiveMissedTarget() {
	objective := domain.Objective{
		ObjectiveID:      "obj-1",
		EmployeeID:       "emp-1",
		TargetAmount:     decimal.RequireFromString("100"),
		TargetSalesCount: 5,
		PeriodStart:      time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:        time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC),
		IsActive:         true,
	}

	s.objectiveRepo.On("GetObjectiveByID", s.ctx, "obj-1").Return(objective, nil)
	s.saleRepo.On("ListSales", s.ctx, mock.Anything).Return([]domain.Sale{}, nil)
	s.objectiveRepo.On("CreateObjectiveHistory", s.ctx, mock.MatchedBy(func(h domain.ObjectiveHistory) bool {
		return !h.Achieved && h.AchievedSalesCount == 0
	})).Return(domain.ObjectiveHistory{HistoryID: "hist-1"}, nil)
	s.objectiveRepo.On("UpdateObjective", s.ctx, mock.Anything).Return(objective, nil)

	_, err := s.service.ArchiveObjective(s.ctx, s.admin, "obj-1")
	s.NoError(err)
}

func (s *ObjectiveServiceTestSuite) TestArchiveObjectiveAlreadyArchived() {
	s.objectiveRepo.On("GetObjectiveByID", s.ctx, "obj-1").
		Return(domain.Objective{ObjectiveID: "obj-1", IsActive: false}, nil)

	_, err := s.service.ArchiveObjective(s.ctx, s.admin, "obj-1")

	var vErr *apperrors.ValidationError
	s.ErrorAs(err, &vErr)
	s.objectiveRepo.AssertNotCalled(s.T(), "CreateObjectiveHistory", mock.Anything, mock.Anything)
}

func (s *ObjectiveServiceTestSuite) TestListObjectiveHistoryScoped() {
	s.objectiveRepo.On("ListObjectiveHistory", s.ctx, "emp-1").
		Return([]domain.ObjectiveHistory{{HistoryID: "h1"}}, nil)

	history, err := s.service.ListObjectiveHistory(s.ctx, s.employee, "")
	s.NoError(err)
	s.Len(history, 1)

	_, err = s.service.ListObjectiveHistory(s.ctx, s.employee, "emp-2")
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *ObjectiveServiceTestSuite) TestUpdateObjectiveReChecksOverlapOnPeriodChange() {
	objective := domain.Objective{
		ObjectiveID: "obj-1",
		EmployeeID:  "emp-1",
		PeriodStart: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC),
		IsActive:    true,
	}
	s.objectiveRepo.On("GetObjectiveByID", s.ctx, "obj-1").Return(objective, nil)
	s.objectiveRepo.On("HasOverlappingObjective", s.ctx, "emp-1", mock.Anything, mock.Anything, "obj-1").
		Return(true, nil)

	newEnd := "2025-07-15"
	_, err := s.service.UpdateObjective(s.ctx, s.admin, "obj-1", dto.UpdateObjectiveRequest{PeriodEnd: &newEnd})

	var vErr *apperrors.ValidationError
	s.ErrorAs(err, &vErr)
	s.objectiveRepo.AssertNotCalled(s.T(), "UpdateObjective", mock.Anything, mock.Anything)
}
