package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
	portsrepo "github.com/velorent/insurance_sales_app/internal/core/ports/repositories"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByProviderID(ctx context.Context, provider string, providerUserID string) (domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByRefreshTokenHash(ctx context.Context, refreshTokenHash string) (domain.User, error) {
	args := m.Called(ctx, refreshTokenHash)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, includeInactive bool) ([]domain.User, error) {
	args := m.Called(ctx, includeInactive)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string, updatedBy string) error {
	args := m.Called(ctx, userID, passwordHash, updatedBy)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string, deletedBy string) error {
	args := m.Called(ctx, userID, deletedBy)
	return args.Error(0)
}

func (m *MockUserRepository) CountActiveAdmins(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

// --- Mock SaleRepository ---

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) CreateSale(ctx context.Context, sale domain.Sale) (domain.Sale, error) {
	args := m.Called(ctx, sale)
	return args.Get(0).(domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) GetSaleByID(ctx context.Context, saleID string) (domain.Sale, error) {
	args := m.Called(ctx, saleID)
	return args.Get(0).(domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, filter portsrepo.SaleFilter) ([]domain.Sale, error) {
	args := m.Called(ctx, filter)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	return sales, args.Error(1)
}

func (m *MockSaleRepository) UpdateSale(ctx context.Context, sale domain.Sale) (domain.Sale, error) {
	args := m.Called(ctx, sale)
	return args.Get(0).(domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) CancelSale(ctx context.Context, saleID string, cancelledBy string) error {
	args := m.Called(ctx, saleID, cancelledBy)
	return args.Error(0)
}

func (m *MockSaleRepository) ReservationExists(ctx context.Context, reservationNumber string, excludeSaleID string) (bool, error) {
	args := m.Called(ctx, reservationNumber, excludeSaleID)
	return args.Bool(0), args.Error(1)
}

var _ portsrepo.SaleRepository = (*MockSaleRepository)(nil)

// --- Mock InsuranceTypeRepository ---

type MockInsuranceTypeRepository struct {
	mock.Mock
}

func (m *MockInsuranceTypeRepository) CreateInsuranceType(ctx context.Context, it domain.InsuranceType) (domain.InsuranceType, error) {
	args := m.Called(ctx, it)
	return args.Get(0).(domain.InsuranceType), args.Error(1)
}

func (m *MockInsuranceTypeRepository) GetInsuranceTypeByID(ctx context.Context, id string) (domain.InsuranceType, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.InsuranceType), args.Error(1)
}

func (m *MockInsuranceTypeRepository) GetInsuranceTypeByName(ctx context.Context, name string) (domain.InsuranceType, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.InsuranceType), args.Error(1)
}

func (m *MockInsuranceTypeRepository) GetInsuranceTypesByIDs(ctx context.Context, ids []string) ([]domain.InsuranceType, error) {
	args := m.Called(ctx, ids)
	var types []domain.InsuranceType
	if args.Get(0) != nil {
		types = args.Get(0).([]domain.InsuranceType)
	}
	return types, args.Error(1)
}

func (m *MockInsuranceTypeRepository) ListInsuranceTypes(ctx context.Context, includeInactive bool) ([]domain.InsuranceType, error) {
	args := m.Called(ctx, includeInactive)
	var types []domain.InsuranceType
	if args.Get(0) != nil {
		types = args.Get(0).([]domain.InsuranceType)
	}
	return types, args.Error(1)
}

func (m *MockInsuranceTypeRepository) UpdateInsuranceType(ctx context.Context, it domain.InsuranceType) (domain.InsuranceType, error) {
	args := m.Called(ctx, it)
	return args.Get(0).(domain.InsuranceType), args.Error(1)
}

func (m *MockInsuranceTypeRepository) DeleteInsuranceType(ctx context.Context, id string, deletedBy string) error {
	args := m.Called(ctx, id, deletedBy)
	return args.Error(0)
}

var _ portsrepo.InsuranceTypeRepository = (*MockInsuranceTypeRepository)(nil)

// --- Mock ObjectiveRepository ---

type MockObjectiveRepository struct {
	mock.Mock
}

func (m *MockObjectiveRepository) CreateObjective(ctx context.Context, o domain.Objective) (domain.Objective, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(domain.Objective), args.Error(1)
}

func (m *MockObjectiveRepository) GetObjectiveByID(ctx context.Context, objectiveID string) (domain.Objective, error) {
	args := m.Called(ctx, objectiveID)
	return args.Get(0).(domain.Objective), args.Error(1)
}

func (m *MockObjectiveRepository) ListObjectives(ctx context.Context, employeeID string, activeOnly bool) ([]domain.Objective, error) {
	args := m.Called(ctx, employeeID, activeOnly)
	var objectives []domain.Objective
	if args.Get(0) != nil {
		objectives = args.Get(0).([]domain.Objective)
	}
	return objectives, args.Error(1)
}

func (m *MockObjectiveRepository) ListObjectivesContaining(ctx context.Context, employeeID string, at time.Time) ([]domain.Objective, error) {
	args := m.Called(ctx, employeeID, at)
	var objectives []domain.Objective
	if args.Get(0) != nil {
		objectives = args.Get(0).([]domain.Objective)
	}
	return objectives, args.Error(1)
}

func (m *MockObjectiveRepository) HasOverlappingObjective(ctx context.Context, employeeID string, start, end time.Time, excludeObjectiveID string) (bool, error) {
	args := m.Called(ctx, employeeID, start, end, excludeObjectiveID)
	return args.Bool(0), args.Error(1)
}

func (m *MockObjectiveRepository) UpdateObjective(ctx context.Context, o domain.Objective) (domain.Objective, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(domain.Objective), args.Error(1)
}

func (m *MockObjectiveRepository) DeleteObjective(ctx context.Context, objectiveID string, deletedBy string) error {
	args := m.Called(ctx, objectiveID, deletedBy)
	return args.Error(0)
}

func (m *MockObjectiveRepository) CreateObjectiveHistory(ctx context.Context, h domain.ObjectiveHistory) (domain.ObjectiveHistory, error) {
	args := m.Called(ctx, h)
	return args.Get(0).(domain.ObjectiveHistory), args.Error(1)
}

func (m *MockObjectiveRepository) ListObjectiveHistory(ctx context.Context, employeeID string) ([]domain.ObjectiveHistory, error) {
	args := m.Called(ctx, employeeID)
	var history []domain.ObjectiveHistory
	if args.Get(0) != nil {
		history = args.Get(0).([]domain.ObjectiveHistory)
	}
	return history, args.Error(1)
}

var _ portsrepo.ObjectiveRepository = (*MockObjectiveRepository)(nil)

// --- Mock SaleEventPublisher ---

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(event domain.SaleEvent) {
	m.Called(event)
}

// --- Mock email Sender ---

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	args := m.Called(ctx, to, subject, htmlBody)
	return args.Error(0)
}
