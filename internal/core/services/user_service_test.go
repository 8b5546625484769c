package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/velorent/insurance_sales_app/internal/apperrors"
	"github.com/velorent/insurance_sales_app/internal/core/domain"
	portssvc "github.com/velorent/insurance_sales_app/internal/core/ports/services"
	"github.com/velorent/insurance_sales_app/internal/core/services"
	"github.com/velorent/insurance_sales_app/internal/dto"
	"github.com/velorent/insurance_sales_app/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	userRepo *MockUserRepository
	typeRepo *MockInsuranceTypeRepository
	sender   *MockEmailSender
	service  portssvc.UserSvcFacade
	ctx      context.Context

	admin    domain.Actor
	employee domain.Actor
}

func (s *UserServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.typeRepo = new(MockInsuranceTypeRepository)
	s.sender = new(MockEmailSender)
	s.service = services.NewUserService(s.userRepo, s.typeRepo, s.sender)
	s.ctx = context.Background()

	s.admin = domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin}
	s.employee = domain.Actor{UserID: "emp-1", Role: domain.RoleEmployee}
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestCreateUserRequiresAdmin() {
	_, err := s.service.CreateUser(s.ctx, s.employee, dto.CreateUserRequest{
		Username: "new", Name: "New", Password: "ChangeMe123!", Role: "EMPLOYEE",
	})
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.userRepo.AssertNotCalled(s.T(), "CreateUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestCreateUserLowercasesUsername() {
	s.userRepo.On("CreateUser", s.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "julie" && u.Role == domain.RoleEmployee && u.IsActive
	})).Return(domain.User{UserID: "u1", Username: "julie", Name: "Julie"}, nil)

	created, err := s.service.CreateUser(s.ctx, s.admin, dto.CreateUserRequest{
		Username: "  JULIE ", Name: "Julie", Password: "ChangeMe123!", Role: "EMPLOYEE",
	})
	s.NoError(err)
	s.Equal("julie", created.Username)
}

func (s *UserServiceTestSuite) TestCreateUserReportsAllPasswordFailures() {
	_, err := s.service.CreateUser(s.ctx, s.admin, dto.CreateUserRequest{
		Username: "weak", Name: "Weak", Password: "short", Role: "EMPLOYEE",
	})

	var vErr *apperrors.ValidationError
	s.ErrorAs(err, &vErr)
	s.Contains(vErr.Fields["password"], "8 characters")
	s.Contains(vErr.Fields["password"], "uppercase")
	s.Contains(vErr.Fields["password"], "digit")
	s.Contains(vErr.Fields["password"], "symbol")
}

func (s *UserServiceTestSuite) TestCreateUserDuplicateUsername() {
	s.userRepo.On("CreateUser", s.ctx, mock.Anything).
		Return(domain.User{}, apperrors.ErrDuplicate)

	_, err := s.service.CreateUser(s.ctx, s.admin, dto.CreateUserRequest{
		Username: "taken", Name: "Taken", Password: "ChangeMe123!", Role: "EMPLOYEE",
	})

	var vErr *apperrors.ValidationError
	s.ErrorAs(err, &vErr)
	s.Contains(vErr.Fields, "username")
}

func (s *UserServiceTestSuite) TestCreateUserSendsWelcomeEmail() {
	s.userRepo.On("CreateUser", s.ctx, mock.Anything).
		Return(domain.User{UserID: "u1", Username: "julie@velorent.example", Name: "Julie"}, nil)
	s.sender.On("Send", s.ctx, "julie@velorent.example", "Welcome aboard", mock.Anything).Return(nil)

	_, err := s.service.CreateUser(s.ctx, s.admin, dto.CreateUserRequest{
		Username: "julie@velorent.example", Name: "Julie", Password: "ChangeMe123!", Role: "EMPLOYEE",
	})
	s.NoError(err)
	s.sender.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestGetUserByIDScoping() {
	s.userRepo.On("GetUserByID", s.ctx, "emp-1").
		Return(domain.User{UserID: "emp-1"}, nil)

	// Own record is fine.
	_, err := s.service.GetUserByID(s.ctx, s.employee, "emp-1")
	s.NoError(err)

	// Someone else's is refused before the repository is hit.
	_, err = s.service.GetUserByID(s.ctx, s.employee, "emp-2")
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.userRepo.AssertNotCalled(s.T(), "GetUserByID", s.ctx, "emp-2")
}

func (s *UserServiceTestSuite) TestUpdateUserDemoteLastAdminRefused() {
	s.userRepo.On("GetUserByID", s.ctx, "admin-1").
		Return(domain.User{UserID: "admin-1", Role: domain.RoleAdmin, IsActive: true}, nil)
	s.userRepo.On("CountActiveAdmins", s.ctx).Return(1, nil)

	role := "EMPLOYEE"
	_, err := s.service.UpdateUser(s.ctx, s.admin, "admin-1", dto.UpdateUserRequest{Role: &role})

	var vErr *apperrors.ValidationError
	s.ErrorAs(err, &vErr)
	s.Contains(vErr.Fields, "role")
	s.userRepo.AssertNotCalled(s.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestUpdateUserDeactivateLastAdminRefused() {
	s.userRepo.On("GetUserByID", s.ctx, "admin-1").
		Return(domain.User{UserID: "admin-1", Role: domain.RoleAdmin, IsActive: true}, nil)
	s.userRepo.On("CountActiveAdmins", s.ctx).Return(1, nil)

	inactive := false
	_, err := s.service.UpdateUser(s.ctx, s.admin, "admin-1", dto.UpdateUserRequest{IsActive: &inactive})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *UserServiceTestSuite) TestUpdateUserDemoteWithAnotherAdmin() {
	s.userRepo.On("GetUserByID", s.ctx, "admin-2").
		Return(domain.User{UserID: "admin-2", Name: "Second", Role: domain.RoleAdmin, IsActive: true}, nil)
	s.userRepo.On("CountActiveAdmins", s.ctx).Return(2, nil)
	s.userRepo.On("UpdateUser", s.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleEmployee
	})).Return(domain.User{UserID: "admin-2", Role: domain.RoleEmployee}, nil)

	role := "EMPLOYEE"
	updated, err := s.service.UpdateUser(s.ctx, s.admin, "admin-2", dto.UpdateUserRequest{Role: &role})
	s.NoError(err)
	s.Equal(domain.RoleEmployee, updated.Role)
}

func (s *UserServiceTestSuite) TestDeleteUserSelfRefused() {
	err := s.service.DeleteUser(s.ctx, s.admin, "admin-1")

	var vErr *apperrors.ValidationError
	s.ErrorAs(err, &vErr)
	s.userRepo.AssertNotCalled(s.T(), "DeleteUser", mock.Anything, mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestDeleteLastActiveAdminRefused() {
	s.userRepo.On("GetUserByID", s.ctx, "admin-2").
		Return(domain.User{UserID: "admin-2", Role: domain.RoleAdmin, IsActive: true}, nil)
	s.userRepo.On("CountActiveAdmins", s.ctx).Return(1, nil)

	err := s.service.DeleteUser(s.ctx, s.admin, "admin-2")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *UserServiceTestSuite) TestDeleteEmployee() {
	s.userRepo.On("GetUserByID", s.ctx, "emp-1").
		Return(domain.User{UserID: "emp-1", Role: domain.RoleEmployee, IsActive: true}, nil)
	s.userRepo.On("DeleteUser", s.ctx, "emp-1", "admin-1").Return(nil)

	err := s.service.DeleteUser(s.ctx, s.admin, "emp-1")
	s.NoError(err)
	s.userRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestChangePasswordWrongCurrent() {
	hash, err := utils.HashPassword("Correct123!")
	s.Require().NoError(err)

	s.userRepo.On("GetUserByID", s.ctx, "emp-1").
		Return(domain.User{UserID: "emp-1", PasswordHash: hash}, nil)

	err = s.service.ChangePassword(s.ctx, s.employee, "Wrong123!", "NewPass123!")

	var vErr *apperrors.ValidationError
	s.ErrorAs(err, &vErr)
	s.Contains(vErr.Fields, "currentPassword")
}

func (s *UserServiceTestSuite) TestChangePassword() {
	hash, err := utils.HashPassword("Correct123!")
	s.Require().NoError(err)

	s.userRepo.On("GetUserByID", s.ctx, "emp-1").
		Return(domain.User{UserID: "emp-1", PasswordHash: hash}, nil)
	s.userRepo.On("UpdatePasswordHash", s.ctx, "emp-1", mock.Anything, "emp-1").Return(nil)

	err = s.service.ChangePassword(s.ctx, s.employee, "Correct123!", "NewPass123!")
	s.NoError(err)
	s.userRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestResetPasswordNotifies() {
	s.userRepo.On("GetUserByID", s.ctx, "u1").
		Return(domain.User{UserID: "u1", Username: "julie@velorent.example"}, nil)
	s.userRepo.On("UpdatePasswordHash", s.ctx, "u1", mock.Anything, "admin-1").Return(nil)
	s.sender.On("Send", s.ctx, "julie@velorent.example", "Your password was reset", mock.Anything).Return(nil)

	err := s.service.ResetPassword(s.ctx, s.admin, "u1", "NewPass123!")
	s.NoError(err)
	s.sender.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestSeedDefaultsIsIdempotent() {
	// Everything already exists, so nothing is created.
	s.userRepo.On("GetUserByUsername", s.ctx, "admin").
		Return(domain.User{UserID: "u-admin", Username: "admin"}, nil)
	s.typeRepo.On("GetInsuranceTypeByName", s.ctx, mock.Anything).
		Return(domain.InsuranceType{InsuranceTypeID: "t"}, nil)

	result, err := s.service.SeedDefaults(s.ctx, s.admin)
	s.NoError(err)
	s.Empty(result.UsersCreated)
	s.Empty(result.InsuranceTypesCreated)
	s.userRepo.AssertNotCalled(s.T(), "CreateUser", mock.Anything, mock.Anything)
	s.typeRepo.AssertNotCalled(s.T(), "CreateInsuranceType", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestSeedDefaultsFreshInstall() {
	s.userRepo.On("GetUserByUsername", s.ctx, "admin").
		Return(domain.User{}, apperrors.ErrNotFound)
	s.userRepo.On("CreateUser", s.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "admin" && u.Role == domain.RoleAdmin
	})).Return(domain.User{UserID: "u-admin"}, nil)

	s.typeRepo.On("GetInsuranceTypeByName", s.ctx, mock.Anything).
		Return(domain.InsuranceType{}, apperrors.ErrNotFound)
	s.typeRepo.On("CreateInsuranceType", s.ctx, mock.Anything).
		Return(domain.InsuranceType{}, nil)

	result, err := s.service.SeedDefaults(s.ctx, s.admin)
	s.NoError(err)
	s.Equal([]string{"admin"}, result.UsersCreated)
	s.Len(result.InsuranceTypesCreated, 4)
}
