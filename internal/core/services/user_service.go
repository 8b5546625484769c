package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velorent/insurance_sales_app/internal/apperrors"
	"github.com/velorent/insurance_sales_app/internal/core/domain"
	portsrepo "github.com/velorent/insurance_sales_app/internal/core/ports/repositories"
	portssvc "github.com/velorent/insurance_sales_app/internal/core/ports/services"
	"github.com/velorent/insurance_sales_app/internal/dto"
	"github.com/velorent/insurance_sales_app/internal/providers/email"
	"github.com/velorent/insurance_sales_app/internal/utils"
)

// systemUserID stamps audit fields for rows created by the application
// itself rather than a person.
const systemUserID = "system"

type userService struct {
	BaseService
	accessPolicy
	userRepo          portsrepo.UserRepository
	insuranceTypeRepo portsrepo.InsuranceTypeRepository
	emailSender       email.Sender
}

// NewUserService builds the user service. The insurance type repository is
// needed because the default-data seed also populates the catalog.
func NewUserService(userRepo portsrepo.UserRepository, insuranceTypeRepo portsrepo.InsuranceTypeRepository, emailSender email.Sender) portssvc.UserSvcFacade {
	if emailSender == nil {
		emailSender = email.NoopSender{}
	}
	return &userService{
		userRepo:          userRepo,
		insuranceTypeRepo: insuranceTypeRepo,
		emailSender:       emailSender,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (domain.User, error) {
	if err := s.requireAdmin(actor); err != nil {
		return domain.User{}, err
	}

	fields := map[string]string{}
	username := strings.TrimSpace(strings.ToLower(req.Username))
	if username == "" {
		fields["username"] = "username is required"
	}
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "name is required"
	}
	if failures := utils.ValidatePasswordStrength(req.Password); len(failures) > 0 {
		fields["password"] = strings.Join(failures, "; ")
	}
	if len(fields) > 0 {
		return domain.User{}, apperrors.NewValidationError(fields)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Name:         strings.TrimSpace(req.Name),
		Role:         domain.UserRole(req.Role),
		IsActive:     true,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return domain.User{}, apperrors.NewValidationError(map[string]string{"username": "username is already taken"})
		}
		s.LogError(ctx, err, "Failed to create user")
		return domain.User{}, err
	}
	s.LogInfo(ctx, "User created", "new_user_id", created.UserID, "role", string(created.Role))

	s.notify(ctx, created.Username, "Welcome aboard",
		fmt.Sprintf("<p>Hi %s, your sales tracking account is ready.</p>", created.Name))

	return created, nil
}

func (s *userService) GetUserByID(ctx context.Context, actor domain.Actor, userID string) (domain.User, error) {
	// Employees may look up their own record only.
	if !s.canAccessEmployee(actor, userID) {
		return domain.User{}, apperrors.ErrForbidden
	}
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) ListUsers(ctx context.Context, actor domain.Actor, includeInactive bool) ([]domain.User, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.userRepo.ListUsers(ctx, includeInactive)
}

func (s *userService) UpdateUser(ctx context.Context, actor domain.Actor, userID string, req dto.UpdateUserRequest) (domain.User, error) {
	if err := s.requireAdmin(actor); err != nil {
		return domain.User{}, err
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	demoting := req.Role != nil && domain.UserRole(*req.Role) != domain.RoleAdmin && user.Role == domain.RoleAdmin
	deactivating := req.IsActive != nil && !*req.IsActive && user.IsActive
	if user.Role == domain.RoleAdmin && (demoting || deactivating) {
		if err := s.ensureAnotherActiveAdmin(ctx); err != nil {
			return domain.User{}, err
		}
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return domain.User{}, apperrors.NewValidationError(map[string]string{"name": "name is required"})
		}
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		user.Role = domain.UserRole(*req.Role)
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = actor.UserID

	updated, err := s.userRepo.UpdateUser(ctx, user)
	if err != nil {
		s.LogError(ctx, err, "Failed to update user", "target_user_id", userID)
		return domain.User{}, err
	}
	return updated, nil
}

func (s *userService) ResetPassword(ctx context.Context, actor domain.Actor, userID string, newPassword string) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}
	if failures := utils.ValidatePasswordStrength(newPassword); len(failures) > 0 {
		return apperrors.NewValidationError(map[string]string{"newPassword": strings.Join(failures, "; ")})
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePasswordHash(ctx, userID, hash, actor.UserID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Password reset", "target_user_id", userID)

	s.notify(ctx, user.Username, "Your password was reset",
		"<p>An administrator has reset your password. Contact them if this is unexpected.</p>")
	return nil
}

func (s *userService) ChangePassword(ctx context.Context, actor domain.Actor, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByID(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.NewValidationError(map[string]string{"currentPassword": "current password is incorrect"})
	}
	if failures := utils.ValidatePasswordStrength(newPassword); len(failures) > 0 {
		return apperrors.NewValidationError(map[string]string{"newPassword": strings.Join(failures, "; ")})
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.UpdatePasswordHash(ctx, actor.UserID, hash, actor.UserID)
}

func (s *userService) DeleteUser(ctx context.Context, actor domain.Actor, userID string) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}
	// Nobody deletes themselves; it is too easy to lock everyone out.
	if userID == actor.UserID {
		return apperrors.NewValidationError(map[string]string{"userID": "you cannot delete your own account"})
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role == domain.RoleAdmin && user.IsActive {
		if err := s.ensureAnotherActiveAdmin(ctx); err != nil {
			return err
		}
	}

	if err := s.userRepo.DeleteUser(ctx, userID, actor.UserID); err != nil {
		return err
	}
	s.LogInfo(ctx, "User deleted", "target_user_id", userID)
	return nil
}

// ensureAnotherActiveAdmin refuses operations that would leave the system
// without a single active administrator.
func (s *userService) ensureAnotherActiveAdmin(ctx context.Context) error {
	count, err := s.userRepo.CountActiveAdmins(ctx)
	if err != nil {
		return err
	}
	if count <= 1 {
		return apperrors.NewValidationError(map[string]string{"role": "at least one active admin must remain"})
	}
	return nil
}

// defaultUsers and defaultInsuranceTypes are the bootstrap dataset for a
// fresh install. Seeding is idempotent: existing rows are left alone.
var defaultUsers = []struct {
	Username string
	Name     string
	Role     domain.UserRole
	Password string
}{
	{Username: "admin", Name: "Administrator", Role: domain.RoleAdmin, Password: "ChangeMe123!"},
}

var defaultInsuranceTypes = []struct {
	Name       string
	Commission string
}{
	{Name: "Full Protection", Commission: "15.00"},
	{Name: "Windshield & Tires", Commission: "8.00"},
	{Name: "Personal Accident", Commission: "10.00"},
	{Name: "Third Party Extension", Commission: "12.00"},
}

func (s *userService) SeedDefaults(ctx context.Context, actor domain.Actor) (dto.SeedDefaultsResponse, error) {
	if err := s.requireAdmin(actor); err != nil {
		return dto.SeedDefaultsResponse{}, err
	}

	result := dto.SeedDefaultsResponse{
		UsersCreated:          []string{},
		InsuranceTypesCreated: []string{},
	}
	now := time.Now()

	for _, def := range defaultUsers {
		_, err := s.userRepo.GetUserByUsername(ctx, def.Username)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return result, err
		}
		hash, err := utils.HashPassword(def.Password)
		if err != nil {
			return result, fmt.Errorf("failed to hash seed password: %w", err)
		}
		_, err = s.userRepo.CreateUser(ctx, domain.User{
			UserID:       uuid.NewString(),
			Username:     def.Username,
			Name:         def.Name,
			Role:         def.Role,
			IsActive:     true,
			PasswordHash: hash,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     systemUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: systemUserID,
			},
		})
		if err != nil && !errors.Is(err, apperrors.ErrDuplicate) {
			return result, err
		}
		if err == nil {
			result.UsersCreated = append(result.UsersCreated, def.Username)
		}
	}

	for _, def := range defaultInsuranceTypes {
		_, err := s.insuranceTypeRepo.GetInsuranceTypeByName(ctx, def.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return result, err
		}
		commission, err := decimal.NewFromString(def.Commission)
		if err != nil {
			return result, fmt.Errorf("invalid seed commission for %s: %w", def.Name, err)
		}
		_, err = s.insuranceTypeRepo.CreateInsuranceType(ctx, domain.InsuranceType{
			InsuranceTypeID:  uuid.NewString(),
			Name:             def.Name,
			CommissionAmount: commission,
			IsActive:         true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     systemUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: systemUserID,
			},
		})
		if err != nil && !errors.Is(err, apperrors.ErrDuplicate) {
			return result, err
		}
		if err == nil {
			result.InsuranceTypesCreated = append(result.InsuranceTypesCreated, def.Name)
		}
	}

	s.LogInfo(ctx, "Seed completed",
		"users_created", len(result.UsersCreated),
		"insurance_types_created", len(result.InsuranceTypesCreated))
	return result, nil
}

// notify sends an email when the username is an address. Failures are
// logged, never surfaced; notifications must not break the main flow.
func (s *userService) notify(ctx context.Context, username, subject, htmlBody string) {
	if !strings.Contains(username, "@") {
		return
	}
	if err := s.emailSender.Send(ctx, username, subject, htmlBody); err != nil {
		s.LogError(ctx, err, "Failed to send notification email", "to", username)
	}
}
