package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/velorent/insurance_sales_app/internal/apperrors"
	"github.com/velorent/insurance_sales_app/internal/core/domain"
	portsrepo "github.com/velorent/insurance_sales_app/internal/core/ports/repositories"
	portssvc "github.com/velorent/insurance_sales_app/internal/core/ports/services"
	"github.com/velorent/insurance_sales_app/internal/platform/config"
	"github.com/velorent/insurance_sales_app/internal/utils"
)

const googleProvider = "google"

const refreshTokenBytes = 32

type authService struct {
	BaseService
	userRepo     portsrepo.UserRepository
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewAuthService builds the authentication service.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepository) portssvc.AuthSvcFacade {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     googleoauth.Endpoint,
		},
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, username, password string) (domain.User, portssvc.TokenPair, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.User{}, portssvc.TokenPair{}, apperrors.ErrUnauthorized
		}
		return domain.User{}, portssvc.TokenPair{}, err
	}
	if !user.IsActive {
		s.LogInfo(ctx, "Login attempt on inactive account", "username", username)
		return domain.User{}, portssvc.TokenPair{}, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return domain.User{}, portssvc.TokenPair{}, apperrors.ErrUnauthorized
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return domain.User{}, portssvc.TokenPair{}, err
	}
	s.LogInfo(ctx, "User logged in", "login_user_id", user.UserID)
	return user, pair, nil
}

func (s *authService) LoginWithGoogle(ctx context.Context, idTokenString string) (domain.User, portssvc.TokenPair, error) {
	if s.cfg.GoogleClientID == "" {
		return domain.User{}, portssvc.TokenPair{}, apperrors.ErrUnauthorized
	}
	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		s.LogInfo(ctx, "Google ID token validation failed", "error", err.Error())
		return domain.User{}, portssvc.TokenPair{}, apperrors.ErrUnauthorized
	}

	info := domain.GoogleUserInfo{ID: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		info.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		info.Name = name
	}
	return s.loginGoogleUser(ctx, info)
}

func (s *authService) GoogleAuthURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

func (s *authService) LoginWithGoogleCode(ctx context.Context, code string) (domain.User, portssvc.TokenPair, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		s.LogInfo(ctx, "Google code exchange failed", "error", err.Error())
		return domain.User{}, portssvc.TokenPair{}, apperrors.ErrUnauthorized
	}

	info, err := s.fetchGoogleUserInfo(ctx, token)
	if err != nil {
		return domain.User{}, portssvc.TokenPair{}, err
	}
	return s.loginGoogleUser(ctx, info)
}

func (s *authService) fetchGoogleUserInfo(ctx context.Context, token *oauth2.Token) (domain.GoogleUserInfo, error) {
	client := s.oauth2Config.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return domain.GoogleUserInfo{}, fmt.Errorf("failed to fetch google user info: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.GoogleUserInfo{}, fmt.Errorf("failed to read google user info: %w", err)
	}
	var info domain.GoogleUserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return domain.GoogleUserInfo{}, fmt.Errorf("failed to decode google user info: %w", err)
	}
	return info, nil
}

// loginGoogleUser maps a verified Google identity onto an existing account.
// Accounts are provisioned by admins, so an unknown identity is refused
// rather than auto-created. A first Google sign-in on a matching username
// links the provider.
func (s *authService) loginGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (domain.User, portssvc.TokenPair, error) {
	user, err := s.userRepo.GetUserByProviderID(ctx, googleProvider, info.ID)
	if errors.Is(err, apperrors.ErrNotFound) && info.Email != "" {
		user, err = s.userRepo.GetUserByUsername(ctx, info.Email)
		if err == nil {
			user.AuthProvider = googleProvider
			user.ProviderUserID = info.ID
			if _, linkErr := s.userRepo.UpdateUser(ctx, user); linkErr != nil {
				s.LogError(ctx, linkErr, "Failed to link google identity", "link_user_id", user.UserID)
			}
		}
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.User{}, portssvc.TokenPair{}, apperrors.ErrUnauthorized
		}
		return domain.User{}, portssvc.TokenPair{}, err
	}
	if !user.IsActive {
		return domain.User{}, portssvc.TokenPair{}, apperrors.ErrUnauthorized
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return domain.User{}, portssvc.TokenPair{}, err
	}
	s.LogInfo(ctx, "User logged in via google", "login_user_id", user.UserID)
	return user, pair, nil
}

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (portssvc.TokenPair, error) {
	hash := utils.HashRefreshToken(refreshToken)
	user, err := s.userRepo.GetUserByRefreshTokenHash(ctx, hash)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return portssvc.TokenPair{}, apperrors.ErrUnauthorized
		}
		return portssvc.TokenPair{}, err
	}
	if user.RefreshTokenExpiryTime == nil || time.Now().After(*user.RefreshTokenExpiryTime) {
		return portssvc.TokenPair{}, apperrors.ErrRefreshTokenExpired
	}
	if !user.IsActive {
		return portssvc.TokenPair{}, apperrors.ErrUnauthorized
	}

	// Rotation: every refresh invalidates the previous token.
	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return portssvc.TokenPair{}, err
	}
	return pair, nil
}

func (s *authService) Logout(ctx context.Context, userID string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	user.RefreshTokenHash = ""
	user.RefreshTokenExpiryTime = nil
	if err := s.userRepo.UpdateRefreshToken(ctx, user); err != nil {
		return err
	}
	s.LogInfo(ctx, "User logged out", "logout_user_id", userID)
	return nil
}

func (s *authService) issueTokens(ctx context.Context, user domain.User) (portssvc.TokenPair, error) {
	access, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, int(s.cfg.JWTExpiryDuration.Minutes()))
	if err != nil {
		return portssvc.TokenPair{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, err := utils.GenerateSecureRandomString(refreshTokenBytes)
	if err != nil {
		return portssvc.TokenPair{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiry := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	user.RefreshTokenHash = utils.HashRefreshToken(refresh)
	user.RefreshTokenExpiryTime = &expiry
	if err := s.userRepo.UpdateRefreshToken(ctx, user); err != nil {
		return portssvc.TokenPair{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return portssvc.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
