package services

import (
	"context"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
)

// TokenPair bundles the access token with its rotating refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthSvcFacade handles credential checks and token lifecycle.
type AuthSvcFacade interface {
	Login(ctx context.Context, username, password string) (domain.User, TokenPair, error)
	// LoginWithGoogle signs in an existing user via a Google ID token.
	LoginWithGoogle(ctx context.Context, idToken string) (domain.User, TokenPair, error)
	// GoogleAuthURL starts the server-side OAuth code flow.
	GoogleAuthURL(state string) string
	// LoginWithGoogleCode finishes the code flow started by GoogleAuthURL.
	LoginWithGoogleCode(ctx context.Context, code string) (domain.User, TokenPair, error)
	RefreshTokens(ctx context.Context, refreshToken string) (TokenPair, error)
	Logout(ctx context.Context, userID string) error
}
