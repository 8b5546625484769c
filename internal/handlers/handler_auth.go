package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/velorent/insurance_sales_app/internal/core/ports/services"
	"github.com/velorent/insurance_sales_app/internal/dto"
	"github.com/velorent/insurance_sales_app/internal/middleware"
	"github.com/velorent/insurance_sales_app/internal/platform/config"
	"github.com/velorent/insurance_sales_app/internal/utils"
)

// authHandler handles authentication endpoints.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes registers the public authentication routes. Credential
// endpoints sit behind a per-IP rate limit.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)
	loginLimiter := middleware.RateLimit(newLoginRateLimiter(cfg))

	auth := r.Group("/auth")
	{
		auth.POST("/login", loginLimiter, h.login)
		auth.POST("/refresh", loginLimiter, h.refresh)
		auth.POST("/logout", middleware.AuthMiddleware(cfg.JWTSecret), h.logout)

		google := auth.Group("/google")
		{
			google.GET("/url", h.googleAuthURL)
			google.GET("/callback", h.googleCallback)
			google.POST("/token", loginLimiter, h.googleToken)
		}
	}
}

// login godoc
// @Summary Log in with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Bad credentials"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, pair, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         dto.ToUserResponse(user),
	})
}

// refresh godoc
// @Summary Rotate the token pair using a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 401 {object} dto.ErrorResponse "Expired or unknown refresh token"
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	pair, err := h.authService.RefreshTokens(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RefreshTokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// logout godoc
// @Summary Invalidate the caller's refresh token
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}
	if err := h.authService.Logout(c.Request.Context(), actor.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// googleAuthURL godoc
// @Summary Get the Google OAuth consent URL
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/google/url [get]
func (h *authHandler) googleAuthURL(c *gin.Context) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		respondError(c, err)
		return
	}
	// State is echoed back by Google; the SPA compares it against this value.
	c.JSON(http.StatusOK, gin.H{
		"url":   h.authService.GoogleAuthURL(state),
		"state": state,
	})
}

// googleCallback godoc
// @Summary Finish the Google OAuth code flow
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/google/callback [get]
func (h *authHandler) googleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing authorization code"})
		return
	}

	user, pair, err := h.authService.LoginWithGoogleCode(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         dto.ToUserResponse(user),
	})
}

// googleToken godoc
// @Summary Log in with a Google ID token (one-tap / SPA flow)
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.GoogleCallbackRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/google/token [post]
func (h *authHandler) googleToken(c *gin.Context) {
	var req dto.GoogleCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, pair, err := h.authService.LoginWithGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         dto.ToUserResponse(user),
	})
}
