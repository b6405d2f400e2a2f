package delivery

import (
	"net/http"

	"vtt-backend/internal/auth/dto"
	"vtt-backend/internal/auth/usecase"
	userdomain "vtt-backend/internal/user/domain"
	"vtt-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

const refreshCookie = "refresh_token"

// AuthHandler handles auth-related HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// SignIn authenticates a user and issues both tokens.
// POST /api/auth/sign-in
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, err := h.authUsecase.SignIn(&req)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	h.setRefreshCookie(c, tokens.RefreshToken)
	c.JSON(http.StatusOK, tokens)
}

// Refresh rotates the refresh token and returns a fresh token pair.
// GET /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookie)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token required"})
		return
	}

	tokens, err := h.authUsecase.Refresh(refreshToken)
	if err != nil {
		h.clearRefreshCookie(c)
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	h.setRefreshCookie(c, tokens.RefreshToken)
	c.JSON(http.StatusOK, tokens)
}

// CheckRefreshToken reports session liveness without rotating anything.
// GET /api/auth/check-refresh-token
func (h *AuthHandler) CheckRefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookie)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token required"})
		return
	}

	user, err := h.authUsecase.CheckRefreshToken(refreshToken)
	if err != nil {
		h.clearRefreshCookie(c)
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// SignOut clears the server-side refresh state and the cookie.
// POST /api/auth/sign-out
func (h *AuthHandler) SignOut(c *gin.Context) {
	user := CurrentUser(c)
	if user != nil {
		if err := h.authUsecase.SignOut(user.ID); err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
	}
	h.clearRefreshCookie(c)
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}

// Me returns the authenticated user.
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, CurrentUser(c))
}

// ChangePassword verifies the current password, sets the new one and ends
// every session.
// POST /api/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUsecase.ChangePassword(CurrentUser(c).ID, &req); err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	h.clearRefreshCookie(c)
	c.JSON(http.StatusOK, gin.H{"status": "password changed"})
}

// RequestPasswordReset issues a single-use reset token. The response does
// not reveal whether the account exists.
// POST /api/auth/request-password-reset
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.RequestPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.authUsecase.RequestPasswordReset(&req); err != nil && !apperr.IsKind(err, apperr.NotFound) {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset requested"})
}

// ResetPassword consumes a reset token and sets the new password.
// POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUsecase.ResetPassword(&req); err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "password reset"})
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshCookie, token, 0, "/api/auth", "", false, true)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetCookie(refreshCookie, "", -1, "/api/auth", "", false, true)
}

// CurrentUser returns the user placed in the context by AuthMiddleware.
func CurrentUser(c *gin.Context) *userdomain.User {
	if v, ok := c.Get("user"); ok {
		if user, ok := v.(*userdomain.User); ok {
			return user
		}
	}
	return nil
}
