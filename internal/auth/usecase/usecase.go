package usecase

import (
	"vtt-backend/internal/auth/dto"
	userdomain "vtt-backend/internal/user/domain"
)

// AuthUsecase is the auth service contract. Access tokens are stateless and
// short-lived; the hashed refresh token on the user row is the only
// server-checked session state.
type AuthUsecase interface {
	// SignIn verifies credentials and issues both tokens. A missing user
	// and a wrong password fail identically to prevent account enumeration.
	SignIn(req *dto.SignInRequest) (*dto.TokenResponse, error)

	// Refresh validates the presented refresh token against the stored
	// hash, then rotates it, invalidating all previously issued ones.
	Refresh(refreshToken string) (*dto.TokenResponse, error)

	// CheckRefreshToken reports whether the refresh token still names a
	// live session and returns the session's user.
	CheckRefreshToken(refreshToken string) (*userdomain.User, error)

	// SignOut clears the stored refresh-token hash, ending every session.
	SignOut(userID string) error

	GenerateAccessToken(userID string) (string, error)
	GenerateRefreshToken(userID string) (string, error)
	GetUserFromAccessToken(accessToken string) (*userdomain.User, error)

	ChangePassword(userID string, req *dto.ChangePasswordRequest) error
	RequestPasswordReset(req *dto.RequestPasswordResetRequest) (*userdomain.PasswordResetToken, error)
	ResetPassword(req *dto.ResetPasswordRequest) error
	PurgeStalePasswordResetTokens() error
}
