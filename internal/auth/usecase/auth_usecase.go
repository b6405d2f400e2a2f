package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"vtt-backend/internal/auth/dto"
	userdomain "vtt-backend/internal/user/domain"
	userrepo "vtt-backend/internal/user/repository"
	"vtt-backend/pkg/apperr"
	"vtt-backend/pkg/config"
	"vtt-backend/pkg/logging"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// invalidCredentials is returned for both unknown emails and wrong
// passwords so the two cases are indistinguishable to the caller.
const invalidCredentials = "invalid email or password"

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo userrepo.UserRepository
	config   *config.Config
	logger   *logrus.Entry
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo userrepo.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
		logger:   logging.ForService("auth"),
	}
}

func (u *authUsecase) SignIn(req *dto.SignInRequest) (*dto.TokenResponse, error) {
	u.logger.Debugf("Signing in user %q", req.Email)

	// Look up the user including the normally-hidden hash fields.
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to look up user", err)
	}
	if user == nil || !userrepo.CheckPasswordHash(req.Password, user.Password) {
		u.logger.Errorf("Failed sign-in attempt for %q", req.Email)
		return nil, apperr.New(apperr.Unauthorized, invalidCredentials)
	}

	u.logger.Debugf("Signed in user %q", user.ID)
	return u.issueTokens(user.ID)
}

func (u *authUsecase) Refresh(refreshToken string) (*dto.TokenResponse, error) {
	user, err := u.CheckRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}
	// Rotation: issuing stores a new hash, invalidating every refresh token
	// handed out before this call.
	return u.issueTokens(user.ID)
}

func (u *authUsecase) CheckRefreshToken(refreshToken string) (*userdomain.User, error) {
	userID, err := u.verifyToken(refreshToken, u.config.JWTRefreshSecret)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unauthorized, "invalid refresh token", err)
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to look up user", err)
	}
	if user == nil || user.RefreshTokenHash == "" || user.RefreshTokenHash != hashToken(refreshToken) {
		u.logger.Errorf("Refresh token mismatch for user %q", userID)
		return nil, apperr.New(apperr.Unauthorized, "invalid refresh token")
	}
	return user, nil
}

func (u *authUsecase) SignOut(userID string) error {
	u.logger.Debugf("Signing out user %q", userID)
	if err := u.userRepo.UpdateRefreshTokenHash(userID, ""); err != nil {
		return apperr.Wrap(apperr.Internal, "failed to sign out", err)
	}
	return nil
}

func (u *authUsecase) GenerateAccessToken(userID string) (string, error) {
	return u.signToken(userID, u.config.JWTAccessSecret, u.config.JWTAccessExpiry)
}

func (u *authUsecase) GenerateRefreshToken(userID string) (string, error) {
	// The token_id claim makes every refresh token unique, so rotation
	// always produces a new hash.
	claims := jwt.MapClaims{
		"user_id":  userID,
		"token_id": uuid.New().String(),
		"exp":      time.Now().Add(u.config.JWTRefreshExpiry).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTRefreshSecret))
}

func (u *authUsecase) GetUserFromAccessToken(accessToken string) (*userdomain.User, error) {
	userID, err := u.verifyToken(accessToken, u.config.JWTAccessSecret)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unauthorized, "invalid or expired token", err)
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to look up user", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.Unauthorized, "invalid or expired token")
	}
	return user, nil
}

func (u *authUsecase) ChangePassword(userID string, req *dto.ChangePasswordRequest) error {
	u.logger.Debugf("Changing password for user %q", userID)

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "failed to look up user", err)
	}
	if user == nil || !userrepo.CheckPasswordHash(req.CurrentPassword, user.Password) {
		return apperr.New(apperr.Unauthorized, invalidCredentials)
	}

	hashed, err := userrepo.HashPassword(req.NewPassword)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "failed to hash password", err)
	}
	user.Password = hashed
	// A password change ends every session.
	user.RefreshTokenHash = ""
	if err := u.userRepo.Update(user); err != nil {
		return apperr.Wrap(apperr.Internal, "failed to update password", err)
	}
	u.logger.Debugf("Changed password for user %q", userID)
	return nil
}

func (u *authUsecase) RequestPasswordReset(req *dto.RequestPasswordResetRequest) (*userdomain.PasswordResetToken, error) {
	u.logger.Debugf("Requesting password reset for %q", req.Email)

	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to look up user", err)
	}
	if user == nil {
		return nil, apperr.Newf(apperr.NotFound, "no account for %q", req.Email)
	}

	value, err := u.signToken(user.ID, u.config.JWTAccessSecret, u.config.JWTGenericExpiry)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to sign reset token", err)
	}
	token := &userdomain.PasswordResetToken{Value: value, UserID: user.ID}
	if err := u.userRepo.SavePasswordResetToken(token); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to store reset token", err)
	}
	return token, nil
}

func (u *authUsecase) ResetPassword(req *dto.ResetPasswordRequest) error {
	stored, err := u.userRepo.FindPasswordResetToken(req.Token)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "failed to look up reset token", err)
	}
	if stored == nil || time.Since(stored.CreatedAt) > u.config.JWTGenericExpiry {
		return apperr.New(apperr.Unauthorized, "invalid or expired reset token")
	}
	if _, err := u.verifyToken(req.Token, u.config.JWTAccessSecret); err != nil {
		return apperr.Wrap(apperr.Unauthorized, "invalid or expired reset token", err)
	}

	user, err := u.userRepo.FindByID(stored.UserID)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "failed to look up user", err)
	}
	if user == nil {
		return apperr.New(apperr.Unauthorized, "invalid or expired reset token")
	}

	hashed, err := userrepo.HashPassword(req.Password)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "failed to hash password", err)
	}
	user.Password = hashed
	user.RefreshTokenHash = ""
	if err := u.userRepo.Update(user); err != nil {
		return apperr.Wrap(apperr.Internal, "failed to update password", err)
	}

	// Single use.
	if _, err := u.userRepo.DeletePasswordResetToken(req.Token); err != nil {
		return apperr.Wrap(apperr.Internal, "failed to consume reset token", err)
	}
	u.logger.Debugf("Reset password for user %q", user.ID)
	return nil
}

func (u *authUsecase) PurgeStalePasswordResetTokens() error {
	cutoff := time.Now().Add(-u.config.JWTGenericExpiry)
	return u.userRepo.DeletePasswordResetTokensBefore(cutoff)
}

// issueTokens mints both tokens and stores the refresh token's hash. The
// refresh token is never persisted or logged in plaintext after issuance.
func (u *authUsecase) issueTokens(userID string) (*dto.TokenResponse, error) {
	accessToken, err := u.GenerateAccessToken(userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to sign access token", err)
	}
	refreshToken, err := u.GenerateRefreshToken(userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to sign refresh token", err)
	}
	if err := u.userRepo.UpdateRefreshTokenHash(userID, hashToken(refreshToken)); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to store refresh token", err)
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil || user == nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to look up user", err)
	}
	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (u *authUsecase) signToken(userID, secret string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(expiry).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (u *authUsecase) verifyToken(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenUnverifiable
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}
	userID, ok := claims["user_id"].(string)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}
	return userID, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
