package repository

import (
	"time"

	"vtt-backend/internal/user/domain"
)

// UserRepository defines the data access surface for users and their
// password reset tokens.
type UserRepository interface {
	Create(user *domain.User) error
	FindByID(id string) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	FindAll() ([]*domain.User, error)
	Count() (int64, error)
	Update(user *domain.User) error
	Delete(id string) (int64, error)

	// UpdateRefreshTokenHash replaces the stored refresh-token hash,
	// invalidating every previously issued refresh token for the user.
	UpdateRefreshTokenHash(userID, hash string) error

	SavePasswordResetToken(token *domain.PasswordResetToken) error
	FindPasswordResetToken(value string) (*domain.PasswordResetToken, error)
	DeletePasswordResetToken(value string) (int64, error)
	DeletePasswordResetTokensBefore(cutoff time.Time) error
}
