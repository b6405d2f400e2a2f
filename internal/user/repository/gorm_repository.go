package repository

import (
	"errors"
	"time"

	"vtt-backend/internal/user/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// gormUserRepository implements UserRepository using GORM
type gormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new GORM-based UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) Create(user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return r.db.Create(user).Error
}

func (r *gormUserRepository) FindByID(id string) (*domain.User, error) {
	var user domain.User
	err := r.db.Preload("Avatar").Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *gormUserRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *gormUserRepository) FindAll() ([]*domain.User, error) {
	var users []*domain.User
	err := r.db.Preload("Avatar").Order("created_at ASC").Find(&users).Error
	return users, err
}

func (r *gormUserRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.User{}).Count(&count).Error
	return count, err
}

func (r *gormUserRepository) Update(user *domain.User) error {
	user.UpdatedAt = time.Now()
	return r.db.Save(user).Error
}

func (r *gormUserRepository) Delete(id string) (int64, error) {
	result := r.db.Delete(&domain.User{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

func (r *gormUserRepository) UpdateRefreshTokenHash(userID, hash string) error {
	return r.db.Model(&domain.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"refresh_token_hash": hash,
			"updated_at":         time.Now(),
		}).Error
}

// SavePasswordResetToken replaces any existing reset tokens for the user so
// only the most recently requested one remains valid.
func (r *gormUserRepository) SavePasswordResetToken(token *domain.PasswordResetToken) error {
	token.CreatedAt = time.Now()
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", token.UserID).Delete(&domain.PasswordResetToken{}).Error; err != nil {
			return err
		}
		return tx.Create(token).Error
	})
}

func (r *gormUserRepository) FindPasswordResetToken(value string) (*domain.PasswordResetToken, error) {
	var token domain.PasswordResetToken
	err := r.db.Where("value = ?", value).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

func (r *gormUserRepository) DeletePasswordResetToken(value string) (int64, error) {
	result := r.db.Where("value = ?", value).Delete(&domain.PasswordResetToken{})
	return result.RowsAffected, result.Error
}

func (r *gormUserRepository) DeletePasswordResetTokensBefore(cutoff time.Time) error {
	return r.db.Where("created_at <= ?", cutoff).Delete(&domain.PasswordResetToken{}).Error
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
