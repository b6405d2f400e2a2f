package repository

import (
	"errors"
	"time"

	"vtt-backend/internal/media/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormMediaRepository implements MediaRepository using GORM
type gormMediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository creates a new GORM-based MediaRepository
func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &gormMediaRepository{db: db}
}

func (r *gormMediaRepository) Create(media *domain.Media) error {
	if media.ID == "" {
		media.ID = uuid.New().String()
	}
	media.CreatedAt = time.Now()
	media.UpdatedAt = time.Now()
	return r.db.Create(media).Error
}

func (r *gormMediaRepository) FindByID(id string) (*domain.Media, error) {
	var media domain.Media
	err := r.db.Where("id = ?", id).First(&media).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &media, nil
}

func (r *gormMediaRepository) FindByIDs(ids []string) ([]*domain.Media, error) {
	var media []*domain.Media
	err := r.db.Where("id IN ?", ids).Find(&media).Error
	return media, err
}

func (r *gormMediaRepository) FindByCreator(userID string) ([]*domain.Media, error) {
	var media []*domain.Media
	err := r.db.Where("created_by_id = ?", userID).Order("created_at DESC").Find(&media).Error
	return media, err
}

func (r *gormMediaRepository) Delete(id string) (int64, error) {
	result := r.db.Delete(&domain.Media{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
