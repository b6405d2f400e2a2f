package repository

import (
	"errors"
	"time"

	"vtt-backend/internal/setup/domain"

	"gorm.io/gorm"
)

// gormSetupRepository implements SetupRepository using GORM
type gormSetupRepository struct {
	db *gorm.DB
}

// NewSetupRepository creates a new GORM-based SetupRepository
func NewSetupRepository(db *gorm.DB) SetupRepository {
	return &gormSetupRepository{db: db}
}

func (r *gormSetupRepository) Get() (*domain.Setup, error) {
	var setup domain.Setup
	err := r.db.First(&setup).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			setup = domain.Setup{Step: domain.StepDatabase, CreatedAt: time.Now(), UpdatedAt: time.Now()}
			if err := r.db.Create(&setup).Error; err != nil {
				return nil, err
			}
			return &setup, nil
		}
		return nil, err
	}
	return &setup, nil
}

func (r *gormSetupRepository) Update(setup *domain.Setup) error {
	setup.UpdatedAt = time.Now()
	return r.db.Save(setup).Error
}
