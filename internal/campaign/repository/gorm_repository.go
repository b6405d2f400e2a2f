package repository

import (
	"errors"
	"time"

	"vtt-backend/internal/campaign/domain"
	userdomain "vtt-backend/internal/user/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormCampaignRepository implements CampaignRepository using GORM
type gormCampaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository creates a new GORM-based CampaignRepository
func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &gormCampaignRepository{db: db}
}

func (r *gormCampaignRepository) Create(campaign *domain.Campaign) error {
	if campaign.ID == "" {
		campaign.ID = uuid.New().String()
	}
	campaign.CreatedAt = time.Now()
	campaign.UpdatedAt = time.Now()
	return r.db.Create(campaign).Error
}

func (r *gormCampaignRepository) FindByID(id string) (*domain.Campaign, error) {
	var campaign domain.Campaign
	err := r.db.Preload("Players").Preload("CreatedBy").Where("id = ?", id).First(&campaign).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &campaign, nil
}

// FindByUserID returns campaigns the user created or plays in.
func (r *gormCampaignRepository) FindByUserID(userID string) ([]*domain.Campaign, error) {
	var campaigns []*domain.Campaign
	err := r.db.Preload("Players").Preload("CreatedBy").
		Where("created_by_id = ?", userID).
		Or("id IN (?)", r.db.Table("campaign_players").Select("campaign_id").Where("user_id = ?", userID)).
		Order("created_at ASC").
		Find(&campaigns).Error
	return campaigns, err
}

func (r *gormCampaignRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Campaign{}).Count(&count).Error
	return count, err
}

func (r *gormCampaignRepository) Update(campaign *domain.Campaign) error {
	campaign.UpdatedAt = time.Now()
	return r.db.Save(campaign).Error
}

func (r *gormCampaignRepository) Delete(id string) (int64, error) {
	result := r.db.Delete(&domain.Campaign{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

func (r *gormCampaignRepository) AddPlayer(campaignID, userID string) error {
	return r.db.Model(&domain.Campaign{ID: campaignID}).
		Association("Players").Append(&userdomain.User{ID: userID})
}

func (r *gormCampaignRepository) RemovePlayer(campaignID, userID string) error {
	return r.db.Model(&domain.Campaign{ID: campaignID}).
		Association("Players").Delete(&userdomain.User{ID: userID})
}
