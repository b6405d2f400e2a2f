package repository

import "vtt-backend/internal/campaign/domain"

// CampaignRepository defines the data access surface for campaigns.
type CampaignRepository interface {
	Create(campaign *domain.Campaign) error
	FindByID(id string) (*domain.Campaign, error)
	FindByUserID(userID string) ([]*domain.Campaign, error)
	Count() (int64, error)
	Update(campaign *domain.Campaign) error
	Delete(id string) (int64, error)
	AddPlayer(campaignID, userID string) error
	RemovePlayer(campaignID, userID string) error
}
