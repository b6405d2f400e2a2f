package usecase

import (
	"vtt-backend/internal/campaign/domain"
	"vtt-backend/internal/campaign/dto"
)

// CampaignUsecase is the campaigns service contract. The creator relation is
// immutable after creation.
type CampaignUsecase interface {
	GetCampaign(id string) (*domain.Campaign, error)
	GetUserCampaigns(userID string) ([]*domain.Campaign, error)
	GetCampaignCount() (int64, error)
	CreateCampaign(req *dto.CreateCampaignRequest, createdByID string) (*domain.Campaign, error)
	UpdateCampaign(id string, req *dto.UpdateCampaignRequest) (*domain.Campaign, error)
	DeleteCampaign(id string) (*domain.Campaign, error)
	AddPlayer(campaignID, userID string) (*domain.Campaign, error)
	RemovePlayer(campaignID, userID string) (*domain.Campaign, error)
}
