package dto

import "vtt-backend/internal/character/domain"

type CreateCharacterRequest struct {
	Name       string               `json:"name" binding:"required"`
	Size       domain.CharacterSize `json:"size"`
	CampaignID string               `json:"campaignId" binding:"required"`
	Stats      domain.StatBlock     `json:"stats"`
	MediaIDs   []string             `json:"mediaIds"`
}

type UpdateCharacterRequest struct {
	Name            *string               `json:"name"`
	Size            *domain.CharacterSize `json:"size"`
	Stats           *domain.StatBlock     `json:"stats"`
	ControlledByIDs []string              `json:"controlledByIds"`
}
