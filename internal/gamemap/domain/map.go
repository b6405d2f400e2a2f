package domain

import (
	"time"

	campaigndomain "vtt-backend/internal/campaign/domain"
	mediadomain "vtt-backend/internal/media/domain"
	userdomain "vtt-backend/internal/user/domain"
)

// Map is a campaign's playable surface. It holds a set of media images with
// one selected as the active background, and owns the tokens placed on it.
type Map struct {
	ID   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
	// Media
	Media           []*mediadomain.Media `json:"media,omitempty" gorm:"many2many:map_media"`
	SelectedMediaID *string              `json:"selectedMediaId,omitempty"`
	// Campaign
	CampaignID string                   `json:"campaignId" gorm:"index;not null"`
	Campaign   *campaigndomain.Campaign `json:"campaign,omitempty" gorm:"foreignKey:CampaignID"`
	// Created by
	CreatedByID string           `json:"createdById" gorm:"index;not null"`
	CreatedBy   *userdomain.User `json:"createdBy,omitempty" gorm:"foreignKey:CreatedByID"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
