package domain

import (
	"time"

	userdomain "vtt-backend/internal/user/domain"
)

// Campaign owns a set of maps and has a roster of player users. The creator
// relation is immutable after creation.
type Campaign struct {
	ID   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
	// Players
	Players []*userdomain.User `json:"players,omitempty" gorm:"many2many:campaign_players"`
	// Created by
	CreatedByID string           `json:"createdById" gorm:"index;not null"`
	CreatedBy   *userdomain.User `json:"createdBy,omitempty" gorm:"foreignKey:CreatedByID"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
