package domain

import (
	"time"

	characterdomain "vtt-backend/internal/character/domain"
	userdomain "vtt-backend/internal/user/domain"
)

// Token is a placeable marker on a map. It is bound to at most one of
// {player character, non-player character}; a token with neither is a plain
// marker. Position and size are the only fields mutable after creation.
type Token struct {
	ID     string  `json:"id" gorm:"primaryKey"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width" gorm:"default:1"`
	Height float64 `json:"height" gorm:"default:1"`
	// Map
	MapID string `json:"mapId" gorm:"index;not null"`
	// Created by
	CreatedByID string           `json:"createdById" gorm:"index;not null"`
	CreatedBy   *userdomain.User `json:"createdBy,omitempty" gorm:"foreignKey:CreatedByID"`
	// Player Character
	PlayerCharacterID *string                          `json:"playerCharacterId,omitempty"`
	PlayerCharacter   *characterdomain.PlayerCharacter `json:"playerCharacter,omitempty" gorm:"foreignKey:PlayerCharacterID"`
	// Non Player Character
	NonPlayerCharacterID *string                             `json:"nonPlayerCharacterId,omitempty"`
	NonPlayerCharacter   *characterdomain.NonPlayerCharacter `json:"nonPlayerCharacter,omitempty" gorm:"foreignKey:NonPlayerCharacterID"`
	CreatedAt            time.Time                           `json:"createdAt"`
	UpdatedAt            time.Time                           `json:"updatedAt"`
}

// HasCharacter reports whether the token is bound to any character.
func (t *Token) HasCharacter() bool {
	return t.PlayerCharacterID != nil || t.NonPlayerCharacterID != nil
}
