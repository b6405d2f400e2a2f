package repository

import "vtt-backend/internal/character/domain"

// CharacterRepository defines the data access surface for player and
// non-player characters.
type CharacterRepository interface {
	CreatePlayerCharacter(pc *domain.PlayerCharacter) error
	FindPlayerCharacterByID(id string) (*domain.PlayerCharacter, error)
	FindPlayerCharactersByCampaign(campaignID string) ([]*domain.PlayerCharacter, error)
	UpdatePlayerCharacter(pc *domain.PlayerCharacter) error
	// DeletePlayerCharacter removes the character and the tokens bound to it.
	DeletePlayerCharacter(id string) (int64, error)
	SetPlayerCharacterControllers(id string, userIDs []string) error

	CreateNonPlayerCharacter(npc *domain.NonPlayerCharacter) error
	FindNonPlayerCharacterByID(id string) (*domain.NonPlayerCharacter, error)
	FindNonPlayerCharactersByCampaign(campaignID string) ([]*domain.NonPlayerCharacter, error)
	UpdateNonPlayerCharacter(npc *domain.NonPlayerCharacter) error
	DeleteNonPlayerCharacter(id string) (int64, error)
	SetNonPlayerCharacterControllers(id string, userIDs []string) error
}
