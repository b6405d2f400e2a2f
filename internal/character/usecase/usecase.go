package usecase

import (
	"vtt-backend/internal/character/domain"
	"vtt-backend/internal/character/dto"
)

// CharacterUsecase covers both player and non-player characters. Stat
// blocks are opaque data at this layer. Deleting a character removes its
// tokens from every map.
type CharacterUsecase interface {
	GetPlayerCharacter(id string) (*domain.PlayerCharacter, error)
	GetCampaignPlayerCharacters(campaignID string) ([]*domain.PlayerCharacter, error)
	CreatePlayerCharacter(req *dto.CreateCharacterRequest, createdByID string) (*domain.PlayerCharacter, error)
	UpdatePlayerCharacter(id string, req *dto.UpdateCharacterRequest) (*domain.PlayerCharacter, error)
	DeletePlayerCharacter(id string) (*domain.PlayerCharacter, error)

	GetNonPlayerCharacter(id string) (*domain.NonPlayerCharacter, error)
	GetCampaignNonPlayerCharacters(campaignID string) ([]*domain.NonPlayerCharacter, error)
	CreateNonPlayerCharacter(req *dto.CreateCharacterRequest, createdByID string) (*domain.NonPlayerCharacter, error)
	UpdateNonPlayerCharacter(id string, req *dto.UpdateCharacterRequest) (*domain.NonPlayerCharacter, error)
	DeleteNonPlayerCharacter(id string) (*domain.NonPlayerCharacter, error)
}
