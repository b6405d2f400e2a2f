package usecase

import (
	"vtt-backend/internal/token/domain"
	"vtt-backend/internal/token/dto"
)

// TokenUsecase is the token service contract. Batch operations fan out the
// single-item operation concurrently; a failure aborts the batch response
// but already committed items are not rolled back.
type TokenUsecase interface {
	GetTokens(ids []string) ([]*domain.Token, error)
	GetMapTokens(mapID string) ([]*domain.Token, error)
	CreateToken(data dto.CreateTokenRequest, mapID, createdByID string) (*domain.Token, error)
	CreateTokens(data []dto.CreateTokenRequest, mapID, createdByID string) ([]*domain.Token, error)
	UpdateToken(id string, data dto.UpdateTokenRequest) (*domain.Token, error)
	UpdateTokens(updates []dto.UpdateTokenRequest) ([]*domain.Token, error)
	DeleteToken(id string) (*domain.Token, error)
	DeleteTokens(ids []string) ([]*domain.Token, error)
}
