package usecase

import (
	"vtt-backend/internal/gamemap/domain"
	"vtt-backend/internal/gamemap/dto"
)

// MapUsecase is the maps service contract. Results carry the campaign and
// media relations populated.
type MapUsecase interface {
	GetMap(id string) (*domain.Map, error)
	GetMaps(query dto.ListMapsQuery) ([]*domain.Map, error)
	CreateMap(data dto.CreateMapRequest, createdByID string) (*domain.Map, error)
	UpdateMap(id string, data dto.UpdateMapRequest) (*domain.Map, error)

	// DeleteMap removes the map and cascades to its tokens; it returns the
	// deleted map.
	DeleteMap(id string) (*domain.Map, error)
}
