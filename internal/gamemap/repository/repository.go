package repository

import "vtt-backend/internal/gamemap/domain"

// MapParams restricts and pages a map listing.
type MapParams struct {
	CampaignID string
	CreatedBy  string
	OrderBy    string
	Descending bool
	Skip       int
	Take       int
}

// MapRepository defines the data access surface for maps.
type MapRepository interface {
	Create(m *domain.Map) error
	FindByID(id string) (*domain.Map, error)
	Find(params MapParams) ([]*domain.Map, error)
	Count() (int64, error)
	Update(m *domain.Map) error

	// Delete removes the map and all tokens placed on it in one
	// transaction. Batch token operations elsewhere are not transactional,
	// so the cascade is explicit here rather than left to a foreign key.
	Delete(id string) (int64, error)

	SetMedia(mapID string, mediaIDs []string) error
}
