package repository

import "vtt-backend/internal/token/domain"

// TokenUpdate is a partial update of the fields mutable after creation.
// Position and size are the only ones; nil means leave unchanged.
type TokenUpdate struct {
	X      *float64
	Y      *float64
	Width  *float64
	Height *float64
}

// TokenRepository defines the data access surface for map tokens.
type TokenRepository interface {
	Create(token *domain.Token) error

	// FindByIDs returns the tokens matching the given IDs; unknown IDs are
	// silently omitted from the result.
	FindByIDs(ids []string) ([]*domain.Token, error)
	FindByMapID(mapID string) ([]*domain.Token, error)

	// Update applies a partial update and reports the number of rows hit,
	// so callers can detect a concurrently deleted token.
	Update(id string, update TokenUpdate) (int64, error)
	Delete(id string) (int64, error)
	CountByMapID(mapID string) (int64, error)
}
