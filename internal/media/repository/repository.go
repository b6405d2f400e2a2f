package repository

import "vtt-backend/internal/media/domain"

// MediaRepository defines the data access surface for uploaded media.
type MediaRepository interface {
	Create(media *domain.Media) error
	FindByID(id string) (*domain.Media, error)
	FindByIDs(ids []string) ([]*domain.Media, error)
	FindByCreator(userID string) ([]*domain.Media, error)
	Delete(id string) (int64, error)
}
