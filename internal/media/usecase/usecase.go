package usecase

import (
	"io"

	"vtt-backend/internal/media/domain"
)

// MediaUsecase stores uploaded images on disk, generates thumbnails and
// tracks the metadata. Media is only ever deleted explicitly.
type MediaUsecase interface {
	GetMedia(id string) (*domain.Media, error)
	GetUserMedia(userID string) ([]*domain.Media, error)
	Upload(name string, file io.Reader, createdByID string) (*domain.Media, error)
	Delete(id string) (*domain.Media, error)
}
