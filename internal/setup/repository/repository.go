package repository

import "vtt-backend/internal/setup/domain"

// SetupRepository stores the singleton setup record.
type SetupRepository interface {
	// Get returns the setup record, creating it on first access.
	Get() (*domain.Setup, error)
	Update(setup *domain.Setup) error
}
