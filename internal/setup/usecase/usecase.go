package usecase

import "vtt-backend/internal/setup/domain"

// UpdateSetupRequest is a partial setup-state update.
type UpdateSetupRequest struct {
	Step      *domain.Step `json:"step"`
	Completed *bool        `json:"completed"`
}

// SetupUsecase tracks first-run progress through the ordered setup steps.
type SetupUsecase interface {
	GetSetup() (*domain.Setup, error)
	UpdateSetup(req *UpdateSetupRequest) (*domain.Setup, error)
	IsCompleted() (bool, error)
}
