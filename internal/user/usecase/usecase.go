package usecase

import (
	campaigndomain "vtt-backend/internal/campaign/domain"
	"vtt-backend/internal/user/domain"
	"vtt-backend/internal/user/dto"
)

// UserUsecase is the users service contract. Returned users carry the
// public-safe projection only; hash fields never serialize.
type UserUsecase interface {
	GetUsers() ([]*domain.User, error)
	GetUserCount() (int64, error)
	GetUser(id string) (*domain.User, error)
	CreateUser(req *dto.CreateUserRequest) (*domain.User, error)
	UpdateUser(id string, req *dto.UpdateUserRequest) (*domain.User, error)
	DeleteUser(id string) error

	// ReorderCampaigns stores a new campaign display order for the user.
	ReorderCampaigns(userID string, order []string) (*domain.User, error)

	// OrderedCampaigns returns the user's accessible campaigns in campaign
	// order. Order entries that no longer match an accessible campaign are
	// ignored, and campaigns missing from the order are appended, so a
	// stale order self-heals on fetch.
	OrderedCampaigns(userID string) ([]*campaigndomain.Campaign, error)
}
