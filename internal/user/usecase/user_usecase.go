package usecase

import (
	"errors"
	"strings"

	campaigndomain "vtt-backend/internal/campaign/domain"
	campaignrepo "vtt-backend/internal/campaign/repository"
	"vtt-backend/internal/user/domain"
	"vtt-backend/internal/user/dto"
	"vtt-backend/internal/user/repository"
	"vtt-backend/pkg/apperr"
	"vtt-backend/pkg/logging"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// userUsecase implements UserUsecase
type userUsecase struct {
	userRepo     repository.UserRepository
	campaignRepo campaignrepo.CampaignRepository
	logger       *logrus.Entry
}

// NewUserUsecase creates a new instance of userUsecase
func NewUserUsecase(userRepo repository.UserRepository, campaignRepo campaignrepo.CampaignRepository) UserUsecase {
	return &userUsecase{
		userRepo:     userRepo,
		campaignRepo: campaignRepo,
		logger:       logging.ForService("users"),
	}
}

func (u *userUsecase) GetUsers() ([]*domain.User, error) {
	users, err := u.userRepo.FindAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to get users", err)
	}
	return users, nil
}

func (u *userUsecase) GetUserCount() (int64, error) {
	count, err := u.userRepo.Count()
	if err != nil {
		return 0, apperr.Wrap(apperr.Internal, "failed to count users", err)
	}
	return count, nil
}

func (u *userUsecase) GetUser(id string) (*domain.User, error) {
	user, err := u.userRepo.FindByID(id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to get user", err)
	}
	if user == nil {
		return nil, apperr.Newf(apperr.NotFound, "user %q not found", id)
	}
	return user, nil
}

func (u *userUsecase) CreateUser(req *dto.CreateUserRequest) (*domain.User, error) {
	u.logger.Debugf("Creating user %q", req.Email)

	hashed, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to hash password", err)
	}

	user := &domain.User{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Password:    hashed,
	}
	if user.DisplayName == "" {
		user.DisplayName = req.Name
	}
	if err := u.userRepo.Create(user); err != nil {
		if isDuplicateKey(err) {
			u.logger.Errorf("Email %q already registered", req.Email)
			return nil, apperr.Newf(apperr.Conflict, "email %q already registered", req.Email)
		}
		return nil, apperr.Wrap(apperr.Internal, "failed to create user", err)
	}
	u.logger.Debugf("Created user %q", user.ID)
	return user, nil
}

func (u *userUsecase) UpdateUser(id string, req *dto.UpdateUserRequest) (*domain.User, error) {
	user, err := u.GetUser(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.AvatarID != nil {
		user.AvatarID = req.AvatarID
	}
	if err := u.userRepo.Update(user); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to update user", err)
	}
	return u.GetUser(id)
}

func (u *userUsecase) DeleteUser(id string) error {
	affected, err := u.userRepo.Delete(id)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "failed to delete user", err)
	}
	if affected == 0 {
		return apperr.Newf(apperr.NotFound, "user %q not found", id)
	}
	return nil
}

func (u *userUsecase) ReorderCampaigns(userID string, order []string) (*domain.User, error) {
	u.logger.Debugf("Reordering campaigns for user %q", userID)

	user, err := u.GetUser(userID)
	if err != nil {
		return nil, err
	}

	user.CampaignOrder = order
	if err := u.userRepo.Update(user); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to store campaign order", err)
	}
	return user, nil
}

func (u *userUsecase) OrderedCampaigns(userID string) ([]*campaigndomain.Campaign, error) {
	user, err := u.GetUser(userID)
	if err != nil {
		return nil, err
	}

	campaigns, err := u.campaignRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to get campaigns", err)
	}

	byID := make(map[string]*campaigndomain.Campaign, len(campaigns))
	for _, campaign := range campaigns {
		byID[campaign.ID] = campaign
	}

	ordered := make([]*campaigndomain.Campaign, 0, len(campaigns))
	for _, id := range user.CampaignOrder {
		if campaign, ok := byID[id]; ok {
			ordered = append(ordered, campaign)
			delete(byID, id)
		}
		// Stale entries are dropped silently; the stored order heals on the
		// next reorder.
	}
	// Campaigns not yet in the order keep their fetch order at the end.
	for _, campaign := range campaigns {
		if _, ok := byID[campaign.ID]; ok {
			ordered = append(ordered, campaign)
		}
	}
	return ordered, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Driver-specific unique violation messages (postgres 23505, sqlite).
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
