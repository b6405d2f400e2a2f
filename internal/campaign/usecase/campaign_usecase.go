package usecase

import (
	"vtt-backend/internal/campaign/domain"
	"vtt-backend/internal/campaign/dto"
	"vtt-backend/internal/campaign/repository"
	"vtt-backend/pkg/apperr"
	"vtt-backend/pkg/logging"

	"github.com/sirupsen/logrus"
)

// campaignUsecase implements CampaignUsecase
type campaignUsecase struct {
	campaignRepo repository.CampaignRepository
	logger       *logrus.Entry
}

// NewCampaignUsecase creates a new instance of campaignUsecase
func NewCampaignUsecase(campaignRepo repository.CampaignRepository) CampaignUsecase {
	return &campaignUsecase{
		campaignRepo: campaignRepo,
		logger:       logging.ForService("campaigns"),
	}
}

func (u *campaignUsecase) GetCampaign(id string) (*domain.Campaign, error) {
	campaign, err := u.campaignRepo.FindByID(id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to get campaign", err)
	}
	if campaign == nil {
		return nil, apperr.Newf(apperr.NotFound, "campaign %q not found", id)
	}
	return campaign, nil
}

func (u *campaignUsecase) GetUserCampaigns(userID string) ([]*domain.Campaign, error) {
	campaigns, err := u.campaignRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to get campaigns", err)
	}
	return campaigns, nil
}

func (u *campaignUsecase) GetCampaignCount() (int64, error) {
	count, err := u.campaignRepo.Count()
	if err != nil {
		return 0, apperr.Wrap(apperr.Internal, "failed to count campaigns", err)
	}
	return count, nil
}

func (u *campaignUsecase) CreateCampaign(req *dto.CreateCampaignRequest, createdByID string) (*domain.Campaign, error) {
	u.logger.Debugf("Creating campaign %q", req.Name)

	campaign := &domain.Campaign{
		Name:        req.Name,
		CreatedByID: createdByID,
	}
	if err := u.campaignRepo.Create(campaign); err != nil {
		u.logger.Errorf("Failed to create campaign %q: %v", req.Name, err)
		return nil, apperr.Wrap(apperr.Internal, "failed to create campaign", err)
	}
	u.logger.Debugf("Created campaign %q", campaign.ID)
	return u.GetCampaign(campaign.ID)
}

func (u *campaignUsecase) UpdateCampaign(id string, req *dto.UpdateCampaignRequest) (*domain.Campaign, error) {
	campaign, err := u.GetCampaign(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		campaign.Name = *req.Name
	}
	if err := u.campaignRepo.Update(campaign); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to update campaign", err)
	}
	return u.GetCampaign(id)
}

func (u *campaignUsecase) DeleteCampaign(id string) (*domain.Campaign, error) {
	campaign, err := u.GetCampaign(id)
	if err != nil {
		return nil, err
	}

	affected, err := u.campaignRepo.Delete(id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to delete campaign", err)
	}
	if affected == 0 {
		return nil, apperr.Newf(apperr.NotFound, "campaign %q not found", id)
	}
	u.logger.Debugf("Deleted campaign %q", id)
	return campaign, nil
}

func (u *campaignUsecase) AddPlayer(campaignID, userID string) (*domain.Campaign, error) {
	if _, err := u.GetCampaign(campaignID); err != nil {
		return nil, err
	}
	if err := u.campaignRepo.AddPlayer(campaignID, userID); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to add player", err)
	}
	return u.GetCampaign(campaignID)
}

func (u *campaignUsecase) RemovePlayer(campaignID, userID string) (*domain.Campaign, error) {
	if _, err := u.GetCampaign(campaignID); err != nil {
		return nil, err
	}
	if err := u.campaignRepo.RemovePlayer(campaignID, userID); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to remove player", err)
	}
	return u.GetCampaign(campaignID)
}
