package usecase

import (
	"vtt-backend/internal/character/domain"
	"vtt-backend/internal/character/dto"
	"vtt-backend/internal/character/repository"
	"vtt-backend/pkg/apperr"
	"vtt-backend/pkg/logging"

	"github.com/sirupsen/logrus"
)

// characterUsecase implements CharacterUsecase
type characterUsecase struct {
	characterRepo repository.CharacterRepository
	logger        *logrus.Entry
}

// NewCharacterUsecase creates a new instance of characterUsecase
func NewCharacterUsecase(characterRepo repository.CharacterRepository) CharacterUsecase {
	return &characterUsecase{
		characterRepo: characterRepo,
		logger:        logging.ForService("characters"),
	}
}

func (u *characterUsecase) GetPlayerCharacter(id string) (*domain.PlayerCharacter, error) {
	pc, err := u.characterRepo.FindPlayerCharacterByID(id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to get player character", err)
	}
	if pc == nil {
		return nil, apperr.Newf(apperr.NotFound, "player character %q not found", id)
	}
	return pc, nil
}

func (u *characterUsecase) GetCampaignPlayerCharacters(campaignID string) ([]*domain.PlayerCharacter, error) {
	pcs, err := u.characterRepo.FindPlayerCharactersByCampaign(campaignID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to get player characters", err)
	}
	return pcs, nil
}

func (u *characterUsecase) CreatePlayerCharacter(req *dto.CreateCharacterRequest, createdByID string) (*domain.PlayerCharacter, error) {
	u.logger.Debugf("Creating player character %q in campaign %q", req.Name, req.CampaignID)

	pc := &domain.PlayerCharacter{
		Name:        req.Name,
		Size:        req.Size,
		Stats:       req.Stats,
		CampaignID:  req.CampaignID,
		CreatedByID: createdByID,
	}
	if pc.Size == "" {
		pc.Size = domain.SizeMedium
	}
	if err := u.characterRepo.CreatePlayerCharacter(pc); err != nil {
		u.logger.Errorf("Failed to create player character %q: %v", req.Name, err)
		return nil, apperr.Wrap(apperr.Internal, "failed to create player character", err)
	}
	return u.GetPlayerCharacter(pc.ID)
}

func (u *characterUsecase) UpdatePlayerCharacter(id string, req *dto.UpdateCharacterRequest) (*domain.PlayerCharacter, error) {
	pc, err := u.GetPlayerCharacter(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		pc.Name = *req.Name
	}
	if req.Size != nil {
		pc.Size = *req.Size
	}
	if req.Stats != nil {
		pc.Stats = *req.Stats
	}
	if err := u.characterRepo.UpdatePlayerCharacter(pc); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to update player character", err)
	}
	if req.ControlledByIDs != nil {
		if err := u.characterRepo.SetPlayerCharacterControllers(id, req.ControlledByIDs); err != nil {
			return nil, apperr.Wrap(apperr.Internal, "failed to update controllers", err)
		}
	}
	return u.GetPlayerCharacter(id)
}

func (u *characterUsecase) DeletePlayerCharacter(id string) (*domain.PlayerCharacter, error) {
	pc, err := u.GetPlayerCharacter(id)
	if err != nil {
		return nil, err
	}

	affected, err := u.characterRepo.DeletePlayerCharacter(id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to delete player character", err)
	}
	if affected == 0 {
		return nil, apperr.Newf(apperr.NotFound, "player character %q not found", id)
	}
	u.logger.Debugf("Deleted player character %q and its tokens", id)
	return pc, nil
}

func (u *characterUsecase) GetNonPlayerCharacter(id string) (*domain.NonPlayerCharacter, error) {
	npc, err := u.characterRepo.FindNonPlayerCharacterByID(id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to get non-player character", err)
	}
	if npc == nil {
		return nil, apperr.Newf(apperr.NotFound, "non-player character %q not found", id)
	}
	return npc, nil
}

func (u *characterUsecase) GetCampaignNonPlayerCharacters(campaignID string) ([]*domain.NonPlayerCharacter, error) {
	npcs, err := u.characterRepo.FindNonPlayerCharactersByCampaign(campaignID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to get non-player characters", err)
	}
	return npcs, nil
}

func (u *characterUsecase) CreateNonPlayerCharacter(req *dto.CreateCharacterRequest, createdByID string) (*domain.NonPlayerCharacter, error) {
	u.logger.Debugf("Creating non-player character %q in campaign %q", req.Name, req.CampaignID)

	npc := &domain.NonPlayerCharacter{
		Name:        req.Name,
		Size:        req.Size,
		Stats:       req.Stats,
		CampaignID:  req.CampaignID,
		CreatedByID: createdByID,
	}
	if npc.Size == "" {
		npc.Size = domain.SizeMedium
	}
	if err := u.characterRepo.CreateNonPlayerCharacter(npc); err != nil {
		u.logger.Errorf("Failed to create non-player character %q: %v", req.Name, err)
		return nil, apperr.Wrap(apperr.Internal, "failed to create non-player character", err)
	}
	return u.GetNonPlayerCharacter(npc.ID)
}

func (u *characterUsecase) UpdateNonPlayerCharacter(id string, req *dto.UpdateCharacterRequest) (*domain.NonPlayerCharacter, error) {
	npc, err := u.GetNonPlayerCharacter(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		npc.Name = *req.Name
	}
	if req.Size != nil {
		npc.Size = *req.Size
	}
	if req.Stats != nil {
		npc.Stats = *req.Stats
	}
	if err := u.characterRepo.UpdateNonPlayerCharacter(npc); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to update non-player character", err)
	}
	if req.ControlledByIDs != nil {
		if err := u.characterRepo.SetNonPlayerCharacterControllers(id, req.ControlledByIDs); err != nil {
			return nil, apperr.Wrap(apperr.Internal, "failed to update controllers", err)
		}
	}
	return u.GetNonPlayerCharacter(id)
}

func (u *characterUsecase) DeleteNonPlayerCharacter(id string) (*domain.NonPlayerCharacter, error) {
	npc, err := u.GetNonPlayerCharacter(id)
	if err != nil {
		return nil, err
	}

	affected, err := u.characterRepo.DeleteNonPlayerCharacter(id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to delete non-player character", err)
	}
	if affected == 0 {
		return nil, apperr.Newf(apperr.NotFound, "non-player character %q not found", id)
	}
	u.logger.Debugf("Deleted non-player character %q and its tokens", id)
	return npc, nil
}
