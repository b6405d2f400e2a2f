package repository

import (
	"errors"
	"time"

	"vtt-backend/internal/character/domain"
	tokendomain "vtt-backend/internal/token/domain"
	userdomain "vtt-backend/internal/user/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormCharacterRepository implements CharacterRepository using GORM
type gormCharacterRepository struct {
	db *gorm.DB
}

// NewCharacterRepository creates a new GORM-based CharacterRepository
func NewCharacterRepository(db *gorm.DB) CharacterRepository {
	return &gormCharacterRepository{db: db}
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("ControlledBy").Preload("Media").Preload("CreatedBy")
}

func (r *gormCharacterRepository) CreatePlayerCharacter(pc *domain.PlayerCharacter) error {
	if pc.ID == "" {
		pc.ID = uuid.New().String()
	}
	pc.CreatedAt = time.Now()
	pc.UpdatedAt = time.Now()
	return r.db.Create(pc).Error
}

func (r *gormCharacterRepository) FindPlayerCharacterByID(id string) (*domain.PlayerCharacter, error) {
	var pc domain.PlayerCharacter
	err := withRelations(r.db).Where("id = ?", id).First(&pc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pc, nil
}

func (r *gormCharacterRepository) FindPlayerCharactersByCampaign(campaignID string) ([]*domain.PlayerCharacter, error) {
	var pcs []*domain.PlayerCharacter
	err := withRelations(r.db).Where("campaign_id = ?", campaignID).Order("created_at ASC").Find(&pcs).Error
	return pcs, err
}

func (r *gormCharacterRepository) UpdatePlayerCharacter(pc *domain.PlayerCharacter) error {
	pc.UpdatedAt = time.Now()
	return r.db.Save(pc).Error
}

func (r *gormCharacterRepository) DeletePlayerCharacter(id string) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("player_character_id = ?", id).Delete(&tokendomain.Token{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.PlayerCharacter{}, "id = ?", id)
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}

func (r *gormCharacterRepository) SetPlayerCharacterControllers(id string, userIDs []string) error {
	users := make([]*userdomain.User, 0, len(userIDs))
	for _, userID := range userIDs {
		users = append(users, &userdomain.User{ID: userID})
	}
	return r.db.Model(&domain.PlayerCharacter{ID: id}).Association("ControlledBy").Replace(users)
}

func (r *gormCharacterRepository) CreateNonPlayerCharacter(npc *domain.NonPlayerCharacter) error {
	if npc.ID == "" {
		npc.ID = uuid.New().String()
	}
	npc.CreatedAt = time.Now()
	npc.UpdatedAt = time.Now()
	return r.db.Create(npc).Error
}

func (r *gormCharacterRepository) FindNonPlayerCharacterByID(id string) (*domain.NonPlayerCharacter, error) {
	var npc domain.NonPlayerCharacter
	err := withRelations(r.db).Where("id = ?", id).First(&npc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &npc, nil
}

func (r *gormCharacterRepository) FindNonPlayerCharactersByCampaign(campaignID string) ([]*domain.NonPlayerCharacter, error) {
	var npcs []*domain.NonPlayerCharacter
	err := withRelations(r.db).Where("campaign_id = ?", campaignID).Order("created_at ASC").Find(&npcs).Error
	return npcs, err
}

func (r *gormCharacterRepository) UpdateNonPlayerCharacter(npc *domain.NonPlayerCharacter) error {
	npc.UpdatedAt = time.Now()
	return r.db.Save(npc).Error
}

func (r *gormCharacterRepository) DeleteNonPlayerCharacter(id string) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("non_player_character_id = ?", id).Delete(&tokendomain.Token{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.NonPlayerCharacter{}, "id = ?", id)
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}

func (r *gormCharacterRepository) SetNonPlayerCharacterControllers(id string, userIDs []string) error {
	users := make([]*userdomain.User, 0, len(userIDs))
	for _, userID := range userIDs {
		users = append(users, &userdomain.User{ID: userID})
	}
	return r.db.Model(&domain.NonPlayerCharacter{ID: id}).Association("ControlledBy").Replace(users)
}
