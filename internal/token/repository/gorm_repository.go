package repository

import (
	"time"

	"vtt-backend/internal/token/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTokenRepository implements TokenRepository using GORM
type gormTokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new GORM-based TokenRepository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &gormTokenRepository{db: db}
}

// withCharacter eager-loads the token's character together with that
// character's controlling users and media.
func withCharacter(db *gorm.DB) *gorm.DB {
	return db.
		Preload("PlayerCharacter").
		Preload("PlayerCharacter.ControlledBy").
		Preload("PlayerCharacter.Media").
		Preload("NonPlayerCharacter").
		Preload("NonPlayerCharacter.ControlledBy").
		Preload("NonPlayerCharacter.Media")
}

func (r *gormTokenRepository) Create(token *domain.Token) error {
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	token.CreatedAt = time.Now()
	token.UpdatedAt = time.Now()
	if err := r.db.Create(token).Error; err != nil {
		return err
	}
	return withCharacter(r.db).Where("id = ?", token.ID).First(token).Error
}

func (r *gormTokenRepository) FindByIDs(ids []string) ([]*domain.Token, error) {
	var tokens []*domain.Token
	err := withCharacter(r.db).Where("id IN ?", ids).Find(&tokens).Error
	return tokens, err
}

func (r *gormTokenRepository) FindByMapID(mapID string) ([]*domain.Token, error) {
	var tokens []*domain.Token
	err := withCharacter(r.db).Where("map_id = ?", mapID).Order("created_at ASC").Find(&tokens).Error
	return tokens, err
}

func (r *gormTokenRepository) Update(id string, update TokenUpdate) (int64, error) {
	fields := map[string]interface{}{"updated_at": time.Now()}
	if update.X != nil {
		fields["x"] = *update.X
	}
	if update.Y != nil {
		fields["y"] = *update.Y
	}
	if update.Width != nil {
		fields["width"] = *update.Width
	}
	if update.Height != nil {
		fields["height"] = *update.Height
	}
	result := r.db.Model(&domain.Token{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *gormTokenRepository) Delete(id string) (int64, error) {
	result := r.db.Delete(&domain.Token{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

func (r *gormTokenRepository) CountByMapID(mapID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Token{}).Where("map_id = ?", mapID).Count(&count).Error
	return count, err
}
