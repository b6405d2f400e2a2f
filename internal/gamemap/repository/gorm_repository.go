package repository

import (
	"errors"
	"fmt"
	"time"

	"vtt-backend/internal/gamemap/domain"
	mediadomain "vtt-backend/internal/media/domain"
	tokendomain "vtt-backend/internal/token/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormMapRepository implements MapRepository using GORM
type gormMapRepository struct {
	db *gorm.DB
}

// NewMapRepository creates a new GORM-based MapRepository
func NewMapRepository(db *gorm.DB) MapRepository {
	return &gormMapRepository{db: db}
}

func (r *gormMapRepository) Create(m *domain.Map) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	m.CreatedAt = time.Now()
	m.UpdatedAt = time.Now()
	return r.db.Create(m).Error
}

func (r *gormMapRepository) FindByID(id string) (*domain.Map, error) {
	var m domain.Map
	err := r.db.Preload("Campaign").Preload("Media").Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *gormMapRepository) Find(params MapParams) ([]*domain.Map, error) {
	var maps []*domain.Map

	query := r.db.Preload("Campaign").Preload("Media")
	if params.CampaignID != "" {
		query = query.Where("campaign_id = ?", params.CampaignID)
	}
	if params.CreatedBy != "" {
		query = query.Where("created_by_id = ?", params.CreatedBy)
	}

	orderBy := params.OrderBy
	if orderBy == "" {
		orderBy = "created_at"
	}
	direction := "ASC"
	if params.Descending {
		direction = "DESC"
	}
	query = query.Order(fmt.Sprintf("%s %s", orderBy, direction))

	if params.Skip > 0 {
		query = query.Offset(params.Skip)
	}
	if params.Take > 0 {
		query = query.Limit(params.Take)
	}

	err := query.Find(&maps).Error
	return maps, err
}

func (r *gormMapRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Map{}).Count(&count).Error
	return count, err
}

func (r *gormMapRepository) Update(m *domain.Map) error {
	m.UpdatedAt = time.Now()
	return r.db.Save(m).Error
}

func (r *gormMapRepository) Delete(id string) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("map_id = ?", id).Delete(&tokendomain.Token{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.Map{}, "id = ?", id)
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}

func (r *gormMapRepository) SetMedia(mapID string, mediaIDs []string) error {
	media := make([]*mediadomain.Media, 0, len(mediaIDs))
	for _, id := range mediaIDs {
		media = append(media, &mediadomain.Media{ID: id})
	}
	return r.db.Model(&domain.Map{ID: mapID}).Association("Media").Replace(media)
}
