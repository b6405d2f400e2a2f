package usecase

import (
	"strings"

	"vtt-backend/internal/gamemap/domain"
	"vtt-backend/internal/gamemap/dto"
	"vtt-backend/internal/gamemap/repository"
	"vtt-backend/pkg/apperr"
	"vtt-backend/pkg/fuzzy"
	"vtt-backend/pkg/logging"

	"github.com/sirupsen/logrus"
)

// mapUsecase implements MapUsecase
type mapUsecase struct {
	mapRepo repository.MapRepository
	logger  *logrus.Entry
}

// NewMapUsecase creates a new instance of mapUsecase
func NewMapUsecase(mapRepo repository.MapRepository) MapUsecase {
	return &mapUsecase{
		mapRepo: mapRepo,
		logger:  logging.ForService("maps"),
	}
}

func (u *mapUsecase) GetMap(id string) (*domain.Map, error) {
	u.logger.Debugf("Getting map %q", id)
	m, err := u.mapRepo.FindByID(id)
	if err != nil {
		u.logger.Errorf("Failed to get map %q: %v", id, err)
		return nil, apperr.Wrap(apperr.Internal, "failed to get map", err)
	}
	if m == nil {
		return nil, apperr.Newf(apperr.NotFound, "map %q not found", id)
	}
	return m, nil
}

// sortableColumns guards the order-by input against arbitrary SQL.
var sortableColumns = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

func (u *mapUsecase) GetMaps(query dto.ListMapsQuery) ([]*domain.Map, error) {
	u.logger.Debugf("Getting maps for campaign %q", query.CampaignID)

	params := repository.MapParams{
		CampaignID: query.CampaignID,
		Skip:       query.Skip,
		Take:       query.Take,
		Descending: strings.EqualFold(query.Order, "desc"),
	}
	if column, ok := sortableColumns[query.OrderBy]; ok {
		params.OrderBy = column
	}
	// The name matcher cannot run in SQL, so a searched listing is fetched
	// unpaged and paged after filtering.
	if query.Search != "" {
		params.Skip, params.Take = 0, 0
	}

	maps, err := u.mapRepo.Find(params)
	if err != nil {
		u.logger.Errorf("Failed to get maps: %v", err)
		return nil, apperr.Wrap(apperr.Internal, "failed to get maps", err)
	}
	if query.Search != "" {
		matched := make([]*domain.Map, 0, len(maps))
		for _, m := range maps {
			if fuzzy.MatchName(query.Search, m.Name) {
				matched = append(matched, m)
			}
		}
		maps = matched
		if query.Skip > 0 {
			if query.Skip >= len(maps) {
				maps = nil
			} else {
				maps = maps[query.Skip:]
			}
		}
		if query.Take > 0 && query.Take < len(maps) {
			maps = maps[:query.Take]
		}
	}
	u.logger.Debugf("Found %d maps", len(maps))
	return maps, nil
}

func (u *mapUsecase) CreateMap(data dto.CreateMapRequest, createdByID string) (*domain.Map, error) {
	u.logger.Debugf("Creating map %q in campaign %q", data.Name, data.CampaignID)

	m := &domain.Map{
		Name:            data.Name,
		CampaignID:      data.CampaignID,
		SelectedMediaID: data.SelectedMediaID,
		CreatedByID:     createdByID,
	}
	if err := u.mapRepo.Create(m); err != nil {
		u.logger.Errorf("Failed to create map %q: %v", data.Name, err)
		return nil, apperr.Wrap(apperr.Internal, "failed to create map", err)
	}
	if len(data.MediaIDs) > 0 {
		if err := u.mapRepo.SetMedia(m.ID, data.MediaIDs); err != nil {
			return nil, apperr.Wrap(apperr.Internal, "failed to attach media", err)
		}
	}
	u.logger.Debugf("Created map %q", m.ID)
	return u.GetMap(m.ID)
}

func (u *mapUsecase) UpdateMap(id string, data dto.UpdateMapRequest) (*domain.Map, error) {
	u.logger.Debugf("Updating map %q", id)

	m, err := u.mapRepo.FindByID(id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to get map", err)
	}
	if m == nil {
		u.logger.Errorf("Map %q not found", id)
		return nil, apperr.Newf(apperr.NotFound, "map %q not found", id)
	}

	if data.Name != nil {
		m.Name = *data.Name
	}
	if data.SelectedMediaID != nil {
		m.SelectedMediaID = data.SelectedMediaID
	}
	if err := u.mapRepo.Update(m); err != nil {
		u.logger.Errorf("Failed to update map %q: %v", id, err)
		return nil, apperr.Wrap(apperr.Internal, "failed to update map", err)
	}
	if data.MediaIDs != nil {
		if err := u.mapRepo.SetMedia(id, data.MediaIDs); err != nil {
			return nil, apperr.Wrap(apperr.Internal, "failed to update media", err)
		}
	}
	u.logger.Debugf("Updated map %q", id)
	return u.GetMap(id)
}

func (u *mapUsecase) DeleteMap(id string) (*domain.Map, error) {
	u.logger.Debugf("Deleting map %q", id)

	m, err := u.mapRepo.FindByID(id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to get map", err)
	}
	if m == nil {
		u.logger.Errorf("Map %q not found", id)
		return nil, apperr.Newf(apperr.NotFound, "map %q not found", id)
	}

	affected, err := u.mapRepo.Delete(id)
	if err != nil {
		u.logger.Errorf("Failed to delete map %q: %v", id, err)
		return nil, apperr.Wrap(apperr.Internal, "failed to delete map", err)
	}
	if affected == 0 {
		return nil, apperr.Newf(apperr.NotFound, "map %q not found", id)
	}
	u.logger.Debugf("Deleted map %q and its tokens", id)
	return m, nil
}
