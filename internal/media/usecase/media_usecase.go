package usecase

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"vtt-backend/internal/media/domain"
	"vtt-backend/internal/media/repository"
	"vtt-backend/pkg/apperr"
	"vtt-backend/pkg/logging"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const thumbnailSize = 300

// mediaUsecase implements MediaUsecase
type mediaUsecase struct {
	mediaRepo   repository.MediaRepository
	storageRoot string
	logger      *logrus.Entry
}

// NewMediaUsecase creates a new instance of mediaUsecase
func NewMediaUsecase(mediaRepo repository.MediaRepository, storageRoot string) MediaUsecase {
	return &mediaUsecase{
		mediaRepo:   mediaRepo,
		storageRoot: storageRoot,
		logger:      logging.ForService("media"),
	}
}

func (u *mediaUsecase) GetMedia(id string) (*domain.Media, error) {
	media, err := u.mediaRepo.FindByID(id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to get media", err)
	}
	if media == nil {
		return nil, apperr.Newf(apperr.NotFound, "media %q not found", id)
	}
	return media, nil
}

func (u *mediaUsecase) GetUserMedia(userID string) ([]*domain.Media, error) {
	media, err := u.mediaRepo.FindByCreator(userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to get media", err)
	}
	return media, nil
}

func (u *mediaUsecase) Upload(name string, file io.Reader, createdByID string) (*domain.Media, error) {
	u.logger.Debugf("Uploading media %q", name)

	img, err := imaging.Decode(file)
	if err != nil {
		u.logger.Errorf("Failed to decode %q: %v", name, err)
		return nil, apperr.Wrap(apperr.Internal, "unsupported image", err)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" || ext == "jpeg" {
		ext = "jpg"
	}

	id := uuid.New().String()
	if err := os.MkdirAll(u.storageRoot, 0o755); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to prepare storage", err)
	}

	filename := fmt.Sprintf("%s.%s", id, ext)
	thumbname := fmt.Sprintf("%s_thumb.%s", id, ext)
	if err := imaging.Save(img, filepath.Join(u.storageRoot, filename)); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to store image", err)
	}
	thumb := imaging.Fit(img, thumbnailSize, thumbnailSize, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(u.storageRoot, thumbname)); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to store thumbnail", err)
	}

	info, err := os.Stat(filepath.Join(u.storageRoot, filename))
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to stat stored image", err)
	}

	bounds := img.Bounds()
	media := &domain.Media{
		ID:           id,
		Name:         name,
		URL:          "/uploads/" + filename,
		ThumbnailURL: "/uploads/" + thumbname,
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
		Size:         info.Size(),
		Format:       "image/" + ext,
		Extension:    ext,
		CreatedByID:  createdByID,
	}
	if err := u.mediaRepo.Create(media); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to store media record", err)
	}
	u.logger.Debugf("Uploaded media %q (%dx%d)", id, media.Width, media.Height)
	return media, nil
}

func (u *mediaUsecase) Delete(id string) (*domain.Media, error) {
	media, err := u.GetMedia(id)
	if err != nil {
		return nil, err
	}

	affected, err := u.mediaRepo.Delete(id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to delete media", err)
	}
	if affected == 0 {
		return nil, apperr.Newf(apperr.NotFound, "media %q not found", id)
	}

	// Best effort; a missing file is not an error at this point.
	_ = os.Remove(filepath.Join(u.storageRoot, filepath.Base(media.URL)))
	_ = os.Remove(filepath.Join(u.storageRoot, filepath.Base(media.ThumbnailURL)))
	u.logger.Debugf("Deleted media %q", id)
	return media, nil
}
