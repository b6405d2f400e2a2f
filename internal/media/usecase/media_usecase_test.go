package usecase

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vtt-backend/internal/media/domain"
	"vtt-backend/internal/media/repository"
	userdomain "vtt-backend/internal/user/domain"
	"vtt-backend/pkg/apperr"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestUsecase(t *testing.T) MediaUsecase {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userdomain.User{}, &domain.Media{}))
	return NewMediaUsecase(repository.NewMediaRepository(db), t.TempDir())
}

func testImage(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestUpload_StoresImageAndThumbnail(t *testing.T) {
	uc := newTestUsecase(t)

	media, err := uc.Upload("battle-map.png", testImage(t, 800, 600), "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, media.ID)
	assert.Equal(t, 800, media.Width)
	assert.Equal(t, 600, media.Height)
	assert.Equal(t, "png", media.Extension)
	assert.True(t, strings.HasPrefix(media.URL, "/uploads/"))
	assert.True(t, strings.HasPrefix(media.ThumbnailURL, "/uploads/"))
	assert.NotEqual(t, media.URL, media.ThumbnailURL)
	assert.Positive(t, media.Size)

	got, err := uc.GetMedia(media.ID)
	require.NoError(t, err)
	assert.Equal(t, "battle-map.png", got.Name)
}

func TestUpload_RejectsNonImage(t *testing.T) {
	uc := newTestUsecase(t)

	_, err := uc.Upload("notes.txt", strings.NewReader("not an image"), "user-1")
	require.Error(t, err)
}

func TestGetUserMedia_FiltersByCreator(t *testing.T) {
	uc := newTestUsecase(t)

	_, err := uc.Upload("mine.png", testImage(t, 10, 10), "user-1")
	require.NoError(t, err)
	_, err = uc.Upload("theirs.png", testImage(t, 10, 10), "user-2")
	require.NoError(t, err)

	media, err := uc.GetUserMedia("user-1")
	require.NoError(t, err)
	require.Len(t, media, 1)
	assert.Equal(t, "mine.png", media[0].Name)
}

func TestDelete_RemovesRecordAndFiles(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userdomain.User{}, &domain.Media{}))
	storage := t.TempDir()
	uc := NewMediaUsecase(repository.NewMediaRepository(db), storage)

	media, err := uc.Upload("doomed.png", testImage(t, 10, 10), "user-1")
	require.NoError(t, err)

	stored := filepath.Join(storage, filepath.Base(media.URL))
	_, err = os.Stat(stored)
	require.NoError(t, err)

	deleted, err := uc.Delete(media.ID)
	require.NoError(t, err)
	assert.Equal(t, media.ID, deleted.ID)

	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))

	_, err = uc.GetMedia(media.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
