package delivery

import (
	"net/http"

	"vtt-backend/internal/media/usecase"
	"vtt-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// MediaHandler handles media upload and lifecycle HTTP requests
type MediaHandler struct {
	mediaUsecase usecase.MediaUsecase
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(mediaUsecase usecase.MediaUsecase) *MediaHandler {
	return &MediaHandler{mediaUsecase: mediaUsecase}
}

// GetMedia returns one media record.
// GET /api/media/:id
func (h *MediaHandler) GetMedia(c *gin.Context) {
	media, err := h.mediaUsecase.GetMedia(c.Param("id"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, media)
}

// GetUserMedia lists the authenticated user's uploads.
// GET /api/media
func (h *MediaHandler) GetUserMedia(c *gin.Context) {
	media, err := h.mediaUsecase.GetUserMedia(c.GetString("userID"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, media)
}

// Upload accepts a multipart image, stores it with a thumbnail and returns
// the media record.
// POST /api/media
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	media, err := h.mediaUsecase.Upload(fileHeader.Filename, file, c.GetString("userID"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, media)
}

// DeleteMedia removes a media record and its files.
// DELETE /api/media/:id
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	media, err := h.mediaUsecase.Delete(c.Param("id"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, media)
}
