package delivery

import (
	"net/http"

	"vtt-backend/internal/gamemap/dto"
	"vtt-backend/internal/gamemap/usecase"
	"vtt-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// MapHandler handles map-related HTTP requests
type MapHandler struct {
	mapUsecase usecase.MapUsecase
}

// NewMapHandler creates a new MapHandler
func NewMapHandler(mapUsecase usecase.MapUsecase) *MapHandler {
	return &MapHandler{mapUsecase: mapUsecase}
}

// GetMap returns a map with its campaign and media loaded.
// GET /api/maps/:id
func (h *MapHandler) GetMap(c *gin.Context) {
	m, err := h.mapUsecase.GetMap(c.Param("id"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, m)
}

// GetMaps lists maps with filter/sort/pagination query parameters.
// GET /api/maps?campaignId=&orderBy=&order=&skip=&take=
func (h *MapHandler) GetMaps(c *gin.Context) {
	var query dto.ListMapsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	maps, err := h.mapUsecase.GetMaps(query)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, maps)
}

// GetCampaignMaps lists the maps of one campaign.
// GET /api/campaigns/:id/maps
func (h *MapHandler) GetCampaignMaps(c *gin.Context) {
	maps, err := h.mapUsecase.GetMaps(dto.ListMapsQuery{CampaignID: c.Param("id")})
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, maps)
}

// CreateMap creates a map inside a campaign.
// POST /api/maps
func (h *MapHandler) CreateMap(c *gin.Context) {
	var req dto.CreateMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.mapUsecase.CreateMap(req, c.GetString("userID"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, m)
}

// UpdateMap applies a partial map update.
// PUT /api/maps/:id
func (h *MapHandler) UpdateMap(c *gin.Context) {
	var req dto.UpdateMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.mapUsecase.UpdateMap(c.Param("id"), req)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, m)
}

// DeleteMap deletes a map and its tokens, returning the deleted map. The
// body carries the campaign ID so clients can target the right cache key.
// DELETE /api/maps/:id
func (h *MapHandler) DeleteMap(c *gin.Context) {
	// The campaign ID is for the client's cache reconciliation only.
	var req dto.DeleteMapRequest
	_ = c.ShouldBindJSON(&req)

	m, err := h.mapUsecase.DeleteMap(c.Param("id"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, m)
}
