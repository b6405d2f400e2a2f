package delivery

import (
	"net/http"

	authdelivery "vtt-backend/internal/auth/delivery"
	"vtt-backend/internal/campaign/dto"
	"vtt-backend/internal/campaign/usecase"
	"vtt-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// CampaignHandler handles campaign-related HTTP requests
type CampaignHandler struct {
	campaignUsecase usecase.CampaignUsecase
}

// NewCampaignHandler creates a new CampaignHandler
func NewCampaignHandler(campaignUsecase usecase.CampaignUsecase) *CampaignHandler {
	return &CampaignHandler{campaignUsecase: campaignUsecase}
}

// GetCampaign returns one campaign with players and creator loaded.
// GET /api/campaigns/:id
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	campaign, err := h.campaignUsecase.GetCampaign(c.Param("id"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// GetCampaigns lists the authenticated user's campaigns.
// GET /api/campaigns
func (h *CampaignHandler) GetCampaigns(c *gin.Context) {
	campaigns, err := h.campaignUsecase.GetUserCampaigns(c.GetString("userID"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

// CreateCampaign creates a campaign owned by the authenticated user.
// POST /api/campaigns
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req dto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	campaign, err := h.campaignUsecase.CreateCampaign(&req, authdelivery.CurrentUser(c).ID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

// UpdateCampaign renames a campaign. The creator relation never changes.
// PUT /api/campaigns/:id
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	var req dto.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	campaign, err := h.campaignUsecase.UpdateCampaign(c.Param("id"), &req)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// DeleteCampaign deletes a campaign and returns it.
// DELETE /api/campaigns/:id
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	campaign, err := h.campaignUsecase.DeleteCampaign(c.Param("id"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// AddPlayer adds a user to the campaign roster.
// POST /api/campaigns/:id/players/:userId
func (h *CampaignHandler) AddPlayer(c *gin.Context) {
	campaign, err := h.campaignUsecase.AddPlayer(c.Param("id"), c.Param("userId"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// RemovePlayer removes a user from the campaign roster.
// DELETE /api/campaigns/:id/players/:userId
func (h *CampaignHandler) RemovePlayer(c *gin.Context) {
	campaign, err := h.campaignUsecase.RemovePlayer(c.Param("id"), c.Param("userId"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, campaign)
}
