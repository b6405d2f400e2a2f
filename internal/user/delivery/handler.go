package delivery

import (
	"net/http"

	authdelivery "vtt-backend/internal/auth/delivery"
	"vtt-backend/internal/user/dto"
	"vtt-backend/internal/user/usecase"
	"vtt-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUsecase usecase.UserUsecase
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// GetUsers returns all users in their public-safe projection.
// GET /api/users
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userUsecase.GetUsers()
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser returns one user.
// GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUsecase.GetUser(c.Param("id"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser registers a new user.
// POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUsecase.CreateUser(&req)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateUser updates the authenticated user's profile.
// PUT /api/users/me
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUsecase.UpdateUser(authdelivery.CurrentUser(c).ID, &req)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// ReorderCampaigns stores the user's campaign display order.
// PUT /api/users/me/campaign-order
func (h *UserHandler) ReorderCampaigns(c *gin.Context) {
	var req dto.ReorderCampaignsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUsecase.ReorderCampaigns(authdelivery.CurrentUser(c).ID, req.CampaignOrder)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetOrderedCampaigns returns the user's campaigns in display order.
// GET /api/users/me/campaigns
func (h *UserHandler) GetOrderedCampaigns(c *gin.Context) {
	campaigns, err := h.userUsecase.OrderedCampaigns(authdelivery.CurrentUser(c).ID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, campaigns)
}
