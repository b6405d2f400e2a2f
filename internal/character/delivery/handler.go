package delivery

import (
	"net/http"

	"vtt-backend/internal/character/dto"
	"vtt-backend/internal/character/usecase"
	"vtt-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// CharacterHandler handles player and non-player character HTTP requests
type CharacterHandler struct {
	characterUsecase usecase.CharacterUsecase
}

// NewCharacterHandler creates a new CharacterHandler
func NewCharacterHandler(characterUsecase usecase.CharacterUsecase) *CharacterHandler {
	return &CharacterHandler{characterUsecase: characterUsecase}
}

// GetPlayerCharacter returns one player character.
// GET /api/characters/players/:id
func (h *CharacterHandler) GetPlayerCharacter(c *gin.Context) {
	pc, err := h.characterUsecase.GetPlayerCharacter(c.Param("id"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pc)
}

// GetCampaignPlayerCharacters lists a campaign's player characters.
// GET /api/campaigns/:id/characters/players
func (h *CharacterHandler) GetCampaignPlayerCharacters(c *gin.Context) {
	pcs, err := h.characterUsecase.GetCampaignPlayerCharacters(c.Param("id"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pcs)
}

// CreatePlayerCharacter creates a player character.
// POST /api/characters/players
func (h *CharacterHandler) CreatePlayerCharacter(c *gin.Context) {
	var req dto.CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pc, err := h.characterUsecase.CreatePlayerCharacter(&req, c.GetString("userID"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, pc)
}

// UpdatePlayerCharacter updates a player character.
// PUT /api/characters/players/:id
func (h *CharacterHandler) UpdatePlayerCharacter(c *gin.Context) {
	var req dto.UpdateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pc, err := h.characterUsecase.UpdatePlayerCharacter(c.Param("id"), &req)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pc)
}

// DeletePlayerCharacter deletes a player character and its tokens.
// DELETE /api/characters/players/:id
func (h *CharacterHandler) DeletePlayerCharacter(c *gin.Context) {
	pc, err := h.characterUsecase.DeletePlayerCharacter(c.Param("id"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pc)
}

// GetNonPlayerCharacter returns one non-player character.
// GET /api/characters/non-players/:id
func (h *CharacterHandler) GetNonPlayerCharacter(c *gin.Context) {
	npc, err := h.characterUsecase.GetNonPlayerCharacter(c.Param("id"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, npc)
}

// GetCampaignNonPlayerCharacters lists a campaign's non-player characters.
// GET /api/campaigns/:id/characters/non-players
func (h *CharacterHandler) GetCampaignNonPlayerCharacters(c *gin.Context) {
	npcs, err := h.characterUsecase.GetCampaignNonPlayerCharacters(c.Param("id"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, npcs)
}

// CreateNonPlayerCharacter creates a non-player character.
// POST /api/characters/non-players
func (h *CharacterHandler) CreateNonPlayerCharacter(c *gin.Context) {
	var req dto.CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	npc, err := h.characterUsecase.CreateNonPlayerCharacter(&req, c.GetString("userID"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, npc)
}

// UpdateNonPlayerCharacter updates a non-player character.
// PUT /api/characters/non-players/:id
func (h *CharacterHandler) UpdateNonPlayerCharacter(c *gin.Context) {
	var req dto.UpdateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	npc, err := h.characterUsecase.UpdateNonPlayerCharacter(c.Param("id"), &req)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, npc)
}

// DeleteNonPlayerCharacter deletes a non-player character and its tokens.
// DELETE /api/characters/non-players/:id
func (h *CharacterHandler) DeleteNonPlayerCharacter(c *gin.Context) {
	npc, err := h.characterUsecase.DeleteNonPlayerCharacter(c.Param("id"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, npc)
}
