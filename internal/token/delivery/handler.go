package delivery

import (
	"net/http"

	"vtt-backend/internal/token/dto"
	"vtt-backend/internal/token/usecase"
	"vtt-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// TokenHandler handles token-related HTTP requests
type TokenHandler struct {
	tokenUsecase usecase.TokenUsecase
}

// NewTokenHandler creates a new TokenHandler
func NewTokenHandler(tokenUsecase usecase.TokenUsecase) *TokenHandler {
	return &TokenHandler{tokenUsecase: tokenUsecase}
}

// GetMapTokens returns all tokens on a map with their characters loaded.
// GET /api/maps/:id/tokens
func (h *TokenHandler) GetMapTokens(c *gin.Context) {
	tokens, err := h.tokenUsecase.GetMapTokens(c.Param("id"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// GetTokens returns the tokens matching the requested IDs; unknown IDs are
// simply absent from the result.
// POST /api/tokens/lookup
func (h *TokenHandler) GetTokens(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, err := h.tokenUsecase.GetTokens(req.IDs)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// CreateToken places a single token on a map.
// POST /api/maps/:id/tokens
func (h *TokenHandler) CreateToken(c *gin.Context) {
	var req dto.CreateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.tokenUsecase.CreateToken(req, c.Param("id"), c.GetString("userID"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, token)
}

// CreateTokens places a batch of tokens on a map. The batch is best-effort:
// a failing item aborts the response but earlier items stay committed.
// POST /api/maps/:id/tokens/batch
func (h *TokenHandler) CreateTokens(c *gin.Context) {
	var req []dto.CreateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, err := h.tokenUsecase.CreateTokens(req, c.Param("id"), c.GetString("userID"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, tokens)
}

// UpdateToken applies a partial position/size update.
// PUT /api/tokens/:id
func (h *TokenHandler) UpdateToken(c *gin.Context) {
	var req dto.UpdateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.tokenUsecase.UpdateToken(c.Param("id"), req)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, token)
}

// UpdateTokens applies a batch of partial updates.
// PUT /api/tokens
func (h *TokenHandler) UpdateTokens(c *gin.Context) {
	var req []dto.UpdateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, err := h.tokenUsecase.UpdateTokens(req)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// DeleteToken removes a token and returns it.
// DELETE /api/tokens/:id
func (h *TokenHandler) DeleteToken(c *gin.Context) {
	token, err := h.tokenUsecase.DeleteToken(c.Param("id"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, token)
}

// DeleteTokens removes a batch of tokens. Overlapping deletes can race; a
// second delete of the same ID fails with Not-Found.
// DELETE /api/tokens
func (h *TokenHandler) DeleteTokens(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, err := h.tokenUsecase.DeleteTokens(req.IDs)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tokens)
}
