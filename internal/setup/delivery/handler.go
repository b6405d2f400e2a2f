package delivery

import (
	"net/http"
	"strings"

	"vtt-backend/internal/setup/usecase"
	"vtt-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// SetupHandler handles setup wizard HTTP requests
type SetupHandler struct {
	setupUsecase usecase.SetupUsecase
}

// NewSetupHandler creates a new SetupHandler
func NewSetupHandler(setupUsecase usecase.SetupUsecase) *SetupHandler {
	return &SetupHandler{setupUsecase: setupUsecase}
}

// GetSetup returns the current setup state.
// GET /api/setup
func (h *SetupHandler) GetSetup(c *gin.Context) {
	setup, err := h.setupUsecase.GetSetup()
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, setup)
}

// UpdateSetup applies a partial setup-state update and returns the record.
// PUT /api/setup
func (h *SetupHandler) UpdateSetup(c *gin.Context) {
	var req usecase.UpdateSetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	setup, err := h.setupUsecase.UpdateSetup(&req)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, setup)
}

// setupExempt reports whether a request must stay reachable while setup is
// incomplete. Besides the setup and health endpoints themselves, the wizard
// needs to create the first user, sign in, and create the first campaign and
// map before it can mark setup completed.
func setupExempt(method, path string) bool {
	if strings.HasPrefix(path, "/api/setup") || path == "/api/health" {
		return true
	}
	if strings.HasPrefix(path, "/api/auth") {
		return true
	}
	if method == http.MethodPost {
		switch path {
		case "/api/users", "/api/campaigns", "/api/maps":
			return true
		}
	}
	return false
}

// SetupGate redirects API consumers into the setup flow while the setup
// wizard has not completed. The endpoints the wizard itself walks through
// stay reachable.
func SetupGate(setupUsecase usecase.SetupUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if setupExempt(c.Request.Method, c.Request.URL.Path) {
			c.Next()
			return
		}

		completed, err := setupUsecase.IsCompleted()
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		if !completed {
			c.Header("Location", "/setup")
			c.JSON(http.StatusTemporaryRedirect, gin.H{"error": "setup not completed"})
			c.Abort()
			return
		}
		c.Next()
	}
}
