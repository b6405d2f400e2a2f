package api

import (
	authdelivery "vtt-backend/internal/auth/delivery"
	authUsecase "vtt-backend/internal/auth/usecase"
	campaignDelivery "vtt-backend/internal/campaign/delivery"
	campaignUsecase "vtt-backend/internal/campaign/usecase"
	characterDelivery "vtt-backend/internal/character/delivery"
	characterUsecase "vtt-backend/internal/character/usecase"
	mapDelivery "vtt-backend/internal/gamemap/delivery"
	mapUsecase "vtt-backend/internal/gamemap/usecase"
	mediaDelivery "vtt-backend/internal/media/delivery"
	mediaUsecase "vtt-backend/internal/media/usecase"
	setupDelivery "vtt-backend/internal/setup/delivery"
	setupUsecase "vtt-backend/internal/setup/usecase"
	tokenDelivery "vtt-backend/internal/token/delivery"
	tokenUsecase "vtt-backend/internal/token/usecase"
	userDelivery "vtt-backend/internal/user/delivery"
	userUsecase "vtt-backend/internal/user/usecase"
	"vtt-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

// Usecases groups everything the HTTP layer depends on.
type Usecases struct {
	Auth      authUsecase.AuthUsecase
	User      userUsecase.UserUsecase
	Campaign  campaignUsecase.CampaignUsecase
	Map       mapUsecase.MapUsecase
	Token     tokenUsecase.TokenUsecase
	Character characterUsecase.CharacterUsecase
	Media     mediaUsecase.MediaUsecase
	Setup     setupUsecase.SetupUsecase
}

type Handler struct {
	usecases Usecases
	config   *config.Config
}

func NewHandler(usecases Usecases, cfg *config.Config) *Handler {
	return &Handler{usecases: usecases, config: cfg}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	handlers := Handlers{
		Auth:      authdelivery.NewAuthHandler(h.usecases.Auth),
		User:      userDelivery.NewUserHandler(h.usecases.User),
		Campaign:  campaignDelivery.NewCampaignHandler(h.usecases.Campaign),
		Map:       mapDelivery.NewMapHandler(h.usecases.Map),
		Token:     tokenDelivery.NewTokenHandler(h.usecases.Token),
		Character: characterDelivery.NewCharacterHandler(h.usecases.Character),
		Media:     mediaDelivery.NewMediaHandler(h.usecases.Media),
		Setup:     setupDelivery.NewSetupHandler(h.usecases.Setup),
	}
	SetupRoutes(r, handlers, h.usecases.Auth, h.usecases.Setup, h.config.StorageRoot)

	return r.Run(addr)
}
