package api

import (
	"net/http"

	authdelivery "vtt-backend/internal/auth/delivery"
	authUsecase "vtt-backend/internal/auth/usecase"
	campaignDelivery "vtt-backend/internal/campaign/delivery"
	characterDelivery "vtt-backend/internal/character/delivery"
	mapDelivery "vtt-backend/internal/gamemap/delivery"
	mediaDelivery "vtt-backend/internal/media/delivery"
	setupDelivery "vtt-backend/internal/setup/delivery"
	setupUsecase "vtt-backend/internal/setup/usecase"
	tokenDelivery "vtt-backend/internal/token/delivery"
	userDelivery "vtt-backend/internal/user/delivery"

	"github.com/gin-gonic/gin"
)

// Handlers groups the delivery handlers the router wires up.
type Handlers struct {
	Auth      *authdelivery.AuthHandler
	User      *userDelivery.UserHandler
	Campaign  *campaignDelivery.CampaignHandler
	Map       *mapDelivery.MapHandler
	Token     *tokenDelivery.TokenHandler
	Character *characterDelivery.CharacterHandler
	Media     *mediaDelivery.MediaHandler
	Setup     *setupDelivery.SetupHandler
}

func SetupRoutes(r *gin.Engine, h Handlers, authUc authUsecase.AuthUsecase, setupUc setupUsecase.SetupUsecase, storageRoot string) {
	// Uploaded media is served statically.
	r.Static("/uploads", storageRoot)

	api := r.Group("/api")
	api.Use(setupDelivery.SetupGate(setupUc))
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Setup wizard (reachable before completion)
		api.GET("/setup", h.Setup.GetSetup)
		api.PUT("/setup", h.Setup.UpdateSetup)

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/sign-in", h.Auth.SignIn)
			auth.GET("/refresh", h.Auth.Refresh)
			auth.GET("/check-refresh-token", h.Auth.CheckRefreshToken)
			auth.POST("/request-password-reset", h.Auth.RequestPasswordReset)
			auth.POST("/reset-password", h.Auth.ResetPassword)
			auth.POST("/sign-out", authdelivery.AuthMiddleware(authUc), h.Auth.SignOut)
			auth.GET("/me", authdelivery.AuthMiddleware(authUc), h.Auth.Me)
			auth.POST("/change-password", authdelivery.AuthMiddleware(authUc), h.Auth.ChangePassword)
		}

		// User registration is open so the setup wizard can create the
		// first account.
		api.POST("/users", h.User.CreateUser)

		// User routes (protected)
		users := api.Group("/users")
		users.Use(authdelivery.AuthMiddleware(authUc))
		{
			users.GET("", h.User.GetUsers)
			users.GET("/:id", h.User.GetUser)
			users.PUT("/me", h.User.UpdateUser)
			users.GET("/me/campaigns", h.User.GetOrderedCampaigns)
			users.PUT("/me/campaign-order", h.User.ReorderCampaigns)
		}

		// Campaign routes (protected)
		campaigns := api.Group("/campaigns")
		campaigns.Use(authdelivery.AuthMiddleware(authUc))
		{
			campaigns.GET("", h.Campaign.GetCampaigns)
			campaigns.POST("", h.Campaign.CreateCampaign)
			campaigns.GET("/:id", h.Campaign.GetCampaign)
			campaigns.PUT("/:id", h.Campaign.UpdateCampaign)
			campaigns.DELETE("/:id", h.Campaign.DeleteCampaign)
			campaigns.POST("/:id/players/:userId", h.Campaign.AddPlayer)
			campaigns.DELETE("/:id/players/:userId", h.Campaign.RemovePlayer)
			campaigns.GET("/:id/maps", h.Map.GetCampaignMaps)
			campaigns.GET("/:id/characters/players", h.Character.GetCampaignPlayerCharacters)
			campaigns.GET("/:id/characters/non-players", h.Character.GetCampaignNonPlayerCharacters)
		}

		// Map routes (protected)
		maps := api.Group("/maps")
		maps.Use(authdelivery.AuthMiddleware(authUc))
		{
			maps.GET("", h.Map.GetMaps)
			maps.POST("", h.Map.CreateMap)
			maps.GET("/:id", h.Map.GetMap)
			maps.PUT("/:id", h.Map.UpdateMap)
			maps.DELETE("/:id", h.Map.DeleteMap)
			maps.GET("/:id/tokens", h.Token.GetMapTokens)
			maps.POST("/:id/tokens", h.Token.CreateToken)
			maps.POST("/:id/tokens/batch", h.Token.CreateTokens)
		}

		// Token routes (protected)
		tokens := api.Group("/tokens")
		tokens.Use(authdelivery.AuthMiddleware(authUc))
		{
			tokens.POST("/lookup", h.Token.GetTokens)
			tokens.PUT("", h.Token.UpdateTokens)
			tokens.PUT("/:id", h.Token.UpdateToken)
			tokens.DELETE("", h.Token.DeleteTokens)
			tokens.DELETE("/:id", h.Token.DeleteToken)
		}

		// Character routes (protected)
		characters := api.Group("/characters")
		characters.Use(authdelivery.AuthMiddleware(authUc))
		{
			characters.POST("/players", h.Character.CreatePlayerCharacter)
			characters.GET("/players/:id", h.Character.GetPlayerCharacter)
			characters.PUT("/players/:id", h.Character.UpdatePlayerCharacter)
			characters.DELETE("/players/:id", h.Character.DeletePlayerCharacter)
			characters.POST("/non-players", h.Character.CreateNonPlayerCharacter)
			characters.GET("/non-players/:id", h.Character.GetNonPlayerCharacter)
			characters.PUT("/non-players/:id", h.Character.UpdateNonPlayerCharacter)
			characters.DELETE("/non-players/:id", h.Character.DeleteNonPlayerCharacter)
		}

		// Media routes (protected)
		media := api.Group("/media")
		media.Use(authdelivery.AuthMiddleware(authUc))
		{
			media.GET("", h.Media.GetUserMedia)
			media.POST("", h.Media.Upload)
			media.GET("/:id", h.Media.GetMedia)
			media.DELETE("/:id", h.Media.DeleteMedia)
		}
	}
}
