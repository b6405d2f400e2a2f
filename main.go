package main

import (
	"log"

	api "vtt-backend/cmd/api"
	authScheduler "vtt-backend/internal/auth/scheduler"
	authUsecase "vtt-backend/internal/auth/usecase"
	campaigndomain "vtt-backend/internal/campaign/domain"
	campaignRepo "vtt-backend/internal/campaign/repository"
	campaignUsecase "vtt-backend/internal/campaign/usecase"
	characterdomain "vtt-backend/internal/character/domain"
	characterRepo "vtt-backend/internal/character/repository"
	characterUsecase "vtt-backend/internal/character/usecase"
	mapdomain "vtt-backend/internal/gamemap/domain"
	mapRepo "vtt-backend/internal/gamemap/repository"
	mapUsecase "vtt-backend/internal/gamemap/usecase"
	mediadomain "vtt-backend/internal/media/domain"
	mediaRepo "vtt-backend/internal/media/repository"
	mediaUsecase "vtt-backend/internal/media/usecase"
	setupdomain "vtt-backend/internal/setup/domain"
	setupRepo "vtt-backend/internal/setup/repository"
	setupUsecase "vtt-backend/internal/setup/usecase"
	tokendomain "vtt-backend/internal/token/domain"
	tokenRepo "vtt-backend/internal/token/repository"
	tokenUsecase "vtt-backend/internal/token/usecase"
	userdomain "vtt-backend/internal/user/domain"
	userRepo "vtt-backend/internal/user/repository"
	userUsecase "vtt-backend/internal/user/usecase"
	"vtt-backend/pkg/config"
	"vtt-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&mediadomain.Media{},
		&userdomain.User{},
		&userdomain.PasswordResetToken{},
		&campaigndomain.Campaign{},
		&mapdomain.Map{},
		&characterdomain.PlayerCharacter{},
		&characterdomain.NonPlayerCharacter{},
		&tokendomain.Token{},
		&setupdomain.Setup{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := userRepo.NewUserRepository(db)
	campaignRepository := campaignRepo.NewCampaignRepository(db)
	mapRepository := mapRepo.NewMapRepository(db)
	tokenRepository := tokenRepo.NewTokenRepository(db)
	characterRepository := characterRepo.NewCharacterRepository(db)
	mediaRepository := mediaRepo.NewMediaRepository(db)
	setupRepository := setupRepo.NewSetupRepository(db)

	// Initialize use cases (dependency injection)
	auth := authUsecase.NewAuthUsecase(userRepository, cfg)
	usecases := api.Usecases{
		Auth:      auth,
		User:      userUsecase.NewUserUsecase(userRepository, campaignRepository),
		Campaign:  campaignUsecase.NewCampaignUsecase(campaignRepository),
		Map:       mapUsecase.NewMapUsecase(mapRepository),
		Token:     tokenUsecase.NewTokenUsecase(tokenRepository),
		Character: characterUsecase.NewCharacterUsecase(characterRepository),
		Media:     mediaUsecase.NewMediaUsecase(mediaRepository, cfg.StorageRoot),
		Setup:     setupUsecase.NewSetupUsecase(setupRepository),
	}

	// Start background purge of expired password reset tokens
	purge := authScheduler.NewTokenPurgeScheduler(auth)
	purge.Start()
	defer purge.Stop()

	// Initialize HTTP handler and start server
	handler := api.NewHandler(usecases, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
