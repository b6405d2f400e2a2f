package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	authdelivery "vtt-backend/internal/auth/delivery"
	authUsecase "vtt-backend/internal/auth/usecase"
	campaigndomain "vtt-backend/internal/campaign/domain"
	campaignDelivery "vtt-backend/internal/campaign/delivery"
	campaignRepo "vtt-backend/internal/campaign/repository"
	campaignUsecase "vtt-backend/internal/campaign/usecase"
	characterdomain "vtt-backend/internal/character/domain"
	characterDelivery "vtt-backend/internal/character/delivery"
	characterRepo "vtt-backend/internal/character/repository"
	characterUsecase "vtt-backend/internal/character/usecase"
	mapdomain "vtt-backend/internal/gamemap/domain"
	mapDelivery "vtt-backend/internal/gamemap/delivery"
	mapRepo "vtt-backend/internal/gamemap/repository"
	mapUsecase "vtt-backend/internal/gamemap/usecase"
	mediadomain "vtt-backend/internal/media/domain"
	mediaDelivery "vtt-backend/internal/media/delivery"
	mediaRepo "vtt-backend/internal/media/repository"
	mediaUsecase "vtt-backend/internal/media/usecase"
	setupdomain "vtt-backend/internal/setup/domain"
	setupDelivery "vtt-backend/internal/setup/delivery"
	setupRepo "vtt-backend/internal/setup/repository"
	setupUsecase "vtt-backend/internal/setup/usecase"
	tokendomain "vtt-backend/internal/token/domain"
	tokenDelivery "vtt-backend/internal/token/delivery"
	tokenRepo "vtt-backend/internal/token/repository"
	tokenUsecase "vtt-backend/internal/token/usecase"
	userdomain "vtt-backend/internal/user/domain"
	userDelivery "vtt-backend/internal/user/delivery"
	userRepo "vtt-backend/internal/user/repository"
	userUsecase "vtt-backend/internal/user/usecase"
	"vtt-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&mediadomain.Media{},
		&userdomain.User{},
		&userdomain.PasswordResetToken{},
		&campaigndomain.Campaign{},
		&mapdomain.Map{},
		&characterdomain.PlayerCharacter{},
		&characterdomain.NonPlayerCharacter{},
		&tokendomain.Token{},
		&setupdomain.Setup{},
	))

	cfg := &config.Config{
		JWTAccessSecret:  "access-secret",
		JWTRefreshSecret: "refresh-secret",
		JWTAccessExpiry:  10 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
		JWTGenericExpiry: 24 * time.Hour,
	}

	users := userRepo.NewUserRepository(db)
	campaigns := campaignRepo.NewCampaignRepository(db)
	auth := authUsecase.NewAuthUsecase(users, cfg)
	setup := setupUsecase.NewSetupUsecase(setupRepo.NewSetupRepository(db))

	handlers := Handlers{
		Auth:      authdelivery.NewAuthHandler(auth),
		User:      userDelivery.NewUserHandler(userUsecase.NewUserUsecase(users, campaigns)),
		Campaign:  campaignDelivery.NewCampaignHandler(campaignUsecase.NewCampaignUsecase(campaigns)),
		Map:       mapDelivery.NewMapHandler(mapUsecase.NewMapUsecase(mapRepo.NewMapRepository(db))),
		Token:     tokenDelivery.NewTokenHandler(tokenUsecase.NewTokenUsecase(tokenRepo.NewTokenRepository(db))),
		Character: characterDelivery.NewCharacterHandler(characterUsecase.NewCharacterUsecase(characterRepo.NewCharacterRepository(db))),
		Media:     mediaDelivery.NewMediaHandler(mediaUsecase.NewMediaUsecase(mediaRepo.NewMediaRepository(db), t.TempDir())),
		Setup:     setupDelivery.NewSetupHandler(setup),
	}

	r := gin.New()
	SetupRoutes(r, handlers, auth, setup, t.TempDir())
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// The setup wizard has to be able to create the first user, sign in, and
// create the first campaign and map before it can mark setup completed.
func TestSetupWizard_EndToEnd(t *testing.T) {
	r := newTestRouter(t)

	// Non-bootstrap routes are gated while setup is incomplete.
	w := doJSON(t, r, http.MethodGet, "/api/users", "", nil)
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/setup", w.Header().Get("Location"))

	// Step 1→2: the first account can be created through the open
	// registration endpoint.
	w = doJSON(t, r, http.MethodPost, "/api/users", "", gin.H{
		"name":     "marta",
		"email":    "marta@example.com",
		"password": "hunter2-hunter2",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPut, "/api/setup", "", gin.H{"step": 2})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Signing in works before completion.
	w = doJSON(t, r, http.MethodPost, "/api/auth/sign-in", "", gin.H{
		"email":    "marta@example.com",
		"password": "hunter2-hunter2",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var session struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	require.NotEmpty(t, session.AccessToken)

	// Step 2→3: the first campaign.
	w = doJSON(t, r, http.MethodPost, "/api/campaigns", session.AccessToken, gin.H{"name": "First Campaign"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var campaign struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &campaign))

	w = doJSON(t, r, http.MethodPut, "/api/setup", "", gin.H{"step": 3})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Step 3→4: the first map.
	w = doJSON(t, r, http.MethodPost, "/api/maps", session.AccessToken, gin.H{
		"name":       "First Map",
		"campaignId": campaign.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPut, "/api/setup", "", gin.H{"step": 4})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The rest of the API stays gated until completion.
	w = doJSON(t, r, http.MethodGet, "/api/users", session.AccessToken, nil)
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/setup", "", gin.H{"completed": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Gate open after completion.
	w = doJSON(t, r, http.MethodGet, "/api/users", session.AccessToken, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
