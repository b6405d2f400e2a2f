package usecase

import (
	"path/filepath"
	"testing"

	campaigndomain "vtt-backend/internal/campaign/domain"
	characterdomain "vtt-backend/internal/character/domain"
	mapdomain "vtt-backend/internal/gamemap/domain"
	mediadomain "vtt-backend/internal/media/domain"
	tokendomain "vtt-backend/internal/token/domain"
	"vtt-backend/internal/token/dto"
	"vtt-backend/internal/token/repository"
	userdomain "vtt-backend/internal/user/domain"
	"vtt-backend/pkg/apperr"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	// sqlite allows one writer; serializing the pool keeps the concurrent
	// batch operations from tripping over busy errors.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&mediadomain.Media{},
		&userdomain.User{},
		&campaigndomain.Campaign{},
		&mapdomain.Map{},
		&characterdomain.PlayerCharacter{},
		&characterdomain.NonPlayerCharacter{},
		&tokendomain.Token{},
	))
	return db
}

func newTestUsecase(t *testing.T) (TokenUsecase, *gorm.DB) {
	db := newTestDB(t)
	return NewTokenUsecase(repository.NewTokenRepository(db)), db
}

func seedMap(t *testing.T, db *gorm.DB) (mapID, userID string) {
	t.Helper()
	user := &userdomain.User{ID: "user-1", Name: "gm", Email: "gm@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)
	campaign := &campaigndomain.Campaign{ID: "campaign-1", Name: "The Sunless Citadel", CreatedByID: user.ID}
	require.NoError(t, db.Create(campaign).Error)
	m := &mapdomain.Map{ID: "map-1", Name: "Goblin Warrens", CampaignID: campaign.ID, CreatedByID: user.ID}
	require.NoError(t, db.Create(m).Error)
	return m.ID, user.ID
}

func ptr[T any](v T) *T { return &v }

func TestCreateToken_RoundTrip(t *testing.T) {
	uc, db := newTestUsecase(t)
	mapID, userID := seedMap(t, db)

	created, err := uc.CreateToken(dto.CreateTokenRequest{X: 5, Y: 10, Width: 1, Height: 1}, mapID, userID)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	tokens, err := uc.GetMapTokens(mapID)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, created.ID, tokens[0].ID)
	assert.Equal(t, 5.0, tokens[0].X)
	assert.Equal(t, 10.0, tokens[0].Y)
	assert.Equal(t, 1.0, tokens[0].Width)
	assert.Equal(t, 1.0, tokens[0].Height)
}

func TestCreateTokens_BatchCarriesMapAndCreator(t *testing.T) {
	uc, db := newTestUsecase(t)
	mapID, userID := seedMap(t, db)

	batch := []dto.CreateTokenRequest{
		{X: 1, Y: 1},
		{X: 2, Y: 2},
		{X: 3, Y: 3},
		{X: 4, Y: 4},
	}
	tokens, err := uc.CreateTokens(batch, mapID, userID)
	require.NoError(t, err)
	require.Len(t, tokens, len(batch))

	for i, token := range tokens {
		assert.Equal(t, mapID, token.MapID, "token %d", i)
		assert.Equal(t, userID, token.CreatedByID, "token %d", i)
		assert.Equal(t, batch[i].X, token.X, "token %d keeps its slot", i)
	}
}

func TestCreateToken_RejectsBothCharacters(t *testing.T) {
	uc, db := newTestUsecase(t)
	mapID, userID := seedMap(t, db)

	_, err := uc.CreateToken(dto.CreateTokenRequest{
		PlayerCharacterID:    ptr("pc-1"),
		NonPlayerCharacterID: ptr("npc-1"),
	}, mapID, userID)
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
}

func TestCreateToken_CharacterExclusivityPersists(t *testing.T) {
	uc, db := newTestUsecase(t)
	mapID, userID := seedMap(t, db)

	pc := &characterdomain.PlayerCharacter{ID: "pc-1", Name: "Talia", CampaignID: "campaign-1", CreatedByID: userID}
	require.NoError(t, db.Create(pc).Error)

	created, err := uc.CreateToken(dto.CreateTokenRequest{PlayerCharacterID: ptr(pc.ID)}, mapID, userID)
	require.NoError(t, err)

	tokens, err := uc.GetTokens([]string{created.ID})
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	require.NotNil(t, tokens[0].PlayerCharacterID)
	assert.Nil(t, tokens[0].NonPlayerCharacterID)
	require.NotNil(t, tokens[0].PlayerCharacter)
	assert.Equal(t, "Talia", tokens[0].PlayerCharacter.Name)
}

func TestGetTokens_UnknownIDsOmitted(t *testing.T) {
	uc, db := newTestUsecase(t)
	mapID, userID := seedMap(t, db)

	created, err := uc.CreateToken(dto.CreateTokenRequest{X: 1, Y: 1}, mapID, userID)
	require.NoError(t, err)

	tokens, err := uc.GetTokens([]string{created.ID, "no-such-token"})
	require.NoError(t, err)
	assert.Len(t, tokens, 1)
}

func TestUpdateToken_MovesAndResizes(t *testing.T) {
	uc, db := newTestUsecase(t)
	mapID, userID := seedMap(t, db)

	created, err := uc.CreateToken(dto.CreateTokenRequest{X: 1, Y: 1, Width: 1, Height: 1}, mapID, userID)
	require.NoError(t, err)

	updated, err := uc.UpdateToken(created.ID, dto.UpdateTokenRequest{X: ptr(7.5), Width: ptr(2.0)})
	require.NoError(t, err)
	assert.Equal(t, 7.5, updated.X)
	assert.Equal(t, 1.0, updated.Y, "unset fields stay put")
	assert.Equal(t, 2.0, updated.Width)
	assert.Equal(t, mapID, updated.MapID, "map binding never changes")
}

func TestUpdateToken_NotFoundWhenConcurrentlyDeleted(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.UpdateToken("gone", dto.UpdateTokenRequest{X: ptr(1.0)})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestDeleteToken_SecondDeleteFails(t *testing.T) {
	uc, db := newTestUsecase(t)
	mapID, userID := seedMap(t, db)

	created, err := uc.CreateToken(dto.CreateTokenRequest{X: 1, Y: 1}, mapID, userID)
	require.NoError(t, err)

	deleted, err := uc.DeleteToken(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = uc.DeleteToken(created.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestUpdateTokens_Batch(t *testing.T) {
	uc, db := newTestUsecase(t)
	mapID, userID := seedMap(t, db)

	created, err := uc.CreateTokens([]dto.CreateTokenRequest{{X: 1, Y: 1}, {X: 2, Y: 2}}, mapID, userID)
	require.NoError(t, err)

	updated, err := uc.UpdateTokens([]dto.UpdateTokenRequest{
		{ID: created[0].ID, X: ptr(10.0)},
		{ID: created[1].ID, Y: ptr(20.0)},
	})
	require.NoError(t, err)
	require.Len(t, updated, 2)
	assert.Equal(t, 10.0, updated[0].X)
	assert.Equal(t, 20.0, updated[1].Y)
}

func TestUpdateTokens_BatchFailureSurfacesError(t *testing.T) {
	uc, db := newTestUsecase(t)
	mapID, userID := seedMap(t, db)

	created, err := uc.CreateToken(dto.CreateTokenRequest{X: 1, Y: 1}, mapID, userID)
	require.NoError(t, err)

	_, err = uc.UpdateTokens([]dto.UpdateTokenRequest{
		{ID: created.ID, X: ptr(10.0)},
		{ID: "gone", X: ptr(1.0)},
	})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestDeleteTokens_Batch(t *testing.T) {
	uc, db := newTestUsecase(t)
	mapID, userID := seedMap(t, db)

	batch := []dto.CreateTokenRequest{{X: 1}, {X: 2}, {X: 3}}
	created, err := uc.CreateTokens(batch, mapID, userID)
	require.NoError(t, err)

	ids := make([]string, len(created))
	for i, token := range created {
		ids[i] = token.ID
	}
	deleted, err := uc.DeleteTokens(ids)
	require.NoError(t, err)
	assert.Len(t, deleted, len(ids))

	remaining, err := uc.GetMapTokens(mapID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
