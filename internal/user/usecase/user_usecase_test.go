package usecase

import (
	"path/filepath"
	"testing"

	campaigndomain "vtt-backend/internal/campaign/domain"
	campaignrepo "vtt-backend/internal/campaign/repository"
	mediadomain "vtt-backend/internal/media/domain"
	userdomain "vtt-backend/internal/user/domain"
	"vtt-backend/internal/user/dto"
	"vtt-backend/internal/user/repository"
	"vtt-backend/pkg/apperr"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestUsecase(t *testing.T) (UserUsecase, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&mediadomain.Media{},
		&userdomain.User{},
		&userdomain.PasswordResetToken{},
		&campaigndomain.Campaign{},
	))
	uc := NewUserUsecase(repository.NewUserRepository(db), campaignrepo.NewCampaignRepository(db))
	return uc, db
}

func TestCreateUser_HashesPasswordAndDefaultsDisplayName(t *testing.T) {
	uc, _ := newTestUsecase(t)

	user, err := uc.CreateUser(&dto.CreateUserRequest{
		Name:     "marta",
		Email:    "marta@example.com",
		Password: "hunter2-hunter2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "marta", user.DisplayName)
	assert.NotEqual(t, "hunter2-hunter2", user.Password)
	assert.True(t, repository.CheckPasswordHash("hunter2-hunter2", user.Password))
}

func TestCreateUser_DuplicateEmailConflicts(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.CreateUser(&dto.CreateUserRequest{Name: "a", Email: "same@example.com", Password: "passwordpassword"})
	require.NoError(t, err)

	_, err = uc.CreateUser(&dto.CreateUserRequest{Name: "b", Email: "same@example.com", Password: "passwordpassword"})
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
}

func TestUpdateUser_PartialFields(t *testing.T) {
	uc, _ := newTestUsecase(t)

	user, err := uc.CreateUser(&dto.CreateUserRequest{Name: "marta", Email: "marta@example.com", Password: "passwordpassword"})
	require.NoError(t, err)

	display := "Marta the GM"
	updated, err := uc.UpdateUser(user.ID, &dto.UpdateUserRequest{DisplayName: &display})
	require.NoError(t, err)
	assert.Equal(t, "Marta the GM", updated.DisplayName)
	assert.Equal(t, "marta", updated.Name)
}

func TestDeleteUser_NotFoundOnMissing(t *testing.T) {
	uc, _ := newTestUsecase(t)

	err := uc.DeleteUser("no-such-user")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func seedCampaigns(t *testing.T, db *gorm.DB, userID string, names ...string) []string {
	t.Helper()
	ids := make([]string, len(names))
	for i, name := range names {
		campaign := &campaigndomain.Campaign{Name: name, CreatedByID: userID}
		require.NoError(t, campaignrepo.NewCampaignRepository(db).Create(campaign))
		ids[i] = campaign.ID
	}
	return ids
}

func TestOrderedCampaigns_FollowsStoredOrder(t *testing.T) {
	uc, db := newTestUsecase(t)

	user, err := uc.CreateUser(&dto.CreateUserRequest{Name: "marta", Email: "marta@example.com", Password: "passwordpassword"})
	require.NoError(t, err)
	ids := seedCampaigns(t, db, user.ID, "First", "Second", "Third")

	_, err = uc.ReorderCampaigns(user.ID, []string{ids[2], ids[0], ids[1]})
	require.NoError(t, err)

	campaigns, err := uc.OrderedCampaigns(user.ID)
	require.NoError(t, err)
	require.Len(t, campaigns, 3)
	assert.Equal(t, "Third", campaigns[0].Name)
	assert.Equal(t, "First", campaigns[1].Name)
	assert.Equal(t, "Second", campaigns[2].Name)
}

func TestOrderedCampaigns_SelfHeals(t *testing.T) {
	uc, db := newTestUsecase(t)

	user, err := uc.CreateUser(&dto.CreateUserRequest{Name: "marta", Email: "marta@example.com", Password: "passwordpassword"})
	require.NoError(t, err)
	ids := seedCampaigns(t, db, user.ID, "Kept", "Unlisted")

	// The stored order names a deleted campaign and omits a live one.
	_, err = uc.ReorderCampaigns(user.ID, []string{"deleted-campaign", ids[0]})
	require.NoError(t, err)

	campaigns, err := uc.OrderedCampaigns(user.ID)
	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, "Kept", campaigns[0].Name, "stale entries are skipped")
	assert.Equal(t, "Unlisted", campaigns[1].Name, "missing campaigns are appended")
}
