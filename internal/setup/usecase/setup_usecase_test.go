package usecase

import (
	"path/filepath"
	"testing"

	"vtt-backend/internal/setup/domain"
	"vtt-backend/internal/setup/repository"
	"vtt-backend/pkg/apperr"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestUsecase(t *testing.T) SetupUsecase {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Setup{}))
	return NewSetupUsecase(repository.NewSetupRepository(db))
}

func stepPtr(s domain.Step) *domain.Step { return &s }

func TestGetSetup_StartsAtFirstStep(t *testing.T) {
	uc := newTestUsecase(t)

	setup, err := uc.GetSetup()
	require.NoError(t, err)
	assert.Equal(t, domain.StepDatabase, setup.Step)
	assert.False(t, setup.Completed)
}

func TestUpdateSetup_StepsOnlyMoveForward(t *testing.T) {
	uc := newTestUsecase(t)

	setup, err := uc.UpdateSetup(&UpdateSetupRequest{Step: stepPtr(domain.StepMap)})
	require.NoError(t, err)
	assert.Equal(t, domain.StepMap, setup.Step)

	// Going backwards is silently ignored.
	setup, err = uc.UpdateSetup(&UpdateSetupRequest{Step: stepPtr(domain.StepDatabase)})
	require.NoError(t, err)
	assert.Equal(t, domain.StepMap, setup.Step)
}

func TestUpdateSetup_RejectsUnknownStep(t *testing.T) {
	uc := newTestUsecase(t)

	_, err := uc.UpdateSetup(&UpdateSetupRequest{Step: stepPtr(domain.Step(42))})
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
}

func TestUpdateSetup_CompletingJumpsToFinalStep(t *testing.T) {
	uc := newTestUsecase(t)

	completed := true
	setup, err := uc.UpdateSetup(&UpdateSetupRequest{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, setup.Completed)
	assert.Equal(t, domain.StepCompleted, setup.Step)

	done, err := uc.IsCompleted()
	require.NoError(t, err)
	assert.True(t, done)
}

func TestUpdateSetup_StatePersists(t *testing.T) {
	uc := newTestUsecase(t)

	_, err := uc.UpdateSetup(&UpdateSetupRequest{Step: stepPtr(domain.StepUser)})
	require.NoError(t, err)

	setup, err := uc.GetSetup()
	require.NoError(t, err)
	assert.Equal(t, domain.StepUser, setup.Step)
}
