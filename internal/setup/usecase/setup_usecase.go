package usecase

import (
	"vtt-backend/internal/setup/domain"
	"vtt-backend/internal/setup/repository"
	"vtt-backend/pkg/apperr"
	"vtt-backend/pkg/logging"

	"github.com/sirupsen/logrus"
)

// setupUsecase implements SetupUsecase
type setupUsecase struct {
	setupRepo repository.SetupRepository
	logger    *logrus.Entry
}

// NewSetupUsecase creates a new instance of setupUsecase
func NewSetupUsecase(setupRepo repository.SetupRepository) SetupUsecase {
	return &setupUsecase{
		setupRepo: setupRepo,
		logger:    logging.ForService("setup"),
	}
}

func (u *setupUsecase) GetSetup() (*domain.Setup, error) {
	setup, err := u.setupRepo.Get()
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to get setup", err)
	}
	return setup, nil
}

func (u *setupUsecase) UpdateSetup(req *UpdateSetupRequest) (*domain.Setup, error) {
	setup, err := u.GetSetup()
	if err != nil {
		return nil, err
	}

	if req.Step != nil {
		if *req.Step < domain.StepDatabase || *req.Step > domain.StepCompleted {
			return nil, apperr.Newf(apperr.Conflict, "invalid setup step %d", *req.Step)
		}
		// Steps only move forward.
		if *req.Step > setup.Step {
			setup.Step = *req.Step
		}
	}
	if req.Completed != nil {
		setup.Completed = *req.Completed
		if setup.Completed {
			setup.Step = domain.StepCompleted
		}
	}
	if err := u.setupRepo.Update(setup); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to update setup", err)
	}
	u.logger.Debugf("Setup now at step %d (completed=%v)", setup.Step, setup.Completed)
	return setup, nil
}

func (u *setupUsecase) IsCompleted() (bool, error) {
	setup, err := u.GetSetup()
	if err != nil {
		return false, err
	}
	return setup.Completed, nil
}
