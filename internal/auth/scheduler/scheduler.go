package scheduler

import (
	"time"

	"vtt-backend/internal/auth/usecase"
	"vtt-backend/pkg/logging"

	"github.com/sirupsen/logrus"
)

// TokenPurgeScheduler periodically removes expired password reset tokens.
type TokenPurgeScheduler struct {
	authUsecase usecase.AuthUsecase
	interval    time.Duration
	stopChan    chan struct{}
	logger      *logrus.Entry
}

// NewTokenPurgeScheduler creates a new scheduler
func NewTokenPurgeScheduler(authUsecase usecase.AuthUsecase) *TokenPurgeScheduler {
	return &TokenPurgeScheduler{
		authUsecase: authUsecase,
		interval:    1 * time.Hour,
		stopChan:    make(chan struct{}),
		logger:      logging.ForService("token-purge"),
	}
}

// Start begins the scheduler loop
func (s *TokenPurgeScheduler) Start() {
	s.logger.Debugf("Starting token purge scheduler (interval: %s)", s.interval)

	go func() {
		// Run immediately on start
		s.purge()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.purge()
			case <-s.stopChan:
				s.logger.Debug("Scheduler stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler
func (s *TokenPurgeScheduler) Stop() {
	close(s.stopChan)
}

func (s *TokenPurgeScheduler) purge() {
	if err := s.authUsecase.PurgeStalePasswordResetTokens(); err != nil {
		s.logger.Errorf("Failed to purge stale reset tokens: %v", err)
	}
}
