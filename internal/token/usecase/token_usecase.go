package usecase

import (
	"sync"

	"vtt-backend/internal/token/domain"
	"vtt-backend/internal/token/dto"
	"vtt-backend/internal/token/repository"
	"vtt-backend/pkg/apperr"
	"vtt-backend/pkg/logging"

	"github.com/sirupsen/logrus"
)

// tokenUsecase implements TokenUsecase
type tokenUsecase struct {
	tokenRepo repository.TokenRepository
	logger    *logrus.Entry
}

// NewTokenUsecase creates a new instance of tokenUsecase
func NewTokenUsecase(tokenRepo repository.TokenRepository) TokenUsecase {
	return &tokenUsecase{
		tokenRepo: tokenRepo,
		logger:    logging.ForService("tokens"),
	}
}

func (u *tokenUsecase) GetTokens(ids []string) ([]*domain.Token, error) {
	u.logger.Debugf("Getting %d tokens", len(ids))
	tokens, err := u.tokenRepo.FindByIDs(ids)
	if err != nil {
		u.logger.Errorf("Failed to get tokens: %v", err)
		return nil, apperr.Wrap(apperr.Internal, "failed to get tokens", err)
	}
	return tokens, nil
}

func (u *tokenUsecase) GetMapTokens(mapID string) ([]*domain.Token, error) {
	u.logger.Debugf("Getting tokens for map %q", mapID)
	tokens, err := u.tokenRepo.FindByMapID(mapID)
	if err != nil {
		u.logger.Errorf("Failed to get tokens for map %q: %v", mapID, err)
		return nil, apperr.Wrap(apperr.Internal, "failed to get map tokens", err)
	}
	u.logger.Debugf("Found %d tokens for map %q", len(tokens), mapID)
	return tokens, nil
}

func (u *tokenUsecase) CreateToken(data dto.CreateTokenRequest, mapID, createdByID string) (*domain.Token, error) {
	u.logger.Debugf("Creating token at %vx%v on map %q", data.X, data.Y, mapID)

	if data.PlayerCharacterID != nil && data.NonPlayerCharacterID != nil {
		return nil, apperr.New(apperr.Conflict, "token cannot reference both a player and a non-player character")
	}

	token := &domain.Token{
		X:                    data.X,
		Y:                    data.Y,
		Width:                data.Width,
		Height:               data.Height,
		MapID:                mapID,
		CreatedByID:          createdByID,
		PlayerCharacterID:    data.PlayerCharacterID,
		NonPlayerCharacterID: data.NonPlayerCharacterID,
	}
	if token.Width == 0 {
		token.Width = 1
	}
	if token.Height == 0 {
		token.Height = 1
	}

	// Map existence is validated upstream; a missing map surfaces here as a
	// plain persistence failure.
	if err := u.tokenRepo.Create(token); err != nil {
		u.logger.Errorf("Failed to create token on map %q: %v", mapID, err)
		return nil, apperr.Wrap(apperr.Internal, "failed to create token", err)
	}
	u.logger.Debugf("Created token %q", token.ID)
	return token, nil
}

func (u *tokenUsecase) CreateTokens(data []dto.CreateTokenRequest, mapID, createdByID string) ([]*domain.Token, error) {
	tokens := make([]*domain.Token, len(data))
	err := u.fanOut(len(data), func(i int) error {
		token, err := u.CreateToken(data[i], mapID, createdByID)
		if err != nil {
			return err
		}
		tokens[i] = token
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func (u *tokenUsecase) UpdateToken(id string, data dto.UpdateTokenRequest) (*domain.Token, error) {
	u.logger.Debugf("Updating token %q", id)

	affected, err := u.tokenRepo.Update(id, repository.TokenUpdate{
		X:      data.X,
		Y:      data.Y,
		Width:  data.Width,
		Height: data.Height,
	})
	if err != nil {
		u.logger.Errorf("Failed to update token %q: %v", id, err)
		return nil, apperr.Wrap(apperr.Internal, "failed to update token", err)
	}
	if affected == 0 {
		u.logger.Errorf("Token %q not found", id)
		return nil, apperr.Newf(apperr.NotFound, "token %q not found", id)
	}

	tokens, err := u.tokenRepo.FindByIDs([]string{id})
	if err != nil || len(tokens) == 0 {
		return nil, apperr.Wrap(apperr.Internal, "failed to reload token", err)
	}
	u.logger.Debugf("Updated token %q", id)
	return tokens[0], nil
}

func (u *tokenUsecase) UpdateTokens(updates []dto.UpdateTokenRequest) ([]*domain.Token, error) {
	tokens := make([]*domain.Token, len(updates))
	err := u.fanOut(len(updates), func(i int) error {
		token, err := u.UpdateToken(updates[i].ID, updates[i])
		if err != nil {
			return err
		}
		tokens[i] = token
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func (u *tokenUsecase) DeleteToken(id string) (*domain.Token, error) {
	u.logger.Debugf("Deleting token %q", id)

	tokens, err := u.tokenRepo.FindByIDs([]string{id})
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to load token", err)
	}
	if len(tokens) == 0 {
		u.logger.Errorf("Token %q not found", id)
		return nil, apperr.Newf(apperr.NotFound, "token %q not found", id)
	}

	affected, err := u.tokenRepo.Delete(id)
	if err != nil {
		u.logger.Errorf("Failed to delete token %q: %v", id, err)
		return nil, apperr.Wrap(apperr.Internal, "failed to delete token", err)
	}
	if affected == 0 {
		return nil, apperr.Newf(apperr.NotFound, "token %q not found", id)
	}
	u.logger.Debugf("Deleted token %q", id)
	return tokens[0], nil
}

func (u *tokenUsecase) DeleteTokens(ids []string) ([]*domain.Token, error) {
	tokens := make([]*domain.Token, len(ids))
	err := u.fanOut(len(ids), func(i int) error {
		token, err := u.DeleteToken(ids[i])
		if err != nil {
			return err
		}
		tokens[i] = token
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// fanOut runs fn for every index concurrently and joins on completion of
// all. Tokens are independent rows with no cross-token invariant, so the
// batch is best-effort: the first error wins and already committed items
// stay committed.
func (u *tokenUsecase) fanOut(n int, fn func(i int) error) error {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := fn(i); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	return firstErr
}
