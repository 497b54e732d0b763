package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"socialmedia/internal/apperr"
	"socialmedia/internal/models"
)

type AccountService struct {
	repo AccountRepository
	log  zerolog.Logger
}

func NewAccountService(repo AccountRepository, log zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, log: log.With().Str("component", "account_service").Logger()}
}

// Register looks the username up before validating the input, but reports
// failures in the order username, password, duplicate username.
func (s *AccountService) Register(ctx context.Context, account *models.Account) (*models.Account, error) {
	exists := false
	if _, err := s.repo.FindByUsername(ctx, account.Username); err == nil {
		exists = true
	} else if !errors.Is(err, apperr.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up username: %w", err)
	}

	if err := checkUsername(account.Username); err != nil {
		return nil, err
	}
	if err := checkPassword(account.Password); err != nil {
		return nil, err
	}
	if exists {
		return nil, errDuplicateUser
	}

	saved, err := s.repo.Save(ctx, &models.Account{
		Username: account.Username,
		Password: account.Password,
	})
	if errors.Is(err, apperr.ErrDuplicateKey) {
		// lost a race with a concurrent registration of the same username
		return nil, errDuplicateUser
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	s.log.Info().Int("account_id", saved.ID).Str("username", saved.Username).Msg("account registered")
	return saved, nil
}

// Login does not distinguish an unknown username from a wrong password.
func (s *AccountService) Login(ctx context.Context, account *models.Account) (*models.Account, error) {
	found, err := s.repo.FindByUsernameAndPassword(ctx, account.Username, account.Password)
	if errors.Is(err, apperr.ErrRecordNotFound) {
		return nil, errBadCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up credentials: %w", err)
	}
	return found, nil
}

func (s *AccountService) GetUserByID(ctx context.Context, id int) (*models.Account, error) {
	found, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, apperr.ErrRecordNotFound) {
		return nil, errUnknownAccount
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account %d: %w", id, err)
	}
	return found, nil
}
