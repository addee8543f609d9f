package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/docbotdev/docbot/internal/common"
	"github.com/docbotdev/docbot/internal/logging"
	"golang.org/x/crypto/bcrypt"
)

// Service is the credential store: it registers users with bcrypt-hashed
// passwords and verifies login attempts.
//
// Password length policy is enforced by the caller (the session manager);
// the store itself only requires a non-empty username and enforces
// uniqueness.
type Service struct {
	repo Repository
	log  logging.Logger
}

func NewService(repo Repository, log logging.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// AddUser registers a new user. Returns common.ErrorDuplicateUser if the
// username is taken and wraps common.ErrorStoreUnavailable on storage
// faults so the caller can tell them apart.
func (s *Service) AddUser(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return common.ErrorInvalidUsernameFormat
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if _, err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorDuplicateUser) {
			return common.ErrorDuplicateUser
		}
		s.log.Error(ctx, "error creating user", "username", username, "error", err)
		return fmt.Errorf("%w: %v", common.ErrorStoreUnavailable, err)
	}

	s.log.Info(ctx, "user created", "username", username)
	return nil
}

// VerifyUser reports whether the supplied password matches the stored hash
// for username. An unknown username and a wrong password both return
// (false, nil); only storage faults produce an error. The bcrypt comparison
// is constant-effort with respect to the hash contents.
func (s *Service) VerifyUser(ctx context.Context, username, password string) (bool, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		s.log.Error(ctx, "error fetching user", "username", username, "error", err)
		return false, fmt.Errorf("%w: %v", common.ErrorStoreUnavailable, err)
	}

	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil, nil
}
