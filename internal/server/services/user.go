// This file implements UserService: signup and credential verification.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/zsaab/linkboard/internal/common"
	"github.com/zsaab/linkboard/internal/server/auth"
	"github.com/zsaab/linkboard/internal/server/models"
	"github.com/zsaab/linkboard/internal/server/repositories/repomanager"
)

// UserService provides account operations:
//   - Register: create users with a hashed password
//   - Authenticate: verify credentials for login
type UserService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	hasher *auth.PasswordHasher
}

// NewUserService constructs a UserService using repositories and the
// password hasher.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, h *auth.PasswordHasher) *UserService {
	return &UserService{db: db, repos: m, hasher: h}
}

// Register creates a new user. The username is trimmed; empty username or
// password is rejected before any store write. A taken username yields
// common.ErrorAlreadyExists so the caller can say "username taken" rather
// than a generic failure. The plaintext never reaches the repository.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password must be provided: %w", common.ErrorValidation)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Username: username, PasswordHash: digest}
	created, err := s.repos.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return created, nil
}

// Authenticate verifies the credentials and returns the account on success.
// Unknown username and wrong password are both common.ErrorUnauthorized;
// the caller cannot tell which.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, common.ErrorUnauthorized
	}

	user, err := s.repos.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}
	return user, nil
}
