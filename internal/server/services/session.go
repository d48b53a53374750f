// Package services contains server-side business logic over the
// repositories. This file implements SessionService: issuing, resolving,
// and revoking the opaque session tokens that authenticate requests.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/zsaab/linkboard/internal/common"
	"github.com/zsaab/linkboard/internal/logging"
	"github.com/zsaab/linkboard/internal/server/config"
	"github.com/zsaab/linkboard/internal/server/repositories/repomanager"
)

// sessionTokenBytes is the entropy drawn per token: 20 bytes = 160 bits,
// hex-encoded to a 40-character string.
const sessionTokenBytes = 20

// createSessionAttempts bounds the retry loop on the astronomically rare
// token collision.
const createSessionAttempts = 3

// Identity is the resolved caller of a request. Anonymous callers carry the
// zero value with Authenticated false.
type Identity struct {
	UserID        int64
	Username      string
	Authenticated bool
}

// Resolution is the outcome of resolving a presented token. StaleToken set
// means the client holds a token that no longer resolves and should discard
// its copy; it is a signal to the transport layer, not an error.
type Resolution struct {
	Identity   Identity
	StaleToken bool
}

// SessionService issues, resolves, and revokes opaque session tokens.
type SessionService struct {
	db             *sql.DB
	repos          repomanager.RepositoryManager
	logger         logging.Logger
	validity       time.Duration
	resolveTimeout time.Duration
}

// NewSessionService constructs a SessionService using repositories and
// server config.
func NewSessionService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, l logging.Logger) *SessionService {
	return &SessionService{
		db:             db,
		repos:          m,
		logger:         l.With("module", "sessions"),
		validity:       cfg.SessionValidityDuration,
		resolveTimeout: cfg.SessionResolveTimeout,
	}
}

// Create generates a fresh token from the cryptographic source and binds it
// to userID. On a token collision the store's uniqueness constraint rejects
// the write and a new token is generated; the collision is never merged.
func (s *SessionService) Create(ctx context.Context, userID int64) (string, error) {
	repo := s.repos.Sessions(s.db)

	for attempt := 0; attempt < createSessionAttempts; attempt++ {
		token, err := common.MakeRandHexString(sessionTokenBytes)
		if err != nil {
			return "", fmt.Errorf("token generation: %w", err)
		}
		err = repo.Create(ctx, userID, token, s.validity)
		if err == nil {
			return token, nil
		}
		if errors.Is(err, common.ErrorAlreadyExists) {
			continue
		}
		return "", fmt.Errorf("error creating session: %w", err)
	}
	return "", fmt.Errorf("session token collisions on %d attempts: %w", createSessionAttempts, common.ErrorInternal)
}

// Resolve maps a presented token to an identity. An absent or expired token
// resolves to anonymous and flags the token stale so the caller clears its
// copy. A store failure resolves to anonymous without the stale flag (the
// token may still be valid) and is logged for operators; the request
// pipeline keeps going.
func (s *SessionService) Resolve(ctx context.Context, token string) Resolution {
	if token == "" {
		return Resolution{}
	}

	ctx, cancel := context.WithTimeout(ctx, s.resolveTimeout)
	defer cancel()

	session, err := s.repos.Sessions(s.db).Find(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return Resolution{StaleToken: true}
		}
		s.logger.Error(ctx, "session lookup failed, proceeding as anonymous", "error", err.Error())
		return Resolution{}
	}

	if session.ExpiresAt.Before(time.Now()) {
		return Resolution{StaleToken: true}
	}

	user, err := s.repos.Users(s.db).GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// session outlived its user
			return Resolution{StaleToken: true}
		}
		s.logger.Error(ctx, "session user lookup failed, proceeding as anonymous", "error", err.Error())
		return Resolution{}
	}

	return Resolution{Identity: Identity{
		UserID:        user.ID,
		Username:      user.Username,
		Authenticated: true,
	}}
}

// Revoke deletes the session bound to token. Revoking an absent token is
// not an error; a revoked token never resolves again.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.repos.Sessions(s.db).Delete(ctx, token); err != nil {
		return fmt.Errorf("error revoking session: %w", err)
	}
	return nil
}
