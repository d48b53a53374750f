// Package sessions declares the repository contract for server-side
// session tokens.
package sessions

import (
	"context"
	"time"

	"github.com/zsaab/linkboard/internal/server/models"
)

// Repository defines operations for issuing, retrieving, and revoking
// session tokens.
type Repository interface {
	// Create stores a new session token for userID with an expiry of
	// now+validity. A token collision yields common.ErrorAlreadyExists;
	// the caller retries with a freshly generated token.
	Create(ctx context.Context, userID int64, token string, validity time.Duration) error

	// Find looks up a session by its opaque token string and returns its
	// metadata. Implementations return common.ErrorNotFound when the token
	// is absent.
	Find(ctx context.Context, token string) (*models.Session, error)

	// Delete removes a session by its token string. Deleting a non-existent
	// token is not an error.
	Delete(ctx context.Context, token string) error
}
