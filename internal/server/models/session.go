package models

import "time"

// Session binds an opaque token to a user id. A token resolves to exactly
// one user, or to nothing.
type Session struct {
	ID        int64
	UserID    int64
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
