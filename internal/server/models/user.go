// Package models holds plain value records persisted by the repositories.
// None of them carry behavior; all mutation goes through explicit
// repository operations.
package models

import "time"

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
