// Package users declares the repository contract for user accounts.
package users

import (
	"context"

	"github.com/zsaab/linkboard/internal/server/models"
)

type Repository interface {
	// Create inserts a new user. A duplicate username yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUsername returns the user with the given username, or
	// common.ErrorNotFound. The match is case-sensitive.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByID returns the user with the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
