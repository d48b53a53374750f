// Package contents declares the repository contract for submitted links.
package contents

import (
	"context"

	"github.com/zsaab/linkboard/internal/server/models"
)

type Repository interface {
	// Create inserts a new content row authored by content.UserID.
	Create(ctx context.Context, content *models.Content) (*models.Content, error)

	// ListTop returns at most limit contents scored by the sum of their
	// vote directions, ordered by score descending and then by creation
	// time descending. Contents without votes score 0. Each call is an
	// independent read-committed snapshot.
	ListTop(ctx context.Context, limit int) ([]*models.RankedContent, error)
}
