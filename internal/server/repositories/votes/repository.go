// Package votes declares the repository contract for the per-pair vote
// ledger.
package votes

import (
	"context"

	"github.com/zsaab/linkboard/internal/server/models"
)

type Repository interface {
	// Upsert applies one toggle transition for the (userID, contentID)
	// pair in a single atomic statement: a missing row is created with the
	// requested direction, a row holding the same direction flips to
	// neutral, any other row takes the requested direction. It returns the
	// direction stored after the transition. A contentID without a backing
	// content row yields common.ErrContentNotFound.
	Upsert(ctx context.Context, userID, contentID int64, direction int32) (int32, error)

	// Find returns the vote row for the pair, or common.ErrorNotFound when
	// the user has never voted on the content.
	Find(ctx context.Context, userID, contentID int64) (*models.Vote, error)
}
