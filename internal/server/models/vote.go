package models

import "time"

// Vote directions. A direction of 0 marks a previously cast vote that was
// toggled back to neutral; the row stays to occupy the (user, content)
// uniqueness slot but does not contribute to scores.
const (
	VoteUp      int32 = 1
	VoteNeutral int32 = 0
	VoteDown    int32 = -1
)

// Vote is at most one row per (UserID, ContentID) pair, enforced by the
// store's uniqueness constraint.
type Vote struct {
	UserID    int64
	ContentID int64
	Direction int32
	UpdatedAt time.Time
}
