// This file implements VoteService: the per-(user, content) toggle ledger.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zsaab/linkboard/internal/common"
	"github.com/zsaab/linkboard/internal/server/models"
	"github.com/zsaab/linkboard/internal/server/repositories/repomanager"
)

// VoteService casts directional votes. State transitions per pair:
//
//	absent        + cast d  -> d
//	stored == d   + cast d  -> neutral (un-vote)
//	stored != d   + cast d  -> d        (includes neutral -> d)
//
// The transition runs as one atomic upsert in the repository; concurrent
// casts for the same pair serialize on the store's uniqueness constraint.
type VoteService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewVoteService(db *sql.DB, m repomanager.RepositoryManager) *VoteService {
	return &VoteService{db: db, repos: m}
}

// Cast applies one toggle transition and returns the direction stored after
// it. Direction must be VoteUp or VoteDown; a contentID without a content
// row yields common.ErrContentNotFound.
func (s *VoteService) Cast(ctx context.Context, userID, contentID int64, direction int32) (int32, error) {
	if direction != models.VoteUp && direction != models.VoteDown {
		return 0, common.ErrVoteDirection
	}

	stored, err := s.repos.Votes(s.db).Upsert(ctx, userID, contentID, direction)
	if err != nil {
		if errors.Is(err, common.ErrContentNotFound) {
			return 0, common.ErrContentNotFound
		}
		return 0, fmt.Errorf("error casting vote: %w", err)
	}
	return stored, nil
}

// DirectionFor reports the stored direction for the pair and whether a vote
// row exists at all. Used to render which vote control is active.
func (s *VoteService) DirectionFor(ctx context.Context, userID, contentID int64) (int32, bool, error) {
	vote, err := s.repos.Votes(s.db).Find(ctx, userID, contentID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("error reading vote: %w", err)
	}
	return vote.Direction, true, nil
}
