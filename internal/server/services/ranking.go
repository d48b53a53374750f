// This file implements RankingService: the scored front-page read.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zsaab/linkboard/internal/server/models"
	"github.com/zsaab/linkboard/internal/server/repositories/repomanager"
)

// RankingService computes the ranked listing. Scores are the sum of vote
// directions per content, recomputed on every call; each call observes an
// independent read-committed snapshot.
type RankingService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewRankingService(db *sql.DB, m repomanager.RepositoryManager) *RankingService {
	return &RankingService{db: db, repos: m}
}

// TopContent returns at most limit contents ordered by score descending,
// ties broken by newer creation time first. A non-positive limit returns an
// empty listing.
func (s *RankingService) TopContent(ctx context.Context, limit int) ([]*models.RankedContent, error) {
	if limit <= 0 {
		return nil, nil
	}
	ranked, err := s.repos.Contents(s.db).ListTop(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing top content: %w", err)
	}
	return ranked, nil
}
