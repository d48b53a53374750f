package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zsaab/linkboard/internal/server/models"
)

func newRankingService(t *testing.T, rm *fakeRepoManager) *RankingService {
	t.Helper()
	db := newSQLMockDB(t)
	t.Cleanup(func() { db.Close() })
	return NewRankingService(db, rm)
}

func TestTopContent_PassesLimitThrough(t *testing.T) {
	repo := &fakeContentsRepo{listOut: []*models.RankedContent{
		{ID: 1, Title: "Example", Author: "alice", Score: 0},
	}}
	s := newRankingService(t, &fakeRepoManager{c: repo})

	got, err := s.TopContent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].Author)
	assert.Equal(t, int64(0), got[0].Score)
	assert.Equal(t, 10, repo.lastLimit)
}

func TestTopContent_NonPositiveLimit(t *testing.T) {
	repo := &fakeContentsRepo{}
	s := newRankingService(t, &fakeRepoManager{c: repo})

	got, err := s.TopContent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, repo.lastLimit, "repository must not be queried")
}

func TestTopContent_StoreError(t *testing.T) {
	repo := &fakeContentsRepo{listErr: errors.New("db down")}
	s := newRankingService(t, &fakeRepoManager{c: repo})

	_, err := s.TopContent(context.Background(), 10)
	require.Error(t, err)
}
