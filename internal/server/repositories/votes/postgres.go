// Package votes provides a PostgreSQL-backed repository for the vote
// ledger. The toggle state machine lives in one ON CONFLICT upsert so that
// concurrent casts for the same pair serialize on the primary key instead
// of racing through read-then-write.
package votes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/zsaab/linkboard/internal/common"
	"github.com/zsaab/linkboard/internal/dbx"
	"github.com/zsaab/linkboard/internal/server/models"
)

const foreignKeyViolation = "23503"

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert runs the toggle transition. Repeating the stored direction
// neutralizes the vote; any other stored state takes the requested
// direction. The content FK check rides in the same statement, so a dangling
// contentID surfaces as common.ErrContentNotFound without a prior read.
func (r *PostgresRepository) Upsert(ctx context.Context, userID, contentID int64, direction int32) (int32, error) {
	query := `
		INSERT INTO votes (user_id, content_id, direction)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, content_id) DO UPDATE
		SET direction = CASE
			WHEN votes.direction = EXCLUDED.direction THEN 0
			ELSE EXCLUDED.direction
		END,
		    updated_at = now()
		RETURNING direction
	`
	var stored int32
	err := r.db.QueryRowContext(ctx, query, userID, contentID, direction).Scan(&stored)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return 0, common.ErrContentNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return stored, nil
}

// Find returns the vote row for the (userID, contentID) pair.
// If not found, it returns common.ErrorNotFound.
func (r *PostgresRepository) Find(ctx context.Context, userID, contentID int64) (*models.Vote, error) {
	query := `
		SELECT direction, updated_at
		FROM votes
		WHERE user_id = $1 AND content_id = $2
	`
	vote := &models.Vote{UserID: userID, ContentID: contentID}
	if err := r.db.QueryRowContext(ctx, query, userID, contentID).Scan(&vote.Direction, &vote.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return vote, nil
}
