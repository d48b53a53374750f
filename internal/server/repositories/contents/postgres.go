// Package contents provides a PostgreSQL-backed repository for submitted
// links and the front-page ranking read.
package contents

import (
	"context"
	"fmt"

	"github.com/zsaab/linkboard/internal/dbx"
	"github.com/zsaab/linkboard/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new content row.
func (r *PostgresRepository) Create(ctx context.Context, content *models.Content) (*models.Content, error) {
	query := `
		INSERT INTO contents (url, title, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, content.URL, content.Title, content.UserID).
		Scan(&content.ID, &content.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return content, nil
}

// ListTop aggregates vote directions per content and returns the top rows.
// Neutralized votes carry direction 0 and drop out of the sum on their own.
func (r *PostgresRepository) ListTop(ctx context.Context, limit int) ([]*models.RankedContent, error) {
	query := `
		SELECT c.id, c.url, c.title, u.username,
		       COALESCE(SUM(v.direction), 0) AS score, c.created_at
		FROM contents c
		JOIN users u ON u.id = c.user_id
		LEFT JOIN votes v ON v.content_id = c.id
		GROUP BY c.id, u.username
		ORDER BY score DESC, c.created_at DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var ranked []*models.RankedContent
	for rows.Next() {
		rc := &models.RankedContent{}
		if err := rows.Scan(&rc.ID, &rc.URL, &rc.Title, &rc.Author, &rc.Score, &rc.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		ranked = append(ranked, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ranked, nil
}
