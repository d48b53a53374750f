// This file implements ContentService: link submission with URL validation.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/zsaab/linkboard/internal/common"
	"github.com/zsaab/linkboard/internal/server/models"
	"github.com/zsaab/linkboard/internal/server/repositories/repomanager"
)

// ContentService creates submitted links.
type ContentService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewContentService(db *sql.DB, m repomanager.RepositoryManager) *ContentService {
	return &ContentService{db: db, repos: m}
}

// Create validates and stores a new link authored by userID. URL and title
// are trimmed and must be non-empty; the URL must parse as an absolute
// http or https URL. Validation failures happen before any store write.
func (s *ContentService) Create(ctx context.Context, userID int64, rawURL, title string) (*models.Content, error) {
	rawURL = strings.TrimSpace(rawURL)
	title = strings.TrimSpace(title)

	if rawURL == "" || title == "" {
		return nil, fmt.Errorf("url and title must be provided: %w", common.ErrorValidation)
	}
	if err := validateContentURL(rawURL); err != nil {
		return nil, err
	}

	content := &models.Content{URL: rawURL, Title: title, UserID: userID}
	created, err := s.repos.Contents(s.db).Create(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("error creating content: %w", err)
	}
	return created, nil
}

func validateContentURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", common.ErrorValidation)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("url must be absolute http or https: %w", common.ErrorValidation)
	}
	return nil
}
