package repomanager

import (
	"context"
	"database/sql"

	"github.com/zsaab/linkboard/internal/dbx"
	"github.com/zsaab/linkboard/internal/server/repositories/contents"
	"github.com/zsaab/linkboard/internal/server/repositories/sessions"
	"github.com/zsaab/linkboard/internal/server/repositories/users"
	"github.com/zsaab/linkboard/internal/server/repositories/votes"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Contents(db dbx.DBTX) contents.Repository
	Votes(db dbx.DBTX) votes.Repository
}
