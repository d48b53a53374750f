package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/zsaab/linkboard/internal/dbx"
	"github.com/zsaab/linkboard/internal/server/models"
	contentsrepo "github.com/zsaab/linkboard/internal/server/repositories/contents"
	"github.com/zsaab/linkboard/internal/server/repositories/repomanager"
	sessionsrepo "github.com/zsaab/linkboard/internal/server/repositories/sessions"
	usersrepo "github.com/zsaab/linkboard/internal/server/repositories/users"
	votesrepo "github.com/zsaab/linkboard/internal/server/repositories/votes"
)

// newSQLMockDB returns a *sql.DB the services can hold; the fakes below
// never touch it.
func newSQLMockDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error

	getByIDOut *models.User
	getByIDErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	return f.getByIDOut, nil
}

type fakeSessionsRepo struct {
	// createErrs is consumed one per Create call; nil entries mean success.
	createErrs []error
	created    []string

	findOut *models.Session
	findErr error

	deleteErr error
	deleted   []string
}

func (f *fakeSessionsRepo) Create(ctx context.Context, userID int64, token string, validity time.Duration) error {
	f.created = append(f.created, token)
	if len(f.createErrs) == 0 {
		return nil
	}
	err := f.createErrs[0]
	f.createErrs = f.createErrs[1:]
	return err
}

func (f *fakeSessionsRepo) Find(ctx context.Context, token string) (*models.Session, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeSessionsRepo) Delete(ctx context.Context, token string) error {
	f.deleted = append(f.deleted, token)
	return f.deleteErr
}

type fakeContentsRepo struct {
	createOut *models.Content
	createErr error

	listOut []*models.RankedContent
	listErr error

	lastLimit int
}

func (f *fakeContentsRepo) Create(ctx context.Context, c *models.Content) (*models.Content, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeContentsRepo) ListTop(ctx context.Context, limit int) ([]*models.RankedContent, error) {
	f.lastLimit = limit
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeVotesRepo struct {
	upsertOut  int32
	upsertErr  error
	lastUpsert []int64 // userID, contentID, direction

	findOut *models.Vote
	findErr error
}

func (f *fakeVotesRepo) Upsert(ctx context.Context, userID, contentID int64, direction int32) (int32, error) {
	f.lastUpsert = []int64{userID, contentID, int64(direction)}
	if f.upsertErr != nil {
		return 0, f.upsertErr
	}
	return f.upsertOut, nil
}

func (f *fakeVotesRepo) Find(ctx context.Context, userID, contentID int64) (*models.Vote, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	s *fakeSessionsRepo
	c *fakeContentsRepo
	v *fakeVotesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository { return m.u }
func (m *fakeRepoManager) Sessions(db dbx.DBTX) sessionsrepo.Repository { return m.s }
func (m *fakeRepoManager) Contents(db dbx.DBTX) contentsrepo.Repository { return m.c }
func (m *fakeRepoManager) Votes(db dbx.DBTX) votesrepo.Repository { return m.v }

var _ repomanager.RepositoryManager = (*fakeRepoManager)(nil)
