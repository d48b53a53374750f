package votes

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/zsaab/linkboard/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const (
	upsertQ = `(?s)^\s*INSERT\s+INTO\s+votes\s*\(user_id,\s*content_id,\s*direction\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*ON\s+CONFLICT\s*\(user_id,\s*content_id\)\s*DO\s+UPDATE.*RETURNING\s+direction\s*$`
	findQ   = `(?s)^\s*SELECT\s+direction,\s*updated_at\s+FROM\s+votes\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+content_id\s*=\s*\$2\s*$`
)

func TestUpsert_NewVote(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(upsertQ).
		WithArgs(int64(1), int64(2), int32(1)).
		WillReturnRows(sqlmock.NewRows([]string{"direction"}).AddRow(int32(1)))

	got, err := repo.Upsert(context.Background(), 1, 2, 1)
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if got != 1 {
		t.Fatalf("want stored direction 1, got %d", got)
	}
}

func TestUpsert_RepeatNeutralizes(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	// the CASE arm flips a repeated direction to 0
	mock.ExpectQuery(upsertQ).
		WithArgs(int64(1), int64(2), int32(1)).
		WillReturnRows(sqlmock.NewRows([]string{"direction"}).AddRow(int32(0)))

	got, err := repo.Upsert(context.Background(), 1, 2, 1)
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if got != 0 {
		t.Fatalf("want stored direction 0, got %d", got)
	}
}

func TestUpsert_ContentMissing(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(upsertQ).
		WithArgs(int64(1), int64(999), int32(-1)).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "votes_content_id_fkey"})

	_, err := repo.Upsert(context.Background(), 1, 999, -1)
	if !errors.Is(err, common.ErrContentNotFound) {
		t.Fatalf("want common.ErrContentNotFound, got %v", err)
	}
}

func TestUpsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(upsertQ).
		WithArgs(int64(1), int64(2), int32(1)).
		WillReturnError(errors.New("db down"))

	_, err := repo.Upsert(context.Background(), 1, 2, 1)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestFind_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"direction", "updated_at"}).AddRow(int32(-1), time.Now())
	mock.ExpectQuery(findQ).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(rows)

	got, err := repo.Find(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if got.Direction != -1 || got.UserID != 1 || got.ContentID != 2 {
		t.Fatalf("unexpected vote: %+v", got)
	}
}

func TestFind_Absent(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(findQ).
		WithArgs(int64(1), int64(2)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Find(context.Background(), 1, 2)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
