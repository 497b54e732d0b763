package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialmedia/internal/apperr"
	"socialmedia/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return sqlx.NewDb(db, "postgres"), mock
}

func TestPostgresAccountFindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresAccountRepo(db)
	query := regexp.QuoteMeta(`SELECT account_id, username, password FROM accounts WHERE account_id = $1`)

	mock.ExpectQuery(query).WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"account_id", "username", "password"}).AddRow(1, "alice", "pass1"))
	mock.ExpectQuery(query).WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"account_id", "username", "password"}))

	got, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, &models.Account{ID: 1, Username: "alice", Password: "pass1"}, got)

	_, err = repo.FindByID(context.Background(), 2)
	assert.ErrorIs(t, err, apperr.ErrRecordNotFound)
}

func TestPostgresAccountFindByUsernameAndPassword(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresAccountRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE username = $1 AND password = $2`)).
		WithArgs("alice", "wrong").
		WillReturnRows(sqlmock.NewRows([]string{"account_id", "username", "password"}))

	_, err := repo.FindByUsernameAndPassword(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, apperr.ErrRecordNotFound)
}

func TestPostgresAccountSave(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresAccountRepo(db)
	insert := regexp.QuoteMeta(`INSERT INTO accounts (username, password)`)

	mock.ExpectQuery(insert).WithArgs("alice", "pass1").
		WillReturnRows(sqlmock.NewRows([]string{"account_id"}).AddRow(1))
	mock.ExpectQuery(insert).WithArgs("alice", "pass2").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "accounts_username_key"})

	saved, err := repo.Save(context.Background(), &models.Account{Username: "alice", Password: "pass1"})
	require.NoError(t, err)
	assert.Equal(t, 1, saved.ID)

	_, err = repo.Save(context.Background(), &models.Account{Username: "alice", Password: "pass2"})
	assert.ErrorIs(t, err, apperr.ErrDuplicateKey)
}

func TestPostgresMessageQueries(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresMessageRepo(db)
	cols := []string{"message_id", "posted_by", "message_text"}

	mock.ExpectQuery(regexp.QuoteMeta(`FROM messages ORDER BY message_id ASC`)).
		WillReturnRows(sqlmock.NewRows(cols))
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE posted_by = $1`)).WithArgs(1).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(1, 1, "a").AddRow(3, 1, "c"))
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE message_id = $1`)).WithArgs(5).
		WillReturnRows(sqlmock.NewRows(cols))

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	mine, err := repo.FindByPostedBy(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []models.Message{{ID: 1, PostedBy: 1, MessageText: "a"}, {ID: 3, PostedBy: 1, MessageText: "c"}}, mine)

	_, err = repo.FindByID(context.Background(), 5)
	assert.ErrorIs(t, err, apperr.ErrRecordNotFound)
}

func TestPostgresMessageWrites(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresMessageRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO messages (posted_by, message_text)`)).
		WithArgs(1, "hello").
		WillReturnRows(sqlmock.NewRows([]string{"message_id"}).AddRow(10))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE messages`)).WithArgs(10, "edited").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE messages`)).WithArgs(11, "edited").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM messages WHERE message_id = $1`)).WithArgs(10).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM messages WHERE message_id = $1`)).WithArgs(10).
		WillReturnResult(sqlmock.NewResult(0, 0))

	saved, err := repo.Save(context.Background(), &models.Message{PostedBy: 1, MessageText: "hello"})
	require.NoError(t, err)
	assert.Equal(t, 10, saved.ID)

	require.NoError(t, repo.Update(context.Background(), &models.Message{ID: 10, PostedBy: 1, MessageText: "edited"}))
	assert.ErrorIs(t, repo.Update(context.Background(), &models.Message{ID: 11, MessageText: "edited"}), apperr.ErrRecordNotFound)

	deleted, err := repo.DeleteByID(context.Background(), 10)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteByID(context.Background(), 10)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestPostgresOutOfRangeIDsMatchNothing(t *testing.T) {
	db, mock := newMockDB(t)
	accounts := NewPostgresAccountRepo(db)
	messages := NewPostgresMessageRepo(db)
	outOfRange := &pq.Error{Code: "22003", Message: `value "3000000000" is out of range for type integer`}
	const id = 3000000000

	mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE account_id = $1`)).WithArgs(id).WillReturnError(outOfRange)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM messages WHERE message_id = $1`)).WithArgs(id).WillReturnError(outOfRange)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE posted_by = $1`)).WithArgs(id).WillReturnError(outOfRange)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE messages`)).WithArgs(id, "edited").WillReturnError(outOfRange)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM messages WHERE message_id = $1`)).WithArgs(id).WillReturnError(outOfRange)

	ctx := context.Background()
	_, err := accounts.FindByID(ctx, id)
	assert.ErrorIs(t, err, apperr.ErrRecordNotFound)

	_, err = messages.FindByID(ctx, id)
	assert.ErrorIs(t, err, apperr.ErrRecordNotFound)

	mine, err := messages.FindByPostedBy(ctx, id)
	require.NoError(t, err)
	assert.NotNil(t, mine)
	assert.Empty(t, mine)

	assert.ErrorIs(t, messages.Update(ctx, &models.Message{ID: id, MessageText: "edited"}), apperr.ErrRecordNotFound)

	deleted, err := messages.DeleteByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, deleted)
}
