package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"socialmedia/internal/models"
	"socialmedia/internal/service"
)

type PostgresAccountRepo struct {
	db *sqlx.DB
}

func NewPostgresAccountRepo(db *sqlx.DB) *PostgresAccountRepo {
	return &PostgresAccountRepo{db: db}
}

var _ service.AccountRepository = (*PostgresAccountRepo)(nil)

const accountColumns = `account_id, username, password`

func (r *PostgresAccountRepo) get(ctx context.Context, query string, args ...any) (*models.Account, error) {
	var account models.Account
	if err := r.db.GetContext(ctx, &account, query, args...); err != nil {
		return nil, translateError(err)
	}
	return &account, nil
}

func (r *PostgresAccountRepo) FindByID(ctx context.Context, id int) (*models.Account, error) {
	return r.get(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_id = $1`, id)
}

func (r *PostgresAccountRepo) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	return r.get(ctx, `SELECT `+accountColumns+` FROM accounts WHERE username = $1`, username)
}

func (r *PostgresAccountRepo) FindByUsernameAndPassword(ctx context.Context, username, password string) (*models.Account, error) {
	return r.get(ctx, `SELECT `+accountColumns+` FROM accounts WHERE username = $1 AND password = $2`, username, password)
}

func (r *PostgresAccountRepo) Save(ctx context.Context, account *models.Account) (*models.Account, error) {
	query := `INSERT INTO accounts (username, password)
	          VALUES ($1, $2)
	          RETURNING account_id;`
	saved := *account
	if err := r.db.QueryRowxContext(ctx, query, account.Username, account.Password).Scan(&saved.ID); err != nil {
		return nil, fmt.Errorf("failed to insert account: %w", translateError(err))
	}
	return &saved, nil
}
