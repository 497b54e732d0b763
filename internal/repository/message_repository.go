package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"socialmedia/internal/apperr"
	"socialmedia/internal/models"
	"socialmedia/internal/service"
)

type PostgresMessageRepo struct {
	db *sqlx.DB
}

func NewPostgresMessageRepo(db *sqlx.DB) *PostgresMessageRepo {
	return &PostgresMessageRepo{db: db}
}

var _ service.MessageRepository = (*PostgresMessageRepo)(nil)

const messageColumns = `message_id, posted_by, message_text`

func (r *PostgresMessageRepo) FindByID(ctx context.Context, id int) (*models.Message, error) {
	var msg models.Message
	query := `SELECT ` + messageColumns + ` FROM messages WHERE message_id = $1`
	if err := r.db.GetContext(ctx, &msg, query, id); err != nil {
		return nil, translateError(err)
	}
	return &msg, nil
}

func (r *PostgresMessageRepo) FindAll(ctx context.Context) ([]models.Message, error) {
	results := []models.Message{}
	query := `SELECT ` + messageColumns + ` FROM messages ORDER BY message_id ASC`
	if err := r.db.SelectContext(ctx, &results, query); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return results, nil
}

func (r *PostgresMessageRepo) FindByPostedBy(ctx context.Context, accountID int) ([]models.Message, error) {
	results := []models.Message{}
	query := `SELECT ` + messageColumns + ` FROM messages
	          WHERE posted_by = $1
	          ORDER BY message_id ASC`
	if err := r.db.SelectContext(ctx, &results, query, accountID); err != nil {
		if isOutOfRange(err) {
			return []models.Message{}, nil
		}
		return nil, fmt.Errorf("failed to list messages for account %d: %w", accountID, err)
	}
	return results, nil
}

func (r *PostgresMessageRepo) Save(ctx context.Context, message *models.Message) (*models.Message, error) {
	query := `INSERT INTO messages (posted_by, message_text)
	          VALUES ($1, $2)
	          RETURNING message_id;`
	saved := *message
	if err := r.db.QueryRowxContext(ctx, query, message.PostedBy, message.MessageText).Scan(&saved.ID); err != nil {
		return nil, fmt.Errorf("failed to insert message: %w", translateError(err))
	}
	return &saved, nil
}

func (r *PostgresMessageRepo) Update(ctx context.Context, message *models.Message) error {
	query := `UPDATE messages
	          SET message_text = $2
	          WHERE message_id = $1;`
	result, err := r.db.ExecContext(ctx, query, message.ID, message.MessageText)
	if err != nil {
		return fmt.Errorf("failed to update message: %w", translateError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return apperr.ErrRecordNotFound
	}
	return nil
}

func (r *PostgresMessageRepo) DeleteByID(ctx context.Context, id int) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE message_id = $1`, id)
	if isOutOfRange(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to delete message: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}
	return rows > 0, nil
}
