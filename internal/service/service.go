//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mocks/mock_service.go -package=mocks

package service

import (
	"context"

	"socialmedia/internal/models"
)

// AccountRepository reports absent rows with apperr.ErrRecordNotFound and
// username collisions on Save with apperr.ErrDuplicateKey.
type AccountRepository interface {
	FindByID(ctx context.Context, id int) (*models.Account, error)
	FindByUsername(ctx context.Context, username string) (*models.Account, error)
	FindByUsernameAndPassword(ctx context.Context, username, password string) (*models.Account, error)
	Save(ctx context.Context, account *models.Account) (*models.Account, error)
}

type MessageRepository interface {
	FindByID(ctx context.Context, id int) (*models.Message, error)
	FindAll(ctx context.Context) ([]models.Message, error)
	FindByPostedBy(ctx context.Context, accountID int) ([]models.Message, error)
	Save(ctx context.Context, message *models.Message) (*models.Message, error)
	Update(ctx context.Context, message *models.Message) error
	DeleteByID(ctx context.Context, id int) (bool, error)
}

// UserLookup is the slice of AccountService that MessageService needs.
type UserLookup interface {
	GetUserByID(ctx context.Context, id int) (*models.Account, error)
}
