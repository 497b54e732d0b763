package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"socialmedia/internal/apperr"
	"socialmedia/internal/models"
)

type MessageService struct {
	repo  MessageRepository
	users UserLookup
	log   zerolog.Logger
}

func NewMessageService(repo MessageRepository, users UserLookup, log zerolog.Logger) *MessageService {
	return &MessageService{repo: repo, users: users, log: log.With().Str("component", "message_service").Logger()}
}

// CreateMessage reports an unknown author as an invalid request rather than
// a missing resource.
func (s *MessageService) CreateMessage(ctx context.Context, message *models.Message) (*models.Message, error) {
	if _, err := s.users.GetUserByID(ctx, message.PostedBy); err != nil {
		if apperr.IsKind(err, apperr.KindResourceNotFound) {
			return nil, errInvalidAuthor
		}
		return nil, err
	}
	if err := checkMessageText(message.MessageText); err != nil {
		return nil, err
	}

	saved, err := s.repo.Save(ctx, &models.Message{
		PostedBy:    message.PostedBy,
		MessageText: message.MessageText,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}
	s.log.Info().Int("message_id", saved.ID).Int("posted_by", saved.PostedBy).Msg("message created")
	return saved, nil
}

func (s *MessageService) GetMessageByID(ctx context.Context, id int) (*models.Message, error) {
	found, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, apperr.ErrRecordNotFound) {
		return nil, errUnknownMessage
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message %d: %w", id, err)
	}
	return found, nil
}

func (s *MessageService) GetMessages(ctx context.Context) ([]models.Message, error) {
	return s.repo.FindAll(ctx)
}

// DeleteMessage returns the number of messages removed, 0 or 1.
func (s *MessageService) DeleteMessage(ctx context.Context, id int) (int, error) {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete message %d: %w", id, err)
	}
	if !deleted {
		return 0, nil
	}
	s.log.Info().Int("message_id", id).Msg("message deleted")
	return 1, nil
}

// PatchMessage replaces the text of an existing message. A missing id is an
// invalid request here, unlike GetMessageByID.
func (s *MessageService) PatchMessage(ctx context.Context, id int, message *models.Message) error {
	existing, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, apperr.ErrRecordNotFound) {
		return errPatchMissingMsg
	}
	if err != nil {
		return fmt.Errorf("failed to get message %d: %w", id, err)
	}
	if err := checkMessageText(message.MessageText); err != nil {
		return err
	}

	existing.MessageText = message.MessageText
	if err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, apperr.ErrRecordNotFound) {
			return errPatchMissingMsg
		}
		return fmt.Errorf("failed to update message %d: %w", id, err)
	}
	s.log.Debug().Int("message_id", id).Msg("message text updated")
	return nil
}

func (s *MessageService) GetMessagesByAccountID(ctx context.Context, accountID int) ([]models.Message, error) {
	return s.repo.FindByPostedBy(ctx, accountID)
}
