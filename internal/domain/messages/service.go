package messages

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Send inserta un mensaje con timestamp del servidor. La autorización de
// participante la resuelve el handler contra la conversación.
func (s *Service) Send(ctx context.Context, conversationID, authorID, text string) (Message, error) {
	conversationID = strings.TrimSpace(conversationID)
	authorID = strings.TrimSpace(authorID)
	text = strings.TrimSpace(text)
	if conversationID == "" || authorID == "" || text == "" {
		return Message{}, ErrInvalidInput
	}

	m := Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		AuthorID:       authorID,
		Text:           text,
		CreatedAt:      s.now(),
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Message{}, err
	}
	return m, nil
}

func (s *Service) ListByConversation(ctx context.Context, conversationID string) ([]Message, error) {
	conversationID = strings.TrimSpace(conversationID)
	if conversationID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByConversation(ctx, conversationID)
}
