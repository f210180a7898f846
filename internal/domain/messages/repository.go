package messages

import "context"

type Repository interface {
	Create(ctx context.Context, m Message) error

	// ListByConversation devuelve los mensajes ascendentes por CreatedAt.
	ListByConversation(ctx context.Context, conversationID string) ([]Message, error)
}
