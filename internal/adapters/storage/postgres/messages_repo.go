package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pawmatch/internal/domain/messages"
)

type MessagesRepo struct {
	db *sql.DB
}

func NewMessagesRepo(db *sql.DB) *MessagesRepo {
	return &MessagesRepo{db: db}
}

func (r *MessagesRepo) Create(ctx context.Context, m messages.Message) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO messages (id, conversation_id, author_id, text, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`,
		m.ID,
		m.ConversationID,
		m.AuthorID,
		m.Text,
		m.CreatedAt,
	)
	return err
}

func (r *MessagesRepo) ListByConversation(ctx context.Context, conversationID string) ([]messages.Message, error) {
	conversationID = strings.TrimSpace(conversationID)
	if conversationID == "" {
		return nil, nil
	}

	// id como desempate para un orden total estable
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, conversation_id, author_id, text, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at ASC, id ASC
	`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]messages.Message, 0)
	for rows.Next() {
		var m messages.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.AuthorID, &m.Text, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
