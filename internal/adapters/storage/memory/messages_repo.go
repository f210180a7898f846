package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pawmatch/internal/domain/messages"
)

type storedMessage struct {
	messages.Message
	seq uint64 // desempate cuando dos mensajes comparten timestamp
}

type messageRepo struct {
	mu   sync.RWMutex
	byID map[string]storedMessage
	seq  uint64
}

func NewMessageRepo() messages.Repository {
	return &messageRepo{
		byID: make(map[string]storedMessage),
	}
}

func (r *messageRepo) Create(ctx context.Context, m messages.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("message id required")
	}
	if _, exists := r.byID[m.ID]; exists {
		return errors.New("message already exists")
	}

	r.seq++
	r.byID[m.ID] = storedMessage{Message: m, seq: r.seq}
	return nil
}

func (r *messageRepo) ListByConversation(ctx context.Context, conversationID string) ([]messages.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := make([]storedMessage, 0)
	for _, m := range r.byID {
		if m.ConversationID == conversationID {
			stored = append(stored, m)
		}
	}

	// Ascendente por CreatedAt; seq de inserción como desempate
	sort.Slice(stored, func(i, j int) bool {
		if stored[i].CreatedAt.Equal(stored[j].CreatedAt) {
			return stored[i].seq < stored[j].seq
		}
		return stored[i].CreatedAt.Before(stored[j].CreatedAt)
	})

	out := make([]messages.Message, 0, len(stored))
	for _, m := range stored {
		out = append(out, m.Message)
	}
	return out, nil
}
