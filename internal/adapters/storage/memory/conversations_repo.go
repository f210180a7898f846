package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pawmatch/internal/domain/conversations"
)

type conversationRepo struct {
	mu   sync.RWMutex
	byID map[string]conversations.Conversation
}

func NewConversationRepo() conversations.Repository {
	return &conversationRepo{
		byID: make(map[string]conversations.Conversation),
	}
}

func (r *conversationRepo) Create(ctx context.Context, c conversations.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("conversation id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("conversation already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *conversationRepo) GetByID(ctx context.Context, id string) (conversations.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return conversations.Conversation{}, conversations.ErrNotFound
	}
	return c, nil
}

func (r *conversationRepo) GetByAdopterAndListing(ctx context.Context, adopterID, listingID string) (conversations.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.byID {
		if c.AdopterID == adopterID && c.ListingID == listingID {
			return c, nil
		}
	}
	return conversations.Conversation{}, conversations.ErrNotFound
}

func (r *conversationRepo) ListByAdopter(ctx context.Context, adopterID string) ([]conversations.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]conversations.Conversation, 0)
	for _, c := range r.byID {
		if c.AdopterID == adopterID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *conversationRepo) ListByShelter(ctx context.Context, shelterID string) ([]conversations.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]conversations.Conversation, 0)
	for _, c := range r.byID {
		if c.ShelterID == shelterID {
			out = append(out, c)
		}
	}
	return out, nil
}
