package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pawmatch/internal/domain/interests"
)

type interestRepo struct {
	mu   sync.RWMutex
	byID map[string]interests.Interest
}

func NewInterestRepo() interests.Repository {
	return &interestRepo{
		byID: make(map[string]interests.Interest),
	}
}

func (r *interestRepo) Create(ctx context.Context, i interests.Interest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(i.ID) == "" {
		return errors.New("interest id required")
	}
	if _, exists := r.byID[i.ID]; exists {
		return errors.New("interest already exists")
	}
	r.byID[i.ID] = i
	return nil
}

func (r *interestRepo) GetByAdopterAndListing(ctx context.Context, adopterID, listingID string) (interests.Interest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, i := range r.byID {
		if i.AdopterID == adopterID && i.ListingID == listingID {
			return i, nil
		}
	}
	return interests.Interest{}, interests.ErrNotFound
}

func (r *interestRepo) ListByAdopter(ctx context.Context, adopterID string) ([]interests.Interest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]interests.Interest, 0)
	for _, i := range r.byID {
		if i.AdopterID == adopterID {
			out = append(out, i)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}
