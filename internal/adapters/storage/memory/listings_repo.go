package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pawmatch/internal/domain/listings"
)

type listingRepo struct {
	mu   sync.RWMutex
	byID map[string]listings.Listing
}

func NewListingRepo() listings.Repository {
	return &listingRepo{
		byID: make(map[string]listings.Listing),
	}
}

func (r *listingRepo) Create(ctx context.Context, l listings.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(l.ID) == "" {
		return errors.New("listing id required")
	}
	if _, exists := r.byID[l.ID]; exists {
		return errors.New("listing already exists")
	}
	r.byID[l.ID] = l
	return nil
}

func (r *listingRepo) Update(ctx context.Context, l listings.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(l.ID) == "" {
		return errors.New("listing id required")
	}
	if _, exists := r.byID[l.ID]; !exists {
		return listings.ErrNotFound
	}
	r.byID[l.ID] = l
	return nil
}

func (r *listingRepo) GetByID(ctx context.Context, id string) (listings.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byID[id]
	if !ok {
		return listings.Listing{}, listings.ErrNotFound
	}
	return l, nil
}

func (r *listingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return listings.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *listingRepo) ListByShelter(ctx context.Context, shelterID string) ([]listings.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]listings.Listing, 0)
	for _, l := range r.byID {
		if l.ShelterID == shelterID {
			out = append(out, l)
		}
	}

	// Más recientes primero
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *listingRepo) ListAvailable(ctx context.Context) ([]listings.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]listings.Listing, 0)
	for _, l := range r.byID {
		if l.Status == listings.StatusAvailable {
			out = append(out, l)
		}
	}

	// Orden estable para el deck de swipe
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}
