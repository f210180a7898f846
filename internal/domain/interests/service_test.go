package interests

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Interest
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Interest{}}
}

func (r *testRepo) Create(ctx context.Context, i Interest) error {
	if i.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[i.ID] = i
	return nil
}

func (r *testRepo) GetByAdopterAndListing(ctx context.Context, adopterID, listingID string) (Interest, error) {
	for _, i := range r.byID {
		if i.AdopterID == adopterID && i.ListingID == listingID {
			return i, nil
		}
	}
	return Interest{}, ErrNotFound
}

func (r *testRepo) ListByAdopter(ctx context.Context, adopterID string) ([]Interest, error) {
	out := make([]Interest, 0)
	for _, i := range r.byID {
		if i.AdopterID == adopterID {
			out = append(out, i)
		}
	}
	return out, nil
}

func TestService_Like_Idempotent(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now1 := time.Date(2026, 1, 12, 15, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now1 }

	first, err := svc.Like(context.Background(), "adopter-1", "listing-1")
	if err != nil {
		t.Fatalf("Like #1 error: %v", err)
	}

	svc.now = func() time.Time { return now1.Add(time.Hour) }
	second, err := svc.Like(context.Background(), "adopter-1", "listing-1")
	if err != nil {
		t.Fatalf("Like #2 error: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected same interest on repeat like, got %s vs %s", first.ID, second.ID)
	}
	if second.CreatedAt != now1 {
		t.Fatalf("expected original CreatedAt preserved")
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected 1 stored interest, got %d", len(repo.byID))
	}
}

func TestService_Like_SeparatePairs(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if _, err := svc.Like(context.Background(), "adopter-1", "listing-1"); err != nil {
		t.Fatalf("like error: %v", err)
	}
	if _, err := svc.Like(context.Background(), "adopter-1", "listing-2"); err != nil {
		t.Fatalf("like error: %v", err)
	}
	if _, err := svc.Like(context.Background(), "adopter-2", "listing-1"); err != nil {
		t.Fatalf("like error: %v", err)
	}

	got, err := svc.ListByAdopter(context.Background(), "adopter-1")
	if err != nil {
		t.Fatalf("ListByAdopter error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 interests for adopter-1, got %d", len(got))
	}
}

func TestService_Like_Validation(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Like(context.Background(), "", "listing-1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Like(context.Background(), "adopter-1", "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
