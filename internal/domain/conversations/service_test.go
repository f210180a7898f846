package conversations

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Conversation
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Conversation{}}
}

func (r *testRepo) Create(ctx context.Context, c Conversation) error {
	if c.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Conversation, error) {
	c, ok := r.byID[id]
	if !ok {
		return Conversation{}, ErrNotFound
	}
	return c, nil
}

func (r *testRepo) GetByAdopterAndListing(ctx context.Context, adopterID, listingID string) (Conversation, error) {
	for _, c := range r.byID {
		if c.AdopterID == adopterID && c.ListingID == listingID {
			return c, nil
		}
	}
	return Conversation{}, ErrNotFound
}

func (r *testRepo) ListByAdopter(ctx context.Context, adopterID string) ([]Conversation, error) {
	out := make([]Conversation, 0)
	for _, c := range r.byID {
		if c.AdopterID == adopterID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *testRepo) ListByShelter(ctx context.Context, shelterID string) ([]Conversation, error) {
	out := make([]Conversation, 0)
	for _, c := range r.byID {
		if c.ShelterID == shelterID {
			out = append(out, c)
		}
	}
	return out, nil
}

func TestService_CreateOrGet_Idempotent(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now1 := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now1 }

	first, err := svc.CreateOrGet(context.Background(), "adopter-1", "shelter-1", "listing-1")
	if err != nil {
		t.Fatalf("CreateOrGet #1 error: %v", err)
	}

	svc.now = func() time.Time { return now1.Add(time.Hour) }
	second, err := svc.CreateOrGet(context.Background(), "adopter-1", "shelter-1", "listing-1")
	if err != nil {
		t.Fatalf("CreateOrGet #2 error: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected same conversation, got %s vs %s", first.ID, second.ID)
	}
	if second.CreatedAt != now1 {
		t.Fatalf("expected original CreatedAt preserved")
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected 1 stored conversation, got %d", len(repo.byID))
	}
}

func TestService_CreateOrGet_SnapshotShelter(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	c, err := svc.CreateOrGet(context.Background(), "adopter-1", "shelter-1", "listing-1")
	if err != nil {
		t.Fatalf("CreateOrGet error: %v", err)
	}
	if c.ShelterID != "shelter-1" {
		t.Fatalf("expected shelter snapshot, got %s", c.ShelterID)
	}

	// Repetir con otro shelter no reescribe el snapshot: gana la clave (adopter, listing).
	again, err := svc.CreateOrGet(context.Background(), "adopter-1", "shelter-2", "listing-1")
	if err != nil {
		t.Fatalf("CreateOrGet error: %v", err)
	}
	if again.ShelterID != "shelter-1" {
		t.Fatalf("expected original snapshot preserved, got %s", again.ShelterID)
	}
}

func TestService_ListForUser_BothSides(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	base := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	// "dual-1" participa como adopter en una y como shelter en otra.
	svc.now = func() time.Time { return base }
	asAdopter, _ := svc.CreateOrGet(context.Background(), "dual-1", "shelter-9", "listing-1")

	svc.now = func() time.Time { return base.Add(time.Minute) }
	asShelter, _ := svc.CreateOrGet(context.Background(), "adopter-9", "dual-1", "listing-2")

	svc.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, _ = svc.CreateOrGet(context.Background(), "adopter-9", "shelter-9", "listing-3")

	got, err := svc.ListForUser(context.Background(), "dual-1")
	if err != nil {
		t.Fatalf("ListForUser error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(got))
	}
	// Más recientes primero.
	if got[0].ID != asShelter.ID || got[1].ID != asAdopter.ID {
		t.Fatalf("expected newest-first order, got %#v", got)
	}
}

func TestConversation_Participants(t *testing.T) {
	c := Conversation{AdopterID: "a", ShelterID: "s"}

	if !c.HasParticipant("a") || !c.HasParticipant("s") {
		t.Fatal("expected both sides to be participants")
	}
	if c.HasParticipant("x") {
		t.Fatal("stranger reported as participant")
	}
	if c.OtherParticipant("a") != "s" || c.OtherParticipant("s") != "a" {
		t.Fatal("OtherParticipant mismatch")
	}
}

func TestService_CreateOrGet_Validation(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.CreateOrGet(context.Background(), "", "s", "l"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.CreateOrGet(context.Background(), "a", "", "l"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.CreateOrGet(context.Background(), "a", "s", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
