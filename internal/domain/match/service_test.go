package match

import (
	"context"
	"errors"
	"testing"

	mem "pawmatch/internal/adapters/storage/memory"
	"pawmatch/internal/domain/conversations"
	"pawmatch/internal/domain/interests"
	"pawmatch/internal/domain/listings"
)

func newFixture(t *testing.T) (*Service, *listings.Service, conversations.Repository) {
	t.Helper()

	convRepo := mem.NewConversationRepo()
	listingsSvc := listings.NewService(mem.NewListingRepo())

	svc := NewService(
		interests.NewService(mem.NewInterestRepo()),
		listingsSvc,
		conversations.NewService(convRepo),
	)
	return svc, listingsSvc, convRepo
}

func seedListing(t *testing.T, svc *listings.Service, shelterID string) listings.Listing {
	t.Helper()

	l, err := svc.Create(context.Background(), shelterID, listings.CreateInput{
		Name:      "Buddy",
		Age:       3,
		Gender:    listings.GenderMale,
		ImageURLs: []string{"https://img.example/buddy.png"},
	})
	if err != nil {
		t.Fatalf("seed listing: %v", err)
	}
	return l
}

func TestService_LikeAndMatch_RepeatedLikeConverges(t *testing.T) {
	svc, listingsSvc, _ := newFixture(t)
	l := seedListing(t, listingsSvc, "shelter-1")

	first, err := svc.LikeAndMatch(context.Background(), "adopter-1", l.ID)
	if err != nil {
		t.Fatalf("LikeAndMatch #1 error: %v", err)
	}
	if first.InterestID == "" || first.ConversationID == "" {
		t.Fatalf("incomplete result: %#v", first)
	}

	second, err := svc.LikeAndMatch(context.Background(), "adopter-1", l.ID)
	if err != nil {
		t.Fatalf("LikeAndMatch #2 error: %v", err)
	}
	if second.InterestID != first.InterestID {
		t.Fatalf("expected same interest, got %s vs %s", first.InterestID, second.InterestID)
	}
	if second.ConversationID != first.ConversationID {
		t.Fatalf("expected same conversation, got %s vs %s", first.ConversationID, second.ConversationID)
	}
}

func TestService_LikeAndMatch_UnknownListing(t *testing.T) {
	svc, _, _ := newFixture(t)

	_, err := svc.LikeAndMatch(context.Background(), "adopter-1", "no-such-listing")
	if !errors.Is(err, listings.ErrNotFound) {
		t.Fatalf("expected listings.ErrNotFound, got %v", err)
	}
}

func TestService_LikeAndMatch_SnapshotsShelter(t *testing.T) {
	svc, listingsSvc, convRepo := newFixture(t)
	l := seedListing(t, listingsSvc, "shelter-7")

	res, err := svc.LikeAndMatch(context.Background(), "adopter-1", l.ID)
	if err != nil {
		t.Fatalf("LikeAndMatch error: %v", err)
	}

	c, err := convRepo.GetByID(context.Background(), res.ConversationID)
	if err != nil {
		t.Fatalf("lookup conversation: %v", err)
	}
	if c.ShelterID != "shelter-7" {
		t.Fatalf("expected shelter snapshot shelter-7, got %s", c.ShelterID)
	}
	if c.AdopterID != "adopter-1" || c.ListingID != l.ID {
		t.Fatalf("bad conversation: %#v", c)
	}
}

// -------------------------
// Falla parcial: paso 1 ok, paso 2 falla una vez
// -------------------------

type flakyConvRepo struct {
	conversations.Repository
	failuresLeft int
}

func (r *flakyConvRepo) Create(ctx context.Context, c conversations.Conversation) error {
	if r.failuresLeft > 0 {
		r.failuresLeft--
		return errors.New("storage: transient failure")
	}
	return r.Repository.Create(ctx, c)
}

func TestService_LikeAndMatch_RetryAfterPartialFailure(t *testing.T) {
	interestRepo := mem.NewInterestRepo()
	listingsSvc := listings.NewService(mem.NewListingRepo())
	flaky := &flakyConvRepo{Repository: mem.NewConversationRepo(), failuresLeft: 1}

	svc := NewService(
		interests.NewService(interestRepo),
		listingsSvc,
		conversations.NewService(flaky),
	)

	l := seedListing(t, listingsSvc, "shelter-1")

	// Primer intento: el like entra, la conversación falla.
	_, err := svc.LikeAndMatch(context.Background(), "adopter-1", l.ID)
	if err == nil {
		t.Fatal("expected error on first attempt")
	}
	like, err := interestRepo.GetByAdopterAndListing(context.Background(), "adopter-1", l.ID)
	if err != nil {
		t.Fatalf("expected interest persisted despite failure, got %v", err)
	}

	// Reintento completo: converge sin duplicar el like.
	res, err := svc.LikeAndMatch(context.Background(), "adopter-1", l.ID)
	if err != nil {
		t.Fatalf("retry error: %v", err)
	}
	if res.InterestID != like.ID {
		t.Fatalf("retry duplicated the interest: %s vs %s", res.InterestID, like.ID)
	}
	if res.ConversationID == "" {
		t.Fatal("retry did not create the conversation")
	}
}
