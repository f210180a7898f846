package listings

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Listing
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Listing{}}
}

func (r *testRepo) Create(ctx context.Context, l Listing) error {
	if l.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[l.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[l.ID] = l
	return nil
}

func (r *testRepo) Update(ctx context.Context, l Listing) error {
	if _, ok := r.byID[l.ID]; !ok {
		return ErrNotFound
	}
	r.byID[l.ID] = l
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Listing, error) {
	l, ok := r.byID[id]
	if !ok {
		return Listing{}, ErrNotFound
	}
	return l, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) ListByShelter(ctx context.Context, shelterID string) ([]Listing, error) {
	out := make([]Listing, 0)
	for _, l := range r.byID {
		if l.ShelterID == shelterID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *testRepo) ListAvailable(ctx context.Context) ([]Listing, error) {
	out := make([]Listing, 0)
	for _, l := range r.byID {
		if l.Status == StatusAvailable {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func validInput() CreateInput {
	return CreateInput{
		Name:      "Buddy",
		Age:       3,
		Breed:     "Labrador",
		Gender:    GenderMale,
		ImageURLs: []string{"https://img.example/buddy.png"},
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_ForcesAvailable(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	l, err := svc.Create(context.Background(), "shelter-1", validInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if l.Status != StatusAvailable {
		t.Fatalf("expected status available, got %s", l.Status)
	}
	if l.ShelterID != "shelter-1" {
		t.Fatalf("expected owner shelter-1, got %s", l.ShelterID)
	}
	if l.CreatedAt != now || l.UpdatedAt != now {
		t.Fatalf("expected timestamps = now")
	}
}

func TestService_Create_Validation(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	cases := []struct {
		name string
		mut  func(*CreateInput)
	}{
		{"empty name", func(in *CreateInput) { in.Name = "  " }},
		{"negative age", func(in *CreateInput) { in.Age = -1 }},
		{"bad gender", func(in *CreateInput) { in.Gender = Gender("Other") }},
		{"no images", func(in *CreateInput) { in.ImageURLs = nil }},
	}

	for _, tc := range cases {
		in := validInput()
		tc.mut(&in)
		if _, err := svc.Create(context.Background(), "shelter-1", in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}

	if _, err := svc.Create(context.Background(), "", validInput()); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty shelter: expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Update_PatchSemantics(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now1 := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	now2 := now1.Add(1 * time.Hour)

	svc.now = func() time.Time { return now1 }
	l, err := svc.Create(context.Background(), "shelter-1", validInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	svc.now = func() time.Time { return now2 }
	newName := "Buddy II"
	got, err := svc.Update(context.Background(), l.ID, UpdateInput{Name: &newName})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Name != "Buddy II" {
		t.Fatalf("expected name patched, got %q", got.Name)
	}
	// Lo no enviado no se toca.
	if got.Age != 3 || got.Breed != "Labrador" || got.Gender != GenderMale {
		t.Fatalf("expected untouched fields preserved, got %#v", got)
	}
	if got.UpdatedAt != now2 || got.CreatedAt != now1 {
		t.Fatalf("expected UpdatedAt bumped, CreatedAt preserved")
	}

	// Patch inválido no debe dejar el listing a medias.
	empty := ""
	if _, err := svc.Update(context.Background(), l.ID, UpdateInput{Name: &empty}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty name, got %v", err)
	}
	check, _ := svc.GetByID(context.Background(), l.ID)
	if check.Name != "Buddy II" {
		t.Fatalf("failed patch mutated state: %q", check.Name)
	}

	noImages := []string{}
	if _, err := svc.Update(context.Background(), l.ID, UpdateInput{ImageURLs: &noImages}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty image list, got %v", err)
	}
}

func TestService_MarkAdopted_LeavesAvailableList(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }
	a, _ := svc.Create(context.Background(), "shelter-1", validInput())

	svc.now = func() time.Time { return base.Add(time.Minute) }
	in := validInput()
	in.Name = "Luna"
	in.Gender = GenderFemale
	b, _ := svc.Create(context.Background(), "shelter-1", in)

	got, err := svc.MarkAdopted(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("MarkAdopted error: %v", err)
	}
	if got.Status != StatusAdopted {
		t.Fatalf("expected adopted, got %s", got.Status)
	}

	avail, err := svc.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("ListAvailable error: %v", err)
	}
	if len(avail) != 1 || avail[0].ID != b.ID {
		t.Fatalf("expected only Luna available, got %#v", avail)
	}
}

func TestService_Remove_ThenNotFound(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	l, _ := svc.Create(context.Background(), "shelter-1", validInput())

	if err := svc.Remove(context.Background(), l.ID); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), l.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}
	if err := svc.Remove(context.Background(), l.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeat remove, got %v", err)
	}
}
