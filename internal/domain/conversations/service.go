package conversations

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("conversation not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// CreateOrGet deriva-o-crea la conversación del par (adopter, listing).
// Idempotente con lookup-before-insert, igual que el like: si ya existe
// devuelve la conversación existente. shelterID viene del dueño actual del
// listing (snapshot, lo resuelve el orquestador de match).
func (s *Service) CreateOrGet(ctx context.Context, adopterID, shelterID, listingID string) (Conversation, error) {
	adopterID = strings.TrimSpace(adopterID)
	shelterID = strings.TrimSpace(shelterID)
	listingID = strings.TrimSpace(listingID)
	if adopterID == "" || shelterID == "" || listingID == "" {
		return Conversation{}, ErrInvalidInput
	}

	existing, err := s.repo.GetByAdopterAndListing(ctx, adopterID, listingID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Conversation{}, err
	}

	c := Conversation{
		ID:        uuid.NewString(),
		AdopterID: adopterID,
		ShelterID: shelterID,
		ListingID: listingID,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Conversation{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Conversation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Conversation{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// ListForUser devuelve los hilos donde el usuario participa de cualquiera de
// los dos lados (dos lookups indexados, unidos), más recientes primero.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]Conversation, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}

	asAdopter, err := s.repo.ListByAdopter(ctx, userID)
	if err != nil {
		return nil, err
	}
	asShelter, err := s.repo.ListByShelter(ctx, userID)
	if err != nil {
		return nil, err
	}

	all := make([]Conversation, 0, len(asAdopter)+len(asShelter))
	all = append(all, asAdopter...)
	all = append(all, asShelter...)

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	return all, nil
}
