package interests

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("interest not found")
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

// Like registra el interés del adopter por un listing. Idempotente: si ya
// existe el par (adopter, listing) devuelve el registro existente sin crear
// un duplicado, así el composite de match se puede reintentar con seguridad.
func (s *Service) Like(ctx context.Context, adopterID, listingID string) (Interest, error) {
	adopterID = strings.TrimSpace(adopterID)
	listingID = strings.TrimSpace(listingID)
	if adopterID == "" || listingID == "" {
		return Interest{}, ErrInvalidInput
	}

	existing, err := s.repo.GetByAdopterAndListing(ctx, adopterID, listingID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Interest{}, err
	}

	i := Interest{
		ID:        uuid.NewString(),
		AdopterID: adopterID,
		ListingID: listingID,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, i); err != nil {
		return Interest{}, err
	}
	return i, nil
}

func (s *Service) ListByAdopter(ctx context.Context, adopterID string) ([]Interest, error) {
	adopterID = strings.TrimSpace(adopterID)
	if adopterID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByAdopter(ctx, adopterID)
}
