package listings

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("listing not found")
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

type CreateInput struct {
	Name              string
	Age               int
	Breed             string
	Gender            Gender
	Description       string
	VaccinationStatus string
	HealthStatus      string
	ImageURLs         []string
	VoiceURL          string
}

// Create publica un listing nuevo. El status se fuerza a available sin
// importar lo que mande el caller; el rol shelter lo valida el handler.
func (s *Service) Create(ctx context.Context, shelterID string, in CreateInput) (Listing, error) {
	shelterID = strings.TrimSpace(shelterID)
	if shelterID == "" {
		return Listing{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Listing{}, ErrInvalidInput
	}
	if in.Age < 0 {
		return Listing{}, ErrInvalidInput
	}
	if in.Gender != GenderMale && in.Gender != GenderFemale {
		return Listing{}, ErrInvalidInput
	}
	if len(in.ImageURLs) == 0 {
		return Listing{}, ErrInvalidInput
	}

	now := s.now()
	l := Listing{
		ID:                uuid.NewString(),
		ShelterID:         shelterID,
		Name:              strings.TrimSpace(in.Name),
		Age:               in.Age,
		Breed:             strings.TrimSpace(in.Breed),
		Gender:            in.Gender,
		Description:       strings.TrimSpace(in.Description),
		VaccinationStatus: strings.TrimSpace(in.VaccinationStatus),
		HealthStatus:      strings.TrimSpace(in.HealthStatus),
		ImageURLs:         in.ImageURLs,
		VoiceURL:          strings.TrimSpace(in.VoiceURL),
		Status:            StatusAvailable,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return Listing{}, err
	}
	return l, nil
}

// UpdateInput usa punteros para PATCH real: nil = no tocar.
// ShelterID y Status quedan fuera a propósito (ownership inmutable;
// el status se cambia solo vía MarkAdopted).
type UpdateInput struct {
	Name              *string
	Age               *int
	Breed             *string
	Gender            *string
	Description       *string
	VaccinationStatus *string
	HealthStatus      *string
	ImageURLs         *[]string
	VoiceURL          *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Listing, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Listing{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Listing{}, ErrInvalidInput
		}
		l.Name = strings.TrimSpace(*in.Name)
	}
	if in.Age != nil {
		if *in.Age < 0 {
			return Listing{}, ErrInvalidInput
		}
		l.Age = *in.Age
	}
	if in.Breed != nil {
		l.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Gender != nil {
		g := Gender(strings.TrimSpace(*in.Gender))
		if g != GenderMale && g != GenderFemale {
			return Listing{}, ErrInvalidInput
		}
		l.Gender = g
	}
	if in.Description != nil {
		l.Description = strings.TrimSpace(*in.Description)
	}
	if in.VaccinationStatus != nil {
		l.VaccinationStatus = strings.TrimSpace(*in.VaccinationStatus)
	}
	if in.HealthStatus != nil {
		l.HealthStatus = strings.TrimSpace(*in.HealthStatus)
	}
	if in.ImageURLs != nil {
		if len(*in.ImageURLs) == 0 {
			return Listing{}, ErrInvalidInput
		}
		l.ImageURLs = *in.ImageURLs
	}
	if in.VoiceURL != nil {
		l.VoiceURL = strings.TrimSpace(*in.VoiceURL)
	}

	l.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, l); err != nil {
		return Listing{}, err
	}
	return l, nil
}

// Remove hace hard delete. Los likes/conversations que referencien este
// listing quedan colgando; los reads filtran referencias muertas.
func (s *Service) Remove(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) MarkAdopted(ctx context.Context, id string) (Listing, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Listing{}, err
	}

	l.Status = StatusAdopted
	l.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, l); err != nil {
		return Listing{}, err
	}
	return l, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Listing, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Listing{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByShelter(ctx context.Context, shelterID string) ([]Listing, error) {
	return s.repo.ListByShelter(ctx, shelterID)
}

func (s *Service) ListAvailable(ctx context.Context) ([]Listing, error) {
	return s.repo.ListAvailable(ctx)
}
