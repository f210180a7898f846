package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("user not found")
	ErrUnauthenticated = errors.New("authentication required")
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

// CurrentUser resuelve la identidad del caller a un User, en modo "soft":
// sin identity key o sin registro todavía => (User{}, false, nil), NO error.
// Cubre la ventana entre el signup en el proveedor y la llegada del webhook;
// los reads que toleran ausencia degradan a listas vacías.
func (s *Service) CurrentUser(ctx context.Context, identityKey string) (User, bool, error) {
	identityKey = strings.TrimSpace(identityKey)
	if identityKey == "" {
		return User{}, false, nil
	}

	u, err := s.repo.GetByIdentityKey(ctx, identityKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, false, nil
		}
		return User{}, false, err
	}
	return u, true, nil
}

// RequireUser es la variante estricta: las mutaciones que no tienen un
// fallback razonable fallan con ErrUnauthenticated si no hay usuario.
func (s *Service) RequireUser(ctx context.Context, identityKey string) (User, error) {
	identityKey = strings.TrimSpace(identityKey)
	if identityKey == "" {
		return User{}, ErrUnauthenticated
	}

	u, err := s.repo.GetByIdentityKey(ctx, identityKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrUnauthenticated
		}
		return User{}, err
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

type ProfileInput struct {
	Role    Role
	Address string
	Phone   string
}

// UpdateProfile aplica el paso de onboarding. Solo toca role/address/phone;
// el resto de los atributos los posee el sync de identidad.
func (s *Service) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (User, error) {
	if in.Role != RoleAdopter && in.Role != RoleShelter {
		return User{}, ErrInvalidInput
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return User{}, err
	}

	u.Role = in.Role
	u.Address = strings.TrimSpace(in.Address)
	u.Phone = strings.TrimSpace(in.Phone)
	u.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

type IdentityEvent struct {
	IdentityKey string
	Name        string
	Email       string
	ImageURL    string
}

// UpsertFromIdentityEvent crea o actualiza un usuario a partir de un evento
// del proveedor de identidad. Idempotente por IdentityKey: el patch solo toca
// los campos que posee el proveedor (name/email/imageURL), nunca el rol.
func (s *Service) UpsertFromIdentityEvent(ctx context.Context, in IdentityEvent) (User, error) {
	key := strings.TrimSpace(in.IdentityKey)
	if key == "" {
		return User{}, ErrInvalidInput
	}

	now := s.now()

	existing, err := s.repo.GetByIdentityKey(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return User{}, err
		}

		u := User{
			ID:          uuid.NewString(),
			IdentityKey: key,
			Name:        strings.TrimSpace(in.Name),
			Email:       strings.TrimSpace(in.Email),
			ImageURL:    strings.TrimSpace(in.ImageURL),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.repo.Create(ctx, u); err != nil {
			return User{}, err
		}
		return u, nil
	}

	existing.Name = strings.TrimSpace(in.Name)
	existing.Email = strings.TrimSpace(in.Email)
	existing.ImageURL = strings.TrimSpace(in.ImageURL)
	existing.UpdatedAt = now

	if err := s.repo.Update(ctx, existing); err != nil {
		return User{}, err
	}
	return existing, nil
}

// DeleteFromIdentityEvent borra el usuario cuando el proveedor lo elimina.
// Si no existe devuelve ErrNotFound; el webhook handler lo loguea y sigue.
func (s *Service) DeleteFromIdentityEvent(ctx context.Context, identityKey string) error {
	key := strings.TrimSpace(identityKey)
	if key == "" {
		return ErrInvalidInput
	}

	u, err := s.repo.GetByIdentityKey(ctx, key)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, u.ID)
}
