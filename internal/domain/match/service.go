package match

import (
	"context"
	"strings"

	"pawmatch/internal/domain/conversations"
	"pawmatch/internal/domain/interests"
	"pawmatch/internal/domain/listings"
)

// Service orquesta el composite de "like": registrar el interés y
// derivar-o-crear la conversación del par (adopter, listing).
//
// Los dos pasos NO van en una transacción única: cada uno es idempotente por
// sí mismo, así que reintentar el composite completo después de una falla
// parcial (like ok, conversación falla) converge al mismo estado final.
type Service struct {
	interests     *interests.Service
	listings      *listings.Service
	conversations *conversations.Service
}

func NewService(interestsSvc *interests.Service, listingsSvc *listings.Service, convSvc *conversations.Service) *Service {
	return &Service{
		interests:     interestsSvc,
		listings:      listingsSvc,
		conversations: convSvc,
	}
}

type Result struct {
	InterestID     string
	ConversationID string
}

// LikeAndMatch ejecuta el composite. Cualquier usuario autenticado puede
// likear, no hay chequeo de rol. Si el listing no existe devuelve
// listings.ErrNotFound.
func (s *Service) LikeAndMatch(ctx context.Context, adopterID, listingID string) (Result, error) {
	adopterID = strings.TrimSpace(adopterID)
	listingID = strings.TrimSpace(listingID)
	if adopterID == "" || listingID == "" {
		return Result{}, interests.ErrInvalidInput
	}

	// Paso 1: ledger de interés (idempotente por (adopter, listing)).
	like, err := s.interests.Like(ctx, adopterID, listingID)
	if err != nil {
		return Result{}, err
	}

	// Paso 2: conversación (idempotente por la misma clave). El shelter de
	// la conversación es un snapshot del dueño actual del listing.
	l, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return Result{}, err
	}

	c, err := s.conversations.CreateOrGet(ctx, adopterID, l.ShelterID, listingID)
	if err != nil {
		return Result{}, err
	}

	return Result{
		InterestID:     like.ID,
		ConversationID: c.ID,
	}, nil
}
