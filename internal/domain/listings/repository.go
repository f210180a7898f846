package listings

import "context"

type Repository interface {
	Create(ctx context.Context, l Listing) error
	Update(ctx context.Context, l Listing) error
	GetByID(ctx context.Context, id string) (Listing, error)
	Delete(ctx context.Context, id string) error

	// ListByShelter devuelve los listings del shelter, más recientes primero.
	ListByShelter(ctx context.Context, shelterID string) ([]Listing, error)

	// ListAvailable devuelve todos los listings con status available.
	ListAvailable(ctx context.Context) ([]Listing, error)
}
