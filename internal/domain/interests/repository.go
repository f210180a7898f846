package interests

import "context"

type Repository interface {
	Create(ctx context.Context, i Interest) error
	GetByAdopterAndListing(ctx context.Context, adopterID, listingID string) (Interest, error)
	ListByAdopter(ctx context.Context, adopterID string) ([]Interest, error)
}
