package conversations

import "context"

type Repository interface {
	Create(ctx context.Context, c Conversation) error
	GetByID(ctx context.Context, id string) (Conversation, error)
	GetByAdopterAndListing(ctx context.Context, adopterID, listingID string) (Conversation, error)
	ListByAdopter(ctx context.Context, adopterID string) ([]Conversation, error)
	ListByShelter(ctx context.Context, shelterID string) ([]Conversation, error)
}
