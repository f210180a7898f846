package users

import "context"

type Repository interface {
	Create(ctx context.Context, u User) error
	Update(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByIdentityKey(ctx context.Context, identityKey string) (User, error)
	Delete(ctx context.Context, id string) error
}
