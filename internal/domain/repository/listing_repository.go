package repository

import (
	"context"

	"webcars/internal/domain/entity"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	List(ctx context.Context) ([]*entity.Listing, error)
	ListLimited(ctx context.Context, limit int) ([]*entity.Listing, error)
	ListByOwner(ctx context.Context, uid string) ([]*entity.Listing, error)
	Update(ctx context.Context, listing *entity.Listing) error
	Delete(ctx context.Context, id string) error
}
