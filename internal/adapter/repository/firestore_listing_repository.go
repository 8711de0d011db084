package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"webcars/internal/domain/entity"
	"webcars/internal/domain/repository"
	"webcars/pkg/errors"
)

const listingCollection = "cars"

type firestoreListingRepository struct {
	client *firestore.Client
}

func NewFirestoreListingRepository(client *firestore.Client) repository.ListingRepository {
	return &firestoreListingRepository{
		client: client,
	}
}

func (r *firestoreListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == "" {
		doc := r.client.Collection(listingCollection).NewDoc()
		listing.ID = doc.ID
	}

	if listing.Created.IsZero() {
		listing.Created = time.Now()
	}

	_, err := r.client.Collection(listingCollection).Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to create listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	doc, err := r.client.Collection(listingCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Listing", err)
		}
		return nil, errors.Internal("Failed to get listing", err)
	}

	return docToListing(doc.Ref.ID, doc.Data()), nil
}

func (r *firestoreListingRepository) List(ctx context.Context) ([]*entity.Listing, error) {
	query := r.client.Collection(listingCollection).OrderBy("created", firestore.Desc)
	return r.collect(ctx, query.Documents(ctx))
}

func (r *firestoreListingRepository) ListLimited(ctx context.Context, limit int) ([]*entity.Listing, error) {
	query := r.client.Collection(listingCollection).OrderBy("created", firestore.Desc).Limit(limit)
	return r.collect(ctx, query.Documents(ctx))
}

func (r *firestoreListingRepository) ListByOwner(ctx context.Context, uid string) ([]*entity.Listing, error) {
	query := r.client.Collection(listingCollection).Where("uid", "==", uid)
	return r.collect(ctx, query.Documents(ctx))
}

func (r *firestoreListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	_, err := r.client.Collection(listingCollection).Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to update listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(listingCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete listing", err)
	}

	return nil
}

// collect drains an iterator into normalized listings. A failure midway
// discards everything read so far; callers never observe a partial page.
func (r *firestoreListingRepository) collect(ctx context.Context, iter *firestore.DocumentIterator) ([]*entity.Listing, error) {
	var listings []*entity.Listing

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate listings", err)
		}
		listings = append(listings, docToListing(doc.Ref.ID, doc.Data()))
	}

	return listings, nil
}
