package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"webcars/internal/domain/entity"
	"webcars/internal/domain/repository"
	"webcars/internal/domain/service"
	"webcars/pkg/errors"
	"webcars/pkg/logger"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
	storage     service.ImageStorage
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
	storage service.ImageStorage,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		userRepo:    userRepo,
		storage:     storage,
	}
}

type CreateListingInput struct {
	Name        string
	Model       string
	Year        string
	KM          string
	Price       string
	City        string
	Phone       string
	Description string

	Engine       string
	Horsepower   string
	Torque       string
	Acceleration string
	TopSpeed     string
	Drivetrain   string
	Transmission string
	FuelType     string
}

func (uc *ListingUseCase) Create(ctx context.Context, uid string, input CreateListingInput, images []entity.ListingImage) (*entity.Listing, error) {
	if len(images) == 0 {
		return nil, errors.BadRequest("At least one image is required", nil)
	}

	price, err := parsePrice(input.Price)
	if err != nil {
		return nil, errors.BadRequest("Price must be a number", err)
	}

	owner, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.BadRequest("Invalid owner", err)
	}

	listing := &entity.Listing{
		Name:        input.Name,
		Model:       input.Model,
		Year:        input.Year,
		KM:          input.KM,
		Price:       price,
		City:        input.City,
		Phone:       input.Phone,
		Description: input.Description,
		Status:      "Available",
		Image:       images[0].URL,

		Engine:       input.Engine,
		Horsepower:   input.Horsepower,
		Torque:       input.Torque,
		Acceleration: input.Acceleration,
		TopSpeed:     input.TopSpeed,
		Drivetrain:   input.Drivetrain,
		Transmission: input.Transmission,
		FuelType:     input.FuelType,

		Owner:   owner.DisplayName,
		UID:     uid,
		Images:  images,
		Created: time.Now(),
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (uc *ListingUseCase) Update(ctx context.Context, id, uid string, input CreateListingInput, images []entity.ListingImage) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if listing.UID != uid {
		return nil, errors.Forbidden("You don't have permission to update this listing", nil)
	}

	price, err := parsePrice(input.Price)
	if err != nil {
		return nil, errors.BadRequest("Price must be a number", err)
	}

	listing.Name = input.Name
	listing.Model = input.Model
	listing.Year = input.Year
	listing.KM = input.KM
	listing.Price = price
	listing.City = input.City
	listing.Phone = input.Phone
	listing.Description = input.Description
	listing.Engine = input.Engine
	listing.Horsepower = input.Horsepower
	listing.Torque = input.Torque
	listing.Acceleration = input.Acceleration
	listing.TopSpeed = input.TopSpeed
	listing.Drivetrain = input.Drivetrain
	listing.Transmission = input.Transmission
	listing.FuelType = input.FuelType

	if len(images) > 0 {
		listing.Images = images
		listing.Image = images[0].URL
	}

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (uc *ListingUseCase) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	return uc.listingRepo.GetByID(ctx, id)
}

// List fetches every listing newest-first, then applies the in-memory
// text filter and sort.
func (uc *ListingUseCase) List(ctx context.Context, term, sortKey string) ([]*entity.Listing, error) {
	listings, err := uc.listingRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	listings = FilterByText(listings, term)
	if sortKey != "" {
		listings = SortListings(listings, sortKey)
	}

	return listings, nil
}

func (uc *ListingUseCase) ListFeatured(ctx context.Context, limit int) ([]*entity.Listing, error) {
	return uc.listingRepo.ListLimited(ctx, limit)
}

func (uc *ListingUseCase) ListByOwner(ctx context.Context, uid string) ([]*entity.Listing, error) {
	return uc.listingRepo.ListByOwner(ctx, uid)
}

// Delete removes the record, then best-effort removes every referenced
// image. Image failures are logged and never escalated; the record
// deletion is not rolled back, so orphan objects can remain.
func (uc *ListingUseCase) Delete(ctx context.Context, id, uid string) error {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if listing.UID != uid {
		return errors.Forbidden("You don't have permission to delete this listing", nil)
	}

	if err := uc.listingRepo.Delete(ctx, id); err != nil {
		return err
	}

	for _, img := range listing.Images {
		if err := uc.storage.DeleteImage(ctx, img.UID, img.Name); err != nil {
			logger.Warn("Failed to delete image %s/%s for listing %s: %v", img.UID, img.Name, id, err)
		}
	}

	return nil
}

func parsePrice(raw string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	return strconv.ParseFloat(cleaned, 64)
}
