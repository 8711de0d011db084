package handler

import (
	"github.com/labstack/echo/v4"

	"webcars/internal/domain/entity"
	"webcars/internal/usecase"
	"webcars/pkg/response"
	"webcars/pkg/utils"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

type listingImageRequest struct {
	UID  string `json:"uid" validate:"required"`
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required,url"`
}

type createListingRequest struct {
	Name        string `json:"name" validate:"required"`
	Model       string `json:"model" validate:"required"`
	Year        string `json:"year" validate:"required,year4"`
	KM          string `json:"km" validate:"required"`
	Price       string `json:"price" validate:"required"`
	City        string `json:"city" validate:"required"`
	Phone       string `json:"phone" validate:"required,phone11"`
	Description string `json:"description" validate:"required"`

	Engine       string `json:"engine" validate:"required"`
	Horsepower   string `json:"horsepower" validate:"required"`
	Torque       string `json:"torque" validate:"required"`
	Acceleration string `json:"acceleration" validate:"required"`
	TopSpeed     string `json:"topSpeed" validate:"required"`
	Drivetrain   string `json:"drivetrain" validate:"required"`
	Transmission string `json:"transmission" validate:"required"`
	FuelType     string `json:"fuelType" validate:"required"`

	Images []listingImageRequest `json:"images"`
}

func (r createListingRequest) toInput() usecase.CreateListingInput {
	return usecase.CreateListingInput{
		Name:         r.Name,
		Model:        r.Model,
		Year:         r.Year,
		KM:           r.KM,
		Price:        r.Price,
		City:         r.City,
		Phone:        r.Phone,
		Description:  r.Description,
		Engine:       r.Engine,
		Horsepower:   r.Horsepower,
		Torque:       r.Torque,
		Acceleration: r.Acceleration,
		TopSpeed:     r.TopSpeed,
		Drivetrain:   r.Drivetrain,
		Transmission: r.Transmission,
		FuelType:     r.FuelType,
	}
}

func (r createListingRequest) toImages() []entity.ListingImage {
	images := make([]entity.ListingImage, len(r.Images))
	for i, img := range r.Images {
		images[i] = entity.ListingImage{
			UID:  img.UID,
			Name: img.Name,
			URL:  img.URL,
		}
	}
	return images
}

func (h *ListingHandler) ListListings(c echo.Context) error {
	term := c.QueryParam("q")
	sortKey := c.QueryParam("sort")

	listings, err := h.listingUseCase.List(c.Request().Context(), term, sortKey)
	if err != nil {
		return response.Error(c, err)
	}

	return response.List(c, listings, len(listings))
}

func (h *ListingHandler) ListFeatured(c echo.Context) error {
	limit := utils.GetLimitParam(c, 4, 20)

	listings, err := h.listingUseCase.ListFeatured(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.List(c, listings, len(listings))
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	listing, err := h.listingUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) ListMyListings(c echo.Context) error {
	uid := c.Get("uid").(string)

	listings, err := h.listingUseCase.ListByOwner(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.List(c, listings, len(listings))
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	listing, err := h.listingUseCase.Create(c.Request().Context(), uid, req.toInput(), req.toImages())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, listing)
}

func (h *ListingHandler) UpdateListing(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	listing, err := h.listingUseCase.Update(c.Request().Context(), c.Param("id"), uid, req.toInput(), req.toImages())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.listingUseCase.Delete(c.Request().Context(), c.Param("id"), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Listing deleted successfully",
	})
}
