package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"webcars/internal/adapter/api"
	"webcars/internal/domain/entity"
	"webcars/internal/usecase"
	"webcars/pkg/errors"
	"webcars/pkg/response"
)

type stubListingRepo struct {
	listings map[string]*entity.Listing
	order    []string
	nextID   int
}

func newStubListingRepo() *stubListingRepo {
	return &stubListingRepo{listings: map[string]*entity.Listing{}}
}

func (r *stubListingRepo) Create(ctx context.Context, listing *entity.Listing) error {
	r.nextID++
	if listing.ID == "" {
		listing.ID = fmt.Sprintf("listing-%d", r.nextID)
	}
	r.listings[listing.ID] = listing
	r.order = append(r.order, listing.ID)
	return nil
}

func (r *stubListingRepo) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	listing, ok := r.listings[id]
	if !ok {
		return nil, errors.NotFound("Listing", nil)
	}
	return listing, nil
}

func (r *stubListingRepo) List(ctx context.Context) ([]*entity.Listing, error) {
	out := make([]*entity.Listing, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, r.listings[r.order[i]])
	}
	return out, nil
}

func (r *stubListingRepo) ListLimited(ctx context.Context, limit int) ([]*entity.Listing, error) {
	all, _ := r.List(ctx)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *stubListingRepo) ListByOwner(ctx context.Context, uid string) ([]*entity.Listing, error) {
	all, _ := r.List(ctx)
	out := make([]*entity.Listing, 0, len(all))
	for _, listing := range all {
		if listing.UID == uid {
			out = append(out, listing)
		}
	}
	return out, nil
}

func (r *stubListingRepo) Update(ctx context.Context, listing *entity.Listing) error {
	r.listings[listing.ID] = listing
	return nil
}

func (r *stubListingRepo) Delete(ctx context.Context, id string) error {
	delete(r.listings, id)
	return nil
}

type stubUserRepo struct {
	user *entity.User
}

func (r *stubUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }

func (r *stubUserRepo) GetByID(ctx context.Context, uid string) (*entity.User, error) {
	if r.user == nil || r.user.UID != uid {
		return nil, errors.NotFound("User", nil)
	}
	return r.user, nil
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, errors.NotFound("User", nil)
}

func (r *stubUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }

func (r *stubUserRepo) UpdateLastLogin(ctx context.Context, uid string, at time.Time) error {
	return nil
}

type stubImageStorage struct {
	deleted []string
}

func (s *stubImageStorage) UploadImage(ctx context.Context, file io.Reader, contentType, uid, imageKey string) (string, error) {
	return fmt.Sprintf("https://storage.test/%s/%s", uid, imageKey), nil
}

func (s *stubImageStorage) DeleteImage(ctx context.Context, uid, imageKey string) error {
	s.deleted = append(s.deleted, uid+"/"+imageKey)
	return nil
}

func (s *stubImageStorage) Close() error { return nil }

func newTestListingHandler() (*ListingHandler, *stubListingRepo) {
	repo := newStubListingRepo()
	userRepo := &stubUserRepo{user: &entity.User{UID: "owner-1", DisplayName: "Sam Seller"}}
	uc := usecase.NewListingUseCase(repo, userRepo, &stubImageStorage{})
	return NewListingHandler(uc), repo
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = api.NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

const validListingBody = `{
	"name": "Audi A4",
	"model": "B9",
	"year": "2024",
	"km": "1000",
	"price": "45000",
	"city": "Austin",
	"phone": "15551234567",
	"description": "One owner, full history",
	"engine": "2.0L TFSI",
	"horsepower": "252 hp",
	"torque": "273 lb-ft",
	"acceleration": "5.2s 0-60",
	"topSpeed": "155 mph",
	"drivetrain": "AWD",
	"transmission": "Automatic",
	"fuelType": "Gasoline",
	"images": [{"uid": "owner-1", "name": "key-1", "url": "https://storage.test/owner-1/key-1"}]
}`

func TestCreateListingEndpoint(t *testing.T) {
	h, repo := newTestListingHandler()
	c, rec := newJSONContext(http.MethodPost, "/v1/my-listings", validListingBody)
	c.Set("uid", "owner-1")

	assert.NoError(t, h.CreateListing(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.True(t, body.Success)

	data, ok := body.Data.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Audi A4", data["name"])
	assert.Equal(t, float64(45000), data["price"])
	assert.Equal(t, "Sam Seller", data["owner"])

	assert.Len(t, repo.listings, 1)
}

func TestCreateListingEndpointValidatesYear(t *testing.T) {
	h, repo := newTestListingHandler()
	body := strings.Replace(validListingBody, `"year": "2024"`, `"year": "24"`, 1)
	c, rec := newJSONContext(http.MethodPost, "/v1/my-listings", body)
	c.Set("uid", "owner-1")

	assert.NoError(t, h.CreateListing(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Equal(t, "year must be exactly 4 digits", envelope.Error.Message)
	assert.Empty(t, repo.listings)
}

func TestCreateListingEndpointRequiresImage(t *testing.T) {
	h, repo := newTestListingHandler()
	body := strings.Replace(validListingBody,
		`"images": [{"uid": "owner-1", "name": "key-1", "url": "https://storage.test/owner-1/key-1"}]`,
		`"images": []`, 1)
	c, rec := newJSONContext(http.MethodPost, "/v1/my-listings", body)
	c.Set("uid", "owner-1")

	assert.NoError(t, h.CreateListing(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "BAD_REQUEST", envelope.Error.Code)
	assert.Equal(t, "At least one image is required", envelope.Error.Message)
	assert.Empty(t, repo.listings)
}

func TestGetListingEndpointNotFound(t *testing.T) {
	h, _ := newTestListingHandler()
	c, rec := newJSONContext(http.MethodGet, "/v1/listings/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	assert.NoError(t, h.GetListing(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestListListingsEndpointFilters(t *testing.T) {
	h, repo := newTestListingHandler()
	repo.Create(context.Background(), &entity.Listing{Name: "Porsche 911", City: "Los Angeles", UID: "owner-1"})
	repo.Create(context.Background(), &entity.Listing{Name: "BMW M4", City: "Chicago", UID: "owner-1"})

	c, rec := newJSONContext(http.MethodGet, "/v1/listings?q=porsche", "")

	assert.NoError(t, h.ListListings(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data, ok := decodeEnvelope(t, rec).Data.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, float64(1), data["total"])
}
