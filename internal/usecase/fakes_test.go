package usecase

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"webcars/internal/domain/entity"
	"webcars/pkg/errors"
)

type fakeListingRepo struct {
	mu          sync.Mutex
	listings    map[string]*entity.Listing
	order       []string
	deleteCalls int
	nextID      int
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: map[string]*entity.Listing{}}
}

func (r *fakeListingRepo) Create(ctx context.Context, listing *entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	if listing.ID == "" {
		listing.ID = fmt.Sprintf("listing-%d", r.nextID)
	}
	if listing.Created.IsZero() {
		listing.Created = time.Now()
	}
	copied := *listing
	r.listings[listing.ID] = &copied
	r.order = append(r.order, listing.ID)
	return nil
}

func (r *fakeListingRepo) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	listing, ok := r.listings[id]
	if !ok {
		return nil, errors.NotFound("Listing", nil)
	}
	copied := *listing
	return &copied, nil
}

func (r *fakeListingRepo) List(ctx context.Context) ([]*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Listing, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		if listing, ok := r.listings[r.order[i]]; ok {
			copied := *listing
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) ListLimited(ctx context.Context, limit int) ([]*entity.Listing, error) {
	all, _ := r.List(ctx)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeListingRepo) ListByOwner(ctx context.Context, uid string) ([]*entity.Listing, error) {
	all, _ := r.List(ctx)
	out := make([]*entity.Listing, 0, len(all))
	for _, listing := range all {
		if listing.UID == uid {
			out = append(out, listing)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) Update(ctx context.Context, listing *entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *listing
	r.listings[listing.ID] = &copied
	return nil
}

func (r *fakeListingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteCalls++
	delete(r.listings, id)
	return nil
}

// fakeImageStorage records calls. Upload URLs embed the file content so
// tests can tell results apart; uploadDelay stalls matching contents to
// force a completion order.
type fakeImageStorage struct {
	mu          sync.Mutex
	uploadCalls int
	deleted     []string
	uploadDelay map[string]time.Duration
	uploadErr   map[string]error
	deleteErr   error
}

func newFakeImageStorage() *fakeImageStorage {
	return &fakeImageStorage{}
}

func (s *fakeImageStorage) UploadImage(ctx context.Context, file io.Reader, contentType, uid, imageKey string) (string, error) {
	content, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	if delay, ok := s.uploadDelay[string(content)]; ok {
		time.Sleep(delay)
	}

	s.mu.Lock()
	s.uploadCalls++
	s.mu.Unlock()

	if err, ok := s.uploadErr[string(content)]; ok {
		return "", err
	}

	return fmt.Sprintf("https://storage.test/%s/%s", uid, content), nil
}

func (s *fakeImageStorage) DeleteImage(ctx context.Context, uid, imageKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, uid+"/"+imageKey)
	return s.deleteErr
}

func (s *fakeImageStorage) Close() error {
	return nil
}

type fakeUserRepo struct {
	users      map[string]*entity.User
	lastLogins map[string]time.Time
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{
		users:      map[string]*entity.User{},
		lastLogins: map[string]time.Time{},
	}
	for _, u := range users {
		repo.users[u.UID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.UID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, uid string) (*entity.User, error) {
	user, ok := r.users[uid]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.UID] = user
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(ctx context.Context, uid string, at time.Time) error {
	r.lastLogins[uid] = at
	return nil
}

type fakeIdentity struct {
	uid             string
	token           string
	signInErr       error
	created         []string
	displayName     string
	updateNameCalls int
	updateNameErr   error
}

func (f *fakeIdentity) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	f.created = append(f.created, email)
	f.displayName = displayName
	return f.uid, nil
}

func (f *fakeIdentity) SignInWithEmailPassword(ctx context.Context, email, password string) (string, error) {
	if f.signInErr != nil {
		return "", f.signInErr
	}
	return f.token, nil
}

func (f *fakeIdentity) VerifyToken(ctx context.Context, token string) (string, error) {
	return f.uid, nil
}

func (f *fakeIdentity) UpdateDisplayName(ctx context.Context, uid, displayName string) error {
	f.updateNameCalls++
	if f.updateNameErr != nil {
		return f.updateNameErr
	}
	f.displayName = displayName
	return nil
}
