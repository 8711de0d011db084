package usecase

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"webcars/internal/domain/entity"
	"webcars/internal/domain/repository"
	"webcars/pkg/errors"
	"webcars/pkg/logger"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	identity IdentityClient
}

func NewAuthUseCase(userRepo repository.UserRepository, identity IdentityClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		identity: identity,
	}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

// Register creates the identity account and then writes the profile
// document. The two writes are separate calls and not atomic; a profile
// write failure leaves an account without a profile document.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, errors.BadRequest("An account with this email already exists", nil)
	}

	displayName := strings.TrimSpace(input.FirstName + " " + input.LastName)

	uid, err := uc.identity.CreateUser(ctx, input.Email, input.Password, displayName)
	if err != nil {
		return nil, errors.Internal("Failed to create account", err)
	}

	now := time.Now()
	user := &entity.User{
		UID:         uid,
		Email:       input.Email,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DisplayName: displayName,
		Phone:       input.Phone,
		Role:        "user",
		IsActive:    true,
		CreatedAt:   now,
		LastLoginAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user profile", err)
	}

	token, err := uc.identity.SignInWithEmailPassword(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.identity.SignInWithEmailPassword(ctx, email, password)
	if err != nil {
		return nil, mapSignInError(err)
	}

	uid, err := uc.identity.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	now := time.Now()
	if err := uc.userRepo.UpdateLastLogin(ctx, uid, now); err != nil {
		logger.Warn("Failed to update last login time for %s: %v", uid, err)
	} else {
		user.LastLoginAt = now
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Phone     string
}

// UpdateProfile edits the caller's own profile. The identity account's
// display name is kept in sync with the profile document; the identity
// update happens first so a failure leaves both sides unchanged.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, uid string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	displayName := strings.TrimSpace(input.FirstName + " " + input.LastName)
	if displayName != user.DisplayName {
		if err := uc.identity.UpdateDisplayName(ctx, uid, displayName); err != nil {
			return nil, errors.Internal("Failed to update display name", err)
		}
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.DisplayName = displayName
	user.Phone = input.Phone

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to update user profile", err)
	}

	return user, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, uid string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

// signInCoder is implemented by identity errors that carry a fault code
// from the sign-in endpoint.
type signInCoder interface {
	SignInCode() string
}

// mapSignInError translates identity fault codes into the small fixed
// set of user-readable messages. Unmapped codes fall through to the
// generic message and are never shown raw.
func mapSignInError(err error) error {
	var coder signInCoder
	if !stderrors.As(err, &coder) {
		return errors.Internal("Network error. Please check your connection", err)
	}

	switch coder.SignInCode() {
	case "EMAIL_NOT_FOUND":
		return errors.Unauthorized("No account found with this email address", err)
	case "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		return errors.Unauthorized("Incorrect password", err)
	case "USER_DISABLED":
		return errors.Unauthorized("This account has been disabled", err)
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return errors.TooManyRequests("Too many failed attempts. Please try again later", err)
	default:
		return errors.Unauthorized("An error occurred. Please try again", err)
	}
}
