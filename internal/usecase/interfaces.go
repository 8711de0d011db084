package usecase

import "context"

type IdentityClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	SignInWithEmailPassword(ctx context.Context, email, password string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	UpdateDisplayName(ctx context.Context, uid, displayName string) error
}
