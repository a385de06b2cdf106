package users

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("user not found")
	ErrConflict        = errors.New("user already exists")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Repository is the persistence contract for accounts.
//
// Tenancy invariant: List and Delete are company-scoped; FindByEmail is
// global because login happens before any tenant context exists. Email is
// therefore globally unique — Insert must reject an address already held by
// any company, or the shadowed account could never sign in.
type Repository interface {
	Insert(ctx context.Context, u User) error
	FindByID(ctx context.Context, id string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, companyID string) ([]User, error)
	Delete(ctx context.Context, companyID, id string) error

	// SetRefreshToken overwrites the stored refresh token; empty revokes it.
	SetRefreshToken(ctx context.Context, id, token string) error
	SetLastLogin(ctx context.Context, id string, at time.Time) error
}
