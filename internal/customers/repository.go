package customers

import (
	"context"
	"errors"
)

var (
	ErrNotFound        = errors.New("customer not found")
	ErrConflict        = errors.New("customer already exists")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Repository is the persistence contract for customers. All methods are
// company-scoped.
type Repository interface {
	Insert(ctx context.Context, c Customer) error
	FindByID(ctx context.Context, companyID, id string) (Customer, error)
	FindByEmail(ctx context.Context, companyID, email string) (Customer, error)
	List(ctx context.Context, companyID string) ([]Customer, error)
	Update(ctx context.Context, c Customer) error
	Delete(ctx context.Context, companyID, id string) error
}
