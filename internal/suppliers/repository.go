package suppliers

import (
	"context"
	"errors"
)

var (
	ErrNotFound        = errors.New("supplier not found")
	ErrConflict        = errors.New("supplier already exists")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Repository is the persistence contract for suppliers. All methods are
// company-scoped.
type Repository interface {
	Insert(ctx context.Context, s Supplier) error
	FindByID(ctx context.Context, companyID, id string) (Supplier, error)
	List(ctx context.Context, companyID string) ([]Supplier, error)
	Update(ctx context.Context, s Supplier) error
	Delete(ctx context.Context, companyID, id string) error
}
