package customers

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service provides company-scoped customer operations. The company id always
// comes from the authenticated caller, never from the request body.
type Service struct {
	repo Repository
	// clock is injectable for deterministic tests.
	clock func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, clock: time.Now}
}

type CreateRequest struct {
	Name  string
	Email string
	Phone string
}

type UpdateRequest struct {
	Name  string
	Email string
	Phone string
}

func (s *Service) Create(ctx context.Context, companyID string, req CreateRequest) (Customer, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if companyID == "" || req.Name == "" || req.Email == "" || req.Phone == "" {
		return Customer{}, ErrInvalidArgument
	}

	now := s.clock().UTC()
	c := Customer{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, c); err != nil {
		return Customer{}, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, companyID, id string) (Customer, error) {
	if companyID == "" || id == "" {
		return Customer{}, ErrInvalidArgument
	}
	return s.repo.FindByID(ctx, companyID, id)
}

func (s *Service) List(ctx context.Context, companyID string) ([]Customer, error) {
	if companyID == "" {
		return nil, ErrInvalidArgument
	}
	return s.repo.List(ctx, companyID)
}

func (s *Service) Update(ctx context.Context, companyID, id string, req UpdateRequest) (Customer, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if companyID == "" || id == "" || req.Name == "" || req.Email == "" || req.Phone == "" {
		return Customer{}, ErrInvalidArgument
	}

	c, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return Customer{}, err
	}
	c.Name = req.Name
	c.Email = req.Email
	c.Phone = req.Phone
	c.UpdatedAt = s.clock().UTC()

	if err := s.repo.Update(ctx, c); err != nil {
		return Customer{}, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, companyID, id string) error {
	if companyID == "" || id == "" {
		return ErrInvalidArgument
	}
	return s.repo.Delete(ctx, companyID, id)
}
