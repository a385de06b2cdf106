package suppliers

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service provides company-scoped supplier operations.
type Service struct {
	repo  Repository
	clock func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, clock: time.Now}
}

type UpsertRequest struct {
	Name  string
	Email string
	Phone string
}

func (req *UpsertRequest) normalize() error {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		return ErrInvalidArgument
	}
	return nil
}

func (s *Service) Create(ctx context.Context, companyID string, req UpsertRequest) (Supplier, error) {
	if companyID == "" {
		return Supplier{}, ErrInvalidArgument
	}
	if err := req.normalize(); err != nil {
		return Supplier{}, err
	}

	now := s.clock().UTC()
	sup := Supplier{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, sup); err != nil {
		return Supplier{}, err
	}
	return sup, nil
}

func (s *Service) Get(ctx context.Context, companyID, id string) (Supplier, error) {
	if companyID == "" || id == "" {
		return Supplier{}, ErrInvalidArgument
	}
	return s.repo.FindByID(ctx, companyID, id)
}

func (s *Service) List(ctx context.Context, companyID string) ([]Supplier, error) {
	if companyID == "" {
		return nil, ErrInvalidArgument
	}
	return s.repo.List(ctx, companyID)
}

func (s *Service) Update(ctx context.Context, companyID, id string, req UpsertRequest) (Supplier, error) {
	if companyID == "" || id == "" {
		return Supplier{}, ErrInvalidArgument
	}
	if err := req.normalize(); err != nil {
		return Supplier{}, err
	}

	sup, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return Supplier{}, err
	}
	sup.Name = req.Name
	sup.Email = req.Email
	sup.Phone = req.Phone
	sup.UpdatedAt = s.clock().UTC()

	if err := s.repo.Update(ctx, sup); err != nil {
		return Supplier{}, err
	}
	return sup, nil
}

func (s *Service) Delete(ctx context.Context, companyID, id string) error {
	if companyID == "" || id == "" {
		return ErrInvalidArgument
	}
	return s.repo.Delete(ctx, companyID, id)
}
