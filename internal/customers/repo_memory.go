package customers

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repository useful for tests.
type MemoryRepo struct {
	mu        sync.Mutex
	customers map[string]Customer
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{customers: make(map[string]Customer)}
}

func (r *MemoryRepo) Insert(ctx context.Context, c Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.customers {
		if existing.CompanyID == c.CompanyID && existing.Email == c.Email {
			return ErrConflict
		}
	}
	r.customers[c.ID] = c
	return nil
}

func (r *MemoryRepo) FindByID(ctx context.Context, companyID, id string) (Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok || c.CompanyID != companyID {
		return Customer{}, ErrNotFound
	}
	return c, nil
}

func (r *MemoryRepo) FindByEmail(ctx context.Context, companyID, email string) (Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.customers {
		if c.CompanyID == companyID && c.Email == email {
			return c, nil
		}
	}
	return Customer{}, ErrNotFound
}

func (r *MemoryRepo) List(ctx context.Context, companyID string) ([]Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Customer
	for _, c := range r.customers {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, c Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.customers[c.ID]
	if !ok || existing.CompanyID != c.CompanyID {
		return ErrNotFound
	}
	for _, other := range r.customers {
		if other.ID != c.ID && other.CompanyID == c.CompanyID && other.Email == c.Email {
			return ErrConflict
		}
	}
	r.customers[c.ID] = c
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, companyID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok || c.CompanyID != companyID {
		return ErrNotFound
	}
	delete(r.customers, id)
	return nil
}
