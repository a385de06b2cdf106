package suppliers

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repository useful for tests.
type MemoryRepo struct {
	mu        sync.Mutex
	suppliers map[string]Supplier
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{suppliers: make(map[string]Supplier)}
}

func (r *MemoryRepo) Insert(ctx context.Context, s Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.suppliers {
		if existing.CompanyID == s.CompanyID && existing.Email == s.Email {
			return ErrConflict
		}
	}
	r.suppliers[s.ID] = s
	return nil
}

func (r *MemoryRepo) FindByID(ctx context.Context, companyID, id string) (Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.suppliers[id]
	if !ok || s.CompanyID != companyID {
		return Supplier{}, ErrNotFound
	}
	return s, nil
}

func (r *MemoryRepo) List(ctx context.Context, companyID string) ([]Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Supplier
	for _, s := range r.suppliers {
		if s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, s Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.suppliers[s.ID]
	if !ok || existing.CompanyID != s.CompanyID {
		return ErrNotFound
	}
	for _, other := range r.suppliers {
		if other.ID != s.ID && other.CompanyID == s.CompanyID && other.Email == s.Email {
			return ErrConflict
		}
	}
	r.suppliers[s.ID] = s
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, companyID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.suppliers[id]
	if !ok || s.CompanyID != companyID {
		return ErrNotFound
	}
	delete(r.suppliers, id)
	return nil
}
