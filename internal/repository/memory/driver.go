package memory

import (
	"context"
	"sync"

	"ridefare/internal/domain"
	"ridefare/internal/repository"
)

// DriverRepository is an in-memory implementation of
// repository.DriverRepository. Lookups return the stored aggregate itself,
// not a copy: a driver fetched twice is the same *domain.Driver, so rides
// assigned through one reference are visible through the other.
type DriverRepository struct {
	mu      sync.RWMutex
	drivers map[int]*domain.Driver
	order   []int
}

// NewDriverRepository creates an empty in-memory driver repository.
func NewDriverRepository() *DriverRepository {
	return &DriverRepository{drivers: make(map[int]*domain.Driver)}
}

// Create stores a new driver.
func (r *DriverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drivers[driver.ID()]; ok {
		return repository.ErrDuplicateID
	}
	r.drivers[driver.ID()] = driver
	r.order = append(r.order, driver.ID())
	return nil
}

// GetByID retrieves a driver by ID.
func (r *DriverRepository) GetByID(ctx context.Context, id int) (*domain.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	driver, ok := r.drivers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return driver, nil
}

// GetAll retrieves all drivers in registration order.
func (r *DriverRepository) GetAll(ctx context.Context) ([]*domain.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Driver, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.drivers[id])
	}
	return out, nil
}

// Ensure interfaces are satisfied.
var _ repository.DriverRepository = (*DriverRepository)(nil)
