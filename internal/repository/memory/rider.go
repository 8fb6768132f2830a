package memory

import (
	"context"
	"sync"

	"ridefare/internal/domain"
	"ridefare/internal/repository"
)

// RiderRepository is an in-memory implementation of
// repository.RiderRepository. Lookups return the stored aggregate itself,
// matching the driver repository.
type RiderRepository struct {
	mu     sync.RWMutex
	riders map[int]*domain.Rider
	order  []int
}

// NewRiderRepository creates an empty in-memory rider repository.
func NewRiderRepository() *RiderRepository {
	return &RiderRepository{riders: make(map[int]*domain.Rider)}
}

// Create stores a new rider.
func (r *RiderRepository) Create(ctx context.Context, rider *domain.Rider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.riders[rider.ID()]; ok {
		return repository.ErrDuplicateID
	}
	r.riders[rider.ID()] = rider
	r.order = append(r.order, rider.ID())
	return nil
}

// GetByID retrieves a rider by ID.
func (r *RiderRepository) GetByID(ctx context.Context, id int) (*domain.Rider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rider, ok := r.riders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return rider, nil
}

// GetAll retrieves all riders in registration order.
func (r *RiderRepository) GetAll(ctx context.Context) ([]*domain.Rider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Rider, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.riders[id])
	}
	return out, nil
}

// Ensure interfaces are satisfied.
var _ repository.RiderRepository = (*RiderRepository)(nil)
