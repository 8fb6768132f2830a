package memory

import (
	"context"
	"sync"

	"ridefare/internal/domain"
	"ridefare/internal/repository"
)

// RideRepository is an in-memory implementation of repository.RideRepository.
// State lives for the lifetime of the process; nothing touches disk.
type RideRepository struct {
	mu    sync.RWMutex
	rides map[int]domain.Ride
	order []int
}

// NewRideRepository creates an empty in-memory ride repository.
func NewRideRepository() *RideRepository {
	return &RideRepository{rides: make(map[int]domain.Ride)}
}

// Create stores a new ride.
func (r *RideRepository) Create(ctx context.Context, ride domain.Ride) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rides[ride.ID()]; ok {
		return repository.ErrDuplicateID
	}
	r.rides[ride.ID()] = ride
	r.order = append(r.order, ride.ID())
	return nil
}

// GetByID retrieves a ride by ID.
func (r *RideRepository) GetByID(ctx context.Context, id int) (domain.Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ride, ok := r.rides[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return ride, nil
}

// GetAll retrieves all rides in creation order.
func (r *RideRepository) GetAll(ctx context.Context) ([]domain.Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Ride, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.rides[id])
	}
	return out, nil
}

// Ensure interfaces are satisfied.
var _ repository.RideRepository = (*RideRepository)(nil)
