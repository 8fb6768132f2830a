package repository

import (
	"context"

	"ridefare/internal/domain"
)

// RideRepository defines the storage operations for rides. Rides are
// immutable once created, so there is no update operation.
type RideRepository interface {
	// Create stores a new ride.
	Create(ctx context.Context, ride domain.Ride) error

	// GetByID retrieves a ride by ID.
	GetByID(ctx context.Context, id int) (domain.Ride, error)

	// GetAll retrieves all rides in creation order.
	GetAll(ctx context.Context) ([]domain.Ride, error)
}
