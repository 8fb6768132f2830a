package repository

import (
	"context"

	"ridefare/internal/domain"
)

// RiderRepository defines the storage operations for riders. Like drivers,
// the stored aggregate is shared between the repository and its callers.
type RiderRepository interface {
	// Create stores a new rider.
	Create(ctx context.Context, rider *domain.Rider) error

	// GetByID retrieves a rider by ID.
	GetByID(ctx context.Context, id int) (*domain.Rider, error)

	// GetAll retrieves all riders in registration order.
	GetAll(ctx context.Context) ([]*domain.Rider, error)
}
