package repository

import (
	"context"

	"ridefare/internal/domain"
)

// DriverRepository defines the storage operations for drivers. The stored
// aggregate is shared: callers mutate it through its own methods and the
// repository hands back the same instance on every lookup.
type DriverRepository interface {
	// Create stores a new driver.
	Create(ctx context.Context, driver *domain.Driver) error

	// GetByID retrieves a driver by ID.
	GetByID(ctx context.Context, id int) (*domain.Driver, error)

	// GetAll retrieves all drivers in registration order.
	GetAll(ctx context.Context) ([]*domain.Driver, error)
}
