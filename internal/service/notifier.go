package service

import (
	"context"

	"ridefare/internal/domain"
)

// Notifier delivers booking events to the rider-facing output. The console
// printer in internal/report is the usual implementation; tests substitute
// their own.
type Notifier interface {
	// NotifyRideRequested is called after a rider's request is recorded.
	NotifyRideRequested(ctx context.Context, rider *domain.Rider, ride domain.Ride) error
}
