package service

import "errors"

var (
	// ErrInvalidDriverID is returned when a driver ID is not positive.
	ErrInvalidDriverID = errors.New("invalid driver id")

	// ErrInvalidRiderID is returned when a rider ID is not positive.
	ErrInvalidRiderID = errors.New("invalid rider id")

	// ErrInvalidRideID is returned when a ride ID is not positive.
	ErrInvalidRideID = errors.New("invalid ride id")

	// ErrInvalidDriverName is returned when a driver name is empty.
	ErrInvalidDriverName = errors.New("invalid driver name")

	// ErrInvalidRiderName is returned when a rider name is empty.
	ErrInvalidRiderName = errors.New("invalid rider name")

	// ErrInvalidRating is returned when a rating is outside [0, MaxRating].
	ErrInvalidRating = errors.New("invalid rating")

	// ErrInvalidDistance is returned when a ride distance is not positive.
	ErrInvalidDistance = errors.New("invalid distance")

	// ErrInvalidPickupLocation is returned when a pickup location is empty.
	ErrInvalidPickupLocation = errors.New("invalid pickup location")

	// ErrInvalidDropoffLocation is returned when a dropoff location is empty.
	ErrInvalidDropoffLocation = errors.New("invalid dropoff location")
)
