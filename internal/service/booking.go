package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"ridefare/internal/domain"
	"ridefare/internal/repository"
)

// BookingService handles ride creation, fleet registration, assignment,
// and rider requests.
type BookingService struct {
	rideRepo   repository.RideRepository
	driverRepo repository.DriverRepository
	riderRepo  repository.RiderRepository
	notifier   Notifier
	log        *logrus.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	rideRepo repository.RideRepository,
	driverRepo repository.DriverRepository,
	riderRepo repository.RiderRepository,
	notifier Notifier,
	log *logrus.Logger,
) *BookingService {
	return &BookingService{
		rideRepo:   rideRepo,
		driverRepo: driverRepo,
		riderRepo:  riderRepo,
		notifier:   notifier,
		log:        log,
	}
}

// CreateRideRequest contains the parameters for creating a ride.
type CreateRideRequest struct {
	ID       int
	Pickup   string
	Dropoff  string
	Distance float64
}

// CreateStandardRide creates and stores a standard ride.
func (s *BookingService) CreateStandardRide(ctx context.Context, req CreateRideRequest) (domain.Ride, error) {
	if err := s.validateCreateRide(req); err != nil {
		return nil, err
	}
	return s.storeRide(ctx, domain.NewStandardRide(req.ID, req.Pickup, req.Dropoff, req.Distance))
}

// CreatePremiumRide creates and stores a premium ride.
func (s *BookingService) CreatePremiumRide(ctx context.Context, req CreateRideRequest) (domain.Ride, error) {
	if err := s.validateCreateRide(req); err != nil {
		return nil, err
	}
	return s.storeRide(ctx, domain.NewPremiumRide(req.ID, req.Pickup, req.Dropoff, req.Distance))
}

func (s *BookingService) storeRide(ctx context.Context, ride domain.Ride) (domain.Ride, error) {
	if err := s.rideRepo.Create(ctx, ride); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"ride_id": ride.ID(),
		"type":    ride.Type(),
		"fare":    ride.Fare(),
	}).Info("ride created")

	return ride, nil
}

// validateCreateRide validates the create ride request.
func (s *BookingService) validateCreateRide(req CreateRideRequest) error {
	if req.ID <= 0 {
		return ErrInvalidRideID
	}

	if req.Pickup == "" {
		return ErrInvalidPickupLocation
	}

	if req.Dropoff == "" {
		return ErrInvalidDropoffLocation
	}

	if req.Distance <= 0 {
		return ErrInvalidDistance
	}

	return nil
}

// RegisterDriverRequest contains the parameters for registering a driver.
type RegisterDriverRequest struct {
	ID     int
	Name   string
	Rating float64
}

// RegisterDriver registers a new driver with the fleet.
func (s *BookingService) RegisterDriver(ctx context.Context, req RegisterDriverRequest) (*domain.Driver, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidDriverID
	}

	if req.Name == "" {
		return nil, ErrInvalidDriverName
	}

	if req.Rating < 0 || req.Rating > domain.MaxRating {
		return nil, ErrInvalidRating
	}

	driver := domain.NewDriver(req.ID, req.Name, req.Rating)
	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"driver_id": driver.ID(),
		"name":      driver.Name(),
	}).Info("driver registered")

	return driver, nil
}

// RegisterRiderRequest contains the parameters for registering a rider.
type RegisterRiderRequest struct {
	ID   int
	Name string
}

// RegisterRider registers a new rider.
func (s *BookingService) RegisterRider(ctx context.Context, req RegisterRiderRequest) (*domain.Rider, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidRiderID
	}

	if req.Name == "" {
		return nil, ErrInvalidRiderName
	}

	rider := domain.NewRider(req.ID, req.Name)
	if err := s.riderRepo.Create(ctx, rider); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"rider_id": rider.ID(),
		"name":     rider.Name(),
	}).Info("rider registered")

	return rider, nil
}

// AssignRide records a completed ride on a driver. Nothing stops the same
// ride being assigned twice or to two drivers; each assignment counts on
// its own.
func (s *BookingService) AssignRide(ctx context.Context, driverID, rideID int) error {
	if driverID <= 0 {
		return ErrInvalidDriverID
	}

	if rideID <= 0 {
		return ErrInvalidRideID
	}

	driver, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return err
	}

	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return err
	}

	driver.AddRide(ride)

	s.log.WithFields(logrus.Fields{
		"driver_id": driver.ID(),
		"ride_id":   ride.ID(),
		"fare":      ride.Fare(),
	}).Info("ride assigned")

	return nil
}

// RequestRide records a ride on a rider's history and emits the
// rider-facing confirmation.
func (s *BookingService) RequestRide(ctx context.Context, riderID, rideID int) error {
	if riderID <= 0 {
		return ErrInvalidRiderID
	}

	if rideID <= 0 {
		return ErrInvalidRideID
	}

	rider, err := s.riderRepo.GetByID(ctx, riderID)
	if err != nil {
		return err
	}

	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return err
	}

	rider.RequestRide(ride)

	if s.notifier != nil {
		_ = s.notifier.NotifyRideRequested(ctx, rider, ride)
	}

	s.log.WithFields(logrus.Fields{
		"rider_id": rider.ID(),
		"ride_id":  ride.ID(),
	}).Info("ride requested")

	return nil
}
