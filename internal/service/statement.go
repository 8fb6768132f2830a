package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ridefare/internal/domain"
	"ridefare/internal/repository"
)

// StatementService builds point-in-time summaries of fleet activity.
// Statements carry plain values; rendering them is internal/report's job.
type StatementService struct {
	rideRepo   repository.RideRepository
	driverRepo repository.DriverRepository
	riderRepo  repository.RiderRepository
}

// NewStatementService creates a new StatementService.
func NewStatementService(
	rideRepo repository.RideRepository,
	driverRepo repository.DriverRepository,
	riderRepo repository.RiderRepository,
) *StatementService {
	return &StatementService{
		rideRepo:   rideRepo,
		driverRepo: driverRepo,
		riderRepo:  riderRepo,
	}
}

// DriverStatement summarizes one driver's standing at generation time.
type DriverStatement struct {
	ID          string
	DriverID    int
	Name        string
	Rating      float64
	RideCount   int
	Earnings    float64
	GeneratedAt time.Time
}

// GenerateDriverStatement builds a statement for one driver. Earnings are
// recomputed from the driver's rides at call time.
func (s *StatementService) GenerateDriverStatement(ctx context.Context, driverID int) (*DriverStatement, error) {
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}

	driver, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return nil, err
	}

	return &DriverStatement{
		ID:          uuid.New().String(),
		DriverID:    driver.ID(),
		Name:        driver.Name(),
		Rating:      driver.Rating(),
		RideCount:   driver.RideCount(),
		Earnings:    driver.Earnings(),
		GeneratedAt: time.Now(),
	}, nil
}

// RiderStatement summarizes one rider's ride history at generation time.
// Rides appear in request order.
type RiderStatement struct {
	ID          string
	RiderID     int
	Name        string
	Rides       []domain.Details
	TotalSpent  float64
	GeneratedAt time.Time
}

// GenerateRiderStatement builds a statement for one rider.
func (s *StatementService) GenerateRiderStatement(ctx context.Context, riderID int) (*RiderStatement, error) {
	if riderID <= 0 {
		return nil, ErrInvalidRiderID
	}

	rider, err := s.riderRepo.GetByID(ctx, riderID)
	if err != nil {
		return nil, err
	}

	rides := rider.Rides()
	details := make([]domain.Details, 0, len(rides))
	for _, ride := range rides {
		details = append(details, ride.Details())
	}

	return &RiderStatement{
		ID:          uuid.New().String(),
		RiderID:     rider.ID(),
		Name:        rider.Name(),
		Rides:       details,
		TotalSpent:  rider.Spent(),
		GeneratedAt: time.Now(),
	}, nil
}

// FleetSummary covers every ride created so far, in creation order.
type FleetSummary struct {
	ID          string
	Rides       []domain.Details
	TotalFares  float64
	GeneratedAt time.Time
}

// GenerateFleetSummary builds a summary over all stored rides.
func (s *StatementService) GenerateFleetSummary(ctx context.Context) (*FleetSummary, error) {
	rides, err := s.rideRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var total float64
	details := make([]domain.Details, 0, len(rides))
	for _, ride := range rides {
		details = append(details, ride.Details())
		total += ride.Fare()
	}

	return &FleetSummary{
		ID:          uuid.New().String(),
		Rides:       details,
		TotalFares:  total,
		GeneratedAt: time.Now(),
	}, nil
}
