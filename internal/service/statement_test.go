package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridefare/internal/domain"
	"ridefare/internal/repository"
	"ridefare/internal/repository/memory"
)

// seedStatements loads the four-ride scenario used across the statement
// tests: driver 101 works rides 1 and 2, driver 102 rides 3 and 4, Alice
// requests 1 and 4, Bob requests 2 and 3.
func seedStatements(t *testing.T) *StatementService {
	t.Helper()

	ctx := context.Background()
	rideRepo := memory.NewRideRepository()
	driverRepo := memory.NewDriverRepository()
	riderRepo := memory.NewRiderRepository()

	ride1 := domain.NewStandardRide(1, "Downtown", "Airport", 15.5)
	ride2 := domain.NewPremiumRide(2, "Hotel", "Convention Center", 8.2)
	ride3 := domain.NewStandardRide(3, "Mall", "University", 12.0)
	ride4 := domain.NewPremiumRide(4, "Airport", "Luxury Resort", 25.8)
	for _, ride := range []domain.Ride{ride1, ride2, ride3, ride4} {
		require.NoError(t, rideRepo.Create(ctx, ride))
	}

	john := domain.NewDriver(101, "John Smith", 4.8)
	john.AddRide(ride1)
	john.AddRide(ride2)
	sarah := domain.NewDriver(102, "Sarah Johnson", 4.9)
	sarah.AddRide(ride3)
	sarah.AddRide(ride4)
	require.NoError(t, driverRepo.Create(ctx, john))
	require.NoError(t, driverRepo.Create(ctx, sarah))

	alice := domain.NewRider(201, "Alice Brown")
	alice.RequestRide(ride1)
	alice.RequestRide(ride4)
	bob := domain.NewRider(202, "Bob Wilson")
	bob.RequestRide(ride2)
	bob.RequestRide(ride3)
	require.NoError(t, riderRepo.Create(ctx, alice))
	require.NoError(t, riderRepo.Create(ctx, bob))

	return NewStatementService(rideRepo, driverRepo, riderRepo)
}

func TestGenerateDriverStatement_ReportsRecomputedEarnings(t *testing.T) {
	t.Parallel()

	svc := seedStatements(t)

	st, err := svc.GenerateDriverStatement(context.Background(), 101)
	require.NoError(t, err)

	assert.NotEmpty(t, st.ID)
	assert.False(t, st.GeneratedAt.IsZero())
	assert.Equal(t, 101, st.DriverID)
	assert.Equal(t, "John Smith", st.Name)
	assert.InDelta(t, 4.8, st.Rating, 1e-9)
	assert.Equal(t, 2, st.RideCount)
	assert.InDelta(t, 82.66, st.Earnings, 1e-9)
}

func TestGenerateDriverStatement_UnknownDriver_NotFound(t *testing.T) {
	t.Parallel()

	svc := seedStatements(t)

	_, err := svc.GenerateDriverStatement(context.Background(), 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.GenerateDriverStatement(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidDriverID)
}

func TestGenerateDriverStatement_NewAssignment_ReflectedInNextStatement(t *testing.T) {
	t.Parallel()

	booking, rideRepo, driverRepo, riderRepo := newTestBooking(nil)
	statements := NewStatementService(rideRepo, driverRepo, riderRepo)
	ctx := context.Background()

	_, err := booking.RegisterDriver(ctx, RegisterDriverRequest{ID: 101, Name: "John Smith", Rating: 4.8})
	require.NoError(t, err)
	_, err = booking.CreateStandardRide(ctx, CreateRideRequest{ID: 1, Pickup: "Downtown", Dropoff: "Airport", Distance: 15.5})
	require.NoError(t, err)
	_, err = booking.CreatePremiumRide(ctx, CreateRideRequest{ID: 2, Pickup: "Hotel", Dropoff: "Convention Center", Distance: 8.2})
	require.NoError(t, err)

	require.NoError(t, booking.AssignRide(ctx, 101, 1))

	first, err := statements.GenerateDriverStatement(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, 1, first.RideCount)
	assert.InDelta(t, 31.0, first.Earnings, 1e-9)

	// Statements carry no cache: a ride assigned after one statement is
	// generated shows up in the next.
	require.NoError(t, booking.AssignRide(ctx, 101, 2))

	second, err := statements.GenerateDriverStatement(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, 2, second.RideCount)
	assert.InDelta(t, 82.66, second.Earnings, 1e-9)
}

func TestGenerateRiderStatement_ListsRidesInRequestOrder(t *testing.T) {
	t.Parallel()

	svc := seedStatements(t)

	st, err := svc.GenerateRiderStatement(context.Background(), 201)
	require.NoError(t, err)

	assert.Equal(t, 201, st.RiderID)
	assert.Equal(t, "Alice Brown", st.Name)
	require.Len(t, st.Rides, 2)
	assert.Equal(t, 1, st.Rides[0].ID)
	assert.Equal(t, 4, st.Rides[1].ID)
	assert.Equal(t, domain.RideTypePremium, st.Rides[1].Type)
	assert.InDelta(t, 193.54, st.TotalSpent, 1e-9)
}

func TestGenerateRiderStatement_NoRides_ReportsZero(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rideRepo := memory.NewRideRepository()
	driverRepo := memory.NewDriverRepository()
	riderRepo := memory.NewRiderRepository()
	require.NoError(t, riderRepo.Create(ctx, domain.NewRider(203, "Carol Young")))

	svc := NewStatementService(rideRepo, driverRepo, riderRepo)

	st, err := svc.GenerateRiderStatement(ctx, 203)
	require.NoError(t, err)

	assert.Empty(t, st.Rides)
	assert.Zero(t, st.TotalSpent)
}

func TestGenerateFleetSummary_CoversAllRidesInCreationOrder(t *testing.T) {
	t.Parallel()

	svc := seedStatements(t)

	sum, err := svc.GenerateFleetSummary(context.Background())
	require.NoError(t, err)

	require.Len(t, sum.Rides, 4)
	for i, d := range sum.Rides {
		assert.Equal(t, i+1, d.ID)
	}
	assert.InDelta(t, 269.20, sum.TotalFares, 1e-9)
}

func TestGenerateFleetSummary_NoRides_ReportsZero(t *testing.T) {
	t.Parallel()

	svc := NewStatementService(memory.NewRideRepository(), memory.NewDriverRepository(), memory.NewRiderRepository())

	sum, err := svc.GenerateFleetSummary(context.Background())
	require.NoError(t, err)

	assert.Empty(t, sum.Rides)
	assert.Zero(t, sum.TotalFares)
}
