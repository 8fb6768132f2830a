package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriver_Earnings_SumsFaresOverAssignedRides(t *testing.T) {
	t.Parallel()

	driver := NewDriver(101, "John Smith", 4.8)
	driver.AddRide(NewStandardRide(1, "Downtown", "Airport", 15.5))
	driver.AddRide(NewPremiumRide(2, "Hotel", "Convention Center", 8.2))

	assert.Equal(t, 2, driver.RideCount())
	assert.InDelta(t, 82.66, driver.Earnings(), 1e-9)
}

func TestDriver_Earnings_InvariantUnderAssignmentOrder(t *testing.T) {
	t.Parallel()

	standard := NewStandardRide(1, "Downtown", "Airport", 15.5)
	premium := NewPremiumRide(2, "Hotel", "Convention Center", 8.2)

	forward := NewDriver(101, "John Smith", 4.8)
	forward.AddRide(standard)
	forward.AddRide(premium)

	reversed := NewDriver(102, "Sarah Johnson", 4.9)
	reversed.AddRide(premium)
	reversed.AddRide(standard)

	assert.InDelta(t, forward.Earnings(), reversed.Earnings(), 1e-9)
}

func TestDriver_AddRide_CountsDuplicates(t *testing.T) {
	t.Parallel()

	ride := NewStandardRide(1, "Downtown", "Airport", 15.5)

	driver := NewDriver(101, "John Smith", 4.8)
	driver.AddRide(ride)
	driver.AddRide(ride)

	assert.Equal(t, 2, driver.RideCount())
	assert.InDelta(t, 62.0, driver.Earnings(), 1e-9)
}

func TestDriver_WithNoRides_ReportsZero(t *testing.T) {
	t.Parallel()

	driver := NewDriver(101, "John Smith", 4.8)

	assert.Equal(t, 0, driver.RideCount())
	assert.Zero(t, driver.Earnings())
}

func TestDriver_Rides_ReturnsCopy(t *testing.T) {
	t.Parallel()

	driver := NewDriver(101, "John Smith", 4.8)
	driver.AddRide(NewStandardRide(1, "Downtown", "Airport", 15.5))

	rides := driver.Rides()
	rides[0] = NewStandardRide(99, "Elsewhere", "Nowhere", 1.0)

	assert.Equal(t, 1, driver.Rides()[0].ID())
}

func TestNewDriver_AcceptsRatingAsGiven(t *testing.T) {
	t.Parallel()

	driver := NewDriver(101, "John Smith", 7.5)
	assert.InDelta(t, 7.5, driver.Rating(), 1e-9)
}
