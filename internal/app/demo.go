package app

import (
	"context"
	"fmt"

	"ridefare/internal/service"
)

// The demonstration scenario: four rides split between two drivers, each
// requested by one of two riders. IDs are fixed so the reports come out
// the same on every run.
var (
	demoDrivers = []service.RegisterDriverRequest{
		{ID: 101, Name: "John Smith", Rating: 4.8},
		{ID: 102, Name: "Sarah Johnson", Rating: 4.9},
	}

	demoRiders = []service.RegisterRiderRequest{
		{ID: 201, Name: "Alice Brown"},
		{ID: 202, Name: "Bob Wilson"},
	}

	demoRides = []struct {
		premium bool
		req     service.CreateRideRequest
	}{
		{false, service.CreateRideRequest{ID: 1, Pickup: "Downtown", Dropoff: "Airport", Distance: 15.5}},
		{true, service.CreateRideRequest{ID: 2, Pickup: "Hotel", Dropoff: "Convention Center", Distance: 8.2}},
		{false, service.CreateRideRequest{ID: 3, Pickup: "Mall", Dropoff: "University", Distance: 12.0}},
		{true, service.CreateRideRequest{ID: 4, Pickup: "Airport", Dropoff: "Luxury Resort", Distance: 25.8}},
	}

	demoAssignments = []struct {
		driverID int
		rideID   int
	}{
		{101, 1},
		{101, 2},
		{102, 3},
		{102, 4},
	}

	demoRequests = []struct {
		riderID int
		rideID  int
	}{
		{201, 1},
		{201, 4},
		{202, 2},
		{202, 3},
	}
)

// RunDemo drives the fixed scenario end to end: seed the fleet, record the
// ride requests, then print every report.
func (a *App) RunDemo(ctx context.Context) error {
	if err := a.Printer.PrintLine("=== RIDE SHARING SYSTEM ==="); err != nil {
		return err
	}
	if err := a.Printer.PrintLine("Demonstrating OOP Principles: Encapsulation, Inheritance, and Polymorphism"); err != nil {
		return err
	}

	if err := a.seed(ctx); err != nil {
		return err
	}

	return a.reportAll(ctx)
}

// seed registers the fleet, creates the rides, and records assignments and
// requests. Recording a request prints its confirmation line.
func (a *App) seed(ctx context.Context) error {
	for _, d := range demoDrivers {
		if _, err := a.Booking.RegisterDriver(ctx, d); err != nil {
			return fmt.Errorf("register driver %d: %w", d.ID, err)
		}
	}

	for _, r := range demoRiders {
		if _, err := a.Booking.RegisterRider(ctx, r); err != nil {
			return fmt.Errorf("register rider %d: %w", r.ID, err)
		}
	}

	for _, r := range demoRides {
		var err error
		if r.premium {
			_, err = a.Booking.CreatePremiumRide(ctx, r.req)
		} else {
			_, err = a.Booking.CreateStandardRide(ctx, r.req)
		}
		if err != nil {
			return fmt.Errorf("create ride %d: %w", r.req.ID, err)
		}
	}

	for _, asn := range demoAssignments {
		if err := a.Booking.AssignRide(ctx, asn.driverID, asn.rideID); err != nil {
			return fmt.Errorf("assign ride %d to driver %d: %w", asn.rideID, asn.driverID, err)
		}
	}

	for _, req := range demoRequests {
		if err := a.Booking.RequestRide(ctx, req.riderID, req.rideID); err != nil {
			return fmt.Errorf("request ride %d for rider %d: %w", req.rideID, req.riderID, err)
		}
	}

	return nil
}

// reportAll prints driver statements, rider histories, and the fleet
// summary in that order.
func (a *App) reportAll(ctx context.Context) error {
	for _, d := range demoDrivers {
		st, err := a.Statements.GenerateDriverStatement(ctx, d.ID)
		if err != nil {
			return fmt.Errorf("driver statement %d: %w", d.ID, err)
		}
		if err := a.Printer.PrintDriverStatement(st); err != nil {
			return err
		}
	}

	for _, r := range demoRiders {
		st, err := a.Statements.GenerateRiderStatement(ctx, r.ID)
		if err != nil {
			return fmt.Errorf("rider statement %d: %w", r.ID, err)
		}
		if err := a.Printer.PrintRiderStatement(st); err != nil {
			return err
		}
	}

	sum, err := a.Statements.GenerateFleetSummary(ctx)
	if err != nil {
		return fmt.Errorf("fleet summary: %w", err)
	}

	return a.Printer.PrintFleetSummary(sum)
}
