package report

import (
	"fmt"
	"strconv"
	"strings"

	"ridefare/internal/domain"
	"ridefare/internal/service"
)

// FormatRideDetails renders one ride's detail block. The banner goes above
// the common fields and the luxury multiplier below, so premium rides come
// out framed the way their variant defines.
func FormatRideDetails(d domain.Details) string {
	var b strings.Builder

	if d.Banner != "" {
		b.WriteString(d.Banner + "\n")
	}

	fmt.Fprintf(&b, "Ride ID: %d\n", d.ID)
	fmt.Fprintf(&b, "Pickup: %s\n", d.Pickup)
	fmt.Fprintf(&b, "Dropoff: %s\n", d.Dropoff)
	fmt.Fprintf(&b, "Distance: %s miles\n", formatNumber(d.Distance))
	fmt.Fprintf(&b, "Fare: %s\n", formatMoney(d.Fare))

	if d.LuxuryMultiplier > 0 {
		fmt.Fprintf(&b, "Luxury Multiplier: %sx\n", formatNumber(d.LuxuryMultiplier))
	}

	return b.String()
}

// FormatRideRequested renders the confirmation line emitted when a rider
// requests a ride.
func FormatRideRequested(riderName string, riderID int) string {
	return fmt.Sprintf("Ride requested by %s (ID: %d)\n", riderName, riderID)
}

// FormatDriverStatement renders a driver statement block.
func FormatDriverStatement(st *service.DriverStatement) string {
	var b strings.Builder

	b.WriteString("\n=== DRIVER INFORMATION ===\n")
	fmt.Fprintf(&b, "Driver ID: %d\n", st.DriverID)
	fmt.Fprintf(&b, "Name: %s\n", st.Name)
	fmt.Fprintf(&b, "Rating: %s/5.0\n", formatNumber(st.Rating))
	fmt.Fprintf(&b, "Total Rides Completed: %d\n", st.RideCount)
	fmt.Fprintf(&b, "Total Earnings: %s\n", formatMoney(st.Earnings))

	return b.String()
}

// FormatRiderStatement renders a rider's ride history: each ride's detail
// block in request order, then the running total.
func FormatRiderStatement(st *service.RiderStatement) string {
	var b strings.Builder

	b.WriteString("\n=== RIDER RIDE HISTORY ===\n")
	fmt.Fprintf(&b, "Rider: %s (ID: %d)\n", st.Name, st.RiderID)
	fmt.Fprintf(&b, "Total Rides: %d\n", len(st.Rides))

	for i, d := range st.Rides {
		fmt.Fprintf(&b, "\n--- Ride %d ---\n", i+1)
		b.WriteString(FormatRideDetails(d))
	}

	fmt.Fprintf(&b, "\nTotal Amount Spent: %s\n", formatMoney(st.TotalSpent))

	return b.String()
}

// FormatFleetSummary renders the mixed-variant walkthrough: every ride's
// type label and detail block, then the grand total of fares.
func FormatFleetSummary(sum *service.FleetSummary) string {
	var b strings.Builder

	b.WriteString("\n=== POLYMORPHISM DEMONSTRATION ===\n")
	b.WriteString("Processing different ride types polymorphically:\n")

	for _, d := range sum.Rides {
		fmt.Fprintf(&b, "\n--- %s Ride ---\n", d.Type)
		b.WriteString(FormatRideDetails(d))
	}

	fmt.Fprintf(&b, "\nTotal Fares for All Rides: %s\n", formatMoney(sum.TotalFares))

	return b.String()
}

// formatMoney renders a currency amount with two decimal places.
func formatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// formatNumber renders a quantity with the fewest digits that preserve it,
// so 15.5 stays "15.5" and 12.0 becomes "12".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
