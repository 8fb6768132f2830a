package report

import (
	"context"
	"io"

	"ridefare/internal/domain"
	"ridefare/internal/service"
)

// Printer writes formatted reports to one destination, normally stdout.
// It doubles as the booking notifier so request confirmations land in the
// same stream as the reports around them.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// PrintLine writes a single line of text.
func (p *Printer) PrintLine(s string) error {
	_, err := io.WriteString(p.w, s+"\n")
	return err
}

// PrintRideDetails writes one ride's detail block.
func (p *Printer) PrintRideDetails(d domain.Details) error {
	_, err := io.WriteString(p.w, FormatRideDetails(d))
	return err
}

// PrintDriverStatement writes a driver statement block.
func (p *Printer) PrintDriverStatement(st *service.DriverStatement) error {
	_, err := io.WriteString(p.w, FormatDriverStatement(st))
	return err
}

// PrintRiderStatement writes a rider history block.
func (p *Printer) PrintRiderStatement(st *service.RiderStatement) error {
	_, err := io.WriteString(p.w, FormatRiderStatement(st))
	return err
}

// PrintFleetSummary writes the fleet walkthrough block.
func (p *Printer) PrintFleetSummary(sum *service.FleetSummary) error {
	_, err := io.WriteString(p.w, FormatFleetSummary(sum))
	return err
}

// NotifyRideRequested implements service.Notifier by printing the
// confirmation line.
func (p *Printer) NotifyRideRequested(ctx context.Context, rider *domain.Rider, ride domain.Ride) error {
	_, err := io.WriteString(p.w, FormatRideRequested(rider.Name(), rider.ID()))
	return err
}

// Ensure interfaces are satisfied.
var _ service.Notifier = (*Printer)(nil)
