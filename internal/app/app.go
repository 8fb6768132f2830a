package app

import (
	"io"

	"github.com/sirupsen/logrus"

	"ridefare/internal/report"
	"ridefare/internal/repository/memory"
	"ridefare/internal/service"
)

// App bundles the wired services behind the demo entrypoint.
type App struct {
	Booking    *service.BookingService
	Statements *service.StatementService
	Printer    *report.Printer
	Log        *logrus.Logger
}

// New wires repositories, services, and reporting. Reports are written to
// out; diagnostics go to the logger.
func New(out io.Writer, log *logrus.Logger) *App {
	// Initialize repositories.
	rideRepo := memory.NewRideRepository()
	driverRepo := memory.NewDriverRepository()
	riderRepo := memory.NewRiderRepository()

	// Initialize reporting. The printer doubles as the booking notifier.
	printer := report.NewPrinter(out)

	// Initialize services.
	booking := service.NewBookingService(rideRepo, driverRepo, riderRepo, printer, log)
	statements := service.NewStatementService(rideRepo, driverRepo, riderRepo)

	return &App{
		Booking:    booking,
		Statements: statements,
		Printer:    printer,
		Log:        log,
	}
}
