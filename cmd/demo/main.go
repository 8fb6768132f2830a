package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"ridefare/internal/app"
	"ridefare/internal/config"
	"ridefare/internal/logging"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	// Initialize logging. Reports go to stdout, diagnostics to stderr.
	log := logging.New(cfg.Log)

	// Wire dependencies and run the demonstration scenario.
	a := app.New(os.Stdout, log)
	if err := a.RunDemo(context.Background()); err != nil {
		a.Log.WithError(err).Fatal("demo failed")
	}
}
