package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"roombook/internal/api"
	"roombook/internal/booking"
	"roombook/internal/cascade"
	"roombook/internal/config"
	"roombook/internal/facility"
	"roombook/internal/logger"
)

var (
	cfg        *config.Config
	session    *api.Session
	client     *api.Client
	facilities *facility.Service
	bookings   *booking.Service
	deleter    *cascade.Coordinator
)

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()
	cfg = config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "roombook")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	session = api.NewSession(cfg.Backend.AccessToken)
	session.OnLogout(func() {
		fmt.Fprintln(os.Stderr, "Session expired. Run `roombook login` again.")
	})

	client = api.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, session, log)
	facilities = facility.NewService(client, cfg.Backend.ListPage, log)
	bookings = booking.NewService(client)
	deleter = cascade.NewCoordinator(facilities, facilities, log, nil)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
