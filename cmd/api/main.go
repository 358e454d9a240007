package main

import (
	"os"

	"github.com/eakyol/campusdesk/internal/pkg/logger"
	"github.com/eakyol/campusdesk/internal/server"
)

// @title CampusDesk API
// @version 1.0
// @description REST backend for student and course management

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
