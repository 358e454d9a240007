package server

import (
	"bytes"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eakyol/campusdesk/internal/config"
	"github.com/eakyol/campusdesk/internal/db"
)

func TestRunCleansUpOnStartupFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Port = "-1"

	var buf bytes.Buffer
	s := &Server{
		config: cfg,
		router: gin.New(),
		mongo:  &db.Mongo{},
		logger: zerolog.New(&buf),
	}

	err := s.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error starting server")

	// The failed listen must still release the database connection.
	assert.Contains(t, buf.String(), "Database connection closed")
	assert.Contains(t, buf.String(), "Server shutdown process complete")
}
