package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eakyol/campusdesk/internal/app/models/dto"
)

// ConnectionStater reports the persistence layer's connectivity state.
type ConnectionStater interface {
	State() string
}

// HealthController reports process liveness and database connectivity
type HealthController struct {
	db          ConnectionStater
	environment string
	startedAt   time.Time
}

// NewHealthController creates a new HealthController
func NewHealthController(db ConnectionStater, environment string) *HealthController {
	return &HealthController{
		db:          db,
		environment: environment,
		startedAt:   time.Now(),
	}
}

// GetHealth reports basic liveness
// @Summary Basic health check
// @Description Always returns 200 while the process is running
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Liveness information"
// @Router /health [get]
func (c *HealthController) GetHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:      "ok",
		Timestamp:   time.Now(),
		Uptime:      time.Since(c.startedAt).Round(time.Second).String(),
		Environment: c.environment,
	})
}

// GetDetailedHealth reports liveness plus database connectivity
// @Summary Detailed health check
// @Description Adds the database connection state. The state is a cheap flag read, not an active probe.
// @Tags health
// @Produce json
// @Success 200 {object} dto.DetailedHealthResponse "Liveness and database state"
// @Router /health/detailed [get]
func (c *HealthController) GetDetailedHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.DetailedHealthResponse{
		HealthResponse: dto.HealthResponse{
			Status:      "ok",
			Timestamp:   time.Now(),
			Uptime:      time.Since(c.startedAt).Round(time.Second).String(),
			Environment: c.environment,
		},
		Database: c.db.State(),
	})
}
