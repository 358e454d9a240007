package dto

import "time"

// HealthResponse is the basic liveness body.
type HealthResponse struct {
	Status      string    `json:"status" example:"ok"`
	Timestamp   time.Time `json:"timestamp"`
	Uptime      string    `json:"uptime" example:"1h23m45s"`
	Environment string    `json:"environment" example:"development"`
}

// DetailedHealthResponse adds the persistence layer's connectivity state.
type DetailedHealthResponse struct {
	HealthResponse
	Database string `json:"database" example:"Connected"`
}
