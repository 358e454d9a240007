package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eakyol/campusdesk/internal/db"
)

// stubStater reports a fixed connection state.
type stubStater struct {
	state string
}

func (s *stubStater) State() string { return s.state }

func healthRouter(state, environment string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	c := NewHealthController(&stubStater{state: state}, environment)
	router.GET("/health", c.GetHealth)
	router.GET("/health/detailed", c.GetDetailedHealth)
	return router
}

func TestHealthController(t *testing.T) {
	t.Run("basic-check-always-200", func(t *testing.T) {
		router := healthRouter(db.StateDisconnected, "development")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "development", body["environment"])
		assert.NotEmpty(t, body["uptime"])
		assert.NotEmpty(t, body["timestamp"])
		// basic check never exposes database state
		assert.NotContains(t, body, "database")
	})
	t.Run("detailed-check-reports-connected", func(t *testing.T) {
		router := healthRouter(db.StateConnected, "production")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/detailed", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Connected", body["database"])
		assert.Equal(t, "production", body["environment"])
	})
	t.Run("detailed-check-reports-disconnected", func(t *testing.T) {
		router := healthRouter(db.StateDisconnected, "development")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/detailed", nil))

		// the endpoint itself still succeeds
		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Disconnected", body["database"])
	})
}
