package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping() error { return s.err }

func setupHealthRouter(db Pinger) *gin.Engine {
	h := NewSystemHandler(db)
	engine := gin.New()
	engine.GET("/health", h.Health)
	return engine
}

func TestSystemHandler_Health_Healthy(t *testing.T) {
	engine := setupHealthRouter(&stubPinger{})

	w := performJSON(engine, "GET", "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.Contains(t, w.Body.String(), `"database":"connected"`)
}

func TestSystemHandler_Health_DatabaseDown(t *testing.T) {
	engine := setupHealthRouter(&stubPinger{err: errors.New("connection refused")})

	w := performJSON(engine, "GET", "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"unhealthy"`)
	assert.Contains(t, w.Body.String(), `"database":"unreachable"`)
}

func TestSystemHandler_Health_MemoryStore(t *testing.T) {
	engine := setupHealthRouter(nil)

	w := performJSON(engine, "GET", "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.NotContains(t, w.Body.String(), "database")
}
