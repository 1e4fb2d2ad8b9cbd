package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_Check(t *testing.T) {
	h := NewHealthHandler(testConfig())
	h.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	e := newTestEcho()
	e.GET("/health", h.Check)

	rec := doRequest(e, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "TruckTrace API is running", env.Message)
	assert.JSONEq(t, `{"timestamp":"2026-01-02T03:04:05Z","environment":"test"}`, string(env.Data))
}
