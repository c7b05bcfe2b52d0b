package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumni-connect-workers/internal/common/database"
)

var fixedNow = func() time.Time { return time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC) }

func okPing(context.Context) error { return nil }

func get(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, healthResponse) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body healthResponse
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestRouter_Health(t *testing.T) {
	router := newRouter(nil, fixedNow)

	rec, body := get(t, router, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "2026-03-01T08:00:00Z", body.Time)
}

func TestRouter_Ready(t *testing.T) {
	t.Run("all dependencies up", func(t *testing.T) {
		router := newRouter(map[string]database.Pinger{
			"postgres": pingFunc(okPing),
			"redis":    pingFunc(okPing),
		}, fixedNow)

		rec, body := get(t, router, "/ready")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ready", body.Status)
		assert.Equal(t, map[string]string{"postgres": "ok", "redis": "ok"}, body.Checks)
	})

	t.Run("one dependency down", func(t *testing.T) {
		router := newRouter(map[string]database.Pinger{
			"postgres": pingFunc(okPing),
			"zeebe": pingFunc(func(context.Context) error {
				return errors.New("zeebe health check failed: unavailable")
			}),
		}, fixedNow)

		rec, body := get(t, router, "/ready")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "not_ready", body.Status)
		assert.Equal(t, "ok", body.Checks["postgres"])
		assert.Contains(t, body.Checks["zeebe"], "unavailable")
	})
}

func TestRouter_Metrics(t *testing.T) {
	router := newRouter(nil, fixedNow)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
