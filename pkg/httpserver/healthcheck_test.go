package httpserver_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/inappdetect/pkg/httpserver"
)

func TestHealthCheckHandler(t *testing.T) {
	t.Run("liveness", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httpserver.HealthCheckHandler(nil)(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	})

	t.Run("ready", func(t *testing.T) {
		ok := func(context.Context) error { return nil }
		rec := httptest.NewRecorder()
		httpserver.HealthCheckHandler(nil, ok, ok)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("not ready", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))
		failing := func(context.Context) error { return errors.New("classifier self-check failed") }

		rec := httptest.NewRecorder()
		httpserver.HealthCheckHandler(log, failing)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "NOT_READY", rec.Body.String())
		assert.Contains(t, buf.String(), "classifier self-check failed")
	})
}
