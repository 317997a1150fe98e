package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gatekeeper/config"
	deliverycontext "gatekeeper/internal/delivery/context"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "propagates client id", header: "abc-123", wantSame: true},
		{name: "generates when absent", header: ""},
		{name: "replaces id with spaces", header: "abc 123"},
		{name: "replaces oversized id", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var fromCtx string
			var hasLogger bool
			handler := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).Process(func(c echo.Context) error {
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

				return nil
			})
			require.NoError(t, handler(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, fromCtx)
			assert.Equal(t, got, deliverycontext.GetRequestID(c))
			assert.True(t, hasLogger)
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		handler   echo.HandlerFunc
		wantLog   bool
		wantLevel string
		wantCode  float64
	}{
		{
			name:    "disabled without debug",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		},
		{
			name:      "success",
			debug:     true,
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLog:   true,
			wantLevel: "INFO",
			wantCode:  200,
		},
		{
			name:      "app error",
			debug:     true,
			handler:   func(echo.Context) error { return errors.WithStack(domainerrors.ErrUnauthorized) },
			wantLog:   true,
			wantLevel: "WARN",
			wantCode:  401,
		},
		{
			name:      "unknown error",
			debug:     true,
			handler:   func(echo.Context) error { return errors.New("boom") },
			wantLog:   true,
			wantLevel: "ERROR",
			wantCode:  500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/auth/login?token=secret", nil)
			c := e.NewContext(req, httptest.NewRecorder())

			_ = NewLoggerMiddleware(logger, cfg).Handle(tt.handler)(c)

			if !tt.wantLog {
				assert.Zero(t, buf.Len())

				return
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.wantCode, entry["status"])
			assert.Equal(t, "/auth/login", entry["uri"])
			assert.NotContains(t, buf.String(), "secret")
		})
	}
}
