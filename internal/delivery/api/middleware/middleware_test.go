package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"gatekeeper/config"
	"gatekeeper/internal/delivery/api/response"
	deliverycontext "gatekeeper/internal/delivery/context"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenMiddleware(t *testing.T) {
	cfg := &config.Config{Session: &config.SessionConfig{Cookie: config.CookieConfig{Name: "session_id"}}}
	m := NewSessionTokenMiddleware(cfg)

	tests := []struct {
		name      string
		cookie    string
		header    string
		wantToken string
	}{
		{name: "none"},
		{name: "cookie", cookie: "from-cookie", wantToken: "from-cookie"},
		{name: "bearer", header: "Bearer from-header", wantToken: "from-header"},
		{name: "bearer lower case", header: "bearer from-header", wantToken: "from-header"},
		{name: "cookie wins", cookie: "from-cookie", header: "Bearer from-header", wantToken: "from-cookie"},
		{name: "basic is ignored", header: "Basic dXNlcjpwdw=="},
		{name: "bare bearer", header: "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "session_id", Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}

			var seen string
			next := func(c echo.Context) error {
				seen = deliverycontext.GetSessionToken(c)

				return nil
			}

			require.NoError(t, m.Extract(next)(e.NewContext(req, httptest.NewRecorder())))
			assert.Equal(t, tt.wantToken, seen)

			seen = ""
			err := m.Require(next)(e.NewContext(req, httptest.NewRecorder()))
			if tt.wantToken == "" {
				assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, seen)
			}
		})
	}
}

func TestErrorMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails bool
		wantLogged  bool
	}{
		{
			name:        "validation keeps details",
			err:         errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(map[string]string{"email": "is required"})),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: true,
		},
		{
			name:       "unauthorized",
			err:        errors.WithStack(domainerrors.ErrUnauthorized),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "database error hides details",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("pq: relation missing"), "failed to insert account"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
			wantLogged: true,
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("SELECT * FROM accounts failed"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/auth/register", nil), rec)

			m.HandleHTTPError(tt.err, c)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details != nil)
			assert.NotContains(t, rec.Body.String(), "SELECT")
			assert.NotContains(t, rec.Body.String(), "pq:")
			assert.Equal(t, tt.wantLogged, logs.Len() > 0)
		})
	}
}

func TestErrorMiddleware_CommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusNoContent))

	m.HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())
}
