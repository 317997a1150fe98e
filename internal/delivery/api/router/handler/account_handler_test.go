package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gatekeeper/config"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/errors"
	mockUsecase "gatekeeper/internal/mocks/usecase"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHandlerConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
		Session: &config.SessionConfig{
			Store: config.SessionStoreMemory,
			TTL:   time.Hour,
		},
	}
	require.NoError(t, cfg.Validate())

	return cfg
}

func newContext(method, body, token string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/", nil)
	}
	req.Header.Set("User-Agent", "curl/8")

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if token != "" {
		deliverycontext.SetSessionToken(c, token)
	}

	return c, rec
}

func cookieNamed(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}

	return nil
}

func TestAccountHandler_LoginPassesEmptyFieldsThrough(t *testing.T) {
	tests := []struct {
		name string
		body string
		want usecase.LoginInput
	}{
		{name: "missing password", body: `{"username":"alice"}`, want: usecase.LoginInput{Username: "alice"}},
		{name: "empty username", body: `{"username":"","password":"s3cret1"}`, want: usecase.LoginInput{Password: "s3cret1"}},
		{name: "empty object", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newHandlerConfig(t)
			uc := mockUsecase.NewMockAccountUsecase(t)
			uc.EXPECT().
				Authenticate(mock.Anything, mock.MatchedBy(func(in usecase.LoginInput) bool {
					return in.Username == tt.want.Username && in.Password == tt.want.Password && in.Meta.UserAgent == "curl/8"
				})).
				Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials)).
				Once()

			c, rec := newContext(http.MethodPost, tt.body, "")
			err := NewAccountHandler(uc, cfg).Login(c)

			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
			assert.Nil(t, cookieNamed(rec, cfg.Session.Cookie.Name))
		})
	}
}

func TestAccountHandler_LoginSetsCookie(t *testing.T) {
	cfg := newHandlerConfig(t)
	uc := mockUsecase.NewMockAccountUsecase(t)

	expiresAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	uc.EXPECT().Authenticate(mock.Anything, mock.AnythingOfType("usecase.LoginInput")).Return(&usecase.LoginOutput{
		Account:   &entity.Account{ID: uuid.New(), Username: "alice", Email: "alice@example.com"},
		Token:     "opaque-token",
		ExpiresAt: expiresAt,
	}, nil).Once()

	c, rec := newContext(http.MethodPost, `{"username":"alice","password":"s3cret1"}`, "")
	require.NoError(t, NewAccountHandler(uc, cfg).Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := cookieNamed(rec, cfg.Session.Cookie.Name)
	require.NotNil(t, cookie)
	assert.Equal(t, "opaque-token", cookie.Value)
	assert.Equal(t, int(time.Hour/time.Second), cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)

	var body struct {
		Data LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "alice", body.Data.Account.Username)
	assert.Equal(t, expiresAt, body.Data.ExpiresAt)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAccountHandler_LoginMalformedBody(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)

	c, rec := newContext(http.MethodPost, `{"username":`, "")
	require.NoError(t, NewAccountHandler(uc, newHandlerConfig(t)).Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAccountHandler_Logout(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "with token", token: "opaque-token"},
		{name: "without token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newHandlerConfig(t)
			uc := mockUsecase.NewMockAccountUsecase(t)
			if tt.token != "" {
				uc.EXPECT().Logout(mock.Anything, tt.token).Return(nil).Once()
			}

			c, rec := newContext(http.MethodPost, "", tt.token)
			require.NoError(t, NewAccountHandler(uc, cfg).Logout(c))

			assert.Equal(t, http.StatusOK, rec.Code)
			cookie := cookieNamed(rec, cfg.Session.Cookie.Name)
			require.NotNil(t, cookie)
			assert.Empty(t, cookie.Value)
			assert.Negative(t, cookie.MaxAge)
		})
	}
}

func TestAccountHandler_LogoutAll(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	uc.EXPECT().LogoutAll(mock.Anything, "opaque-token").Return(3, nil).Once()

	c, rec := newContext(http.MethodPost, "", "opaque-token")
	require.NoError(t, NewAccountHandler(uc, newHandlerConfig(t)).LogoutAll(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"revoked":3}`, string(dataOf(t, rec)))
}

func TestAccountHandler_ProtectedErrorsPropagate(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	uc.EXPECT().GetProfile(mock.Anything, "stale").Return(nil, errors.WithStack(domainerrors.ErrUnauthorized)).Once()
	uc.EXPECT().ListSessions(mock.Anything, "stale").Return(nil, errors.WithStack(domainerrors.ErrUnauthorized)).Once()

	h := NewAccountHandler(uc, newHandlerConfig(t))

	c, _ := newContext(http.MethodGet, "", "stale")
	assert.ErrorIs(t, h.GetProfile(c), domainerrors.ErrUnauthorized)

	c, _ = newContext(http.MethodGet, "", "stale")
	assert.ErrorIs(t, h.ListSessions(c), domainerrors.ErrUnauthorized)
}

func TestAccountHandler_ListSessions(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	id := uuid.New()
	issued := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	uc.EXPECT().ListSessions(mock.Anything, "opaque-token").Return([]*usecase.SessionView{{
		ID:         id,
		IssuedAt:   issued,
		ExpiresAt:  issued.Add(time.Hour),
		LastSeenAt: issued,
		UserAgent:  "curl/8",
		Current:    true,
	}}, nil).Once()

	c, rec := newContext(http.MethodGet, "", "opaque-token")
	require.NoError(t, NewAccountHandler(uc, newHandlerConfig(t)).ListSessions(c))

	var sessions []SessionResponse
	require.NoError(t, json.Unmarshal(dataOf(t, rec), &sessions))
	require.Len(t, sessions, 1)
	assert.Equal(t, id, sessions[0].ID)
	assert.True(t, sessions[0].Current)
	assert.Empty(t, sessions[0].IPAddress)
	assert.NotContains(t, rec.Body.String(), "token")
}

func dataOf(t *testing.T, rec *httptest.ResponseRecorder) json.RawMessage {
	t.Helper()

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Data
}
