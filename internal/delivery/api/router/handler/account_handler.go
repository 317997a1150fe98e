// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/delivery/api/response"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse is returned by /auth/login alongside the session cookie.
type LoginResponse struct {
	Account   *AccountResponse `json:"account"`
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// SessionResponse describes one active session without its token digest.
type SessionResponse struct {
	ID         uuid.UUID `json:"id"`
	IssuedAt   time.Time `json:"issued_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
	UserAgent  string    `json:"user_agent,omitempty"`
	IPAddress  string    `json:"ip_address,omitempty"`
	Current    bool      `json:"current"`
}

func toAccountResponse(a *entity.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}

// AccountHandler holds dependencies for account and session handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	cookie config.CookieConfig
	ttl    time.Duration
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, cfg *config.Config) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		cookie: cfg.Session.Cookie,
		ttl:    cfg.Session.TTL,
	}
}

// Register handles POST /auth/register.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}

	account, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountResponse(account))
}

// Login handles POST /auth/login and sets the session cookie.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	output, err := h.uc.Authenticate(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
		Meta: entity.SessionMetadata{
			UserAgent: c.Request().UserAgent(),
			IPAddress: c.RealIP(),
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie(output.Token, int(h.ttl/time.Second)))

	return response.Success(c, http.StatusOK, &LoginResponse{
		Account:   toAccountResponse(output.Account),
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
	})
}

// Logout handles POST /auth/logout. It succeeds for any token, or none.
func (h *AccountHandler) Logout(c echo.Context) error {
	if token := deliverycontext.GetSessionToken(c); token != "" {
		_ = h.uc.Logout(c.Request().Context(), token)
	}

	c.SetCookie(h.sessionCookie("", -1))

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

// LogoutAll handles POST /auth/logout/all.
func (h *AccountHandler) LogoutAll(c echo.Context) error {
	revoked, err := h.uc.LogoutAll(c.Request().Context(), deliverycontext.GetSessionToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie("", -1))

	return response.Success(c, http.StatusOK, map[string]int{"revoked": revoked})
}

// GetProfile handles GET /user/profile.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	account, err := h.uc.GetProfile(c.Request().Context(), deliverycontext.GetSessionToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account))
}

// ListSessions handles GET /user/sessions.
func (h *AccountHandler) ListSessions(c echo.Context) error {
	views, err := h.uc.ListSessions(c.Request().Context(), deliverycontext.GetSessionToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	sessions := make([]*SessionResponse, 0, len(views))
	for _, v := range views {
		sessions = append(sessions, &SessionResponse{
			ID:         v.ID,
			IssuedAt:   v.IssuedAt,
			ExpiresAt:  v.ExpiresAt,
			LastSeenAt: v.LastSeenAt,
			UserAgent:  v.UserAgent,
			IPAddress:  v.IPAddress,
			Current:    v.Current,
		})
	}

	return response.Success(c, http.StatusOK, sessions)
}

// sessionCookie builds the session cookie; maxAge < 0 deletes it.
func (h *AccountHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     h.cookie.Path,
		Domain:   h.cookie.Domain,
		MaxAge:   maxAge,
		Secure:   h.cookie.Secure,
		HttpOnly: true,
		SameSite: h.cookie.SameSiteMode(),
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
