package middleware

import (
	"strings"

	"gatekeeper/config"
	deliverycontext "gatekeeper/internal/delivery/context"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/errors"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "bearer "

// SessionTokenMiddleware moves the raw session token from the transport into
// the echo context. The cookie wins over an Authorization header.
type SessionTokenMiddleware struct {
	cookieName string
}

// NewSessionTokenMiddleware is the constructor for SessionTokenMiddleware.
func NewSessionTokenMiddleware(cfg *config.Config) *SessionTokenMiddleware {
	return &SessionTokenMiddleware{cookieName: cfg.Session.Cookie.Name}
}

// Extract stores the token when the request carries one and never rejects.
func (m *SessionTokenMiddleware) Extract(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token := m.tokenFrom(c); token != "" {
			deliverycontext.SetSessionToken(c, token)
		}

		return next(c)
	}
}

// Require is Extract plus a 401 when no token was presented.
func (m *SessionTokenMiddleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return m.Extract(func(c echo.Context) error {
		if deliverycontext.GetSessionToken(c) == "" {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		return next(c)
	})
}

func (m *SessionTokenMiddleware) tokenFrom(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}

	return ""
}
