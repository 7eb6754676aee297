package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/scratchie/onboarding-flow/internal/core/domain"
)

// Identity transport. Headers win over cookies so non-browser clients can
// drive a flow explicitly.
const (
	DeviceCookie  = "onboarding_device"
	SessionCookie = "onboarding_session"
	DeviceHeader  = "X-Device-ID"
	SessionHeader = "X-Session-ID"

	identityKey = "identity"
)

// SessionOptions configures the Session middleware.
type SessionOptions struct {
	// DeviceTTL is the lifetime of the device cookie.
	DeviceTTL time.Duration
	// Secure marks both cookies Secure.
	Secure bool
}

// Session resolves the device and session identities of the request, issuing
// fresh UUIDs for missing or malformed ones, and injects them into context.
// Both ids are echoed back as cookies and headers.
func Session(opts SessionOptions) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			device := resolveID(c, DeviceHeader, DeviceCookie)
			session := resolveID(c, SessionHeader, SessionCookie)

			c.SetCookie(&http.Cookie{
				Name:     DeviceCookie,
				Value:    device,
				Path:     "/",
				MaxAge:   int(opts.DeviceTTL.Seconds()),
				HttpOnly: true,
				Secure:   opts.Secure,
				SameSite: http.SameSiteLaxMode,
			})
			// No MaxAge: the session scope ends with the browser session.
			c.SetCookie(&http.Cookie{
				Name:     SessionCookie,
				Value:    session,
				Path:     "/",
				HttpOnly: true,
				Secure:   opts.Secure,
				SameSite: http.SameSiteLaxMode,
			})
			c.Response().Header().Set(DeviceHeader, device)
			c.Response().Header().Set(SessionHeader, session)

			c.Set(identityKey, domain.Identity{DeviceID: device, SessionID: session})
			return next(c)
		}
	}
}

func resolveID(c echo.Context, header, cookie string) string {
	if v := c.Request().Header.Get(header); isID(v) {
		return v
	}
	if ck, err := c.Cookie(cookie); err == nil && isID(ck.Value) {
		return ck.Value
	}
	return uuid.NewString()
}

func isID(v string) bool {
	if v == "" {
		return false
	}
	_, err := uuid.Parse(v)
	return err == nil
}

// IdentityFrom returns the identity injected by Session.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(identityKey).(domain.Identity)
	return id, ok && id.DeviceID != "" && id.SessionID != ""
}
