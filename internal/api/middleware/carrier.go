package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Well-known redirect targets shared by the session middleware, the role
// gate and the auth handlers.
const (
	PathLogin          = "/login"
	PathAdminDashboard = "/admindashboard"
	PathStaffDashboard = "/staffdashboard"
)

// Carrier abstracts how a client presents its session token on each request,
// decoupling the session logic from any one transport mechanism.
type Carrier interface {
	// Read returns the raw token, or "" when the request carries none.
	Read(c echo.Context) string
	Write(c echo.Context, token string, ttl time.Duration)
	Clear(c echo.Context)
}

const sessionCookieName = "token"

// CookieCarrier stores the session token in an HTTP-only, same-site-strict
// cookie, keeping it out of reach of page scripts and cross-site requests.
type CookieCarrier struct{}

func NewCookieCarrier() CookieCarrier {
	return CookieCarrier{}
}

func (CookieCarrier) Read(c echo.Context) string {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (CookieCarrier) Write(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

func (CookieCarrier) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
