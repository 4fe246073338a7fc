package middleware

import (
	"github.com/labstack/echo/v4"
)

// ContentSecurityPolicy allows same-origin styles, scripts and images for
// the rendered record pages and nothing else.
const ContentSecurityPolicy = "default-src 'none'; style-src 'self'; script-src 'self'; img-src 'self'; frame-ancestors 'none'"

// SecurityHeaders sets response headers suited to pages showing patient
// records.
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()

			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-XSS-Protection", "0")
			h.Set("Content-Security-Policy", ContentSecurityPolicy)
			h.Set("Referrer-Policy", "no-referrer")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")

			// Record pages may contain PHI.
			h.Set("Cache-Control", "no-store")

			return next(c)
		}
	}
}
