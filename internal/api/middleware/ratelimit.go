package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// rateLimitMessage is the localized 429 response body.
const rateLimitMessage = "So'rovlar soni ko'payib ketdi, biroz kuting"

// RateLimit returns Echo middleware applying a shared token-bucket limit
// across all clients. Operational paths are exempt so probes and scrapes
// never get throttled.
func RateLimit(perSecond float64, burst int) echo.MiddlewareFunc {
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, skip := metricsSkipPaths[c.Request().URL.Path]; skip {
				return next(c)
			}

			if !limiter.Allow() {
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": rateLimitMessage,
				})
			}

			return next(c)
		}
	}
}
