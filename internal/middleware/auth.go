package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// OwnerHeader carries the already-authenticated owner identifier.
// Identity verification happens upstream; this layer only requires the
// header to be present.
const OwnerHeader = "X-Owner-ID"

const ownerContextKey = "ownerID"

// OwnerAuth creates the owner-context middleware
func OwnerAuth(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ownerID := c.Request().Header.Get(OwnerHeader)
			if ownerID == "" {
				logger.Warn("request without owner identity",
					zap.String("path", c.Request().URL.Path),
				)
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "missing owner identity",
				})
			}

			c.Set(ownerContextKey, ownerID)
			return next(c)
		}
	}
}

// OwnerID returns the authenticated owner id set by OwnerAuth
func OwnerID(c echo.Context) string {
	ownerID, _ := c.Get(ownerContextKey).(string)
	return ownerID
}
