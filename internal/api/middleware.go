package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const userIDKey = "userID"

// Authenticator resolves the calling user from an Authorization header.
type Authenticator interface {
	UserIDFromAuthHeader(header string) (string, error)
}

// RequireUser rejects requests without a valid bearer token and stores the
// user id on the echo context.
func RequireUser(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := auth.UserIDFromAuthHeader(c.Request().Header.Get("Authorization"))
			if err != nil || userID == "" {
				return c.String(http.StatusUnauthorized, "unauthorized")
			}
			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// RequestLogger logs one line per request.
func RequestLogger(log logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			fields := logrus.Fields{
				"method":   c.Request().Method,
				"path":     c.Path(),
				"status":   c.Response().Status,
				"duration": time.Since(start).String(),
			}
			if uid, ok := c.Get(userIDKey).(string); ok {
				fields["user"] = uid
			}
			entry := log.WithFields(fields)
			if c.Response().Status >= http.StatusInternalServerError {
				entry.Warn("request failed")
			} else {
				entry.Debug("request")
			}
			return nil
		}
	}
}

func userID(c echo.Context) string {
	uid, _ := c.Get(userIDKey).(string)
	return uid
}
