package middleware

import (
	"net/http"
	"strings"

	"vendor-service/pkg/jwtutil"
	"vendor-service/pkg/logger"
	"vendor-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthMiddleware verifies the session token and stores the user
// identity in the request context. The token validator is injected
// rather than read from package state.
func AuthMiddleware(tokens *jwtutil.JWT) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromContext(c)

			prometheus.RecordAuthAttempt()

			// Extract the token from the Authorization header
			tokenString := c.Request().Header.Get("Authorization")
			if tokenString == "" {
				log.Warn("Missing authorization token")
				prometheus.RecordAuthError()
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "authentication required"})
			}

			// Remove "Bearer " prefix if present
			if len(tokenString) > 7 && strings.ToUpper(tokenString[0:7]) == "BEARER " {
				tokenString = tokenString[7:]
			}

			claims, err := tokens.ValidateToken(tokenString)
			if err != nil {
				log.Warn("Invalid token", zap.Error(err))
				prometheus.RecordAuthError()
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid token"})
			}

			prometheus.RecordAuthSuccess()

			// Store user information in the context
			c.Set("user_id", claims.UserID)
			c.Set("username", claims.Username)

			// Update logger with user information
			log = log.With(
				zap.Int("user_id", claims.UserID),
				zap.String("username", claims.Username),
			)
			c.Set("logger", log)

			return next(c)
		}
	}
}
