package handler

import (
	"errors"
	"net/http"

	"vendor-service/internal/api"
	"vendor-service/pkg/logger"
	"vendor-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthHandler exposes the credential check over HTTP.
type AuthHandler struct {
	auth api.AuthService
}

// NewAuthHandler creates an auth handler backed by the given service
func NewAuthHandler(auth api.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login checks the submitted credentials and returns a session token
func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordLogin()

	var creds api.Credentials
	if err := c.Bind(&creds); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request data"})
	}

	session, err := h.auth.Login(c.Request().Context(), creds)
	if err != nil {
		var validationErr *api.ValidationError
		if errors.As(err, &validationErr) {
			log.Warn("Login rejected", zap.String("username", creds.Username))
			return c.JSON(http.StatusBadRequest, echo.Map{"message": validationErr.Message})
		}
		log.Error("Login failed", zap.String("username", creds.Username), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Login failed"})
	}

	log.Info("User logged in", zap.String("username", session.User.Username))
	return c.JSON(http.StatusOK, session)
}
