package handler

import (
	"net/http"
	"testing"

	"vendor-service/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_LoginSuccess(t *testing.T) {
	e, _ := setupTestServer(t)

	w := doJSON(e, http.MethodPost, "/api/auth/login", "", api.Credentials{
		Username: "admin@example.com",
		Password: "secret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	session := decodeBody[api.Session](t, w)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "admin@example.com", session.User.Username)
}

func TestAuthHandler_LoginMissingCredentials(t *testing.T) {
	e, _ := setupTestServer(t)

	w := doJSON(e, http.MethodPost, "/api/auth/login", "", api.Credentials{
		Username: "",
		Password: "x",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody[map[string]string](t, w)
	assert.Equal(t, "Username and password are required", body["message"])
}

func TestAuthHandler_LoginTokenOpensProtectedRoutes(t *testing.T) {
	e, _ := setupTestServer(t)

	w := doJSON(e, http.MethodPost, "/api/auth/login", "", api.Credentials{
		Username: "admin@example.com",
		Password: "secret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	session := decodeBody[api.Session](t, w)

	w = doJSON(e, http.MethodGet, "/api/vendors", session.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
