package api

import (
	"context"
	"testing"
	"time"

	"vendor-service/pkg/config"
	"vendor-service/pkg/jwtutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(latency time.Duration) *AuthSimulator {
	tokens := jwtutil.New(&config.JWTConfig{
		SigningKey:      "test-signing-key",
		ExpirationHours: 1,
	})
	return NewAuthSimulator(tokens, latency)
}

func TestAuthSimulator_LoginSuccess(t *testing.T) {
	auth := newAuthFixture(0)

	session, err := auth.Login(context.Background(), Credentials{
		Username: "admin@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, session.Token)
	assert.Equal(t, 1, session.User.ID)
	assert.Equal(t, "admin@example.com", session.User.Username)
	assert.Equal(t, "admin@example.com", session.User.Email)
}

func TestAuthSimulator_LoginTokenIsValid(t *testing.T) {
	tokens := jwtutil.New(&config.JWTConfig{
		SigningKey:      "test-signing-key",
		ExpirationHours: 1,
	})
	auth := NewAuthSimulator(tokens, 0)

	session, err := auth.Login(context.Background(), Credentials{Username: "u", Password: "p"})
	require.NoError(t, err)

	claims, err := tokens.ValidateToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "u", claims.Username)
	assert.Equal(t, 1, claims.UserID)
}

func TestAuthSimulator_TokenUniquePerCall(t *testing.T) {
	auth := newAuthFixture(0)
	creds := Credentials{Username: "u", Password: "p"}

	first, err := auth.Login(context.Background(), creds)
	require.NoError(t, err)
	second, err := auth.Login(context.Background(), creds)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestAuthSimulator_LoginMissingUsername(t *testing.T) {
	auth := newAuthFixture(0)

	_, err := auth.Login(context.Background(), Credentials{Username: "", Password: "x"})
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Username and password are required", validationErr.Message)
}

func TestAuthSimulator_LoginMissingPassword(t *testing.T) {
	auth := newAuthFixture(0)

	_, err := auth.Login(context.Background(), Credentials{Username: "user", Password: ""})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Username and password are required", validationErr.Message)
}

func TestAuthSimulator_LoginWaitsConfiguredLatency(t *testing.T) {
	auth := newAuthFixture(20 * time.Millisecond)

	start := time.Now()
	_, err := auth.Login(context.Background(), Credentials{Username: "u", Password: "p"})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
