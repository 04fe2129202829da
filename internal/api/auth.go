package api

import (
	"context"
	"time"

	"vendor-service/pkg/jwtutil"
)

// loginUserID is the identity echoed back by the simulated credential
// check; the reference backend always reports user 1.
const loginUserID = 1

// AuthSimulator implements AuthService. The credential check accepts
// any non-empty username/password pair and issues a fresh session token
// per call.
type AuthSimulator struct {
	tokens  *jwtutil.JWT
	latency time.Duration
}

// NewAuthSimulator creates the credential-check facade. The login
// latency is typically longer than the CRUD latency.
func NewAuthSimulator(tokens *jwtutil.JWT, latency time.Duration) *AuthSimulator {
	return &AuthSimulator{tokens: tokens, latency: latency}
}

// Login validates the credentials and returns a session. Empty username
// or password is rejected with a ValidationError; any other pair is
// accepted and echoed back with a signed token.
func (a *AuthSimulator) Login(ctx context.Context, creds Credentials) (Session, error) {
	wait(a.latency)

	if creds.Username == "" || creds.Password == "" {
		return Session{}, &ValidationError{Message: "Username and password are required"}
	}

	token, err := a.tokens.GenerateToken(creds.Username, loginUserID)
	if err != nil {
		return Session{}, err
	}

	return Session{
		Token: token,
		User: User{
			ID:       loginUserID,
			Username: creds.Username,
			Email:    creds.Username,
		},
	}, nil
}
