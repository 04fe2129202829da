// Package api defines the asynchronous CRUD contract for the vendor
// backend, and an in-process simulator implementing it. Consumers hold
// the service interfaces and cannot tell whether the implementation is
// the simulator or the HTTP client in pkg/client: both return the same
// envelopes, the same not-found sentinel, and errors carrying a
// human-readable message.
package api

import (
	"context"

	"vendor-service/internal/model"
	"vendor-service/internal/store"
)

// Credentials is the credential-check input.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User is the echoed identity of a logged-in user.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Session is the credential-check success payload.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// DeleteResult is the delete success payload. Success is true whether
// or not the record existed beforehand.
type DeleteResult struct {
	Success bool `json:"success"`
}

// VendorService is the vendor resource facade. Id arguments are the
// external string representation and are coerced once internally; a
// malformed id behaves like an absent record. Absence is reported as
// store.ErrNotFound, never as a panic.
type VendorService interface {
	List(ctx context.Context, q store.Query) (store.Page[model.Vendor], error)
	Get(ctx context.Context, id string) (model.Vendor, error)
	Create(ctx context.Context, fields model.Vendor) (model.Vendor, error)
	Update(ctx context.Context, id string, patch model.VendorPatch) (model.Vendor, error)
}

// ContactService is the contact-person resource facade. ListByVendor
// scopes the collection by the vendorId foreign key in insertion order;
// it does not check that the vendor exists.
type ContactService interface {
	ListByVendor(ctx context.Context, vendorID string) ([]model.ContactPerson, error)
	Get(ctx context.Context, id string) (model.ContactPerson, error)
	Create(ctx context.Context, fields model.ContactPerson) (model.ContactPerson, error)
	Update(ctx context.Context, id string, patch model.ContactPersonPatch) (model.ContactPerson, error)
	Delete(ctx context.Context, id string) (DeleteResult, error)
}

// AuthService is the credential-check facade.
type AuthService interface {
	Login(ctx context.Context, creds Credentials) (Session, error)
}

// ValidationError reports rejected input, such as missing credentials.
type ValidationError struct {
	Message string `json:"message"`
}

func (e *ValidationError) Error() string { return e.Message }

// TransportError reports a failure of the transport itself: connection
// errors, timeouts, or an unexpected HTTP status. Only the HTTP client
// produces it; the simulator has no transport to fail.
type TransportError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *TransportError) Error() string { return e.Message }
