// Package client implements the vendor backend service interfaces over
// HTTP. It is the "real transport" the in-process simulator is designed
// to be swapped with: same envelopes, same not-found sentinel, plus a
// TransportError class for failures only a network can produce.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"vendor-service/internal/api"
	"vendor-service/internal/store"
)

// Client holds the connection settings shared by the per-resource
// service implementations. Token, when set, is attached to every
// request as a bearer credential.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      string
}

// New creates a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Vendors returns the vendor facade backed by this client.
func (c *Client) Vendors() api.VendorService { return &vendorClient{c} }

// Contacts returns the contact-person facade backed by this client.
func (c *Client) Contacts() api.ContactService { return &contactClient{c} }

// Auth returns the credential-check facade backed by this client.
func (c *Client) Auth() api.AuthService { return &authClient{c} }

// do performs one API round trip, decoding the response into out when
// out is non-nil. Connection failures and unexpected statuses surface
// as *api.TransportError; a 404 maps to store.ErrNotFound and a 400 to
// *api.ValidationError so callers branch exactly as they would against
// the simulator.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &api.TransportError{Message: err.Error()}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &api.TransportError{Message: err.Error()}
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return store.ErrNotFound
	case resp.StatusCode == http.StatusBadRequest:
		return &api.ValidationError{Message: errorMessage(resp.StatusCode, payload)}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return &api.TransportError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.StatusCode, payload),
		}
	}

	if out != nil {
		if err := json.Unmarshal(payload, out); err != nil {
			return &api.TransportError{Message: fmt.Sprintf("malformed response: %v", err)}
		}
	}
	return nil
}

// errorMessage extracts the {message} field from an error response,
// falling back to the raw status when the body is not in that shape.
func errorMessage(status int, payload []byte) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return fmt.Sprintf("unexpected status %d", status)
}
