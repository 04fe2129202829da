package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"vendor-service/internal/api"
	"vendor-service/internal/model"
	"vendor-service/internal/store"
)

type vendorClient struct {
	c *Client
}

func (v *vendorClient) List(ctx context.Context, q store.Query) (store.Page[model.Vendor], error) {
	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.SortBy != "" {
		params.Set("sortBy", q.SortBy)
	}
	if q.SortOrder != "" {
		params.Set("sortOrder", q.SortOrder)
	}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	var page store.Page[model.Vendor]
	err := v.c.do(ctx, http.MethodGet, "/api/vendors", params, nil, &page)
	return page, err
}

func (v *vendorClient) Get(ctx context.Context, id string) (model.Vendor, error) {
	var vendor model.Vendor
	err := v.c.do(ctx, http.MethodGet, "/api/vendors/"+url.PathEscape(id), nil, nil, &vendor)
	return vendor, err
}

func (v *vendorClient) Create(ctx context.Context, fields model.Vendor) (model.Vendor, error) {
	var vendor model.Vendor
	err := v.c.do(ctx, http.MethodPost, "/api/vendors", nil, fields, &vendor)
	return vendor, err
}

func (v *vendorClient) Update(ctx context.Context, id string, patch model.VendorPatch) (model.Vendor, error) {
	var vendor model.Vendor
	err := v.c.do(ctx, http.MethodPut, "/api/vendors/"+url.PathEscape(id), nil, patch, &vendor)
	return vendor, err
}

type contactClient struct {
	c *Client
}

func (cc *contactClient) ListByVendor(ctx context.Context, vendorID string) ([]model.ContactPerson, error) {
	var envelope struct {
		Data []model.ContactPerson `json:"data"`
	}
	err := cc.c.do(ctx, http.MethodGet, "/api/vendors/"+url.PathEscape(vendorID)+"/contacts", nil, nil, &envelope)
	return envelope.Data, err
}

func (cc *contactClient) Get(ctx context.Context, id string) (model.ContactPerson, error) {
	var contact model.ContactPerson
	err := cc.c.do(ctx, http.MethodGet, "/api/contacts/"+url.PathEscape(id), nil, nil, &contact)
	return contact, err
}

func (cc *contactClient) Create(ctx context.Context, fields model.ContactPerson) (model.ContactPerson, error) {
	var contact model.ContactPerson
	err := cc.c.do(ctx, http.MethodPost, "/api/contacts", nil, fields, &contact)
	return contact, err
}

func (cc *contactClient) Update(ctx context.Context, id string, patch model.ContactPersonPatch) (model.ContactPerson, error) {
	var contact model.ContactPerson
	err := cc.c.do(ctx, http.MethodPut, "/api/contacts/"+url.PathEscape(id), nil, patch, &contact)
	return contact, err
}

func (cc *contactClient) Delete(ctx context.Context, id string) (api.DeleteResult, error) {
	var result api.DeleteResult
	err := cc.c.do(ctx, http.MethodDelete, "/api/contacts/"+url.PathEscape(id), nil, nil, &result)
	return result, err
}

type authClient struct {
	c *Client
}

// Login checks credentials against the remote API and remembers the
// session token for subsequent requests.
func (a *authClient) Login(ctx context.Context, creds api.Credentials) (api.Session, error) {
	var session api.Session
	if err := a.c.do(ctx, http.MethodPost, "/api/auth/login", nil, creds, &session); err != nil {
		return api.Session{}, err
	}
	a.c.Token = session.Token
	return session, nil
}
