package model

import (
	"strings"

	"vendor-service/internal/store"
)

// Status is the lifecycle state of a vendor.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Vendor represents one vendor business entity.
type Vendor struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status Status `json:"status"`
}

func (v Vendor) EntityID() int { return v.ID }

func (v Vendor) WithEntityID(id int) Vendor {
	v.ID = id
	return v
}

// VendorPatch is a partial update for a vendor. Nil fields are left
// untouched; non-nil fields overwrite, including overwriting with an
// explicitly supplied empty value.
type VendorPatch struct {
	Name   *string `json:"name"`
	Code   *string `json:"code"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Status *Status `json:"status"`
}

// Apply merges the patch into the given vendor and returns the result.
func (p VendorPatch) Apply(v Vendor) Vendor {
	if p.Name != nil {
		v.Name = *p.Name
	}
	if p.Code != nil {
		v.Code = *p.Code
	}
	if p.Email != nil {
		v.Email = *p.Email
	}
	if p.Phone != nil {
		v.Phone = *p.Phone
	}
	if p.Status != nil {
		v.Status = *p.Status
	}
	return v
}

// VendorDescriptor declares the queryable surface of the vendor
// collection: free-text search matches name or code, and every field is
// sortable.
func VendorDescriptor() store.Descriptor[Vendor] {
	return store.Descriptor[Vendor]{
		SearchFields: []func(Vendor) string{
			func(v Vendor) string { return v.Name },
			func(v Vendor) string { return v.Code },
		},
		SortFields: map[string]func(a, b Vendor) int{
			"id":     func(a, b Vendor) int { return a.ID - b.ID },
			"name":   func(a, b Vendor) int { return strings.Compare(a.Name, b.Name) },
			"code":   func(a, b Vendor) int { return strings.Compare(a.Code, b.Code) },
			"email":  func(a, b Vendor) int { return strings.Compare(a.Email, b.Email) },
			"phone":  func(a, b Vendor) int { return strings.Compare(a.Phone, b.Phone) },
			"status": func(a, b Vendor) int { return strings.Compare(string(a.Status), string(b.Status)) },
		},
	}
}

// SeedVendors returns the initial vendor fixtures loaded at process
// start.
func SeedVendors() []Vendor {
	return []Vendor{
		{ID: 1, Name: "Vendor One", Code: "V001", Email: "vendor1@example.com", Phone: "1234567890", Status: StatusActive},
		{ID: 2, Name: "Vendor Two", Code: "V002", Email: "vendor2@example.com", Phone: "0987654321", Status: StatusInactive},
	}
}
