package api

import (
	"context"
	"time"

	"vendor-service/internal/model"
	"vendor-service/internal/store"
)

// ContactSimulator implements ContactService against the in-memory
// store with the same simulated-latency contract as VendorSimulator.
type ContactSimulator struct {
	store   *store.Store[model.ContactPerson]
	latency time.Duration
}

// NewContactSimulator creates the contact-person facade over the given
// store.
func NewContactSimulator(s *store.Store[model.ContactPerson], latency time.Duration) *ContactSimulator {
	return &ContactSimulator{store: s, latency: latency}
}

// ListByVendor returns the contacts whose vendorId matches the given
// vendor, in insertion order. A malformed vendor id matches nothing.
func (c *ContactSimulator) ListByVendor(ctx context.Context, vendorID string) ([]model.ContactPerson, error) {
	wait(c.latency)
	id, err := store.ParseID(vendorID)
	if err != nil {
		return []model.ContactPerson{}, nil
	}
	contacts := []model.ContactPerson{}
	for _, contact := range c.store.List() {
		if contact.VendorID == id {
			contacts = append(contacts, contact)
		}
	}
	return contacts, nil
}

// Get returns the contact with the given id, or store.ErrNotFound.
func (c *ContactSimulator) Get(ctx context.Context, id string) (model.ContactPerson, error) {
	wait(c.latency)
	contactID, err := store.ParseID(id)
	if err != nil {
		return model.ContactPerson{}, store.ErrNotFound
	}
	return c.store.Get(contactID)
}

// Create allocates an id within the contact collection and stores the
// record. The caller supplies vendorId; the parent vendor is not
// required to exist.
func (c *ContactSimulator) Create(ctx context.Context, fields model.ContactPerson) (model.ContactPerson, error) {
	wait(c.latency)
	return c.store.Create(fields), nil
}

// Update shallow-merges the patch into the stored contact.
func (c *ContactSimulator) Update(ctx context.Context, id string, patch model.ContactPersonPatch) (model.ContactPerson, error) {
	wait(c.latency)
	contactID, err := store.ParseID(id)
	if err != nil {
		return model.ContactPerson{}, store.ErrNotFound
	}
	return c.store.Update(contactID, patch.Apply)
}

// Delete removes the contact with the given id. Deletion is idempotent:
// the result reports success whether or not the record existed.
func (c *ContactSimulator) Delete(ctx context.Context, id string) (DeleteResult, error) {
	wait(c.latency)
	if contactID, err := store.ParseID(id); err == nil {
		c.store.Delete(contactID)
	}
	return DeleteResult{Success: true}, nil
}
