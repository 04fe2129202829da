package api

import (
	"context"
	"time"

	"vendor-service/internal/model"
	"vendor-service/internal/store"
)

// VendorSimulator implements VendorService against the in-memory store,
// waiting a fixed latency before each call resolves so that consumers
// cannot distinguish it from a network-backed client.
//
// The latency sleep does not observe context cancellation: a caller may
// discard interest in a pending call, but the simulated work and any
// mutation it performs still complete, matching the serial history the
// backend guarantees.
type VendorSimulator struct {
	store      *store.Store[model.Vendor]
	descriptor store.Descriptor[model.Vendor]
	latency    time.Duration
}

// NewVendorSimulator creates the vendor facade over the given store.
// A zero latency resolves synchronously, which is what tests use.
func NewVendorSimulator(s *store.Store[model.Vendor], latency time.Duration) *VendorSimulator {
	return &VendorSimulator{
		store:      s,
		descriptor: model.VendorDescriptor(),
		latency:    latency,
	}
}

// List filters, sorts and paginates the vendor collection.
func (v *VendorSimulator) List(ctx context.Context, q store.Query) (store.Page[model.Vendor], error) {
	wait(v.latency)
	return store.Apply(v.store.List(), q, v.descriptor), nil
}

// Get returns the vendor with the given id, or store.ErrNotFound.
func (v *VendorSimulator) Get(ctx context.Context, id string) (model.Vendor, error) {
	wait(v.latency)
	vendorID, err := store.ParseID(id)
	if err != nil {
		return model.Vendor{}, store.ErrNotFound
	}
	return v.store.Get(vendorID)
}

// Create allocates an id for the given fields and stores the vendor.
func (v *VendorSimulator) Create(ctx context.Context, fields model.Vendor) (model.Vendor, error) {
	wait(v.latency)
	return v.store.Create(fields), nil
}

// Update shallow-merges the patch into the stored vendor.
func (v *VendorSimulator) Update(ctx context.Context, id string, patch model.VendorPatch) (model.Vendor, error) {
	wait(v.latency)
	vendorID, err := store.ParseID(id)
	if err != nil {
		return model.Vendor{}, store.ErrNotFound
	}
	return v.store.Update(vendorID, patch.Apply)
}

// wait blocks for the simulated network round trip.
func wait(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
