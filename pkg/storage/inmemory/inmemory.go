// Package inmemory provides a storage driver that keeps the saved list in
// process memory. It is used when nothing should touch the disk and in tests.
package inmemory

import (
	"context"
	"sync"

	"github.com/papercomputeco/recruit/pkg/model"
	"github.com/papercomputeco/recruit/pkg/storage"
)

// Driver implements storage.Driver on an in-memory document.
type Driver struct {
	// mu guards doc and saves
	mu sync.RWMutex

	// doc is the last saved document, nil until the first save. It is kept in
	// its persisted form so loads go through the same validation as the
	// other drivers.
	doc *storage.Document

	saves int

	opts storage.Options
}

// NewDriver creates a new in-memory driver with nothing saved.
func NewDriver(opts ...storage.Option) *Driver {
	return &Driver{opts: storage.ApplyOptions(opts...)}
}

// Load returns the last saved snapshot, or nil if nothing has been saved.
func (d *Driver) Load(_ context.Context) (*model.Snapshot, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.doc == nil {
		return nil, nil
	}

	snap, err := d.doc.Snapshot(d.opts.Identity)
	if err != nil {
		return nil, &storage.LoadError{Source: "memory", Err: err}
	}
	return snap, nil
}

// Save replaces the saved document.
func (d *Driver) Save(_ context.Context, snap model.Snapshot) error {
	doc := storage.NewDocument(snap)

	d.mu.Lock()
	defer d.mu.Unlock()

	d.doc = &doc
	d.saves++
	return nil
}

// Saves returns how many times Save has been called.
func (d *Driver) Saves() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.saves
}

// Close is a no-op.
func (d *Driver) Close() error {
	return nil
}
