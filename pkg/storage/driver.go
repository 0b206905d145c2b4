// Package storage defines how the person list is persisted. Drivers always
// read and write the whole list; there is no incremental format.
package storage

import (
	"context"

	"github.com/papercomputeco/recruit/pkg/model"
)

// Driver loads and saves the full person list.
type Driver interface {
	// Load returns the saved snapshot, or nil with no error when nothing has
	// been saved yet. Malformed or invalid saved data fails with *LoadError.
	Load(ctx context.Context) (*model.Snapshot, error)

	// Save replaces the saved data with snap.
	Save(ctx context.Context, snap model.Snapshot) error

	// Close releases any resources held by the driver.
	Close() error
}

// Options are shared by every driver.
type Options struct {
	// Identity is used to reject saved data holding duplicate persons.
	Identity model.IdentityFunc
}

// Option configures Options.
type Option func(*Options)

// WithIdentity sets the duplicate detection policy applied on load.
func WithIdentity(fn model.IdentityFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Identity = fn
		}
	}
}

// ApplyOptions returns the defaults overridden by opts.
func ApplyOptions(opts ...Option) Options {
	o := Options{Identity: model.SameName}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
