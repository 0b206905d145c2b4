// Package jsonfile stores the person list as a single JSON document on disk.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/papercomputeco/recruit/pkg/model"
	"github.com/papercomputeco/recruit/pkg/storage"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Driver implements storage.Driver on a JSON file.
type Driver struct {
	path   string
	opts   storage.Options
	logger *zap.Logger
}

// NewDriver creates a driver reading and writing path. The file is not
// touched until Load or Save is called.
func NewDriver(path string, logger *zap.Logger, opts ...storage.Option) (*Driver, error) {
	if path == "" {
		return nil, errors.New("json storage requires a file path")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Driver{
		path:   path,
		opts:   storage.ApplyOptions(opts...),
		logger: logger,
	}, nil
}

// Path returns the file the driver reads and writes.
func (d *Driver) Path() string {
	return d.path
}

// Load reads and validates the document. A missing file is not an error.
func (d *Driver) Load(_ context.Context) (*model.Snapshot, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			d.logger.Debug("no data file found", zap.String("path", d.path))
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", d.path, err)
	}

	var doc storage.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &storage.LoadError{Source: d.path, Err: err}
	}

	snap, err := doc.Snapshot(d.opts.Identity)
	if err != nil {
		return nil, &storage.LoadError{Source: d.path, Err: err}
	}

	d.logger.Debug("loaded persons",
		zap.String("path", d.path),
		zap.Int("count", len(snap.Persons)),
	)
	return snap, nil
}

// Save writes the whole document. It writes a sibling temp file first and
// renames it over the target so a failed write never truncates saved data.
func (d *Driver) Save(_ context.Context, snap model.Snapshot) error {
	data, err := json.MarshalIndent(storage.NewDocument(snap), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding persons: %w", err)
	}

	dir := filepath.Dir(d.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(d.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting permissions on %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, d.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", d.path, err)
	}

	d.logger.Debug("saved persons",
		zap.String("path", d.path),
		zap.Int("count", len(snap.Persons)),
	)
	return nil
}

// Close is a no-op; the file is only held open during Load and Save.
func (d *Driver) Close() error {
	return nil
}
