package storageutils

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/papercomputeco/recruit/pkg/model"
	"github.com/papercomputeco/recruit/pkg/storage"
	"github.com/papercomputeco/recruit/pkg/storage/inmemory"
	"github.com/papercomputeco/recruit/pkg/storage/jsonfile"
	"github.com/papercomputeco/recruit/pkg/storage/postgres"
	"github.com/papercomputeco/recruit/pkg/storage/sqlite"
)

// Driver names accepted by NewStorageDriver.
const (
	DriverJSON     = "json"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type NewStorageDriverOpts struct {
	// Driver is one of the Driver* names. Empty selects DriverJSON.
	Driver string

	// Path is the data file for the json and sqlite drivers.
	Path string

	// DSN is the connection string for the postgres driver.
	DSN string

	Identity model.IdentityFunc
	Logger   *zap.Logger
}

func NewStorageDriver(ctx context.Context, o *NewStorageDriverOpts) (storage.Driver, error) {
	opts := []storage.Option{storage.WithIdentity(o.Identity)}

	var (
		driver storage.Driver
		err    error
	)
	switch o.Driver {
	case "", DriverJSON:
		driver, err = jsonfile.NewDriver(o.Path, o.Logger, opts...)
	case DriverSQLite:
		if o.Path == "" {
			return nil, errors.New("sqlite storage requires a database path")
		}
		driver, err = sqlite.NewSQLiteDriver(ctx, o.Path, o.Logger, opts...)
	case DriverPostgres:
		if o.DSN == "" {
			return nil, errors.New("postgres storage requires a DSN")
		}
		driver, err = postgres.NewDriver(ctx, o.DSN, o.Logger, opts...)
	case DriverMemory:
		driver = inmemory.NewDriver(opts...)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", o.Driver)
	}
	if err != nil {
		return nil, err
	}
	return driver, nil
}

// Drivers lists the accepted driver names.
func Drivers() []string {
	return []string{DriverJSON, DriverSQLite, DriverPostgres, DriverMemory}
}
