// Package opensession builds a logic.Session from the effective configuration.
// It is shared by every command that works on the saved person list.
package opensession

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papercomputeco/recruit/pkg/config"
	"github.com/papercomputeco/recruit/pkg/dotdir"
	"github.com/papercomputeco/recruit/pkg/logic"
	"github.com/papercomputeco/recruit/pkg/model"
	storageutils "github.com/papercomputeco/recruit/pkg/storage/utils"
)

// ResolveDataPath returns the configured data file, or the driver's default
// file inside the .recruit/ directory when none is configured.
func ResolveDataPath(cfg *config.Config, configDir string) (string, error) {
	if cfg.Storage.Path != "" {
		return cfg.Storage.Path, nil
	}

	fileName := dotdir.DefaultDataFile(cfg.Storage.Driver)
	if fileName == "" {
		return "", nil
	}
	return dotdir.NewManager().DataPath(configDir, fileName)
}

// Open creates the storage driver and session described by cfg and loads
// the saved persons.
func Open(ctx context.Context, cfg *config.Config, configDir string, logger *zap.Logger) (*logic.Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	identity, err := model.IdentityByName(cfg.Model.Identity)
	if err != nil {
		return nil, err
	}

	path, err := ResolveDataPath(cfg, configDir)
	if err != nil {
		return nil, fmt.Errorf("resolving data path: %w", err)
	}

	logger.Debug("opening storage",
		zap.String("driver", cfg.Storage.Driver),
		zap.String("path", path),
		zap.String("identity", cfg.Model.Identity),
	)

	driver, err := storageutils.NewStorageDriver(ctx, &storageutils.NewStorageDriverOpts{
		Driver:   cfg.Storage.Driver,
		Path:     path,
		DSN:      cfg.Storage.DSN,
		Identity: identity,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	session := logic.NewSession(driver, logger, logic.Options{
		Identity:                identity,
		StartEmptyOnInvalidData: cfg.Storage.StartEmptyOnInvalid,
	})
	if err := session.Open(ctx); err != nil {
		_ = driver.Close()
		return nil, err
	}

	return session, nil
}

// AddStorageFlags registers the storage flags on cmd.
func AddStorageFlags(cmd *cobra.Command, driver, dataPath, dsn, identity *string, startEmpty *bool) {
	config.AddStringFlag(cmd, config.StorageFlags, config.FlagStorageDriver, driver)
	config.AddStringFlag(cmd, config.StorageFlags, config.FlagDataPath, dataPath)
	config.AddStringFlag(cmd, config.StorageFlags, config.FlagDSN, dsn)
	config.AddStringFlag(cmd, config.StorageFlags, config.FlagIdentity, identity)
	config.AddBoolFlag(cmd, config.StorageFlags, config.FlagStartEmpty, startEmpty)
}

// LoadConfig resolves the effective configuration for cmd. Flags from the
// given sets override environment variables, which override config.toml.
func LoadConfig(cmd *cobra.Command, configDir string, sets ...config.FlagSet) (*config.Config, error) {
	v, err := config.InitViper(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	for _, fs := range sets {
		config.BindRegisteredFlags(v, cmd, fs, fs.Keys())
	}

	return config.FromViper(v), nil
}
