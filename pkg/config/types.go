package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/papercomputeco/recruit/pkg/model"
	storageutils "github.com/papercomputeco/recruit/pkg/storage/utils"
)

// Config represents the persistent recruit configuration stored as config.toml
// in the .recruit/ directory. The TOML layout uses sections for logical grouping.
type Config struct {
	Version int           `toml:"version"`
	Storage StorageConfig `toml:"storage"`
	Model   ModelConfig   `toml:"model"`
	Shell   ShellConfig   `toml:"shell"`
}

// StorageConfig selects where the person list is saved.
type StorageConfig struct {
	// Driver is one of json, sqlite, postgres or memory.
	Driver string `toml:"driver,omitempty"`

	// Path is the data file of the json and sqlite drivers. Empty means a
	// file inside the .recruit/ directory.
	Path string `toml:"path,omitempty"`

	// DSN is the postgres connection string.
	DSN string `toml:"dsn,omitempty"`

	// StartEmptyOnInvalid starts with an empty list instead of failing when
	// the saved data is invalid.
	StartEmptyOnInvalid bool `toml:"start_empty_on_invalid,omitempty"`
}

// ModelConfig holds settings of the in-memory person list.
type ModelConfig struct {
	// Identity names the policy deciding when two persons are duplicates.
	Identity string `toml:"identity,omitempty"`
}

// ShellConfig holds settings of the interactive shell.
type ShellConfig struct {
	Prompt string `toml:"prompt,omitempty"`

	// Plain disables styled output and markdown rendering.
	Plain bool `toml:"plain,omitempty"`
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	"storage.driver": {
		get: func(c *Config) string { return c.Storage.Driver },
		set: func(c *Config, v string) error {
			if !slices.Contains(storageutils.Drivers(), v) {
				return fmt.Errorf("invalid value for storage.driver: %q (available: %s)",
					v, strings.Join(storageutils.Drivers(), ", "))
			}
			c.Storage.Driver = v
			return nil
		},
	},
	"storage.path": {
		get: func(c *Config) string { return c.Storage.Path },
		set: func(c *Config, v string) error { c.Storage.Path = v; return nil },
	},
	"storage.dsn": {
		get: func(c *Config) string { return c.Storage.DSN },
		set: func(c *Config, v string) error { c.Storage.DSN = v; return nil },
	},
	"storage.start_empty_on_invalid": {
		get: func(c *Config) string { return strconv.FormatBool(c.Storage.StartEmptyOnInvalid) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid value for storage.start_empty_on_invalid: %w", err)
			}
			c.Storage.StartEmptyOnInvalid = b
			return nil
		},
	},
	"model.identity": {
		get: func(c *Config) string { return c.Model.Identity },
		set: func(c *Config, v string) error {
			if _, err := model.IdentityByName(v); err != nil {
				return fmt.Errorf("invalid value for model.identity: %w", err)
			}
			c.Model.Identity = v
			return nil
		},
	},
	"shell.prompt": {
		get: func(c *Config) string { return c.Shell.Prompt },
		set: func(c *Config, v string) error { c.Shell.Prompt = v; return nil },
	},
	"shell.plain": {
		get: func(c *Config) string { return strconv.FormatBool(c.Shell.Plain) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid value for shell.plain: %w", err)
			}
			c.Shell.Plain = b
			return nil
		},
	},
}
