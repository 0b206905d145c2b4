package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/papercomputeco/recruit/pkg/dotdir"
	storageutils "github.com/papercomputeco/recruit/pkg/storage/utils"
)

const (
	configFile = "config.toml"

	// v0 is the alpha version of the config
	v0 = 0

	// CurrentV is the currently supported version, points to v0
	CurrentV = v0
)

// keyOrder lists the config keys in the order of the TOML sections.
var keyOrder = []string{
	"storage.driver",
	"storage.path",
	"storage.dsn",
	"storage.start_empty_on_invalid",
	"model.identity",
	"shell.prompt",
	"shell.plain",
}

// presets maps a preset name to the storage driver it selects.
var presets = map[string]string{
	"json":   storageutils.DriverJSON,
	"sqlite": storageutils.DriverSQLite,
	"memory": storageutils.DriverMemory,
}

// Configer reads and writes config.toml inside a .recruit/ directory.
type Configer struct {
	targetPath string
}

// NewConfiger resolves the .recruit/ directory through dotdir (override
// first) and points the Configer at its config.toml. The file itself does
// not need to exist.
func NewConfiger(override string) (*Configer, error) {
	target, err := dotdir.NewManager().Target(override)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(target, configFile)
	if _, err := os.Stat(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return &Configer{targetPath: path}, nil
}

// ValidConfigKeys returns every supported key in section order.
func ValidConfigKeys() []string {
	return append([]string(nil), keyOrder...)
}

// IsValidConfigKey returns true if the given key is a supported configuration key.
func IsValidConfigKey(key string) bool {
	_, ok := configKeys[key]
	return ok
}

// GetTarget returns the path of config.toml.
func (c *Configer) GetTarget() string {
	return c.targetPath
}

// LoadConfig reads config.toml. A missing file yields NewDefaultConfig();
// keys absent from the file keep their defaults.
func (c *Configer) LoadConfig() (*Config, error) {
	data, err := os.ReadFile(c.targetPath)
	if errors.Is(err, os.ErrNotExist) {
		return NewDefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := ParseConfigTOML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.targetPath, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults fills the zero-value fields of cfg that have a non-zero default.
func applyDefaults(cfg *Config) {
	d := NewDefaultConfig()

	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = d.Storage.Driver
	}
	if cfg.Model.Identity == "" {
		cfg.Model.Identity = d.Model.Identity
	}
	if cfg.Shell.Prompt == "" {
		cfg.Shell.Prompt = d.Shell.Prompt
	}
}

// SaveConfig writes cfg to config.toml, replacing the previous file in one
// rename.
func (c *Configer) SaveConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("cannot save nil config")
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.targetPath), configFile+".*.tmp")
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(cfg); err != nil {
		tmp.Close()
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if err := os.Rename(tmp.Name(), c.targetPath); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// SetConfigValue validates value for key and stores it in config.toml.
func (c *Configer) SetConfigValue(key string, value string) error {
	info, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key: %q", key)
	}

	cfg, err := c.LoadConfig()
	if err != nil {
		return err
	}

	if err := info.set(cfg, value); err != nil {
		return err
	}

	return c.SaveConfig(cfg)
}

// GetConfigValue returns the effective value of key as a string.
func (c *Configer) GetConfigValue(key string) (string, error) {
	info, ok := configKeys[key]
	if !ok {
		return "", fmt.Errorf("unknown config key: %q", key)
	}

	cfg, err := c.LoadConfig()
	if err != nil {
		return "", err
	}

	return info.get(cfg), nil
}

// PresetConfig returns the default config with the storage driver of the
// named preset. Names are case-insensitive.
func PresetConfig(name string) (*Config, error) {
	driver, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown preset: %q (available: %s)", name, strings.Join(ValidPresetNames(), ", "))
	}

	cfg := NewDefaultConfig()
	cfg.Storage.Driver = driver
	return cfg, nil
}

// ValidPresetNames returns the recognized preset names, sorted.
func ValidPresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseConfigTOML decodes raw TOML into a Config. Unknown keys and
// unsupported versions are errors.
func ParseConfigTOML(data []byte) (*Config, error) {
	cfg := &Config{}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config TOML: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	if cfg.Version != CurrentV {
		return nil, fmt.Errorf("unsupported config version %d (expected %d)", cfg.Version, CurrentV)
	}

	return cfg, nil
}
