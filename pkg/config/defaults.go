package config

import (
	"github.com/papercomputeco/recruit/pkg/model"
	storageutils "github.com/papercomputeco/recruit/pkg/storage/utils"
)

const (
	defaultStorageDriver = storageutils.DriverJSON
	defaultIdentity      = model.DefaultPolicy
	defaultPrompt        = "> "
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		Storage: StorageConfig{
			Driver: defaultStorageDriver,
		},
		Model: ModelConfig{
			Identity: defaultIdentity,
		},
		Shell: ShellConfig{
			Prompt: defaultPrompt,
		},
	}
}
