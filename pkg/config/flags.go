package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flag is the single source of truth for a CLI flag.
// Commands reference flags by registry key rather than hard-coding names,
// shorthands, defaults, and descriptions inline. This prevents flag drift
// when the same logical flag appears on multiple commands (e.g., --storage
// on both "recruit shell" and "recruit exec").
type Flag struct {
	// Name is the long flag name (e.g. "storage").
	Name string

	// Shorthand is the one-letter short flag (e.g. "s"). Empty for no shorthand.
	Shorthand string

	// ViperKey is the dotted config key this flag maps to (e.g. "storage.driver").
	ViperKey string

	// Description is the help text shown in --help output.
	Description string
}

// FlagSet is a mapping of flag names to Flag structs that hold their name,
// shorthand, viper key, etc.
type FlagSet map[string]Flag

// Flag registry keys.
// Use these constants when calling AddStringFlag, AddBoolFlag,
// and BindRegisteredFlags to avoid typos or drift from one command to another.
const (
	FlagStorageDriver = "storage"
	FlagDataPath      = "data"
	FlagDSN           = "dsn"
	FlagStartEmpty    = "start-empty-on-invalid"
	FlagIdentity      = "identity"
	FlagPrompt        = "prompt"
	FlagPlain         = "plain"
)

// StorageFlags are the flags shared by every command that opens the person list.
var StorageFlags = FlagSet{
	FlagStorageDriver: {
		Name:        "storage",
		Shorthand:   "s",
		ViperKey:    "storage.driver",
		Description: "Storage driver (json, sqlite, postgres, memory)",
	},
	FlagDataPath: {
		Name:        "data",
		ViperKey:    "storage.path",
		Description: "Path to the data file (defaults to a file in the .recruit directory)",
	},
	FlagDSN: {
		Name:        "dsn",
		ViperKey:    "storage.dsn",
		Description: "PostgreSQL connection string for the postgres driver",
	},
	FlagStartEmpty: {
		Name:        "start-empty-on-invalid",
		ViperKey:    "storage.start_empty_on_invalid",
		Description: "Start with an empty list when the saved data is invalid",
	},
	FlagIdentity: {
		Name:        "identity",
		ViperKey:    "model.identity",
		Description: "Duplicate detection policy (name, name-exact, name-phone, name-or-email)",
	},
}

// ShellFlags are the flags of the interactive shell.
var ShellFlags = FlagSet{
	FlagPrompt: {
		Name:        "prompt",
		ViperKey:    "shell.prompt",
		Description: "Prompt shown before each command",
	},
	FlagPlain: {
		Name:        "plain",
		ViperKey:    "shell.plain",
		Description: "Disable styled output",
	},
}

// AddStringFlag registers a string flag on cmd from the given FlagSet.
// The flag's name, shorthand, default, and description all come from the
// FlagSet entry so they cannot drift across commands.
func AddStringFlag(cmd *cobra.Command, fs FlagSet, key string, target *string) {
	def, ok := fs[key]
	if !ok {
		return
	}

	defaultVal := defaultString(def.ViperKey)
	if def.Shorthand != "" {
		cmd.Flags().StringVarP(target, def.Name, def.Shorthand, defaultVal, def.Description)
	} else {
		cmd.Flags().StringVar(target, def.Name, defaultVal, def.Description)
	}
}

// AddBoolFlag registers a bool flag on cmd from the given FlagSet.
func AddBoolFlag(cmd *cobra.Command, fs FlagSet, key string, target *bool) {
	def, ok := fs[key]
	if !ok {
		return
	}

	defaultVal := defaultBool(def.ViperKey)
	if def.Shorthand != "" {
		cmd.Flags().BoolVarP(target, def.Name, def.Shorthand, defaultVal, def.Description)
	} else {
		cmd.Flags().BoolVar(target, def.Name, defaultVal, def.Description)
	}
}

// BindRegisteredFlags binds already-registered flags to viper using definitions
// from the given FlagSet. Call this in PreRunE after InitViper to connect flags
// to the viper precedence chain (flag > env > config file > default).
func BindRegisteredFlags(v *viper.Viper, cmd *cobra.Command, fs FlagSet, registryKeys []string) {
	for _, registryKey := range registryKeys {
		def, ok := fs[registryKey]
		if !ok {
			continue
		}

		f := cmd.Flags().Lookup(def.Name)
		if f == nil {
			continue
		}

		_ = v.BindPFlag(def.ViperKey, f)
	}
}

// Keys returns the registry keys of fs.
func (fs FlagSet) Keys() []string {
	keys := make([]string, 0, len(fs))
	for k := range fs {
		keys = append(keys, k)
	}
	return keys
}

// defaultString returns the default string value for a viper key from NewDefaultConfig.
func defaultString(viperKey string) string {
	v := viper.New()
	setViperDefaults(v)
	return v.GetString(viperKey)
}

// defaultBool returns the default bool value for a viper key from NewDefaultConfig.
func defaultBool(viperKey string) bool {
	v := viper.New()
	setViperDefaults(v)
	return v.GetBool(viperKey)
}
