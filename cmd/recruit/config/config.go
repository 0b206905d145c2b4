// Package configcmder provides the config command for managing persistent
// recruit configuration stored in the .recruit/ directory.
package configcmder

import (
	"github.com/spf13/cobra"
)

const configLongDesc string = `Manage persistent recruit configuration.

Configuration is stored as config.toml in the .recruit/ directory and provides
default values for command flags. CLI flags always take precedence over
config file values, and RECRUIT_* environment variables sit in between.

Keys use dotted notation matching the TOML section structure:
  storage.driver, storage.path, storage.dsn, storage.start_empty_on_invalid,
  model.identity,
  shell.prompt, shell.plain

Use subcommands to get, set, or list configuration values:
  recruit config set <key> <value>    Set a configuration value
  recruit config get <key>            Get a configuration value
  recruit config list                 List all configuration values

Examples:
  recruit config set storage.driver sqlite
  recruit config set model.identity name-phone
  recruit config get storage.driver
  recruit config list`

const configShortDesc string = "Manage persistent recruit configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}
