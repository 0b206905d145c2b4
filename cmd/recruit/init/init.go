// Package initcmder provides the init command for initializing a local .recruit
// directory in the current working directory.
package initcmder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/recruit/pkg/cliui"
	"github.com/papercomputeco/recruit/pkg/config"
	"github.com/papercomputeco/recruit/pkg/dotdir"
)

const initLongDesc string = `Initialize a new .recruit/ directory in the current working directory.

Creates a local .recruit/ directory that takes precedence over the default
~/.recruit/ directory for the saved person list and configuration.

A config.toml with default values is written unless one already exists.
Use --preset to pick a storage preset; a preset always rewrites config.toml.

Presets: json, sqlite, memory

Examples:
  recruit init
  recruit init --preset sqlite`

const initShortDesc string = "Initialize a local .recruit/ directory"

const configFile = "config.toml"

type initCommander struct {
	preset string
}

func NewInitCmd() *cobra.Command {
	cmder := &initCommander{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: initShortDesc,
		Long:  initLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmder.run(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&cmder.preset, "preset", "", "Storage preset for config.toml (json, sqlite, memory)")

	return cmd
}

func (c *initCommander) run(w io.Writer) error {
	cfg := config.NewDefaultConfig()
	if c.preset != "" {
		var err error
		cfg, err = config.PresetConfig(c.preset)
		if err != nil {
			return err
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	dir, existed, err := dotdir.NewManager().Init(cwd)
	if err != nil {
		return err
	}

	if existed {
		fmt.Fprintf(w, "Already initialized: %s\n", dir)
	} else {
		fmt.Fprintf(w, "Initialized .recruit directory: %s\n", dir)
	}

	path := filepath.Join(dir, configFile)
	if _, err := os.Stat(path); err == nil && c.preset == "" {
		return nil
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking config: %w", err)
	}

	cfger, err := config.NewConfiger(dir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfger.SaveConfig(cfg); err != nil {
		return err
	}

	fmt.Fprintf(w, "  %s Wrote %s %s\n",
		cliui.SuccessMark,
		path,
		cliui.DimStyle.Render(fmt.Sprintf("(storage: %s)", cfg.Storage.Driver)),
	)
	return nil
}
