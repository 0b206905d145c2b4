// Package recruitcmder
package recruitcmder

import (
	"github.com/spf13/cobra"

	configcmder "github.com/papercomputeco/recruit/cmd/recruit/config"
	execcmder "github.com/papercomputeco/recruit/cmd/recruit/exec"
	initcmder "github.com/papercomputeco/recruit/cmd/recruit/init"
	shellcmder "github.com/papercomputeco/recruit/cmd/recruit/shell"
	versioncmder "github.com/papercomputeco/recruit/cmd/version"
)

const recruitLongDesc string = `Recruit keeps track of the people you are recruiting.

Persons with their contact details, comments and tags are kept in a list that
is saved after every change.

Get started using:
  recruit init         Create a local .recruit/ directory
  recruit shell        Start the interactive shell (default)
  recruit exec "list"  Run commands without the shell`

const recruitShortDesc string = "Recruit - contact and recruitment tracker"

func NewRecruitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "recruit",
		Short:        recruitShortDesc,
		Long:         recruitLongDesc,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Override path to .recruit/ config directory")

	// Add subcommands
	cmd.AddCommand(shellcmder.NewShellCmd())
	cmd.AddCommand(execcmder.NewExecCmd())
	cmd.AddCommand(initcmder.NewInitCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}

// DefaultArgs returns args with the shell subcommand prepended when args
// name no subcommand of root, so a bare "recruit" starts the shell.
func DefaultArgs(root *cobra.Command, args []string) []string {
	for _, a := range args {
		if a == "-h" || a == "--help" {
			return args
		}
	}

	found, _, err := root.Find(args)
	if err != nil || found != root {
		return args
	}
	return append([]string{"shell"}, args...)
}
