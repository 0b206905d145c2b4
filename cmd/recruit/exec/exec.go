// Package execcmder provides the exec command, which runs recruit commands
// non-interactively and saves the result.
package execcmder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papercomputeco/recruit/cmd/recruit/opensession"
	shellcmder "github.com/papercomputeco/recruit/cmd/recruit/shell"
	"github.com/papercomputeco/recruit/pkg/cliui"
	"github.com/papercomputeco/recruit/pkg/config"
	"github.com/papercomputeco/recruit/pkg/logger"
)

const execLongDesc string = `Run one or more recruit commands without starting the shell.

Each argument is one command line. With no arguments, command lines are read
from stdin, one per line. Changes are saved after every command that modifies
the person list.

By default exec stops at the first failing command and exits non-zero.
Use --keep-going to report failures and continue with the next line.

Examples:
  recruit exec "add n/Alice Tan p/98765432 e/alice@example.com a/1 Main St"
  recruit exec "find t/friend"
  cat commands.txt | recruit exec --keep-going`

const execShortDesc string = "Run recruit commands non-interactively"

type execCommander struct {
	configDir string
	debug     bool
	keepGoing bool

	driver     string
	dataPath   string
	dsn        string
	identity   string
	startEmpty bool

	cfg    *config.Config
	logger *zap.Logger
}

func NewExecCmd() *cobra.Command {
	cmder := &execCommander{}

	cmd := &cobra.Command{
		Use:   "exec [command]...",
		Short: execShortDesc,
		Long:  execLongDesc,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.configDir, err = cmd.Flags().GetString("config-dir")
			if err != nil {
				return fmt.Errorf("could not get config-dir flag: %w", err)
			}

			cmder.cfg, err = opensession.LoadConfig(cmd, cmder.configDir, config.StorageFlags)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %w", err)
			}

			in := cmd.InOrStdin()
			if len(args) > 0 {
				in = strings.NewReader(strings.Join(args, "\n"))
			}

			return cmder.run(cmd.Context(), in, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	opensession.AddStorageFlags(cmd, &cmder.driver, &cmder.dataPath, &cmder.dsn, &cmder.identity, &cmder.startEmpty)
	cmd.Flags().BoolVarP(&cmder.keepGoing, "keep-going", "k", false, "Continue after a failing command")

	return cmd
}

func (c *execCommander) run(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	c.logger = logger.NewLoggerWithWriters(c.debug, errOut)
	defer func() { _ = c.logger.Sync() }()

	session, err := opensession.Open(ctx, c.cfg, c.configDir, c.logger)
	if err != nil {
		return err
	}

	loopErr := shellcmder.RunLoop(ctx, session, shellcmder.LoopOptions{
		In:          in,
		Printer:     cliui.NewPrinter(out, false),
		StopOnError: !c.keepGoing,
		Logger:      c.logger,
	})

	return errors.Join(loopErr, session.Close(ctx))
}
