// Package shellcmder provides the interactive shell that reads recruit
// commands line by line and keeps the saved person list up to date.
package shellcmder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/papercomputeco/recruit/cmd/recruit/opensession"
	"github.com/papercomputeco/recruit/pkg/cliui"
	"github.com/papercomputeco/recruit/pkg/config"
	"github.com/papercomputeco/recruit/pkg/dotdir"
	"github.com/papercomputeco/recruit/pkg/logger"
	"github.com/papercomputeco/recruit/pkg/logic"
)

const shellLongDesc string = `Start an interactive recruit shell.

Each line is one command. Changes are saved after every command that modifies
the person list and again when the shell exits. Type "help" to see every
command and "exit" to quit.

Logs are written to recruit.log inside the .recruit/ directory. With --debug
they are also written to stderr.

Examples:
  recruit shell
  recruit shell --storage sqlite
  recruit shell --data ./team.json --identity name-or-email`

const shellShortDesc string = "Start the interactive shell"

// LogFile is the name of the shell's log file inside the .recruit directory.
const LogFile = "recruit.log"

type shellCommander struct {
	configDir string
	debug     bool

	// flag targets; values are read back through viper
	driver     string
	dataPath   string
	dsn        string
	identity   string
	prompt     string
	startEmpty bool
	plain      bool

	cfg    *config.Config
	logger *zap.Logger
}

func NewShellCmd() *cobra.Command {
	cmder := &shellCommander{}

	cmd := &cobra.Command{
		Use:   "shell",
		Short: shellShortDesc,
		Long:  shellLongDesc,
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.configDir, err = cmd.Flags().GetString("config-dir")
			if err != nil {
				return fmt.Errorf("could not get config-dir flag: %w", err)
			}

			cmder.cfg, err = opensession.LoadConfig(cmd, cmder.configDir, config.StorageFlags, config.ShellFlags)
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %w", err)
			}

			return cmder.run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	opensession.AddStorageFlags(cmd, &cmder.driver, &cmder.dataPath, &cmder.dsn, &cmder.identity, &cmder.startEmpty)
	config.AddStringFlag(cmd, config.ShellFlags, config.FlagPrompt, &cmder.prompt)
	config.AddBoolFlag(cmd, config.ShellFlags, config.FlagPlain, &cmder.plain)

	return cmd
}

func (c *shellCommander) run(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	closeLog, err := c.initLogger(errOut)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	interactive := isTerminal(in)
	printer := cliui.NewPrinter(out, interactive && !c.cfg.Shell.Plain)

	var session *logic.Session
	open := func() error {
		var err error
		session, err = opensession.Open(ctx, c.cfg, c.configDir, c.logger)
		return err
	}

	if interactive {
		err = cliui.Step(out, "Loading persons", open)
	} else {
		err = open()
	}
	if err != nil {
		return err
	}

	if interactive {
		c.printWelcome(out, len(session.Persons()))
	}

	opts := LoopOptions{
		In:      in,
		Printer: printer,
		Prompt:  c.cfg.Shell.Prompt,
		Logger:  c.logger,
	}
	if interactive {
		opts.PromptW = out
	}

	loopErr := RunLoop(ctx, session, opts)
	closeErr := session.Close(ctx)
	if closeErr != nil {
		printer.Error(closeErr)
	}

	return errors.Join(loopErr, closeErr)
}

// initLogger writes logs to recruit.log in the .recruit directory, and to
// errOut as well in debug mode.
func (c *shellCommander) initLogger(errOut io.Writer) (func() error, error) {
	dir, err := dotdir.NewManager().Target(c.configDir)
	if err != nil {
		return nil, fmt.Errorf("resolving recruit directory: %w", err)
	}

	var writers []io.Writer
	if c.debug {
		writers = append(writers, errOut)
	}

	l, closeFn, err := logger.NewFileLogger(c.debug, filepath.Join(dir, LogFile), writers...)
	if err != nil {
		return nil, err
	}
	c.logger = l
	return closeFn, nil
}

func (c *shellCommander) printWelcome(w io.Writer, count int) {
	fmt.Fprintf(w, "\n  %s %s\n",
		cliui.NameStyle.Render("recruit"),
		cliui.DimStyle.Render(fmt.Sprintf("%d persons loaded (storage: %s)", count, c.cfg.Storage.Driver)),
	)
	fmt.Fprintf(w, "  %s\n\n", cliui.DimStyle.Render(`Type "help" for commands, "exit" to quit.`))
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
