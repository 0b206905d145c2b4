package shellcmder

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/papercomputeco/recruit/pkg/cliui"
	"github.com/papercomputeco/recruit/pkg/command"
	"github.com/papercomputeco/recruit/pkg/logic"
	"github.com/papercomputeco/recruit/pkg/parser"
)

// LoopOptions configures RunLoop.
type LoopOptions struct {
	In      io.Reader
	Printer *cliui.Printer

	// Prompt is written to PromptW before each line. Nothing is written when
	// PromptW is nil.
	Prompt  string
	PromptW io.Writer

	// StopOnError stops at the first failing line and returns its error.
	StopOnError bool

	Logger *zap.Logger
}

// RunLoop reads command lines from o.In and executes them against session
// until an exit command succeeds or input ends. Failing lines are reported
// and the loop continues. An exit whose save fails does not stop the loop.
// Pending changes at end of input are left to session.Close.
func RunLoop(ctx context.Context, session *logic.Session, o LoopOptions) error {
	logger := o.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	scanner := bufio.NewScanner(o.In)
	for {
		if o.PromptW != nil {
			fmt.Fprint(o.PromptW, o.Prompt)
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		exit, err := runLine(ctx, session, o.Printer, line)
		if err != nil {
			logger.Debug("command line failed", zap.String("line", line), zap.Error(err))
			if o.StopOnError {
				return err
			}
			continue
		}
		if exit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// runLine executes one line and prints its outcome. It reports whether the
// loop should stop.
func runLine(ctx context.Context, session *logic.Session, p *cliui.Printer, line string) (bool, error) {
	result, err := session.Execute(ctx, line)

	var saveErr *logic.SaveError
	switch {
	case errors.As(err, &saveErr):
		p.Feedback(result.Feedback)
		p.Error(err)
		return false, err
	case err != nil:
		p.Error(err)
		return false, err
	}

	if result.ShowHelp {
		p.Markdown(result.Feedback)
		return false, nil
	}

	p.Feedback(result.Feedback)

	switch word, _ := parser.SplitCommandWord(line); word {
	case command.ListWord, command.FindWord:
		p.Persons(session.FilteredPersons())
	}

	return result.Exit, nil
}
