// Package logic ties the parser, the model and a storage driver together.
// A Session is the single owner of the live model: it parses a command
// line, executes it and writes the model back whenever it changed.
package logic

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/papercomputeco/recruit/pkg/command"
	"github.com/papercomputeco/recruit/pkg/model"
	"github.com/papercomputeco/recruit/pkg/parser"
	"github.com/papercomputeco/recruit/pkg/person"
	"github.com/papercomputeco/recruit/pkg/storage"
)

// Options configures a Session.
type Options struct {
	// Identity is the duplicate detection policy of the model.
	Identity model.IdentityFunc

	// Parser turns command lines into commands. Defaults to parser.New().
	Parser *parser.Parser

	// StartEmptyOnInvalidData starts with an empty model when the saved data
	// is invalid instead of failing Open. The invalid data is overwritten on
	// the next save.
	StartEmptyOnInvalidData bool
}

// Session is the orchestration context: it holds the live model and the
// driver it is persisted with.
type Session struct {
	model  *model.Model
	parser *parser.Parser
	driver storage.Driver
	logger *zap.Logger

	startEmptyOnInvalidData bool

	// savedRevision is the model revision last known to match storage.
	savedRevision uint64
}

// NewSession creates a session with an empty model. Call Open to load the
// saved persons.
func NewSession(driver storage.Driver, logger *zap.Logger, opts Options) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	identity := opts.Identity
	if identity == nil {
		identity = model.SameName
	}
	p := opts.Parser
	if p == nil {
		p = parser.New()
	}

	m := model.New(model.WithIdentity(identity))
	return &Session{
		model:                   m,
		parser:                  p,
		driver:                  driver,
		logger:                  logger,
		startEmptyOnInvalidData: opts.StartEmptyOnInvalidData,
		savedRevision:           m.Revision(),
	}
}

// Open replaces the model with the saved persons. Nothing saved yet leaves
// the model empty.
func (s *Session) Open(ctx context.Context) error {
	snap, err := s.driver.Load(ctx)
	if err != nil {
		var loadErr *storage.LoadError
		if s.startEmptyOnInvalidData && errors.As(err, &loadErr) {
			s.logger.Warn("saved data is invalid, starting with an empty list", zap.Error(err))
			s.model.Clear()
			s.savedRevision = s.model.Revision()
			return nil
		}
		s.logger.Error("could not load persons", zap.Error(err))
		return fmt.Errorf("could not load persons: %w", err)
	}

	if snap == nil {
		s.logger.Debug("no saved persons, starting empty")
		s.savedRevision = s.model.Revision()
		return nil
	}

	if err := s.model.ResetData(*snap); err != nil {
		return fmt.Errorf("could not load persons: %w", err)
	}
	s.savedRevision = s.model.Revision()

	s.logger.Debug("opened session", zap.Int("persons", s.model.Len()))
	return nil
}

// Execute parses and runs line. When the command changes the model, or asks
// to exit, the model is saved before Execute returns. A failed save is
// reported as *SaveError alongside the successful Result.
func (s *Session) Execute(ctx context.Context, line string) (command.Result, error) {
	cmd, err := s.parser.Parse(line)
	if err != nil {
		s.logger.Debug("could not parse command", zap.String("line", line), zap.Error(err))
		return command.Result{}, err
	}

	result, err := cmd.Execute(s.model)
	if err != nil {
		s.logger.Debug("command failed", zap.String("line", line), zap.Error(err))
		return command.Result{}, err
	}

	s.logger.Debug("command executed",
		zap.String("line", line),
		zap.Uint64("revision", s.model.Revision()),
		zap.Bool("exit", result.Exit),
	)

	if result.Exit || s.Dirty() {
		if err := s.Save(ctx); err != nil {
			return result, err
		}
	}
	return result, nil
}

// Save writes the full model to storage.
func (s *Session) Save(ctx context.Context) error {
	revision := s.model.Revision()
	if err := s.driver.Save(ctx, s.model.Snapshot()); err != nil {
		s.logger.Error("could not save persons", zap.Error(err))
		return &SaveError{Err: err}
	}

	s.savedRevision = revision
	s.logger.Debug("saved persons", zap.Int("persons", s.model.Len()))
	return nil
}

// Dirty reports whether the model changed since it was last loaded or saved.
func (s *Session) Dirty() bool {
	return s.model.Revision() != s.savedRevision
}

// FilteredPersons returns the persons currently shown.
func (s *Session) FilteredPersons() []person.Person {
	return s.model.FilteredPersons()
}

// Persons returns every person.
func (s *Session) Persons() []person.Person {
	return s.model.Persons()
}

// Close saves pending changes and closes the driver. The driver is closed
// even if the save fails.
func (s *Session) Close(ctx context.Context) error {
	var saveErr error
	if s.Dirty() {
		saveErr = s.Save(ctx)
	}
	if err := s.driver.Close(); err != nil {
		return errors.Join(saveErr, fmt.Errorf("closing storage: %w", err))
	}
	return saveErr
}
