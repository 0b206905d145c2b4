// Package command implements the units of work a user can run against the
// model. Each command validates its preconditions against the current model
// state before touching it, so a failed command never leaves a partial edit
// behind.
package command

import (
	"errors"
	"fmt"

	"github.com/papercomputeco/recruit/pkg/model"
	"github.com/papercomputeco/recruit/pkg/person"
)

// Command is a single executable user intent.
type Command interface {
	// Execute applies the command to m. On error m is left unmodified.
	Execute(m *model.Model) (Result, error)
}

// Result is the acknowledgement of a successful command.
type Result struct {
	// Feedback is the message shown to the user.
	Feedback string

	// ShowHelp asks the shell to render Feedback as the help page.
	ShowHelp bool

	// Exit asks the shell to save and stop reading commands.
	Exit bool
}

// Sentinel causes carried by *Error. Match them with errors.Is.
var (
	ErrInvalidIndex    = errors.New("invalid person index")
	ErrDuplicatePerson = errors.New("duplicate person")
	ErrDuplicateTag    = errors.New("duplicate tag")
	ErrTagNotFound     = errors.New("tag not found")
	ErrNotEdited       = errors.New("no field edited")
)

// Error is returned when a command's preconditions do not hold. Message is the
// user-facing text.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(cause error, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Err: cause}
}

// Index is a zero-based position in the filtered person list.
type Index int

// IndexFromOneBased converts the user-facing position n.
func IndexFromOneBased(n int) (Index, error) {
	if n < 1 {
		return 0, fmt.Errorf("index must be a positive integer: %d", n)
	}
	return Index(n - 1), nil
}

// OneBased returns the user-facing position.
func (i Index) OneBased() int {
	return int(i) + 1
}

// targetAt returns the person at i in the filtered list.
func targetAt(m *model.Model, i Index) (person.Person, error) {
	filtered := m.FilteredPersons()
	if i < 0 || int(i) >= len(filtered) {
		return person.Person{}, newError(ErrInvalidIndex, MessageInvalidPersonIndex)
	}
	return filtered[i], nil
}

// replace swaps target for edited, translating model errors.
func replace(m *model.Model, target, edited person.Person) error {
	err := m.SetPerson(target, edited)

	var dup *model.DuplicateError
	if errors.As(err, &dup) {
		return newError(ErrDuplicatePerson, MessageDuplicatePerson)
	}
	if err != nil {
		return fmt.Errorf("updating person: %w", err)
	}
	return nil
}
