package parser

import "fmt"

const (
	MessageInvalidCommandFormat = "Invalid command format! \n%s"
	MessageUnknownCommand       = "Unknown command"
	MessageInvalidIndex         = "Index is not a non-zero unsigned integer."
	MessageDuplicateFields      = "Multiple values specified for the following single-valued field(s): %s"
)

// ParseError is returned when command text cannot be turned into a command.
// Message is shown to the user verbatim.
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func invalidFormat(usage string) *ParseError {
	return &ParseError{Message: formatUsage(usage)}
}

func formatUsage(usage string) string {
	return fmt.Sprintf(MessageInvalidCommandFormat, usage)
}

// invalidValue wraps a field validation failure, keeping its constraint text.
func invalidValue(err error) *ParseError {
	return &ParseError{Message: err.Error(), Err: err}
}
