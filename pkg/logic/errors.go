package logic

import "fmt"

// SaveError is returned by Execute when a command succeeded but the model
// could not be written back. The in-memory model keeps the change.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("could not save persons: %v", e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
