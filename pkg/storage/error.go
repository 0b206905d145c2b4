package storage

import "fmt"

// LoadError is returned when saved data exists but cannot be turned into a
// valid model: it is malformed, holds an invalid field, or holds duplicates.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("loading data: %v", e.Err)
	}
	return fmt.Sprintf("loading data from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
