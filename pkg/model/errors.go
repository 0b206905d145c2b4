package model

import (
	"errors"

	"github.com/papercomputeco/recruit/pkg/person"
)

// ErrNilPredicate is returned when a nil predicate is applied to the model.
var ErrNilPredicate = errors.New("predicate must not be nil")

// DuplicateError is returned when a record collides with an existing one
// under the model's identity policy.
type DuplicateError struct {
	Person person.Person
}

func (e *DuplicateError) Error() string {
	return "duplicate person: " + string(e.Person.Name)
}

// NotFoundError is returned when a record to replace or remove is absent.
type NotFoundError struct {
	Person person.Person
}

func (e *NotFoundError) Error() string {
	if e.Person.Name == "" {
		return "person not found"
	}
	return "person not found: " + string(e.Person.Name)
}
