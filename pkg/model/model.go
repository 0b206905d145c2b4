// Package model holds the in-memory list of persons and the filtered view the
// user is currently looking at.
//
// A Model is owned by a single goroutine for its whole life. Nothing here
// locks; callers that need concurrent access must serialize it themselves.
package model

import (
	"github.com/papercomputeco/recruit/pkg/person"
)

// Snapshot is a read-only copy of the full person list, as handed to and
// received from storage.
type Snapshot struct {
	Persons []person.Person
}

// Option configures a Model.
type Option func(*Model)

// WithIdentity overrides the duplicate detection policy. Defaults to SameName.
func WithIdentity(fn IdentityFunc) Option {
	return func(m *Model) {
		if fn != nil {
			m.identity = fn
		}
	}
}

// Model is an ordered list of unique persons plus a filtered view derived from
// it by the last applied predicate.
type Model struct {
	identity IdentityFunc

	persons []person.Person

	predicate Predicate
	filtered  []person.Person

	// stale is set by every mutation and cleared when filtered is rebuilt.
	stale bool

	revision uint64
}

// New creates an empty model.
func New(opts ...Option) *Model {
	m := &Model{
		identity:  SameName,
		predicate: ShowAll,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// FromSnapshot creates a model holding the persons in snap. It fails with a
// *DuplicateError if two persons share an identity.
func FromSnapshot(snap Snapshot, opts ...Option) (*Model, error) {
	m := New(opts...)
	if err := m.ResetData(snap); err != nil {
		return nil, err
	}
	return m, nil
}

// ValidateSnapshot checks snap for identity collisions under identity.
func ValidateSnapshot(snap Snapshot, identity IdentityFunc) error {
	_, err := FromSnapshot(snap, WithIdentity(identity))
	return err
}

// ResetData replaces the full list with the persons in snap. The model is left
// unchanged if snap contains duplicates.
func (m *Model) ResetData(snap Snapshot) error {
	next := make([]person.Person, 0, len(snap.Persons))
	for _, p := range snap.Persons {
		for _, existing := range next {
			if m.identity(existing, p) {
				return &DuplicateError{Person: p}
			}
		}
		next = append(next, p)
	}

	m.persons = next
	m.touch()
	return nil
}

// HasPerson reports whether a person with the same identity as p exists.
func (m *Model) HasPerson(p person.Person) bool {
	return m.indexOfIdentity(p, -1) >= 0
}

// AddPerson appends p. It fails with a *DuplicateError if p collides with an
// existing person.
func (m *Model) AddPerson(p person.Person) error {
	if m.HasPerson(p) {
		return &DuplicateError{Person: p}
	}

	m.persons = append(m.persons, p)
	m.touch()
	return nil
}

// DeletePerson removes the record exactly equal to p.
func (m *Model) DeletePerson(p person.Person) error {
	i := m.indexOfExact(p)
	if i < 0 {
		return &NotFoundError{Person: p}
	}

	m.persons = append(m.persons[:i:i], m.persons[i+1:]...)
	m.touch()
	return nil
}

// SetPerson replaces target with edited, keeping its position. target is
// located by exact equality. edited may share target's identity but must not
// collide with any other record.
func (m *Model) SetPerson(target, edited person.Person) error {
	i := m.indexOfExact(target)
	if i < 0 {
		return &NotFoundError{Person: target}
	}

	if m.indexOfIdentity(edited, i) >= 0 {
		return &DuplicateError{Person: edited}
	}

	next := make([]person.Person, len(m.persons))
	copy(next, m.persons)
	next[i] = edited
	m.persons = next
	m.touch()
	return nil
}

// Clear removes every person.
func (m *Model) Clear() {
	m.persons = nil
	m.touch()
}

// UpdateFilteredPersonList replaces the predicate governing the filtered view.
func (m *Model) UpdateFilteredPersonList(pred Predicate) error {
	if pred == nil {
		return ErrNilPredicate
	}

	m.predicate = pred
	m.stale = true
	return nil
}

// FilteredPersons returns the persons matching the current predicate, in list
// order. The returned slice is a copy.
func (m *Model) FilteredPersons() []person.Person {
	if m.stale || m.filtered == nil {
		m.refilter()
	}

	out := make([]person.Person, len(m.filtered))
	copy(out, m.filtered)
	return out
}

// Persons returns a copy of the full list.
func (m *Model) Persons() []person.Person {
	out := make([]person.Person, len(m.persons))
	copy(out, m.persons)
	return out
}

// Len returns the size of the full list.
func (m *Model) Len() int {
	return len(m.persons)
}

// Snapshot returns a copy of the full list for storage.
func (m *Model) Snapshot() Snapshot {
	return Snapshot{Persons: m.Persons()}
}

// Revision increases on every change to the full list. Callers compare
// revisions to decide whether a save is due.
func (m *Model) Revision() uint64 {
	return m.revision
}

func (m *Model) touch() {
	m.revision++
	m.stale = true
}

func (m *Model) refilter() {
	filtered := make([]person.Person, 0, len(m.persons))
	for _, p := range m.persons {
		if m.predicate(p) {
			filtered = append(filtered, p)
		}
	}
	m.filtered = filtered
	m.stale = false
}

func (m *Model) indexOfExact(p person.Person) int {
	for i, existing := range m.persons {
		if person.Equal(existing, p) {
			return i
		}
	}
	return -1
}

// indexOfIdentity finds a record sharing p's identity, skipping index skip.
func (m *Model) indexOfIdentity(p person.Person, skip int) int {
	for i, existing := range m.persons {
		if i != skip && m.identity(existing, p) {
			return i
		}
	}
	return -1
}
