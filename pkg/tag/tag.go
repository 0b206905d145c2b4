// Package tag provides case-insensitive person tags and the immutable Tags set
// used to attach them to person records.
package tag

import (
	"regexp"
	"strings"
)

// MessageConstraints describes the accepted tag format.
const MessageConstraints = "Tag names should be alphanumeric and must not be blank"

var validTag = regexp.MustCompile(`^[[:alnum:]]+$`)

// Tag is a single case-insensitive label. Its original spelling is kept for
// display while comparisons use the lower-cased key.
type Tag struct {
	name string
}

// New validates raw and returns the Tag it names. Surrounding whitespace is
// trimmed before validation.
func New(raw string) (Tag, error) {
	name := strings.TrimSpace(raw)
	if !IsValid(name) {
		return Tag{}, &ValidationError{Value: raw}
	}

	return Tag{name: name}, nil
}

// MustNew is New for literals known to be valid. It panics on invalid input.
func MustNew(raw string) Tag {
	t, err := New(raw)
	if err != nil {
		panic(err)
	}
	return t
}

// IsValid reports whether name satisfies the tag format.
func IsValid(name string) bool {
	return validTag.MatchString(name)
}

// Name returns the tag as it was spelled when constructed.
func (t Tag) Name() string {
	return t.name
}

// Key returns the case-folded form used for equality and hashing.
func (t Tag) Key() string {
	return strings.ToLower(t.name)
}

// Equal reports whether t and other name the same tag, ignoring case.
func (t Tag) Equal(other Tag) bool {
	return t.Key() == other.Key()
}

func (t Tag) String() string {
	return "[" + t.name + "]"
}

// ValidationError is returned when a raw string is not a valid tag.
type ValidationError struct {
	Value string
}

func (e *ValidationError) Error() string {
	return MessageConstraints
}
