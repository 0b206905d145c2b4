package person

import (
	"regexp"
	"strings"
)

const (
	NameConstraints    = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	PhoneConstraints   = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	EmailConstraints   = "Emails should be of the format local-part@domain, where the domain has at least one period-separated label"
	AddressConstraints = "Addresses can take any values, and it should not be blank"
)

var (
	validName  = regexp.MustCompile(`^[[:alnum:]][[:alnum:] ]*$`)
	validPhone = regexp.MustCompile(`^[0-9]{3,}$`)
	validEmail = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9+_.\-]*@[A-Za-z0-9]([A-Za-z0-9\-]*[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9\-]*[A-Za-z0-9])?)+$`)
)

// Name is a person's full name.
type Name string

// NewName validates raw after trimming.
func NewName(raw string) (Name, error) {
	s := strings.TrimSpace(raw)
	if !validName.MatchString(s) {
		return "", &ValidationError{Field: "name", Value: raw, Constraint: NameConstraints}
	}
	return Name(s), nil
}

// Phone is a numeric phone number.
type Phone string

// NewPhone validates raw after trimming.
func NewPhone(raw string) (Phone, error) {
	s := strings.TrimSpace(raw)
	if !validPhone.MatchString(s) {
		return "", &ValidationError{Field: "phone", Value: raw, Constraint: PhoneConstraints}
	}
	return Phone(s), nil
}

// Email is a contact email address.
type Email string

// NewEmail validates raw after trimming.
func NewEmail(raw string) (Email, error) {
	s := strings.TrimSpace(raw)
	if !validEmail.MatchString(s) {
		return "", &ValidationError{Field: "email", Value: raw, Constraint: EmailConstraints}
	}
	return Email(s), nil
}

// Address is a free-form postal address.
type Address string

// NewAddress validates raw after trimming.
func NewAddress(raw string) (Address, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", &ValidationError{Field: "address", Value: raw, Constraint: AddressConstraints}
	}
	return Address(s), nil
}

// Comment is an optional free-form note. An empty comment means none.
type Comment string

// NewComment trims raw. Every value is accepted.
func NewComment(raw string) Comment {
	return Comment(strings.TrimSpace(raw))
}

// ValidationError reports a field value that failed its format check.
type ValidationError struct {
	Field      string
	Value      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return e.Constraint
}
