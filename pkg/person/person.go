// Package person defines the immutable person record tracked by recruit.
package person

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/papercomputeco/recruit/pkg/tag"
)

// Person is one contact. Values are never modified in place: the With*
// methods return edited copies and the model swaps the old record out.
type Person struct {
	ID      uuid.UUID
	Name    Name
	Phone   Phone
	Email   Email
	Address Address
	Comment Comment
	Tags    tag.Tags
}

// New creates a person with a fresh ID.
func New(name Name, phone Phone, email Email, address Address, comment Comment, tags tag.Tags) Person {
	return Person{
		ID:      uuid.New(),
		Name:    name,
		Phone:   phone,
		Email:   email,
		Address: address,
		Comment: comment,
		Tags:    tags,
	}
}

// WithName returns a copy of p carrying name.
func (p Person) WithName(name Name) Person {
	p.Name = name
	return p
}

// WithPhone returns a copy of p carrying phone.
func (p Person) WithPhone(phone Phone) Person {
	p.Phone = phone
	return p
}

// WithEmail returns a copy of p carrying email.
func (p Person) WithEmail(email Email) Person {
	p.Email = email
	return p
}

// WithAddress returns a copy of p carrying address.
func (p Person) WithAddress(address Address) Person {
	p.Address = address
	return p
}

// WithTags returns a copy of p carrying tags.
func (p Person) WithTags(tags tag.Tags) Person {
	p.Tags = tags
	return p
}

// WithComment returns a copy of p carrying comment.
func (p Person) WithComment(comment Comment) Person {
	p.Comment = comment
	return p
}

// Equal reports whether a and b are the same record in every field. This is
// the comparison used to locate a record for removal; duplicate detection
// uses the model's identity policy instead.
func Equal(a, b Person) bool {
	return a.ID == b.ID &&
		a.Name == b.Name &&
		a.Phone == b.Phone &&
		a.Email == b.Email &&
		a.Address == b.Address &&
		a.Comment == b.Comment &&
		a.Tags.Equal(b.Tags)
}

// Format renders p for user feedback.
func Format(p Person) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s; Phone: %s; Email: %s; Address: %s", p.Name, p.Phone, p.Email, p.Address)
	if p.Comment != "" {
		fmt.Fprintf(&b, "; Comment: %s", p.Comment)
	}
	b.WriteString("; Tags: ")
	for _, t := range p.Tags.Slice() {
		b.WriteString(t.String())
	}
	return b.String()
}
