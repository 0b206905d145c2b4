package testutils

import (
	"github.com/papercomputeco/recruit/pkg/model"
	"github.com/papercomputeco/recruit/pkg/person"
	"github.com/papercomputeco/recruit/pkg/tag"
)

// PersonBuilder builds persons for tests, starting from a valid default.
type PersonBuilder struct {
	p person.Person
}

// NewPersonBuilder returns a builder seeded with Amy Bee.
func NewPersonBuilder() *PersonBuilder {
	return &PersonBuilder{
		p: person.New("Amy Bee", "85355255", "amy@gmail.com",
			"123, Jurong West Ave 6, #08-111", "", tag.Empty()),
	}
}

// From starts a builder from an existing person, keeping its ID.
func From(p person.Person) *PersonBuilder {
	return &PersonBuilder{p: p}
}

func (b *PersonBuilder) Name(n string) *PersonBuilder {
	b.p.Name = person.Name(n)
	return b
}

func (b *PersonBuilder) Phone(v string) *PersonBuilder {
	b.p.Phone = person.Phone(v)
	return b
}

func (b *PersonBuilder) Email(v string) *PersonBuilder {
	b.p.Email = person.Email(v)
	return b
}

func (b *PersonBuilder) Address(v string) *PersonBuilder {
	b.p.Address = person.Address(v)
	return b
}

func (b *PersonBuilder) Comment(v string) *PersonBuilder {
	b.p.Comment = person.Comment(v)
	return b
}

func (b *PersonBuilder) Tags(names ...string) *PersonBuilder {
	b.p.Tags = tag.MustParse(names...)
	return b
}

func (b *PersonBuilder) Build() person.Person {
	return b.p
}

// TypicalPersons returns a fresh set of three distinct persons.
func TypicalPersons() []person.Person {
	return []person.Person{
		NewPersonBuilder().Name("Alice Pauline").Phone("94351253").
			Email("alice@example.com").Address("123, Jurong West Ave 6, #08-111").
			Tags("friends").Build(),
		NewPersonBuilder().Name("Benson Meier").Phone("98765432").
			Email("johnd@example.com").Address("311, Clementi Ave 2, #02-25").
			Comment("strong backend").Tags("owesMoney", "friends").Build(),
		NewPersonBuilder().Name("Carl Kurz").Phone("95352563").
			Email("heinz@example.com").Address("wall street").Build(),
	}
}

// TypicalModel returns a model holding TypicalPersons.
func TypicalModel() *model.Model {
	m, err := model.FromSnapshot(model.Snapshot{Persons: TypicalPersons()})
	if err != nil {
		panic(err)
	}
	return m
}
