package command

import (
	"fmt"

	"github.com/papercomputeco/recruit/pkg/model"
	"github.com/papercomputeco/recruit/pkg/person"
)

const (
	AddWord  = "add"
	AddUsage = AddWord + ": Adds a person to the list. " +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS [c/COMMENT] [t/TAG]...\n" +
		"Example: " + AddWord + " n/John Doe p/98765432 e/johnd@example.com " +
		"a/311, Clementi Ave 2, #02-25 t/friends t/owesMoney"

	MessageAddSuccess = "New person added: %s"
)

// Add adds a new person.
type Add struct {
	Person person.Person
}

func (c Add) Execute(m *model.Model) (Result, error) {
	if m.HasPerson(c.Person) {
		return Result{}, newError(ErrDuplicatePerson, MessageDuplicatePerson)
	}

	if err := m.AddPerson(c.Person); err != nil {
		return Result{}, fmt.Errorf("adding person: %w", err)
	}

	return Result{Feedback: fmt.Sprintf(MessageAddSuccess, person.Format(c.Person))}, nil
}
