package command

import (
	"fmt"

	"github.com/papercomputeco/recruit/pkg/model"
)

const (
	FindWord  = "find"
	FindUsage = FindWord + ": Finds all persons whose names or tags contain any of the specified keywords " +
		"(case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: n/KEYWORD [MORE_KEYWORDS]... or t/TAG [t/MORE_TAGS]... " +
		"(also p/ e/ a/ c/ for phone, email, address and comment)\n" +
		"Example: " + FindWord + " n/alice bob charlie"
)

// Find narrows the filtered list to persons matching Predicate.
type Find struct {
	Predicate model.Predicate

	// Description names the search for logs and tests.
	Description string
}

func (c Find) Execute(m *model.Model) (Result, error) {
	if err := m.UpdateFilteredPersonList(c.Predicate); err != nil {
		return Result{}, fmt.Errorf("applying search %q: %w", c.Description, err)
	}

	return Result{Feedback: fmt.Sprintf(MessagePersonsListed, len(m.FilteredPersons()))}, nil
}
