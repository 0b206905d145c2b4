package command

import (
	"fmt"

	"github.com/papercomputeco/recruit/pkg/model"
	"github.com/papercomputeco/recruit/pkg/person"
)

const (
	DeleteWord  = "delete"
	DeleteUsage = DeleteWord + ": Deletes the person identified by the index number used in the displayed person list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + DeleteWord + " 1"

	MessageDeleteSuccess = "Deleted Person: %s"
)

// Delete removes the person at an index of the filtered list.
type Delete struct {
	Index Index
}

func (c Delete) Execute(m *model.Model) (Result, error) {
	target, err := targetAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	if err := m.DeletePerson(target); err != nil {
		return Result{}, fmt.Errorf("deleting person: %w", err)
	}

	return Result{Feedback: fmt.Sprintf(MessageDeleteSuccess, person.Format(target))}, nil
}
