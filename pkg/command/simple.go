package command

import (
	"fmt"

	"github.com/papercomputeco/recruit/pkg/model"
)

const (
	ListWord  = "list"
	ListUsage = ListWord + ": Lists all persons."

	ClearWord  = "clear"
	ClearUsage = ClearWord + ": Clears all persons from the list."

	ExitWord  = "exit"
	ExitUsage = ExitWord + ": Saves all changes and exits."

	MessageListSuccess  = "Listed all persons"
	MessageClearSuccess = "All persons have been cleared!"
	MessageExit         = "Exiting as requested ..."
)

// List resets the filtered list to show every person.
type List struct{}

func (List) Execute(m *model.Model) (Result, error) {
	if err := m.UpdateFilteredPersonList(model.ShowAll); err != nil {
		return Result{}, fmt.Errorf("listing persons: %w", err)
	}
	return Result{Feedback: MessageListSuccess}, nil
}

// Clear removes every person.
type Clear struct{}

func (Clear) Execute(m *model.Model) (Result, error) {
	m.Clear()
	return Result{Feedback: MessageClearSuccess}, nil
}

// Exit asks the shell to terminate.
type Exit struct{}

func (Exit) Execute(*model.Model) (Result, error) {
	return Result{Feedback: MessageExit, Exit: true}, nil
}
