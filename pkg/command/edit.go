package command

import (
	"fmt"

	"github.com/papercomputeco/recruit/pkg/model"
	"github.com/papercomputeco/recruit/pkg/person"
	"github.com/papercomputeco/recruit/pkg/tag"
)

const (
	EditWord  = "edit"
	EditUsage = EditWord + ": Edits the details of the person identified by the index number used in the displayed person list. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [c/COMMENT] [t/TAG]...\n" +
		"Example: " + EditWord + " 1 p/91234567 e/johndoe@example.com"

	MessageEditSuccess = "Edited Person: %s"
	MessageNotEdited   = "At least one field to edit must be provided."
)

// EditDescriptor holds the fields to overwrite. Nil fields keep the current
// value. A non-nil Tags replaces every tag of the person.
type EditDescriptor struct {
	Name    *person.Name
	Phone   *person.Phone
	Email   *person.Email
	Address *person.Address
	Comment *person.Comment
	Tags    *tag.Tags
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil ||
		d.Address != nil || d.Comment != nil || d.Tags != nil
}

// Apply returns p with the descriptor's fields overwritten.
func (d EditDescriptor) Apply(p person.Person) person.Person {
	if d.Name != nil {
		p = p.WithName(*d.Name)
	}
	if d.Phone != nil {
		p = p.WithPhone(*d.Phone)
	}
	if d.Email != nil {
		p = p.WithEmail(*d.Email)
	}
	if d.Address != nil {
		p = p.WithAddress(*d.Address)
	}
	if d.Comment != nil {
		p = p.WithComment(*d.Comment)
	}
	if d.Tags != nil {
		p = p.WithTags(*d.Tags)
	}
	return p
}

// Edit overwrites fields of the person at an index of the filtered list.
type Edit struct {
	Index      Index
	Descriptor EditDescriptor
}

func (c Edit) Execute(m *model.Model) (Result, error) {
	if !c.Descriptor.IsAnyFieldEdited() {
		return Result{}, newError(ErrNotEdited, MessageNotEdited)
	}

	target, err := targetAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	edited := c.Descriptor.Apply(target)
	if err := replace(m, target, edited); err != nil {
		return Result{}, err
	}

	return Result{Feedback: fmt.Sprintf(MessageEditSuccess, person.Format(edited))}, nil
}
