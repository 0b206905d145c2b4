package command

import (
	"fmt"
	"strings"

	"github.com/papercomputeco/recruit/pkg/model"
	"github.com/papercomputeco/recruit/pkg/tag"
)

const (
	AddTagWord  = "add-tag"
	AddTagUsage = AddTagWord + ": Adds tags to the person identified by the index number used in the displayed person list. " +
		"Tags the person already has are reported and left as they are.\n" +
		"Parameters: INDEX (must be a positive integer) t/TAG [t/MORE_TAGS]...\n" +
		"Example: " + AddTagWord + " 1 t/Java t/Senior"

	RemoveTagWord  = "remove-tag"
	RemoveTagUsage = RemoveTagWord + ": Removes tags from the person identified by the index number used in the displayed person list.\n" +
		"Parameters: INDEX (must be a positive integer) t/TAG [t/MORE_TAGS]...\n" +
		"Example: " + RemoveTagWord + " 1 t/Java"

	EditTagWord  = "edit-tag"
	EditTagUsage = EditTagWord + ": Renames a tag of the person identified by the index number used in the displayed person list.\n" +
		"Parameters: INDEX (must be a positive integer) o/OLD_TAG nt/NEW_TAG\n" +
		"Example: " + EditTagWord + " 1 o/Java nt/Golang"

	MessageAddTagSuccess    = "Added tags %s to %s."
	MessageAddTagDuplicates = "%s already had tags %s."
	MessageAllTagsExist     = "%s already has all the tags %s."
	MessageRemoveTagSuccess = "Removed tags %s from %s."
	MessageTagsNotFound     = "%s does not have tags %s."
	MessageEditTagSuccess   = "Edited tag %s to %s for %s."
	MessageEditTagExists    = "%s already has the tag %s."
)

// AddTag adds tags to the person at an index of the filtered list. Only the
// tags the person lacks are added; the rest are reported back.
type AddTag struct {
	Index Index
	Tags  tag.Tags
}

func (c AddTag) Execute(m *model.Model) (Result, error) {
	target, err := targetAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	sep := target.Tags.SeparateNewFromExisting(c.Tags)
	if sep.New.IsEmpty() {
		return Result{}, newError(ErrDuplicateTag, MessageAllTagsExist, target.Name, sep.Duplicate)
	}

	edited := target.WithTags(target.Tags.Combine(sep.New))
	if err := replace(m, target, edited); err != nil {
		return Result{}, err
	}

	feedback := fmt.Sprintf(MessageAddTagSuccess, sep.New, target.Name)
	if !sep.Duplicate.IsEmpty() {
		feedback = strings.Join([]string{
			feedback,
			fmt.Sprintf(MessageAddTagDuplicates, target.Name, sep.Duplicate),
		}, " ")
	}

	return Result{Feedback: feedback}, nil
}

// RemoveTag removes tags from the person at an index of the filtered list.
// Every tag must be present.
type RemoveTag struct {
	Index Index
	Tags  tag.Tags
}

func (c RemoveTag) Execute(m *model.Model) (Result, error) {
	target, err := targetAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	if missing := c.Tags.Exclude(target.Tags); !missing.IsEmpty() {
		return Result{}, newError(ErrTagNotFound, MessageTagsNotFound, target.Name, missing)
	}

	removed := target.Tags.SeparateNewFromExisting(c.Tags).Duplicate
	edited := target.WithTags(target.Tags.Exclude(c.Tags))
	if err := replace(m, target, edited); err != nil {
		return Result{}, err
	}

	return Result{Feedback: fmt.Sprintf(MessageRemoveTagSuccess, removed, target.Name)}, nil
}

// EditTag renames one tag of the person at an index of the filtered list.
type EditTag struct {
	Index Index
	Old   tag.Tag
	New   tag.Tag
}

func (c EditTag) Execute(m *model.Model) (Result, error) {
	target, err := targetAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	current, ok := target.Tags.Get(c.Old)
	if !ok {
		return Result{}, newError(ErrTagNotFound, MessageTagsNotFound, target.Name, tag.Of(c.Old))
	}

	// Respelling a tag with different case is allowed.
	if !c.Old.Equal(c.New) && target.Tags.Contains(c.New) {
		return Result{}, newError(ErrDuplicateTag, MessageEditTagExists, target.Name, c.New)
	}

	edited := target.WithTags(target.Tags.Replace(current, c.New))
	if err := replace(m, target, edited); err != nil {
		return Result{}, err
	}

	return Result{Feedback: fmt.Sprintf(MessageEditTagSuccess, current, c.New, target.Name)}, nil
}
