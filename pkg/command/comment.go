package command

import (
	"fmt"

	"github.com/papercomputeco/recruit/pkg/model"
	"github.com/papercomputeco/recruit/pkg/person"
)

const (
	CommentWord  = "comment"
	CommentUsage = CommentWord + ": Sets the comment of the person identified by the index number used in the displayed person list. " +
		"An empty comment removes it.\n" +
		"Parameters: INDEX (must be a positive integer) c/[COMMENT]\n" +
		"Example: " + CommentWord + " 1 c/Strong in system design."

	MessageAddCommentSuccess    = "Added comment to Person: %s"
	MessageDeleteCommentSuccess = "Removed comment from Person: %s"
)

// Comment sets or clears the comment of the person at an index of the
// filtered list.
type Comment struct {
	Index   Index
	Comment person.Comment
}

func (c Comment) Execute(m *model.Model) (Result, error) {
	target, err := targetAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	edited := target.WithComment(c.Comment)
	if err := replace(m, target, edited); err != nil {
		return Result{}, err
	}

	msg := MessageAddCommentSuccess
	if c.Comment == "" {
		msg = MessageDeleteCommentSuccess
	}
	return Result{Feedback: fmt.Sprintf(msg, person.Format(edited))}, nil
}
