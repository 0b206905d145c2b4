package parser

import (
	"github.com/papercomputeco/recruit/pkg/command"
	"github.com/papercomputeco/recruit/pkg/tag"
)

// parseIndexedTags parses "INDEX t/TAG [t/TAG]...".
func (s Syntax) parseIndexedTags(args, usage string) (command.Index, tag.Tags, error) {
	a := Tokenize(args, s.Tag)

	idx, err := ParseIndex(a.Preamble())
	if err != nil || !a.Has(s.Tag) {
		return 0, tag.Tags{}, &ParseError{Message: formatUsage(usage), Err: err}
	}

	tags, err := tag.Parse(a.AllValues(s.Tag)...)
	if err != nil {
		return 0, tag.Tags{}, invalidValue(err)
	}
	return idx, tags, nil
}

func (s Syntax) parseAddTag(args string) (command.Command, error) {
	idx, tags, err := s.parseIndexedTags(args, command.AddTagUsage)
	if err != nil {
		return nil, err
	}
	return command.AddTag{Index: idx, Tags: tags}, nil
}

func (s Syntax) parseRemoveTag(args string) (command.Command, error) {
	idx, tags, err := s.parseIndexedTags(args, command.RemoveTagUsage)
	if err != nil {
		return nil, err
	}
	return command.RemoveTag{Index: idx, Tags: tags}, nil
}

func (s Syntax) parseEditTag(args string) (command.Command, error) {
	a := Tokenize(args, s.OldTag, s.NewTag)

	idx, err := ParseIndex(a.Preamble())
	if err != nil || !a.Has(s.OldTag) || !a.Has(s.NewTag) {
		return nil, &ParseError{Message: formatUsage(command.EditTagUsage), Err: err}
	}
	if err := a.VerifyNoDuplicatePrefixes(s.OldTag, s.NewTag); err != nil {
		return nil, err
	}

	rawOld, _ := a.Value(s.OldTag)
	rawNew, _ := a.Value(s.NewTag)

	oldTag, err := tag.New(rawOld)
	if err != nil {
		return nil, invalidValue(err)
	}
	newTag, err := tag.New(rawNew)
	if err != nil {
		return nil, invalidValue(err)
	}

	return command.EditTag{Index: idx, Old: oldTag, New: newTag}, nil
}
