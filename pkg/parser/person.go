package parser

import (
	"strings"

	"github.com/papercomputeco/recruit/pkg/command"
	"github.com/papercomputeco/recruit/pkg/person"
	"github.com/papercomputeco/recruit/pkg/tag"
)

func (s Syntax) parseAdd(args string) (command.Command, error) {
	a := Tokenize(args, s.Name, s.Phone, s.Email, s.Address, s.Comment, s.Tag)

	if a.Preamble() != "" || !a.Has(s.Name) || !a.Has(s.Phone) || !a.Has(s.Email) || !a.Has(s.Address) {
		return nil, invalidFormat(command.AddUsage)
	}
	if err := a.VerifyNoDuplicatePrefixes(s.Name, s.Phone, s.Email, s.Address, s.Comment); err != nil {
		return nil, err
	}

	raw := func(p Prefix) string {
		v, _ := a.Value(p)
		return v
	}

	name, err := person.NewName(raw(s.Name))
	if err != nil {
		return nil, invalidValue(err)
	}
	phone, err := person.NewPhone(raw(s.Phone))
	if err != nil {
		return nil, invalidValue(err)
	}
	email, err := person.NewEmail(raw(s.Email))
	if err != nil {
		return nil, invalidValue(err)
	}
	address, err := person.NewAddress(raw(s.Address))
	if err != nil {
		return nil, invalidValue(err)
	}
	tags, err := tag.Parse(a.AllValues(s.Tag)...)
	if err != nil {
		return nil, invalidValue(err)
	}

	p := person.New(name, phone, email, address, person.NewComment(raw(s.Comment)), tags)
	return command.Add{Person: p}, nil
}

func (s Syntax) parseEdit(args string) (command.Command, error) {
	a := Tokenize(args, s.Name, s.Phone, s.Email, s.Address, s.Comment, s.Tag)

	idx, err := ParseIndex(a.Preamble())
	if err != nil {
		return nil, &ParseError{Message: formatUsage(command.EditUsage), Err: err}
	}
	if err := a.VerifyNoDuplicatePrefixes(s.Name, s.Phone, s.Email, s.Address, s.Comment); err != nil {
		return nil, err
	}

	var d command.EditDescriptor
	if v, ok := a.Value(s.Name); ok {
		name, err := person.NewName(v)
		if err != nil {
			return nil, invalidValue(err)
		}
		d.Name = &name
	}
	if v, ok := a.Value(s.Phone); ok {
		phone, err := person.NewPhone(v)
		if err != nil {
			return nil, invalidValue(err)
		}
		d.Phone = &phone
	}
	if v, ok := a.Value(s.Email); ok {
		email, err := person.NewEmail(v)
		if err != nil {
			return nil, invalidValue(err)
		}
		d.Email = &email
	}
	if v, ok := a.Value(s.Address); ok {
		address, err := person.NewAddress(v)
		if err != nil {
			return nil, invalidValue(err)
		}
		d.Address = &address
	}
	if v, ok := a.Value(s.Comment); ok {
		comment := person.NewComment(v)
		d.Comment = &comment
	}
	if a.Has(s.Tag) {
		tags, err := parseTagsForEdit(a.AllValues(s.Tag))
		if err != nil {
			return nil, invalidValue(err)
		}
		d.Tags = &tags
	}

	if !d.IsAnyFieldEdited() {
		return nil, &ParseError{Message: command.MessageNotEdited, Err: command.ErrNotEdited}
	}

	return command.Edit{Index: idx, Descriptor: d}, nil
}

// parseTagsForEdit treats a single empty "t/" as a request to remove every tag.
func parseTagsForEdit(raws []string) (tag.Tags, error) {
	if len(raws) == 1 && strings.TrimSpace(raws[0]) == "" {
		return tag.Empty(), nil
	}
	return tag.Parse(raws...)
}

func parseDelete(args string) (command.Command, error) {
	idx, err := ParseIndex(args)
	if err != nil {
		return nil, &ParseError{Message: formatUsage(command.DeleteUsage), Err: err}
	}
	return command.Delete{Index: idx}, nil
}

func (s Syntax) parseComment(args string) (command.Command, error) {
	a := Tokenize(args, s.Comment)

	idx, err := ParseIndex(a.Preamble())
	if err != nil || !a.Has(s.Comment) {
		return nil, &ParseError{Message: formatUsage(command.CommentUsage), Err: err}
	}
	if err := a.VerifyNoDuplicatePrefixes(s.Comment); err != nil {
		return nil, err
	}

	v, _ := a.Value(s.Comment)
	return command.Comment{Index: idx, Comment: person.NewComment(v)}, nil
}

func parseHelp(args string) (command.Command, error) {
	word := strings.TrimSpace(args)
	if word == "" {
		return command.Help{}, nil
	}
	if _, ok := command.UsageOf(word); !ok {
		return nil, &ParseError{Message: MessageUnknownCommand + ": " + word + "\n" + command.HelpUsage}
	}
	return command.Help{Word: word}, nil
}
