package parser

import (
	"strings"

	"github.com/papercomputeco/recruit/pkg/command"
	"github.com/papercomputeco/recruit/pkg/model"
	"github.com/papercomputeco/recruit/pkg/person"
	"github.com/papercomputeco/recruit/pkg/tag"
)

// parseFind builds a search from name keywords, tags and field keywords.
// Different prefixes narrow the search together; keywords within one prefix
// widen it.
func (s Syntax) parseFind(args string) (command.Command, error) {
	a := Tokenize(args, s.Name, s.Tag, s.Phone, s.Email, s.Address, s.Comment)
	if a.Preamble() != "" {
		return nil, invalidFormat(command.FindUsage)
	}

	var (
		preds []model.Predicate
		desc  []string
	)

	if a.Has(s.Name) {
		keywords := strings.Fields(strings.Join(a.AllValues(s.Name), " "))
		if len(keywords) == 0 {
			return nil, &ParseError{Message: person.NameConstraints}
		}
		preds = append(preds, model.NameContainsKeywords(keywords...))
		desc = append(desc, "name: "+strings.Join(keywords, " "))
	}

	if a.Has(s.Tag) {
		names := make([]string, 0, len(a.AllValues(s.Tag)))
		for _, raw := range a.AllValues(s.Tag) {
			t, err := tag.New(raw)
			if err != nil {
				return nil, invalidValue(err)
			}
			names = append(names, t.Name())
		}
		preds = append(preds, model.TagContainsKeywords(names...))
		desc = append(desc, "tag: "+strings.Join(names, " "))
	}

	fields := []struct {
		prefix Prefix
		label  string
		field  model.Field
	}{
		{s.Phone, "phone", model.PhoneField},
		{s.Email, "email", model.EmailField},
		{s.Address, "address", model.AddressField},
		{s.Comment, "comment", model.CommentField},
	}
	for _, f := range fields {
		if !a.Has(f.prefix) {
			continue
		}
		keywords := strings.Fields(strings.Join(a.AllValues(f.prefix), " "))
		if len(keywords) == 0 {
			return nil, invalidFormat(command.FindUsage)
		}
		preds = append(preds, model.FieldContainsKeywords(f.field, keywords...))
		desc = append(desc, f.label+": "+strings.Join(keywords, " "))
	}

	if len(preds) == 0 {
		return nil, invalidFormat(command.FindUsage)
	}

	pred := preds[0]
	if len(preds) > 1 {
		pred = model.And(preds...)
	}
	return command.Find{Predicate: pred, Description: strings.Join(desc, "; ")}, nil
}
