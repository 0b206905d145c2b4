package model

import (
	"strings"

	"github.com/papercomputeco/recruit/pkg/person"
)

// Predicate selects the persons shown in the filtered list.
type Predicate func(p person.Person) bool

// ShowAll is the default predicate.
func ShowAll(person.Person) bool { return true }

// NameContainsKeywords matches persons with a name word equal to any keyword,
// ignoring case.
func NameContainsKeywords(keywords ...string) Predicate {
	return func(p person.Person) bool {
		return anyWordMatches(string(p.Name), keywords)
	}
}

// TagContainsKeywords matches persons carrying any of the keywords as a tag.
func TagContainsKeywords(keywords ...string) Predicate {
	return func(p person.Person) bool {
		for _, t := range p.Tags.Slice() {
			for _, k := range keywords {
				if strings.EqualFold(t.Name(), k) {
					return true
				}
			}
		}
		return false
	}
}

// Field selects a text field of a person for FieldContainsKeywords.
type Field func(p person.Person) string

// Selectable fields.
var (
	PhoneField   Field = func(p person.Person) string { return string(p.Phone) }
	EmailField   Field = func(p person.Person) string { return string(p.Email) }
	AddressField Field = func(p person.Person) string { return string(p.Address) }
	CommentField Field = func(p person.Person) string { return string(p.Comment) }
)

// FieldContainsKeywords matches persons whose field contains any keyword as a
// case-insensitive substring.
func FieldContainsKeywords(field Field, keywords ...string) Predicate {
	return func(p person.Person) bool {
		value := strings.ToLower(field(p))
		for _, k := range keywords {
			if k != "" && strings.Contains(value, strings.ToLower(k)) {
				return true
			}
		}
		return false
	}
}

// And matches when every predicate matches.
func And(preds ...Predicate) Predicate {
	return func(p person.Person) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}

// Or matches when any predicate matches.
func Or(preds ...Predicate) Predicate {
	return func(p person.Person) bool {
		for _, pred := range preds {
			if pred(p) {
				return true
			}
		}
		return false
	}
}

func anyWordMatches(text string, keywords []string) bool {
	for _, word := range strings.Fields(text) {
		for _, k := range keywords {
			if strings.EqualFold(word, k) {
				return true
			}
		}
	}
	return false
}
