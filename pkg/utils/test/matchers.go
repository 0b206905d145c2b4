package testutils

import (
	"github.com/onsi/gomega/gcustom"
	"github.com/onsi/gomega/types"

	"github.com/papercomputeco/recruit/pkg/person"
)

// EqualPersons succeeds when actual holds persons exactly equal to expected,
// in the same order. Tag sets are compared as sets.
func EqualPersons(expected []person.Person) types.GomegaMatcher {
	return gcustom.MakeMatcher(func(actual []person.Person) (bool, error) {
		if len(actual) != len(expected) {
			return false, nil
		}
		for i := range actual {
			if !person.Equal(actual[i], expected[i]) {
				return false, nil
			}
		}
		return true, nil
	}).WithTemplate("Expected:\n{{.FormattedActual}}\n{{.To}} equal persons\n{{format .Data 1}}", expected)
}
