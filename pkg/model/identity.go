package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/papercomputeco/recruit/pkg/person"
)

// IdentityFunc decides whether two records describe the same person. It is
// used for duplicate detection only; removal uses person.Equal.
type IdentityFunc func(a, b person.Person) bool

// Identity policy names accepted by IdentityByName and the model.identity
// config key.
const (
	PolicyName         = "name"
	PolicyNameExact    = "name-exact"
	PolicyNameAndPhone = "name-phone"
	PolicyNameOrEmail  = "name-or-email"

	DefaultPolicy = PolicyName
)

var identities = map[string]IdentityFunc{
	PolicyName:         SameName,
	PolicyNameExact:    SameNameExact,
	PolicyNameAndPhone: SameNameAndPhone,
	PolicyNameOrEmail:  SameNameOrEmail,
}

// IdentityByName returns the identity policy registered under policy.
func IdentityByName(policy string) (IdentityFunc, error) {
	fn, ok := identities[strings.ToLower(strings.TrimSpace(policy))]
	if !ok {
		return nil, fmt.Errorf("unknown identity policy: %q (available: %s)",
			policy, strings.Join(IdentityPolicies(), ", "))
	}
	return fn, nil
}

// IdentityPolicies returns the registered policy names in sorted order.
func IdentityPolicies() []string {
	names := make([]string, 0, len(identities))
	for n := range identities {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// SameName matches names case-insensitively with runs of whitespace collapsed.
func SameName(a, b person.Person) bool {
	return foldName(a.Name) == foldName(b.Name)
}

// SameNameExact matches names byte for byte.
func SameNameExact(a, b person.Person) bool {
	return a.Name == b.Name
}

// SameNameAndPhone requires both the folded name and the phone to match.
func SameNameAndPhone(a, b person.Person) bool {
	return SameName(a, b) && a.Phone == b.Phone
}

// SameNameOrEmail matches on the folded name or a case-insensitive email.
func SameNameOrEmail(a, b person.Person) bool {
	return SameName(a, b) || strings.EqualFold(string(a.Email), string(b.Email))
}

func foldName(n person.Name) string {
	return strings.ToLower(strings.Join(strings.Fields(string(n)), " "))
}
