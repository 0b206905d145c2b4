package parser

// Prefix introduces an argument value, e.g. "n/" in "n/John Doe".
type Prefix string

// Syntax holds the prefix tokens recognized in command arguments.
type Syntax struct {
	Name    Prefix
	Phone   Prefix
	Email   Prefix
	Address Prefix
	Comment Prefix
	Tag     Prefix
	OldTag  Prefix
	NewTag  Prefix
}

// DefaultSyntax returns the standard prefixes used in usage messages.
func DefaultSyntax() Syntax {
	return Syntax{
		Name:    "n/",
		Phone:   "p/",
		Email:   "e/",
		Address: "a/",
		Comment: "c/",
		Tag:     "t/",
		OldTag:  "o/",
		NewTag:  "nt/",
	}
}
