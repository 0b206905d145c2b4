package parser_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/recruit/pkg/parser"
)

var _ = Describe("Tokenize", func() {
	s := parser.DefaultSyntax()

	It("returns the whole string as preamble when no prefix is present", func() {
		a := parser.Tokenize("  some text  ", s.Name)
		Expect(a.Preamble()).To(Equal("some text"))
		Expect(a.Has(s.Name)).To(BeFalse())
	})

	It("collects repeated prefixes in order", func() {
		a := parser.Tokenize(" 1 t/friend t/boss n/Bob", s.Name, s.Tag)
		Expect(a.Preamble()).To(Equal("1"))
		Expect(a.AllValues(s.Tag)).To(Equal([]string{"friend", "boss"}))
		v, ok := a.Value(s.Name)
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("Bob"))
	})

	It("only recognizes prefixes after whitespace", func() {
		a := parser.Tokenize(" 1 o/java nt/go", s.Tag, s.OldTag, s.NewTag)
		Expect(a.Has(s.Tag)).To(BeFalse())
		Expect(a.AllValues(s.NewTag)).To(Equal([]string{"go"}))

		a = parser.Tokenize(" n/a@t/b.com", s.Name, s.Tag)
		Expect(a.AllValues(s.Name)).To(Equal([]string{"a@t/b.com"}))
	})

	It("keeps empty values", func() {
		a := parser.Tokenize(" 2 t/", s.Tag)
		Expect(a.AllValues(s.Tag)).To(Equal([]string{""}))
	})

	It("reports duplicated single-valued prefixes", func() {
		a := parser.Tokenize(" n/A n/B p/1 p/2", s.Name, s.Phone)
		err := a.VerifyNoDuplicatePrefixes(s.Name, s.Phone)
		Expect(err).To(MatchError(ContainSubstring("n/ p/")))
	})
})
