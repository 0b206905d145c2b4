package command_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/recruit/pkg/command"
	"github.com/papercomputeco/recruit/pkg/model"
	"github.com/papercomputeco/recruit/pkg/person"
	"github.com/papercomputeco/recruit/pkg/tag"
	testutils "github.com/papercomputeco/recruit/pkg/utils/test"
)

func ptr[T any](v T) *T { return &v }

var _ = Describe("Add", func() {
	It("adds a person to an empty model", func() {
		m := model.New()
		p := testutils.NewPersonBuilder().Tags("friend").Build()

		res, err := command.Add{Person: p}.Execute(m)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Feedback).To(ContainSubstring("New person added: Amy Bee"))

		filtered := m.FilteredPersons()
		Expect(filtered).To(HaveLen(1))
		Expect(filtered[0].Tags.Names()).To(Equal([]string{"friend"}))
	})

	It("rejects a duplicate", func() {
		m := testutils.TypicalModel()
		dup := testutils.NewPersonBuilder().Name("Alice Pauline").Build()
		expectFailure(command.Add{Person: dup}, m, command.ErrDuplicatePerson)
	})
})

var _ = Describe("Delete", func() {
	It("deletes by filtered index", func() {
		m := testutils.TypicalModel()
		Expect(m.UpdateFilteredPersonList(model.NameContainsKeywords("Carl"))).To(Succeed())

		res, err := command.Delete{Index: 0}.Execute(m)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Feedback).To(HavePrefix("Deleted Person: Carl Kurz"))
		Expect(m.Len()).To(Equal(2))
	})

	It("fails on an out-of-range index and keeps the model", func() {
		m := model.New()
		Expect(m.AddPerson(testutils.NewPersonBuilder().Build())).To(Succeed())

		expectFailure(command.Delete{Index: 1}, m, command.ErrInvalidIndex)
		Expect(m.Len()).To(Equal(1))
	})

	It("checks bounds against the filtered list, not the full list", func() {
		m := testutils.TypicalModel()
		Expect(m.UpdateFilteredPersonList(model.NameContainsKeywords("Carl"))).To(Succeed())
		expectFailure(command.Delete{Index: 1}, m, command.ErrInvalidIndex)
	})
})

var _ = Describe("EditDescriptor", func() {
	It("overwrites only the set fields and leaves the input alone", func() {
		p := testutils.NewPersonBuilder().Tags("friend").Build()
		d := command.EditDescriptor{
			Email:   ptr(person.Email("new@example.com")),
			Address: ptr(person.Address("2 New Road")),
			Comment: ptr(person.Comment("call back")),
		}

		edited := d.Apply(p)
		Expect(edited.Email).To(Equal(person.Email("new@example.com")))
		Expect(edited.Address).To(Equal(person.Address("2 New Road")))
		Expect(edited.Comment).To(Equal(person.Comment("call back")))
		Expect(edited.Name).To(Equal(p.Name))
		Expect(edited.Phone).To(Equal(p.Phone))
		Expect(edited.ID).To(Equal(p.ID))
		Expect(edited.Tags.Names()).To(Equal([]string{"friend"}))

		Expect(p.Email).NotTo(Equal(person.Email("new@example.com")))
	})
})

var _ = Describe("Edit", func() {
	It("overwrites only the given fields", func() {
		m := testutils.TypicalModel()
		before := m.Persons()[0]

		res, err := command.Edit{
			Index:      0,
			Descriptor: command.EditDescriptor{Phone: ptr(person.Phone("11111111"))},
		}.Execute(m)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Feedback).To(HavePrefix("Edited Person: Alice Pauline; Phone: 11111111"))

		after := m.Persons()[0]
		Expect(after.ID).To(Equal(before.ID))
		Expect(after.Email).To(Equal(before.Email))
		Expect(after.Tags.Equal(before.Tags)).To(BeTrue())
	})

	It("replaces all tags when tags are given", func() {
		m := testutils.TypicalModel()
		_, err := command.Edit{
			Index:      1,
			Descriptor: command.EditDescriptor{Tags: ptr(tag.Empty())},
		}.Execute(m)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Persons()[1].Tags.IsEmpty()).To(BeTrue())
	})

	It("allows keeping the same name", func() {
		m := testutils.TypicalModel()
		_, err := command.Edit{
			Index:      0,
			Descriptor: command.EditDescriptor{Name: ptr(person.Name("alice pauline"))},
		}.Execute(m)
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects an edit colliding with another person", func() {
		m := testutils.TypicalModel()
		cmd := command.Edit{
			Index:      0,
			Descriptor: command.EditDescriptor{Name: ptr(person.Name("Benson Meier"))},
		}
		expectFailure(cmd, m, command.ErrDuplicatePerson)
	})

	It("rejects an empty descriptor", func() {
		expectFailure(command.Edit{Index: 0}, testutils.TypicalModel(), command.ErrNotEdited)
	})

	It("rejects an invalid index", func() {
		cmd := command.Edit{Index: 9, Descriptor: command.EditDescriptor{Phone: ptr(person.Phone("123"))}}
		expectFailure(cmd, testutils.TypicalModel(), command.ErrInvalidIndex)
	})
})

var _ = Describe("Find and List", func() {
	It("filters and reports the count", func() {
		m := testutils.TypicalModel()
		res, err := command.Find{
			Predicate:   model.TagContainsKeywords("friends"),
			Description: "tags: friends",
		}.Execute(m)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Feedback).To(Equal("2 persons listed!"))
		Expect(m.FilteredPersons()).To(HaveLen(2))

		res, err = command.List{}.Execute(m)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Feedback).To(Equal(command.MessageListSuccess))
		Expect(m.FilteredPersons()).To(HaveLen(3))
	})

	It("fails on a nil predicate", func() {
		_, err := command.Find{}.Execute(testutils.TypicalModel())
		Expect(err).To(MatchError(model.ErrNilPredicate))
	})
})

var _ = Describe("Clear, Exit and Help", func() {
	It("clears every person", func() {
		m := testutils.TypicalModel()
		res, err := command.Clear{}.Execute(m)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Feedback).To(Equal(command.MessageClearSuccess))
		Expect(m.Len()).To(Equal(0))
	})

	It("only exit requests termination", func() {
		res, err := command.Exit{}.Execute(model.New())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Exit).To(BeTrue())

		res, err = command.List{}.Execute(model.New())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Exit).To(BeFalse())
	})

	It("shows every command in help", func() {
		res, err := command.Help{}.Execute(model.New())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.ShowHelp).To(BeTrue())
		for _, u := range command.Usages {
			Expect(res.Feedback).To(ContainSubstring("## " + u.Word))
		}
	})

	It("shows one command in help", func() {
		res, err := command.Help{Word: command.AddTagWord}.Execute(model.New())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Feedback).To(HavePrefix("## add-tag"))
		Expect(res.Feedback).NotTo(ContainSubstring("## delete"))
	})
})

var _ = Describe("AddTag", func() {
	var (
		m *model.Model
		p person.Person
	)

	BeforeEach(func() {
		m = model.New()
		p = testutils.NewPersonBuilder().Name("Pat").Tags("friend", "colleague").Build()
		Expect(m.AddPerson(p)).To(Succeed())
	})

	It("adds only new tags and reports duplicates", func() {
		res, err := command.AddTag{Index: 0, Tags: tag.MustParse("friend", "boss")}.Execute(m)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Feedback).To(Equal(`Added tags ["boss"] to Pat. Pat already had tags ["friend"].`))

		Expect(m.Persons()[0].Tags.Names()).To(Equal([]string{"boss", "colleague", "friend"}))
	})

	It("omits the duplicate clause when every tag is new", func() {
		res, err := command.AddTag{Index: 0, Tags: tag.MustParse("boss")}.Execute(m)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Feedback).To(Equal(`Added tags ["boss"] to Pat.`))
	})

	It("fails when every tag already exists", func() {
		expectFailure(command.AddTag{Index: 0, Tags: tag.MustParse("FRIEND")}, m, command.ErrDuplicateTag)
	})

	It("fails on an invalid index", func() {
		expectFailure(command.AddTag{Index: 3, Tags: tag.MustParse("boss")}, m, command.ErrInvalidIndex)
	})
})

var _ = Describe("RemoveTag", func() {
	var m *model.Model

	BeforeEach(func() {
		m = model.New()
		p := testutils.NewPersonBuilder().Name("Pat").Tags("friend", "colleague").Build()
		Expect(m.AddPerson(p)).To(Succeed())
	})

	It("removes present tags", func() {
		res, err := command.RemoveTag{Index: 0, Tags: tag.MustParse("FRIEND")}.Execute(m)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Feedback).To(Equal(`Removed tags ["friend"] from Pat.`))
		Expect(m.Persons()[0].Tags.Names()).To(Equal([]string{"colleague"}))
	})

	It("fails when any tag is missing", func() {
		cmd := command.RemoveTag{Index: 0, Tags: tag.MustParse("friend", "boss")}
		expectFailure(cmd, m, command.ErrTagNotFound)
	})
})

var _ = Describe("EditTag", func() {
	var m *model.Model

	BeforeEach(func() {
		m = model.New()
		p := testutils.NewPersonBuilder().Name("Pat").Tags("Java", "colleague").Build()
		Expect(m.AddPerson(p)).To(Succeed())
	})

	It("renames a tag", func() {
		res, err := command.EditTag{Index: 0, Old: tag.MustNew("java"), New: tag.MustNew("Golang")}.Execute(m)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Feedback).To(Equal("Edited tag [Java] to [Golang] for Pat."))
		Expect(m.Persons()[0].Tags.Names()).To(Equal([]string{"colleague", "Golang"}))
	})

	It("allows changing the case of a tag", func() {
		_, err := command.EditTag{Index: 0, Old: tag.MustNew("Java"), New: tag.MustNew("JAVA")}.Execute(m)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Persons()[0].Tags.Names()).To(ContainElement("JAVA"))
	})

	It("fails when the old tag is missing", func() {
		cmd := command.EditTag{Index: 0, Old: tag.MustNew("Rust"), New: tag.MustNew("Go")}
		expectFailure(cmd, m, command.ErrTagNotFound)
	})

	It("fails when the new tag already exists", func() {
		cmd := command.EditTag{Index: 0, Old: tag.MustNew("Java"), New: tag.MustNew("Colleague")}
		expectFailure(cmd, m, command.ErrDuplicateTag)
	})
})

var _ = Describe("Comment", func() {
	It("sets and clears a comment", func() {
		m := testutils.TypicalModel()

		res, err := command.Comment{Index: 0, Comment: "Great fit"}.Execute(m)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Feedback).To(HavePrefix("Added comment to Person: Alice Pauline"))
		Expect(m.Persons()[0].Comment).To(Equal(person.Comment("Great fit")))

		res, err = command.Comment{Index: 0}.Execute(m)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Feedback).To(HavePrefix("Removed comment from Person"))
		Expect(m.Persons()[0].Comment).To(BeEmpty())
	})
})

var _ = Describe("Index", func() {
	It("converts from one-based input", func() {
		i, err := command.IndexFromOneBased(3)
		Expect(err).NotTo(HaveOccurred())
		Expect(i).To(Equal(command.Index(2)))
		Expect(i.OneBased()).To(Equal(3))

		_, err = command.IndexFromOneBased(0)
		Expect(err).To(HaveOccurred())
	})
})
