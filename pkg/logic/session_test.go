package logic_test

import (
	"context"
	"errors"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/recruit/pkg/command"
	"github.com/papercomputeco/recruit/pkg/logic"
	"github.com/papercomputeco/recruit/pkg/model"
	"github.com/papercomputeco/recruit/pkg/parser"
	"github.com/papercomputeco/recruit/pkg/storage"
	"github.com/papercomputeco/recruit/pkg/storage/jsonfile"
	testutils "github.com/papercomputeco/recruit/pkg/utils/test"
)

const addPat = "add n/Pat p/12345 e/pat@example.com a/1 Main St t/friend"

var _ = Describe("Session", func() {
	var (
		ctx     context.Context
		driver  *testutils.MockStorageDriver
		session *logic.Session
	)

	BeforeEach(func() {
		ctx = context.Background()
		driver = testutils.NewMockStorageDriver()
		session = logic.NewSession(driver, nil, logic.Options{})
	})

	Describe("Open", func() {
		It("starts empty when nothing is saved", func() {
			Expect(session.Open(ctx)).To(Succeed())
			Expect(session.Persons()).To(BeEmpty())
			Expect(session.Dirty()).To(BeFalse())
		})

		It("loads the saved persons", func() {
			persons := testutils.TypicalPersons()
			driver.Initial = &model.Snapshot{Persons: persons}

			Expect(session.Open(ctx)).To(Succeed())
			Expect(session.Persons()).To(testutils.EqualPersons(persons))
			Expect(session.FilteredPersons()).To(testutils.EqualPersons(persons))
			Expect(session.Dirty()).To(BeFalse())
		})

		It("fails on storage errors", func() {
			driver.FailLoad = true

			err := session.Open(ctx)
			Expect(errors.Is(err, testutils.ErrMockStorage)).To(BeTrue())
		})

		It("fails on invalid data by default", func() {
			driver.LoadErr = &storage.LoadError{Source: "test", Err: errors.New("bad")}

			var loadErr *storage.LoadError
			Expect(errors.As(session.Open(ctx), &loadErr)).To(BeTrue())
		})

		It("can start empty on invalid data", func() {
			driver.LoadErr = &storage.LoadError{Source: "test", Err: errors.New("bad")}
			session = logic.NewSession(driver, nil, logic.Options{StartEmptyOnInvalidData: true})

			Expect(session.Open(ctx)).To(Succeed())
			Expect(session.Persons()).To(BeEmpty())
		})

		It("still fails on I/O errors when starting empty on invalid data", func() {
			driver.FailLoad = true
			session = logic.NewSession(driver, nil, logic.Options{StartEmptyOnInvalidData: true})

			Expect(session.Open(ctx)).To(MatchError(testutils.ErrMockStorage))
		})
	})

	Describe("Execute", func() {
		BeforeEach(func() {
			Expect(session.Open(ctx)).To(Succeed())
		})

		It("adds a person and saves", func() {
			result, err := session.Execute(ctx, addPat)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Feedback).To(ContainSubstring("New person added: Pat"))

			filtered := session.FilteredPersons()
			Expect(filtered).To(HaveLen(1))
			Expect(filtered[0].Tags.Names()).To(Equal([]string{"friend"}))

			Expect(driver.Saved).To(HaveLen(1))
			Expect(driver.Saved[0].Persons).To(HaveLen(1))
			Expect(session.Dirty()).To(BeFalse())
		})

		It("does not save after read-only commands", func() {
			_, err := session.Execute(ctx, "list")
			Expect(err).NotTo(HaveOccurred())
			_, err = session.Execute(ctx, "find n/nobody")
			Expect(err).NotTo(HaveOccurred())

			Expect(driver.Saved).To(BeEmpty())
		})

		It("saves on exit even without changes", func() {
			result, err := session.Execute(ctx, "exit")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Exit).To(BeTrue())
			Expect(driver.Saved).To(HaveLen(1))
		})

		It("returns parse errors without touching storage", func() {
			_, err := session.Execute(ctx, "frobnicate")
			var parseErr *parser.ParseError
			Expect(errors.As(err, &parseErr)).To(BeTrue())
			Expect(driver.Saved).To(BeEmpty())
		})

		It("returns command errors without saving", func() {
			_, err := session.Execute(ctx, addPat)
			Expect(err).NotTo(HaveOccurred())

			_, err = session.Execute(ctx, "delete 5")
			Expect(errors.Is(err, command.ErrInvalidIndex)).To(BeTrue())
			Expect(session.Persons()).To(HaveLen(1))
			Expect(driver.Saved).To(HaveLen(1))
		})

		It("keeps the list when clear is given arguments", func() {
			_, err := session.Execute(ctx, addPat)
			Expect(err).NotTo(HaveOccurred())

			for _, line := range []string{"list 3", "exit now", "clear 1"} {
				result, err := session.Execute(ctx, line)
				var parseErr *parser.ParseError
				Expect(errors.As(err, &parseErr)).To(BeTrue(), line)
				Expect(result.Exit).To(BeFalse())
			}

			Expect(session.Persons()).To(HaveLen(1))
			Expect(driver.Saved).To(HaveLen(1))
		})

		It("reports save failures with the result and keeps the change", func() {
			driver.FailSave = true

			result, err := session.Execute(ctx, addPat)
			var saveErr *logic.SaveError
			Expect(errors.As(err, &saveErr)).To(BeTrue())
			Expect(errors.Is(err, testutils.ErrMockStorage)).To(BeTrue())
			Expect(result.Feedback).To(ContainSubstring("Pat"))
			Expect(session.Persons()).To(HaveLen(1))
			Expect(session.Dirty()).To(BeTrue())

			driver.FailSave = false
			_, err = session.Execute(ctx, "list")
			Expect(err).NotTo(HaveOccurred())
			Expect(driver.Saved).To(HaveLen(1))
			Expect(session.Dirty()).To(BeFalse())
		})
	})

	Describe("Close", func() {
		It("saves pending changes and closes the driver", func() {
			Expect(session.Open(ctx)).To(Succeed())
			driver.FailSave = true
			_, err := session.Execute(ctx, addPat)
			Expect(err).To(HaveOccurred())
			driver.FailSave = false

			Expect(session.Close(ctx)).To(Succeed())
			Expect(driver.Saved).To(HaveLen(1))
			Expect(driver.Closed).To(BeTrue())
		})

		It("closes the driver without saving when nothing changed", func() {
			Expect(session.Open(ctx)).To(Succeed())
			Expect(session.Close(ctx)).To(Succeed())
			Expect(driver.Saved).To(BeEmpty())
			Expect(driver.Closed).To(BeTrue())
		})
	})

	Describe("with a JSON file", func() {
		It("keeps the saved file in step with the model across sessions", func() {
			path := filepath.Join(GinkgoT().TempDir(), "persons.json")

			first, err := jsonfile.NewDriver(path, nil)
			Expect(err).NotTo(HaveOccurred())
			s1 := logic.NewSession(first, nil, logic.Options{})
			Expect(s1.Open(ctx)).To(Succeed())
			_, err = s1.Execute(ctx, addPat)
			Expect(err).NotTo(HaveOccurred())
			_, err = s1.Execute(ctx, "add-tag 1 t/friend t/boss")
			Expect(err).NotTo(HaveOccurred())
			Expect(s1.Close(ctx)).To(Succeed())

			second, err := jsonfile.NewDriver(path, nil)
			Expect(err).NotTo(HaveOccurred())
			s2 := logic.NewSession(second, nil, logic.Options{})
			Expect(s2.Open(ctx)).To(Succeed())
			Expect(s2.Persons()).To(testutils.EqualPersons(s1.Persons()))
			Expect(s2.Persons()[0].Tags.Names()).To(Equal([]string{"boss", "friend"}))
		})
	})
})
