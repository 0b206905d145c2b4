package dotdir_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/recruit/pkg/dotdir"
)

var _ = Describe("dotdir", func() {
	var tmpDir string
	var m *dotdir.Manager

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "dotdir-test-*")
		Expect(err).NotTo(HaveOccurred())

		// Resolve symlinks so paths match filepath.Abs results
		// (e.g. on macOS /var -> /private/var).
		tmpDir, err = filepath.EvalSymlinks(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		m = dotdir.NewManager()
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	Describe("NewManager", func() {
		It("creates a new manager", func() {
			Expect(m).ToNot(BeNil())
		})
	})

	Describe("Target", func() {
		It("creates the directory if it doesn't exist", func() {
			dir := filepath.Join(tmpDir, "newdir")
			result, err := m.Target(dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(dir))

			info, err := os.Stat(dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.IsDir()).To(BeTrue())
		})

		It("returns existing directory without error", func() {
			result, err := m.Target(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(tmpDir))
		})

		It("returns the override dir even when a local .recruit dir exists", func() {
			// Create a local .recruit dir in the tmpDir
			localDir := filepath.Join(tmpDir, ".recruit")
			Expect(os.Mkdir(localDir, 0o755)).To(Succeed())

			// Change to tmpDir so the local dir is discoverable
			origDir, err := os.Getwd()
			Expect(err).NotTo(HaveOccurred())
			Expect(os.Chdir(tmpDir)).To(Succeed())
			DeferCleanup(func() { os.Chdir(origDir) })

			overrideDir := filepath.Join(tmpDir, "override")
			result, err := m.Target(overrideDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(overrideDir))
		})

		It("returns the local .recruit dir when it exists and no override is provided", func() {
			// Create a local .recruit dir in the tmpDir
			localDir := filepath.Join(tmpDir, ".recruit")
			Expect(os.Mkdir(localDir, 0o755)).To(Succeed())

			// Change to tmpDir so the local dir is discoverable
			origDir, err := os.Getwd()
			Expect(err).NotTo(HaveOccurred())
			Expect(os.Chdir(tmpDir)).To(Succeed())
			DeferCleanup(func() { os.Chdir(origDir) })

			result, err := m.Target("")
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(localDir))
		})

		It("falls back to and creates the home .recruit dir", func() {
			// Ensure we're in a directory without a .recruit subdir
			emptyDir := filepath.Join(tmpDir, "empty")
			Expect(os.Mkdir(emptyDir, 0o755)).To(Succeed())

			origDir, err := os.Getwd()
			Expect(err).NotTo(HaveOccurred())
			Expect(os.Chdir(emptyDir)).To(Succeed())
			DeferCleanup(func() { os.Chdir(origDir) })

			// Override HOME so that ~/.recruit from the real home dir is not used.
			origHome := os.Getenv("HOME")
			Expect(os.Setenv("HOME", emptyDir)).To(Succeed())
			DeferCleanup(func() { os.Setenv("HOME", origHome) })

			result, err := m.Target("")
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(filepath.Join(emptyDir, ".recruit")))

			info, err := os.Stat(result)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.IsDir()).To(BeTrue())
		})
	})

	Describe("Init", func() {
		It("creates a .recruit dir in the parent", func() {
			dir, existed, err := m.Init(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(existed).To(BeFalse())
			Expect(dir).To(Equal(filepath.Join(tmpDir, ".recruit")))

			_, existed, err = m.Init(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(existed).To(BeTrue())
		})

		It("fails when .recruit is a file", func() {
			Expect(os.WriteFile(filepath.Join(tmpDir, ".recruit"), nil, 0o644)).To(Succeed())

			_, _, err := m.Init(tmpDir)
			Expect(err).To(MatchError(ContainSubstring("not a directory")))
		})
	})

	Describe("DataPath", func() {
		It("joins the file name to the override dir", func() {
			path, err := m.DataPath(tmpDir, dotdir.JSONDataFile)
			Expect(err).NotTo(HaveOccurred())
			Expect(path).To(Equal(filepath.Join(tmpDir, "persons.json")))
		})

		It("picks a file per driver", func() {
			Expect(dotdir.DefaultDataFile("json")).To(Equal(dotdir.JSONDataFile))
			Expect(dotdir.DefaultDataFile("")).To(Equal(dotdir.JSONDataFile))
			Expect(dotdir.DefaultDataFile("sqlite")).To(Equal(dotdir.SQLiteDataFile))
			Expect(dotdir.DefaultDataFile("postgres")).To(BeEmpty())
		})
	})
})
