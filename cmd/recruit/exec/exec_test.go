package execcmder_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	execcmder "github.com/papercomputeco/recruit/cmd/recruit/exec"
)

const addAlice = "add n/Alice Tan p/98765432 e/alice@example.com a/1 Main St"

func runExec(stdin string, args ...string) (string, error) {
	root := &cobra.Command{Use: "recruit", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().BoolP("debug", "d", false, "")
	root.PersistentFlags().String("config-dir", "", "")
	root.AddCommand(execcmder.NewExecCmd())

	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"exec"}, args...))

	err := root.Execute()
	return out.String(), err
}

var _ = Describe("Exec command", func() {
	var (
		configDir string
		dataPath  string
	)

	BeforeEach(func() {
		configDir = GinkgoT().TempDir()
		dataPath = filepath.Join(configDir, "persons.json")
	})

	It("runs each argument as a command line", func() {
		out, err := runExec("", "--config-dir", configDir, addAlice, "add-tag 1 t/friend t/boss")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("New person added: Alice Tan"))
		Expect(out).To(ContainSubstring("Added tags"))

		data, err := os.ReadFile(dataPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`"boss"`))
		Expect(string(data)).To(ContainSubstring(`"friend"`))
	})

	It("reads command lines from stdin without arguments", func() {
		out, err := runExec(addAlice+"\n\nlist\n", "--config-dir", configDir)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("1. Alice Tan"))
		Expect(dataPath).To(BeAnExistingFile())
	})

	It("stops at the first failing command", func() {
		out, err := runExec("", "--config-dir", configDir, "delete 3", addAlice)
		Expect(err).To(HaveOccurred())
		Expect(out).NotTo(ContainSubstring("New person added"))
	})

	It("continues past failures with --keep-going", func() {
		out, err := runExec("", "--config-dir", configDir, "--keep-going", "delete 3", addAlice)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("The person index provided is invalid"))
		Expect(out).To(ContainSubstring("New person added: Alice Tan"))
	})

	It("keeps the data of earlier commands when a later one fails", func() {
		_, err := runExec("", "--config-dir", configDir, addAlice, addAlice)
		Expect(err).To(HaveOccurred())

		out, err := runExec("", "--config-dir", configDir, "list")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("1. Alice Tan"))
		Expect(out).NotTo(ContainSubstring("2. "))
	})
})
