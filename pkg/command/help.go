package command

import (
	"strings"

	"github.com/papercomputeco/recruit/pkg/model"
)

const (
	HelpWord  = "help"
	HelpUsage = HelpWord + ": Shows program usage instructions, or the usage of one command.\n" +
		"Parameters: [COMMAND_WORD]\n" +
		"Example: " + HelpWord + " add"
)

// Usages maps every command word to its usage text, in help page order.
var Usages = []struct {
	Word  string
	Usage string
}{
	{AddWord, AddUsage},
	{EditWord, EditUsage},
	{DeleteWord, DeleteUsage},
	{AddTagWord, AddTagUsage},
	{RemoveTagWord, RemoveTagUsage},
	{EditTagWord, EditTagUsage},
	{CommentWord, CommentUsage},
	{FindWord, FindUsage},
	{ListWord, ListUsage},
	{ClearWord, ClearUsage},
	{HelpWord, HelpUsage},
	{ExitWord, ExitUsage},
}

// UsageOf returns the usage text of word.
func UsageOf(word string) (string, bool) {
	for _, u := range Usages {
		if u.Word == word {
			return u.Usage, true
		}
	}
	return "", false
}

// Help shows usage instructions. An empty Word shows every command.
type Help struct {
	Word string
}

func (c Help) Execute(*model.Model) (Result, error) {
	if c.Word != "" {
		usage, _ := UsageOf(c.Word)
		return Result{Feedback: helpSection(c.Word, usage), ShowHelp: true}, nil
	}

	var b strings.Builder
	b.WriteString("# Commands\n\n")
	for _, u := range Usages {
		b.WriteString(helpSection(u.Word, u.Usage))
		b.WriteString("\n")
	}
	return Result{Feedback: strings.TrimRight(b.String(), "\n"), ShowHelp: true}, nil
}

// helpSection formats one usage as markdown.
func helpSection(word, usage string) string {
	lines := strings.Split(usage, "\n")
	summary := strings.TrimPrefix(lines[0], word+": ")

	var b strings.Builder
	b.WriteString("## " + word + "\n\n")
	b.WriteString(summary + "\n")
	for _, line := range lines[1:] {
		b.WriteString("\n    " + line + "\n")
	}
	return b.String()
}
