package cliui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papercomputeco/recruit/pkg/person"
	"github.com/papercomputeco/recruit/pkg/utils"
)

const commentPreviewLen = 60

var (
	IndexStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	NameStyle     = lipgloss.NewStyle().Bold(true)
	KeyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	DimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	ValueStyle    = lipgloss.NewStyle()
	TagStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("117")).Padding(0, 1)
	FeedbackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Printer writes shell output, styled or plain.
type Printer struct {
	w      io.Writer
	styled bool
}

// NewPrinter creates a printer writing to w. Styles apply only when styled is
// true.
func NewPrinter(w io.Writer, styled bool) *Printer {
	return &Printer{w: w, styled: styled}
}

// Feedback prints a command's feedback message.
func (p *Printer) Feedback(msg string) {
	fmt.Fprintln(p.w, p.render(FeedbackStyle, msg))
}

// Error prints a failure message.
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.w, p.render(ErrorStyle, err.Error()))
}

// Markdown prints content rendered as markdown, or verbatim when unstyled
// or when rendering fails.
func (p *Printer) Markdown(content string) {
	if !p.styled {
		fmt.Fprintln(p.w, content)
		return
	}

	rendered, err := RenderMarkdown(content)
	if err != nil {
		fmt.Fprintln(p.w, content)
		return
	}
	fmt.Fprint(p.w, rendered)
}

// Persons prints the numbered person list.
func (p *Printer) Persons(persons []person.Person) {
	if len(persons) == 0 {
		fmt.Fprintln(p.w, p.render(KeyStyle, "No persons to show."))
		return
	}
	for i, pp := range persons {
		fmt.Fprintln(p.w, p.FormatPerson(i+1, pp))
	}
}

// FormatPerson renders pp as a numbered entry of the person list.
func (p *Printer) FormatPerson(index int, pp person.Person) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s", p.render(IndexStyle, fmt.Sprintf("%d.", index)), p.render(NameStyle, string(pp.Name)))
	for _, t := range pp.Tags.Slice() {
		b.WriteString(" ")
		if p.styled {
			b.WriteString(TagStyle.Render(t.Name()))
		} else {
			b.WriteString(t.String())
		}
	}

	p.field(&b, "Phone", string(pp.Phone))
	p.field(&b, "Email", string(pp.Email))
	p.field(&b, "Address", string(pp.Address))
	if pp.Comment != "" {
		p.field(&b, "Comment", utils.Truncate(string(pp.Comment), commentPreviewLen))
	}

	return b.String()
}

func (p *Printer) field(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, "\n   %s %s", p.render(KeyStyle, key+":"), p.render(ValueStyle, value))
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}
