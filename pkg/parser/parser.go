// Package parser turns a line of user input into a command. Parsing has no
// side effects: it never reads or writes the model or storage.
package parser

import (
	"strconv"
	"strings"

	"github.com/papercomputeco/recruit/pkg/command"
)

// SubParser parses the argument tail of one command word.
type SubParser interface {
	Parse(args string) (command.Command, error)
}

// SubParserFunc adapts a function to SubParser.
type SubParserFunc func(args string) (command.Command, error)

func (f SubParserFunc) Parse(args string) (command.Command, error) {
	return f(args)
}

// Option configures a Parser.
type Option func(*Parser)

// WithSyntax overrides the argument prefixes.
func WithSyntax(s Syntax) Option {
	return func(p *Parser) {
		p.syntax = s
	}
}

// Parser dispatches a command line to the sub-parser registered for its
// command word.
type Parser struct {
	syntax  Syntax
	parsers map[string]SubParser
}

// New creates a parser with every built-in command registered.
func New(opts ...Option) *Parser {
	p := &Parser{
		syntax:  DefaultSyntax(),
		parsers: make(map[string]SubParser),
	}
	for _, opt := range opts {
		opt(p)
	}

	s := p.syntax
	p.Register(command.AddWord, SubParserFunc(s.parseAdd))
	p.Register(command.EditWord, SubParserFunc(s.parseEdit))
	p.Register(command.DeleteWord, SubParserFunc(parseDelete))
	p.Register(command.FindWord, SubParserFunc(s.parseFind))
	p.Register(command.AddTagWord, SubParserFunc(s.parseAddTag))
	p.Register(command.RemoveTagWord, SubParserFunc(s.parseRemoveTag))
	p.Register(command.EditTagWord, SubParserFunc(s.parseEditTag))
	p.Register(command.CommentWord, SubParserFunc(s.parseComment))
	p.Register(command.HelpWord, SubParserFunc(parseHelp))
	p.Register(command.ListWord, constant(command.List{}, command.ListUsage))
	p.Register(command.ClearWord, constant(command.Clear{}, command.ClearUsage))
	p.Register(command.ExitWord, constant(command.Exit{}, command.ExitUsage))

	return p
}

// Register binds word to sp, replacing any existing binding.
func (p *Parser) Register(word string, sp SubParser) {
	p.parsers[word] = sp
}

// Parse parses one line of user input.
func (p *Parser) Parse(line string) (command.Command, error) {
	word, args := SplitCommandWord(line)
	if word == "" {
		return nil, invalidFormat(command.HelpUsage)
	}

	sp, ok := p.parsers[word]
	if !ok {
		return nil, &ParseError{Message: MessageUnknownCommand}
	}

	return sp.Parse(args)
}

// SplitCommandWord returns the first word of line and the untrimmed rest,
// which keeps the leading space prefix matching relies on.
func SplitCommandWord(line string) (word, args string) {
	trimmed := strings.TrimSpace(line)
	i := strings.IndexFunc(trimmed, isSpace)
	if i < 0 {
		return trimmed, ""
	}
	return trimmed[:i], trimmed[i:]
}

// ParseIndex parses a one-based index.
func ParseIndex(raw string) (command.Index, error) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, &ParseError{Message: MessageInvalidIndex}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Message: MessageInvalidIndex, Err: err}
	}

	idx, err := command.IndexFromOneBased(n)
	if err != nil {
		return 0, &ParseError{Message: MessageInvalidIndex, Err: err}
	}
	return idx, nil
}

// constant parses to cmd for a command that takes no arguments. Any
// argument text is rejected with usage.
func constant(cmd command.Command, usage string) SubParser {
	return SubParserFunc(func(args string) (command.Command, error) {
		if strings.TrimSpace(args) != "" {
			return nil, invalidFormat(usage)
		}
		return cmd, nil
	})
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
