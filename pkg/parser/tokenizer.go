package parser

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// ArgumentMultimap holds the values found for each prefix in an argument
// string, plus the preamble before the first prefix.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the trimmed text before the first prefix.
func (a ArgumentMultimap) Preamble() string {
	return a.preamble
}

// Value returns the last value given for p.
func (a ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := a.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for p, in order.
func (a ArgumentMultimap) AllValues(p Prefix) []string {
	out := make([]string, len(a.values[p]))
	copy(out, a.values[p])
	return out
}

// Has reports whether p appeared at least once.
func (a ArgumentMultimap) Has(p Prefix) bool {
	return len(a.values[p]) > 0
}

// VerifyNoDuplicatePrefixes fails if any of prefixes appeared more than once.
func (a ArgumentMultimap) VerifyNoDuplicatePrefixes(prefixes ...Prefix) error {
	var dups []string
	for _, p := range prefixes {
		if len(a.values[p]) > 1 {
			dups = append(dups, string(p))
		}
	}
	if len(dups) > 0 {
		return &ParseError{Message: fmt.Sprintf(MessageDuplicateFields, strings.Join(dups, " "))}
	}
	return nil
}

type position struct {
	offset int
	prefix Prefix
}

// Tokenize splits args into prefix values. A prefix is only recognized at the
// start of args or after whitespace, so "nt/" never matches as "t/".
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	var positions []position
	for _, p := range prefixes {
		if p == "" {
			continue
		}
		for _, off := range prefixOffsets(args, string(p)) {
			positions = append(positions, position{offset: off, prefix: p})
		}
	}
	sort.Slice(positions, func(i, j int) bool {
		return positions[i].offset < positions[j].offset
	})

	result := ArgumentMultimap{values: make(map[Prefix][]string)}

	end := len(args)
	if len(positions) > 0 {
		end = positions[0].offset
	}
	result.preamble = strings.TrimSpace(args[:end])

	for i, pos := range positions {
		start := pos.offset + len(pos.prefix)
		stop := len(args)
		if i+1 < len(positions) {
			stop = positions[i+1].offset
		}
		result.values[pos.prefix] = append(result.values[pos.prefix], strings.TrimSpace(args[start:stop]))
	}

	return result
}

func prefixOffsets(args, prefix string) []int {
	var offsets []int
	from := 0
	for {
		i := strings.Index(args[from:], prefix)
		if i < 0 {
			return offsets
		}
		off := from + i
		if off == 0 || unicode.IsSpace(rune(args[off-1])) {
			offsets = append(offsets, off)
		}
		from = off + len(prefix)
	}
}
