package encode

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/clean-yaml/ir"
	"github.com/signadot/clean-yaml/token"
)

// literal renders a string leaf as a literal block scalar, reporting
// false when the string should be flow encoded instead.
//
// The source string is never modified; a missing final newline is added
// to a copy and stripped again on load by the "-" chomping indicator.
func (es *EncState) literal(node *ir.Node, rc renderCtx) (string, bool) {
	if rc.root {
		return "", false
	}
	s := node.String
	nl := strings.Count(s, "\n")
	if nl == 0 || !literalSafe(s) {
		return "", false
	}
	head := rc.key
	if node.Tag != "" {
		head += " " + node.Tag
	}
	if nl == 1 && utf8.RuneCountInString(s) <= rc.width-utf8.RuneCountInString(head) {
		return "", false
	}

	indicator := ""
	if leadingSpace(s) {
		indicator = strconv.Itoa(len(rc.indent))
	}
	switch {
	case !strings.HasSuffix(s, "\n"):
		s += "\n"
		indicator += "-"
	case strings.HasSuffix(s, "\n\n"):
		indicator += "+"
	}

	b := &strings.Builder{}
	b.Grow(len(head) + len(s) + (nl+1)*(len(rc.prefix)+1) + 4)
	b.WriteString(head)
	b.WriteString(" |")
	b.WriteString(indicator)
	b.WriteByte('\n')
	for _, ln := range strings.SplitAfter(s, "\n") {
		if ln == "" {
			continue
		}
		b.WriteString(rc.prefix)
		b.WriteString(ln)
	}
	return b.String(), true
}

// literalSafe reports whether every rune of s survives a literal block
// unchanged. Carriage returns, alternate line breaks and non-printables
// would be normalized or rejected by a reader.
func literalSafe(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if r == '\n' {
			continue
		}
		if token.IsBreak(r) || !token.Printable(r) {
			return false
		}
	}
	return true
}

// leadingSpace reports whether the first line holding anything but a
// line break starts with a space or tab, in which case the block
// indentation can't be detected from the content and must be given
// explicitly.
func leadingSpace(s string) bool {
	for _, ln := range strings.Split(s, "\n") {
		if ln == "" {
			continue
		}
		return ln[0] == ' ' || ln[0] == '\t'
	}
	return false
}
