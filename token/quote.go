package token

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// YAML 1.1 booleans; yaml.v3 reads these as strings but other readers
// do not.
var yaml11Bools = map[string]bool{
	"y": true, "Y": true, "yes": true, "Yes": true, "YES": true,
	"n": true, "N": true, "no": true, "No": true, "NO": true,
	"on": true, "On": true, "ON": true,
	"off": true, "Off": true, "OFF": true,
}

// Flow returns v spelled as a flow scalar, quoting only when needed.
func Flow(v string) string {
	if NeedsDoubleQuote(v) {
		return Quote(v)
	}
	if NeedsQuote(v) {
		return SingleQuote(v)
	}
	return v
}

// NeedsQuote reports whether v cannot be written as a plain scalar,
// either because it would be read back as another type or because it
// collides with an indicator.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	if NeedsDoubleQuote(v) {
		return true
	}
	switch v[0] {
	case '-', '?', ':', ',', '[', ']', '{', '}', '#', '&', '*', '!',
		'|', '>', '\'', '"', '%', '@', '`', ' ':
		return true
	}
	if v[len(v)-1] == ' ' {
		return true
	}
	if strings.ContainsAny(v, ":,[]{}") {
		return true
	}
	if strings.Contains(v, " #") || strings.HasPrefix(v, "...") {
		return true
	}
	if yaml11Bools[v] {
		return true
	}
	if (&yaml.Node{Kind: yaml.ScalarNode, Value: v}).ShortTag() != "!!str" {
		return true
	}
	if _, err := strconv.ParseFloat(strings.ReplaceAll(v, "_", ""), 64); err == nil {
		return true
	}
	return false
}

// NeedsDoubleQuote reports whether v holds runes that only a double
// quoted scalar can carry: tabs, line breaks, controls and other
// non-printables.
func NeedsDoubleQuote(v string) bool {
	if !utf8.ValidString(v) {
		return true
	}
	for _, r := range v {
		if needsEscape(r) {
			return true
		}
	}
	return false
}

// Printable reports whether r is in the YAML printable character set.
func Printable(r rune) bool {
	switch {
	case r == 0x09, r == 0x0A, r == 0x0D:
		return true
	case r >= 0x20 && r <= 0x7E:
		return true
	case r == 0x85:
		return true
	case r >= 0xA0 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return r != 0xFEFF
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

// IsBreak reports whether a YAML reader may treat r as a line break.
func IsBreak(r rune) bool {
	switch r {
	case '\n', '\r', 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

func needsEscape(r rune) bool {
	switch {
	case r < 0x20, r == 0x7F:
		return true
	case r >= 0x80 && r < 0xA0:
		return true
	case IsBreak(r), r == 0xFEFF:
		return true
	}
	return !Printable(r)
}

// SingleQuote returns v as a single quoted scalar. v must not need
// double quoting.
func SingleQuote(v string) string {
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}

const hexDigits = "0123456789ABCDEF"

// Quote returns v as a double quoted scalar using YAML escapes.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case 0:
			d = append(d, '\\', '0')
		case '\a':
			d = append(d, '\\', 'a')
		case '\b':
			d = append(d, '\\', 'b')
		case '\t':
			d = append(d, '\\', 't')
		case '\n':
			d = append(d, '\\', 'n')
		case '\v':
			d = append(d, '\\', 'v')
		case '\f':
			d = append(d, '\\', 'f')
		case '\r':
			d = append(d, '\\', 'r')
		case 0x1B:
			d = append(d, '\\', 'e')
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case 0x85:
			d = append(d, '\\', 'N')
		case 0x2028:
			d = append(d, '\\', 'L')
		case 0x2029:
			d = append(d, '\\', 'P')
		default:
			if !needsEscape(r) {
				d = utf8.AppendRune(d, r)
				continue
			}
			switch {
			case r <= 0xFF:
				d = append(d, '\\', 'x')
				d = appendHex(d, uint32(r), 2)
			case r <= 0xFFFF:
				d = append(d, '\\', 'u')
				d = appendHex(d, uint32(r), 4)
			default:
				d = append(d, '\\', 'U')
				d = appendHex(d, uint32(r), 8)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

func appendHex(d []byte, v uint32, n int) []byte {
	for i := n - 1; i >= 0; i-- {
		d = append(d, hexDigits[(v>>(4*uint(i)))&0xF])
	}
	return d
}
