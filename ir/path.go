package ir

import (
	"strconv"
	"strings"
)

// RootPath is the path of a document's root node.
const RootPath = "$"

// PathField returns the path of the value under field within the mapping
// at path p.
func PathField(p, field string) string {
	prefix := p + "."
	if field != "" && strings.IndexAny(field, "'.*$[] ") == -1 {
		return prefix + field
	}
	return prefix + "'" + strings.Replace(field, "'", "\\'", -1) + "'"
}

// PathIndex returns the path of the i'th item of the sequence at path p.
func PathIndex(p string, i int) string {
	return p + "[" + strconv.Itoa(i) + "]"
}

// PathKey returns the path of the value under key k within the mapping
// at path p. Non-string keys are bracketed.
func PathKey(p string, k *Node) string {
	var v string
	switch k.Type {
	case StringType:
		return PathField(p, k.String)
	case NullType:
		v = "null"
	case BoolType:
		v = strconv.FormatBool(k.Bool)
	case NumberType:
		switch {
		case k.Number != "":
			v = k.Number
		case k.Int64 != nil:
			v = strconv.FormatInt(*k.Int64, 10)
		case k.Float64 != nil:
			v = strconv.FormatFloat(*k.Float64, 'g', -1, 64)
		}
	default:
		v = k.Type.String()
	}
	return p + "[" + v + "]"
}
