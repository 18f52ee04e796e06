package encode

import (
	"strings"

	"github.com/signadot/clean-yaml/ir"
)

// MustString dumps node with default options and no trailing newline,
// panicking on error. It is meant for tests and debugging.
func MustString(node *ir.Node) string {
	out, err := Dump(node)
	if err != nil {
		panic(err)
	}
	return strings.TrimSuffix(out, "\n")
}
