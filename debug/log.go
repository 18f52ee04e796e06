package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/clean-yaml/ir"
)

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = describe(x)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func describe(y *ir.Node) string {
	if y == nil {
		return "<nil>"
	}
	tag := ""
	if y.Tag != "" {
		tag = " " + y.Tag
	}
	switch y.Type {
	case ir.ObjectType, ir.ArrayType:
		return fmt.Sprintf("%s%s(%d)", y.Type, tag, y.Len())
	case ir.StringType:
		return fmt.Sprintf("%s%s(%q)", y.Type, tag, y.String)
	default:
		return y.Type.String() + tag
	}
}
