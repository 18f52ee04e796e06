package encode

import (
	"fmt"

	"github.com/signadot/clean-yaml/ir"
)

// isLeaf reports whether node renders on one line without expansion.
//
// Scalars and empty containers are leaves. Tags live on the node itself,
// so a tagged node is a leaf exactly when its untagged value would be.
func isLeaf(node *ir.Node) (bool, error) {
	if node == nil {
		return false, fmt.Errorf("%w: nil node", ir.ErrUnsupportedValue)
	}
	if err := checkTag(node.Tag); err != nil {
		return false, err
	}
	switch node.Type {
	case ir.NullType, ir.BoolType, ir.NumberType, ir.StringType, ir.TimestampType:
		return true, nil
	case ir.ArrayType:
		return len(node.Values) == 0, nil
	case ir.ObjectType:
		if len(node.Fields) != len(node.Values) {
			return false, fmt.Errorf("%w: mapping with %d keys and %d values",
				ir.ErrUnsupportedValue, len(node.Fields), len(node.Values))
		}
		return len(node.Fields) == 0, nil
	}
	return false, fmt.Errorf("%w: node type %d", ir.ErrUnsupportedValue, int(node.Type))
}
