package gomap

import (
	"github.com/goccy/go-yaml"
	"github.com/signadot/clean-yaml/ir"
)

// FromIR converts node to plain Go values: nil, bool, int64, float64,
// string, time.Time, []any and yaml.MapSlice. Tags are dropped. Numbers
// held only as text, such as integers beyond the int64 range, are
// returned as their string spelling.
func FromIR(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.BoolType:
		return node.Bool
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64
		case node.Float64 != nil:
			return *node.Float64
		}
		return node.Number
	case ir.StringType:
		return node.String
	case ir.TimestampType:
		if node.Time != nil {
			return *node.Time
		}
		return node.String
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = FromIR(v)
		}
		return res
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, k := range node.Fields {
			res[i] = yaml.MapItem{Key: FromIR(k), Value: FromIR(node.Values[i])}
		}
		return res
	}
	return nil
}
