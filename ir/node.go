package ir

import (
	"maps"
	"math"
	"slices"
	"strconv"
	"time"
)

type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	Tag string

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
	Time    *time.Time
}

func (y *Node) WithTag(tag string) *Node {
	y.Tag = tag
	return y
}

// Len returns the number of entries of a container node, and 0 for
// scalars.
func (y *Node) Len() int {
	switch y.Type {
	case ObjectType:
		return len(y.Fields)
	case ArrayType:
		return len(y.Values)
	default:
		return 0
	}
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Tag = y.Tag
	dst.Values = nil
	dst.Fields = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			dst.Fields[i] = yf.Clone()
		}
	}
	dst.String = y.String
	dst.Number = y.Number
	dst.Bool = y.Bool
	dst.Float64 = nil
	dst.Int64 = nil
	dst.Time = nil
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Time != nil {
		t := *y.Time
		dst.Time = &t
	}
	return dst
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

// FromUint returns an integer node. Values beyond the int64 range keep
// only their decimal spelling in Number.
func FromUint(v uint64) *Node {
	if v <= math.MaxInt64 {
		return FromInt(int64(v))
	}
	return &Node{
		Type:   NumberType,
		Number: strconv.FormatUint(v, 10),
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromTime(t time.Time) *Node {
	return &Node{
		Type: TimestampType,
		Time: &t,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// FromMap builds a mapping with string keys in sorted order, since Go
// maps carry no order of their own.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{}
	res.Type = ObjectType
	res.Fields = make([]*Node, len(yMap))
	res.Values = make([]*Node, len(yMap))
	keys := slices.Sorted(maps.Keys(yMap))
	for i, key := range keys {
		res.Fields[i] = FromString(key)
		res.Values[i] = yMap[key]
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals builds a mapping preserving the order of kvs. A nil Key is
// taken as a null key.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]*Node, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i := range kvs {
		kv := &kvs[i]
		if kv.Key == nil {
			kv.Key = Null()
		}
		if kv.Val == nil {
			kv.Val = Null()
		}
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// KeyVals returns the entries of a mapping in order.
func (y *Node) KeyVals() []KeyVal {
	if y.Type != ObjectType {
		return nil
	}
	res := make([]KeyVal, len(y.Fields))
	for i := range y.Fields {
		res[i] = KeyVal{Key: y.Fields[i], Val: y.Values[i]}
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(ySlice)),
	}
	copy(res.Values, ySlice)
	return res
}

// Get returns the value under the string key field, or nil.
func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		f := y.Fields[i]
		if f.Type == StringType && f.String == field {
			return y.Values[i]
		}
	}
	return nil
}

// Visit walks y depth first, calling f before (isPost false) and after
// (isPost true) each container's values. Returning false from the pre
// call skips the node's children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
