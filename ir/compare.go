package ir

import (
	"cmp"
	"strconv"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Numbers compare by value, so 0x10 and 16 are equal; timestamps compare
// by instant. NaN equals NaN. Tags break ties between otherwise equal
// nodes.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	var c int
	switch a.Type {
	case NumberType:
		c = compareNumbers(a, b)
	case StringType:
		c = strings.Compare(a.String, b.String)
	case BoolType:
		switch {
		case a.Bool == b.Bool:
		case !a.Bool:
			c = -1
		default:
			c = 1
		}
	case TimestampType:
		c = compareTimes(a, b)
	case ArrayType:
		c = compareArrays(a, b)
	case ObjectType:
		c = compareObjects(a, b)
	}
	if c != 0 {
		return c
	}
	return strings.Compare(a.Tag, b.Tag)
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < Timestamp < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 1
	case BoolType:
		return 2
	case NumberType:
		return 3
	case TimestampType:
		return 4
	case StringType:
		return 5
	case ArrayType:
		return 6
	case ObjectType:
		return 7
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	// Sub-rank: Int64 < Float64 < spelling only
	subRankA := numberSubRank(a)
	subRankB := numberSubRank(b)
	if subRankA != subRankB {
		return cmp.Compare(subRankA, subRankB)
	}

	if a.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	if a.Float64 != nil {
		return cmp.Compare(*a.Float64, *b.Float64)
	}
	return strings.Compare(a.Number, b.Number)
}

func numberSubRank(n *Node) int {
	if n.Int64 != nil {
		return 0
	}
	if n.Float64 != nil {
		return 1
	}
	return 2
}

func compareTimes(a, b *Node) int {
	switch {
	case a.Time == nil && b.Time == nil:
		return strings.Compare(a.String, b.String)
	case a.Time == nil:
		return -1
	case b.Time == nil:
		return 1
	}
	return a.Time.Compare(*b.Time)
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// compareObjects compares entry by entry in insertion order; mappings
// holding the same entries in a different order are not equal.
func compareObjects(a, b *Node) int {
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// KeyID returns a string identifying a scalar key node, such that two
// keys have the same KeyID iff they are Equal. It is used to enforce key
// uniqueness within a mapping.
func KeyID(k *Node) string {
	var v string
	switch k.Type {
	case NullType:
	case BoolType:
		v = strconv.FormatBool(k.Bool)
	case NumberType:
		switch {
		case k.Int64 != nil:
			v = "i" + strconv.FormatInt(*k.Int64, 10)
		case k.Float64 != nil:
			v = "f" + strconv.FormatFloat(*k.Float64, 'g', -1, 64)
		default:
			v = "s" + k.Number
		}
	case TimestampType:
		if k.Time != nil {
			v = k.Time.UTC().Format("2006-01-02T15:04:05.999999999")
		} else {
			v = k.String
		}
	default:
		v = k.String
	}
	return strconv.Itoa(rank(k.Type)) + k.Tag + ":" + v
}
