package ir

import (
	"math"
	"testing"
)

func TestFromMapSortsKeys(t *testing.T) {
	n := FromMap(map[string]*Node{
		"b": FromInt(2),
		"a": FromInt(1),
		"c": Null(),
	})
	if n.Len() != 3 {
		t.Fatalf("expected 3 fields, got %d", n.Len())
	}
	for i, want := range []string{"a", "b", "c"} {
		if got := n.Fields[i].String; got != want {
			t.Errorf("field %d: got %q want %q", i, got, want)
		}
	}
	if v := Get(n, "b"); v == nil || *v.Int64 != 2 {
		t.Errorf("Get(b) = %v", v)
	}
	if Get(n, "z") != nil {
		t.Error("expected nil for missing field")
	}
}

func TestFromKeyValsNilKey(t *testing.T) {
	n := FromKeyVals([]KeyVal{{Val: FromInt(1)}})
	if n.Fields[0].Type != NullType {
		t.Errorf("expected null key, got %s", n.Fields[0].Type)
	}
	kvs := n.KeyVals()
	if len(kvs) != 1 || kvs[0].Val != n.Values[0] {
		t.Errorf("unexpected key vals %v", kvs)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := FromSlice([]*Node{FromInt(1), FromString("x")})
	c := orig.Clone()
	*c.Values[0].Int64 = 5
	c.Values[1].String = "y"
	if *orig.Values[0].Int64 != 1 || orig.Values[1].String != "x" {
		t.Error("clone shares state with original")
	}
}

func TestFromUint(t *testing.T) {
	n := FromUint(math.MaxUint64)
	if n.Int64 != nil || n.Number != "18446744073709551615" {
		t.Errorf("unexpected node %+v", n)
	}
	if n := FromUint(7); n.Int64 == nil || *n.Int64 != 7 {
		t.Errorf("unexpected node %+v", n)
	}
}

func TestVisit(t *testing.T) {
	n := FromSlice([]*Node{FromSlice([]*Node{FromInt(1)}), FromInt(2)})
	pre, post := 0, 0
	err := n.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if pre != 4 || post != 4 {
		t.Errorf("pre=%d post=%d", pre, post)
	}
}

func TestPath(t *testing.T) {
	p := PathIndex(PathField(RootPath, "a"), 2)
	if p != "$.a[2]" {
		t.Errorf("got %q", p)
	}
	if p := PathField(RootPath, "a.b"); p != "$.'a.b'" {
		t.Errorf("got %q", p)
	}
	if p := PathKey(RootPath, FromInt(3)); p != "$[3]" {
		t.Errorf("got %q", p)
	}
}
