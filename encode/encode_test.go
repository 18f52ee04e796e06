package encode

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/clean-yaml/ir"
)

func kv(k string, v *ir.Node) ir.KeyVal {
	return ir.KeyVal{Key: ir.FromString(k), Val: v}
}

func obj(kvs ...ir.KeyVal) *ir.Node {
	return ir.FromKeyVals(kvs)
}

func arr(vs ...*ir.Node) *ir.Node {
	return ir.FromSlice(vs)
}

func ints(vs ...int64) *ir.Node {
	res := make([]*ir.Node, len(vs))
	for i, v := range vs {
		res[i] = ir.FromInt(v)
	}
	return ir.FromSlice(res)
}

type dumpTest struct {
	name string
	node *ir.Node
	opts []EncodeOption
	out  string
}

func runDumpTests(t *testing.T, tests []dumpTest) {
	t.Helper()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.node.Clone()
			got, err := Dump(tc.node, tc.opts...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.out, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			if !ir.Equal(before, tc.node) {
				t.Error("dump modified its input")
			}
		})
	}
}

func TestDumpLayout(t *testing.T) {
	ab := obj(kv("a", ir.FromInt(1)), kv("b", ir.FromInt(2)))
	runDumpTests(t, []dumpTest{
		{
			name: "root mapping is never inlined",
			node: ab,
			out:  "a: 1\nb: 2\n",
		},
		{
			name: "nested mapping inline",
			node: obj(kv("m", ab)),
			out:  "m: { a: 1, b: 2 }\n",
		},
		{
			name: "nested mapping at the narrowest inline width",
			node: obj(kv("m", ab)),
			opts: []EncodeOption{Width(19)},
			out:  "m: { a: 1, b: 2 }\n",
		},
		{
			name: "nested mapping one short of inline width",
			node: obj(kv("m", ab)),
			opts: []EncodeOption{Width(18)},
			out:  "m:\n  a: 1\n  b: 2\n",
		},
		{
			name: "nested mapping width 5",
			node: obj(kv("m", ab)),
			opts: []EncodeOption{Width(5)},
			out:  "m:\n  a: 1\n  b: 2\n",
		},
		{
			name: "nested sequence inline",
			node: obj(kv("s", ints(1, 2))),
			opts: []EncodeOption{Width(11)},
			out:  "s: [ 1, 2 ]\n",
		},
		{
			name: "nested sequence block",
			node: obj(kv("s", ints(1, 2))),
			opts: []EncodeOption{Width(10)},
			out:  "s:\n  - 1\n  - 2\n",
		},
		{
			name: "root sequence",
			node: ints(1, 2),
			out:  "- 1\n- 2\n",
		},
		{
			name: "sequence of inline mappings",
			node: arr(ab),
			out:  "- { a: 1, b: 2 }\n",
		},
		{
			name: "sequence of block mappings",
			node: arr(ab),
			opts: []EncodeOption{Width(5)},
			out:  "-\n  a: 1\n  b: 2\n",
		},
		{
			name: "sequence of sequences",
			node: arr(ints(1, 2), ints(3)),
			out:  "- [ 1, 2 ]\n- [ 3 ]\n",
		},
		{
			name: "deep nesting with indent 4",
			node: obj(kv("a", obj(kv("b", ints(1, 2))))),
			opts: []EncodeOption{Width(0), Indent(4)},
			out:  "a:\n    b:\n        - 1\n        - 2\n",
		},
		{
			name: "indent 1",
			node: arr(arr(ir.FromString("x")), obj(kv("k", ir.FromString("v")))),
			opts: []EncodeOption{Width(0), Indent(1)},
			out:  "-\n - x\n-\n k: v\n",
		},
		{
			name: "inline container with a nested inline container",
			node: obj(kv("o", obj(kv("l", ints(1)), kv("e", obj())))),
			out:  "o: { l: [ 1 ], e: {  } }\n",
		},
		{
			name: "root scalar",
			node: ir.FromString("hello"),
			out:  "hello\n",
		},
	})
}

func TestDumpEmptyContainers(t *testing.T) {
	node := obj(kv("e", obj()), kv("s", arr()))
	for _, w := range []int{0, 5, 120} {
		got, err := Dump(node, Width(w))
		if err != nil {
			t.Fatal(err)
		}
		if want := "e: {  }\ns: [  ]\n"; got != want {
			t.Errorf("width %d: got %q want %q", w, got, want)
		}
	}
	cfg := DefaultFlowConfig()
	cfg.EmptyArraysAsSequences = false
	got, err := Dump(node, Flow(cfg))
	if err != nil {
		t.Fatal(err)
	}
	if want := "e: {  }\ns: {  }\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	got, err = Dump(obj())
	if err != nil {
		t.Fatal(err)
	}
	if want := "{  }\n"; got != want {
		t.Errorf("root: got %q want %q", got, want)
	}
}

func TestDumpLiterals(t *testing.T) {
	s := func(v string) *ir.Node { return obj(kv("s", ir.FromString(v))) }
	runDumpTests(t, []dumpTest{
		{
			name: "strip",
			node: s("a\nb\nc"),
			out:  "s: |-\n  a\n  b\n  c\n",
		},
		{
			name: "clip",
			node: s("a\nb\n"),
			out:  "s: |\n  a\n  b\n",
		},
		{
			name: "keep",
			node: s("a\nb\n\n"),
			out:  "s: |+\n  a\n  b\n  \n",
		},
		{
			name: "single newline fits",
			node: s("a\nb"),
			out:  "s: \"a\\nb\"\n",
		},
		{
			name: "single newline too wide",
			node: s("a\nb"),
			opts: []EncodeOption{Width(4)},
			out:  "s: |-\n  a\n  b\n",
		},
		{
			name: "leading space",
			node: s(" a\nb\n"),
			out:  "s: |2\n   a\n  b\n",
		},
		{
			name: "leading tab",
			node: s("\tx\ny\n"),
			out:  "s: |2\n  \tx\n  y\n",
		},
		{
			name: "leading tab after blank line",
			node: s("\n\tx\ny"),
			out:  "s: |2-\n  \n  \tx\n  y\n",
		},
		{
			name: "leading space after blank line",
			node: s("\n  a\nb"),
			opts: []EncodeOption{Indent(4)},
			out:  "s: |4-\n    \n      a\n    b\n",
		},
		{
			name: "crlf falls back to flow",
			node: s("a\r\nb\r\nc"),
			out:  "s: \"a\\r\\nb\\r\\nc\"\n",
		},
		{
			name: "root string is flow",
			node: ir.FromString("a\nb\nc"),
			out:  "\"a\\nb\\nc\"\n",
		},
		{
			name: "sequence item",
			node: arr(ir.FromString("a\nb\nc")),
			out:  "- |-\n  a\n  b\n  c\n",
		},
		{
			name: "forces parent to block",
			node: obj(kv("m", s("a\nb\nc"))),
			out:  "m:\n  s: |-\n    a\n    b\n    c\n",
		},
		{
			name: "tagged",
			node: obj(kv("s", ir.FromString("a\nb\nc").WithTag("!t"))),
			out:  "s: !t |-\n  a\n  b\n  c\n",
		},
	})
}

func TestDumpTags(t *testing.T) {
	runDumpTests(t, []dumpTest{
		{
			name: "tagged scalar",
			node: obj(kv("x", ir.FromInt(12).WithTag("!foo"))),
			out:  "x: !foo 12\n",
		},
		{
			name: "tagged inline container",
			node: obj(kv("t", obj(kv("a", ir.FromInt(1))).WithTag("!foo"))),
			out:  "t: !foo { a: 1 }\n",
		},
		{
			name: "tagged block container",
			node: obj(kv("t", ints(1, 2).WithTag("!foo"))),
			opts: []EncodeOption{Width(0)},
			out:  "t: !foo\n  - 1\n  - 2\n",
		},
		{
			name: "tagged sequence item",
			node: arr(obj(kv("a", ir.FromInt(1))).WithTag("!foo")),
			opts: []EncodeOption{Width(0)},
			out:  "- !foo\n  a: 1\n",
		},
		{
			name: "tagged root",
			node: obj(kv("a", ir.FromInt(1))).WithTag("!foo"),
			out:  "!foo\na: 1\n",
		},
		{
			name: "tagged empty container",
			node: obj(kv("e", obj().WithTag("!set"))),
			out:  "e: !set {  }\n",
		},
		{
			name: "verbatim tag",
			node: obj(kv("v", ir.FromString("x").WithTag("!<tag:example.com,2000:x>"))),
			out:  "v: !<tag:example.com,2000:x> x\n",
		},
	})
}

func TestDumpScalars(t *testing.T) {
	midnight := time.Date(2001, 2, 3, 0, 0, 0, 0, time.UTC)
	instant := time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC)
	runDumpTests(t, []dumpTest{
		{name: "null", node: ir.Null(), out: "null\n"},
		{name: "bool", node: ir.FromBool(false), out: "false\n"},
		{name: "int", node: ir.FromInt(-3), out: "-3\n"},
		{name: "float whole", node: ir.FromFloat(1), out: "1.0\n"},
		{name: "float exp", node: ir.FromFloat(1e21), out: "1e+21\n"},
		{name: "float frac", node: ir.FromFloat(0.25), out: "0.25\n"},
		{name: "nan", node: ir.FromFloat(math.NaN()), out: ".nan\n"},
		{name: "-inf", node: ir.FromFloat(math.Inf(-1)), out: "-.inf\n"},
		{name: "number text", node: &ir.Node{Type: ir.NumberType, Number: "0x10"}, out: "0x10\n"},
		{name: "date", node: ir.FromTime(midnight), out: "2001-02-03\n"},
		{name: "instant", node: ir.FromTime(instant), out: "2001-02-03T04:05:06Z\n"},
		{name: "quoted number", node: ir.FromString("12"), out: "'12'\n"},
		{name: "quoted bool", node: ir.FromString("yes"), out: "'yes'\n"},
		{name: "quoted indicator", node: ir.FromString("- x"), out: "'- x'\n"},
		{name: "quoted colon", node: ir.FromString("a: b"), out: "'a: b'\n"},
		{name: "empty string", node: ir.FromString(""), out: "''\n"},
		{name: "tab", node: ir.FromString("a\tb"), out: "\"a\\tb\"\n"},
		{name: "quoted key", node: obj(kv("1", ir.Null()), kv("a b", ir.FromInt(1))), out: "'1': null\na b: 1\n"},
		{name: "non-string keys", node: ir.FromKeyVals([]ir.KeyVal{{Key: ir.FromInt(1), Val: ir.FromBool(true)}, {Val: ir.FromInt(2)}}), out: "1: true\nnull: 2\n"},
	})
}

func TestDumpErrors(t *testing.T) {
	bad := &ir.Node{Type: ir.Type(99)}
	tests := []struct {
		name string
		node *ir.Node
		opts []EncodeOption
		err  error
		path string
	}{
		{name: "unknown type", node: obj(kv("a", bad)), err: ir.ErrUnsupportedValue, path: "$.a"},
		{name: "nil value", node: arr(ir.FromInt(1), nil), err: ir.ErrUnsupportedValue, path: "$[1]"},
		{name: "container key", node: ir.FromKeyVals([]ir.KeyVal{{Key: ints(1), Val: ir.Null()}}), err: ir.ErrUnsupportedValue},
		{name: "mismatched mapping", node: &ir.Node{Type: ir.ObjectType, Fields: []*ir.Node{ir.FromString("a")}}, err: ir.ErrUnsupportedValue},
		{name: "invalid utf8", node: obj(kv("a", ir.FromString("\xff"))), err: ir.ErrUnsupportedValue},
		{name: "bad tag", node: ir.FromInt(1).WithTag("!a b"), err: ir.ErrUnsupportedValue},
		{name: "duplicate key", node: obj(kv("a", ir.FromInt(1)), kv("a", ir.FromInt(2))), err: ir.ErrDuplicateKey},
		{name: "indent 0", node: ir.Null(), opts: []EncodeOption{Indent(0)}, err: ErrBadIndent},
		{name: "indent 10", node: ir.Null(), opts: []EncodeOption{Indent(10)}, err: ErrBadIndent},
		{name: "negative width", node: ir.Null(), opts: []EncodeOption{Width(-1)}, err: ErrBadWidth},
		{name: "too deep", node: arr(arr(arr(arr(ir.Null())))), opts: []EncodeOption{MaxDepth(2)}, err: ErrTooDeep},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Dump(tc.node, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
			if tc.path != "" && !strings.Contains(err.Error(), tc.path) {
				t.Errorf("expected path %s in %q", tc.path, err)
			}
		})
	}
}

func TestDumpValue(t *testing.T) {
	got, err := DumpValue(map[string]any{"b": []int{1, 2}, "a": "x"})
	if err != nil {
		t.Fatal(err)
	}
	if want := "a: x\nb: [ 1, 2 ]\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}

	type point struct {
		X int `yaml:"x"`
		Y int `yaml:"y"`
	}
	got, err = DumpValue([]point{{1, 2}})
	if err != nil {
		t.Fatal(err)
	}
	if want := "- { x: 1, y: 2 }\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}

	cfg := DefaultFlowConfig()
	cfg.TreatObjectsAsMaps = false
	if _, err := DumpValue(point{}, Flow(cfg)); !errors.Is(err, ir.ErrUnsupportedValue) {
		t.Errorf("expected unsupported value, got %v", err)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString(ints(1)); got != "- 1" {
		t.Errorf("got %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustString(&ir.Node{Type: ir.Type(99)})
}
