package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/signadot/clean-yaml/debug"
	"github.com/signadot/clean-yaml/format"
	"github.com/signadot/clean-yaml/ir"
	"gopkg.in/yaml.v3"
)

const (
	nullTag      = "!!null"
	boolTag      = "!!bool"
	strTag       = "!!str"
	intTag       = "!!int"
	floatTag     = "!!float"
	timestampTag = "!!timestamp"
	seqTag       = "!!seq"
	mapTag       = "!!map"
	mergeTag     = "!!merge"
)

// coreTags only select a node's type, so they are not kept on the node.
var coreTags = map[string]bool{
	nullTag:      true,
	boolTag:      true,
	strTag:       true,
	intTag:       true,
	floatTag:     true,
	timestampTag: true,
	seqTag:       true,
	mapTag:       true,
	mergeTag:     true,
}

// Parse parses a single document. Empty input yields a null node.
func Parse(data []byte, opts ...ParseOption) (*ir.Node, error) {
	docs, err := ParseAll(data, opts...)
	if err != nil {
		return nil, err
	}
	switch len(docs) {
	case 0:
		return ir.Null(), nil
	case 1:
		return docs[0], nil
	}
	return nil, fmt.Errorf("%w: expected 1 document, got %d", ir.ErrParse, len(docs))
}

// ParseAll parses every document of a stream.
func ParseAll(data []byte, opts ...ParseOption) ([]*ir.Node, error) {
	o := newParseOpts(opts...)
	switch o.format {
	case format.YAMLFormat:
		return parseYAML(data, o)
	case format.JSONFormat:
		node, err := parseJSON(data, o)
		if err != nil {
			return nil, err
		}
		return []*ir.Node{node}, nil
	}
	return nil, fmt.Errorf("%w: %s", ir.ErrBadFormat, o.format)
}

func parseYAML(data []byte, o *parseOpts) ([]*ir.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var res []*ir.Node
	for {
		doc := &yaml.Node{}
		err := dec.Decode(doc)
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ir.ErrParse, err)
		}
		w := &walker{opts: o}
		node, err := w.walk(doc, 0)
		if err != nil {
			return nil, err
		}
		if debug.Parse() {
			debug.Logf("parsed document %d: %v\n", len(res), node)
		}
		res = append(res, node)
	}
}

type walker struct {
	opts *parseOpts
	// aliased counts nodes created while expanding aliases.
	aliased int
	inAlias int
}

func (w *walker) walk(n *yaml.Node, depth int) (*ir.Node, error) {
	if depth > w.opts.maxDepth {
		return nil, w.errorf(n, "nesting deeper than %d", w.opts.maxDepth)
	}
	if w.inAlias > 0 {
		w.aliased++
		if w.aliased > w.opts.maxNodes {
			return nil, w.errorf(n, "alias expansion exceeds %d nodes", w.opts.maxNodes)
		}
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return ir.Null(), nil
		}
		return w.walk(n.Content[0], depth)
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, w.errorf(n, "unknown alias %q", n.Value)
		}
		w.inAlias++
		defer func() { w.inAlias-- }()
		return w.walk(n.Alias, depth+1)
	case yaml.ScalarNode:
		return w.scalar(n)
	case yaml.SequenceNode:
		vals := make([]*ir.Node, len(n.Content))
		for i, c := range n.Content {
			v, err := w.walk(c, depth+1)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return ir.FromSlice(vals).WithTag(keptTag(n)), nil
	case yaml.MappingNode:
		return w.mapping(n, depth)
	}
	return nil, w.errorf(n, "unexpected node kind %d", n.Kind)
}

func (w *walker) mapping(n *yaml.Node, depth int) (*ir.Node, error) {
	if len(n.Content)%2 != 0 {
		return nil, w.errorf(n, "odd mapping content")
	}
	kvs := make([]ir.KeyVal, 0, len(n.Content)/2)
	seen := make(map[string]bool, len(n.Content)/2)
	for i := 0; i < len(n.Content); i += 2 {
		kn := n.Content[i]
		for kn.Kind == yaml.AliasNode && kn.Alias != nil {
			kn = kn.Alias
		}
		if kn.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: non-scalar mapping key", ir.ErrUnsupportedValue, kn.Line)
		}
		k, err := w.scalar(kn)
		if err != nil {
			return nil, err
		}
		id := ir.KeyID(k)
		if seen[id] {
			return nil, fmt.Errorf("%w: line %d: %q", ir.ErrDuplicateKey, kn.Line, kn.Value)
		}
		seen[id] = true
		v, err := w.walk(n.Content[i+1], depth+1)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: k, Val: v})
	}
	return ir.FromKeyVals(kvs).WithTag(keptTag(n)), nil
}

// scalar converts a scalar node. The type comes from the node's tag or,
// for a custom tag, from resolving the value as if it were untagged.
// Source spellings of numbers and timestamps are kept when reading them
// back untagged gives the same type.
func (w *walker) scalar(n *yaml.Node) (*ir.Node, error) {
	tag := n.ShortTag()
	kept := keptTag(n)
	quoted := n.Style&(yaml.SingleQuotedStyle|yaml.DoubleQuotedStyle|yaml.LiteralStyle|yaml.FoldedStyle) != 0
	if kept != "" {
		tag = strTag
		if !quoted {
			tag = (&yaml.Node{Kind: yaml.ScalarNode, Value: n.Value}).ShortTag()
		}
	}
	if tag == mergeTag {
		tag = strTag
	}
	plain := (&yaml.Node{Kind: yaml.ScalarNode, Value: n.Value}).ShortTag() == tag && !quoted
	if kept != "" {
		// decode as the resolved core type, not the custom tag
		c := *n
		c.Tag = tag
		c.Style &^= yaml.TaggedStyle
		n = &c
	}

	var res *ir.Node
	switch tag {
	case nullTag:
		res = ir.Null()
	case boolTag:
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, w.wrap(n, err)
		}
		res = ir.FromBool(b)
	case intTag:
		var err error
		res, err = w.integer(n)
		if err != nil {
			return nil, err
		}
		if plain {
			res.Number = n.Value
		}
	case floatTag:
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, w.wrap(n, err)
		}
		res = ir.FromFloat(f)
		if plain {
			res.Number = n.Value
		}
	case timestampTag:
		var t time.Time
		if err := n.Decode(&t); err != nil {
			return nil, w.wrap(n, err)
		}
		res = ir.FromTime(t)
		if plain {
			res.String = n.Value
		}
	default:
		// !!str and !!binary both keep the text as is
		res = ir.FromString(n.Value)
	}
	return res.WithTag(kept), nil
}

func (w *walker) integer(n *yaml.Node) (*ir.Node, error) {
	var i int64
	err := n.Decode(&i)
	if err == nil {
		return ir.FromInt(i), nil
	}
	var u uint64
	if uErr := n.Decode(&u); uErr == nil {
		return ir.FromUint(u), nil
	}
	return nil, w.wrap(n, err)
}

// keptTag returns the explicit tag of n unless it is a core tag.
func keptTag(n *yaml.Node) string {
	if n.Style&yaml.TaggedStyle == 0 || n.Tag == "" || n.Tag == "!" {
		return ""
	}
	if coreTags[n.Tag] {
		return ""
	}
	if n.Tag[0] != '!' {
		return "!<" + n.Tag + ">"
	}
	return n.Tag
}

func (w *walker) errorf(n *yaml.Node, f string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ir.ErrParse, n.Line, fmt.Sprintf(f, args...))
}

func (w *walker) wrap(n *yaml.Node, err error) error {
	return fmt.Errorf("%w: line %d: %w", ir.ErrParse, n.Line, err)
}
