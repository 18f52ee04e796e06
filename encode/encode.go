package encode

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/signadot/clean-yaml/debug"
	"github.com/signadot/clean-yaml/gomap"
	"github.com/signadot/clean-yaml/ir"
)

// renderCtx is threaded through the recursion. width and prefix move in
// lockstep: each level takes len(indent) from width and adds indent to
// prefix.
type renderCtx struct {
	width  int
	indent string
	prefix string
	// key is the label written before the node, "k:" under a mapping and
	// "" under a sequence. It is unused at the root.
	key   string
	root  bool
	depth int
	path  string
}

func (rc renderCtx) child(key, path string) renderCtx {
	return renderCtx{
		width:  rc.width - len(rc.indent),
		indent: rc.indent,
		prefix: rc.prefix + rc.indent,
		key:    key,
		depth:  rc.depth + 1,
		path:   path,
	}
}

// fragment is the output of rendering one node. A multi-line fragment
// ends with a newline and is never inlined by its parent.
type fragment struct {
	text      string
	multiLine bool
}

// Dump renders node as a YAML document ending in a newline.
func Dump(node *ir.Node, opts ...EncodeOption) (string, error) {
	es, err := newEncState(opts...)
	if err != nil {
		return "", err
	}
	return es.dump(node)
}

// Encode writes the rendering of node to w.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	out, err := Dump(node, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// DumpValue maps a Go value to a node with gomap and dumps it.
func DumpValue(v any, opts ...EncodeOption) (string, error) {
	es, err := newEncState(opts...)
	if err != nil {
		return "", err
	}
	node, err := gomap.ToIR(v, gomap.ObjectsAsMaps(es.flow.TreatObjectsAsMaps))
	if err != nil {
		return "", err
	}
	return es.dump(node)
}

func (es *EncState) dump(node *ir.Node) (string, error) {
	rc := renderCtx{
		width:  es.width,
		indent: strings.Repeat(" ", es.indent),
		root:   true,
		path:   ir.RootPath,
	}
	frag, err := es.render(node, rc)
	if err != nil {
		return "", err
	}
	return frag.text, nil
}

func (es *EncState) render(node *ir.Node, rc renderCtx) (fragment, error) {
	if rc.depth > es.maxDepth {
		return fragment{}, fmt.Errorf("%w: at %s", ErrTooDeep, rc.path)
	}
	leaf, err := isLeaf(node)
	if err != nil {
		return fragment{}, fmt.Errorf("at %s: %w", rc.path, err)
	}
	if !leaf {
		return es.renderContainer(node, rc)
	}
	if node.Type == ir.StringType {
		if text, ok := es.literal(node, rc); ok {
			return fragment{text: text, multiLine: true}, nil
		}
	}
	v, err := encodeFlow(node, es.flow)
	if err != nil {
		return fragment{}, fmt.Errorf("at %s: %w", rc.path, err)
	}
	if rc.root {
		return fragment{text: rc.prefix + v + "\n", multiLine: true}, nil
	}
	return fragment{text: rc.key + " " + v}, nil
}

func (es *EncState) renderContainer(node *ir.Node, rc renderCtx) (fragment, error) {
	isMap := node.Type == ir.ObjectType
	key := rc.key
	if node.Tag != "" && !rc.root {
		key += " " + node.Tag
	}

	// the +len(indent) is there because an inlined container sits on its
	// parent's line, one level less indented than its children
	room := rc.width - runeLen(key) + len(rc.indent)
	sep := 1
	if isMap {
		sep = 2
	}
	out := make([]string, len(node.Values))
	var seen map[string]bool
	if isMap {
		seen = make(map[string]bool, len(node.Fields))
	}
	for i, v := range node.Values {
		var crc renderCtx
		if isMap {
			k := node.Fields[i]
			kPath := ir.RootPath
			if k != nil {
				kPath = ir.PathKey(rc.path, k)
			}
			ks, err := encodeKey(k, es.flow)
			if err != nil {
				return fragment{}, fmt.Errorf("key at %s: %w", kPath, err)
			}
			id := ir.KeyID(k)
			if seen[id] {
				return fragment{}, fmt.Errorf("%w: %s at %s", ir.ErrDuplicateKey, ks, rc.path)
			}
			seen[id] = true
			crc = rc.child(ks+":", kPath)
		} else {
			crc = rc.child("", ir.PathIndex(rc.path, i))
		}
		frag, err := es.render(v, crc)
		if err != nil {
			return fragment{}, err
		}
		out[i] = frag.text
		if frag.multiLine {
			room = 0
		} else {
			room -= runeLen(frag.text) + sep
		}
	}

	margin := 3
	if isMap {
		margin = 5
	}
	inline := !rc.root && room >= margin
	if debug.Render() {
		debug.Logf("render %s %v room=%d inline=%t\n", rc.path, node, room, inline)
	}
	if inline {
		if isMap {
			return fragment{text: key + " { " + strings.Join(out, ", ") + " }"}, nil
		}
		return fragment{text: key + " [" + strings.Join(out, ",") + " ]"}, nil
	}

	prefix := rc.prefix
	if !isMap {
		prefix += "-"
	}
	b := &strings.Builder{}
	switch {
	case !rc.root:
		b.WriteString(key)
		b.WriteByte('\n')
	case node.Tag != "":
		b.WriteString(rc.prefix)
		b.WriteString(node.Tag)
		b.WriteByte('\n')
	}
	for _, s := range out {
		b.WriteString(prefix)
		b.WriteString(s)
		if !strings.HasSuffix(s, "\n") {
			b.WriteByte('\n')
		}
	}
	return fragment{text: b.String(), multiLine: true}, nil
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
