package gomap

import (
	"encoding"
	"encoding/base64"
	"fmt"
	"reflect"
	"slices"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/signadot/clean-yaml/debug"
	"github.com/signadot/clean-yaml/ir"
)

// BinaryTag marks a base64 encoded byte string.
const BinaryTag = "!!binary"

var (
	timeType     = reflect.TypeFor[time.Time]()
	nodeType     = reflect.TypeFor[*ir.Node]()
	mapSliceType = reflect.TypeFor[yaml.MapSlice]()
	mapItemType  = reflect.TypeFor[yaml.MapItem]()
	textMarshal  = reflect.TypeFor[encoding.TextMarshaler]()
)

// ToIR converts a Go value to an IR node.
func ToIR(v any, opts ...Option) (*ir.Node, error) {
	m := &mapper{
		cfg:     newMapConfig(opts...),
		visited: make(map[uintptr]string),
	}
	return m.toIR(reflect.ValueOf(v), ir.RootPath, 0)
}

type mapper struct {
	cfg *mapConfig
	// visited tracks the pointers and maps on the current path by the
	// path at which they were first seen.
	visited map[uintptr]string
}

func (m *mapper) toIR(val reflect.Value, path string, depth int) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	if depth > m.cfg.maxDepth {
		return nil, unsupported(path, "nesting deeper than %d", m.cfg.maxDepth)
	}
	typ := val.Type()
	switch typ {
	case nodeType:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return val.Interface().(*ir.Node).Clone(), nil
	case timeType:
		return ir.FromTime(val.Interface().(time.Time)), nil
	case mapSliceType:
		return m.mapSlice(val.Interface().(yaml.MapSlice), path, depth)
	case mapItemType:
		return m.mapSlice(yaml.MapSlice{val.Interface().(yaml.MapItem)}, path, depth)
	}

	switch typ.Kind() {
	case reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return m.toIR(val.Elem(), path, depth)
	case reflect.Pointer:
		if val.IsNil() {
			return ir.Null(), nil
		}
		if typ.Elem() != timeType && typ.Implements(textMarshal) {
			return marshalText(val, path)
		}
		return m.enter(val, path, func() (*ir.Node, error) {
			return m.toIR(val.Elem(), path, depth+1)
		})
	}
	if typ.Implements(textMarshal) {
		return marshalText(val, path)
	}

	switch typ.Kind() {
	case reflect.String:
		return ir.FromString(val.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ir.FromUint(val.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil
	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.Uint8 {
			return ir.FromString(base64.StdEncoding.EncodeToString(val.Bytes())).WithTag(BinaryTag), nil
		}
		if val.IsNil() || val.Len() == 0 {
			return ir.FromSlice(nil), nil
		}
		return m.enter(val, path, func() (*ir.Node, error) {
			return m.slice(val, path, depth)
		})
	case reflect.Array:
		return m.slice(val, path, depth)
	case reflect.Map:
		if val.IsNil() || val.Len() == 0 {
			return ir.FromKeyVals(nil), nil
		}
		return m.enter(val, path, func() (*ir.Node, error) {
			return m.goMap(val, path, depth)
		})
	case reflect.Struct:
		if !m.cfg.objectsAsMaps {
			return nil, unsupported(path, "struct %s with objects as maps disabled", typ)
		}
		return m.structure(val, path, depth)
	}
	return nil, unsupported(path, "go type %s", typ)
}

// enter runs f with val marked as visited, reporting a cycle if val is
// already on the current path. The same pointer may still appear in
// separate branches.
func (m *mapper) enter(val reflect.Value, path string, f func() (*ir.Node, error)) (*ir.Node, error) {
	addr := val.Pointer()
	if prev, seen := m.visited[addr]; seen {
		return nil, &MarshalError{
			FieldPath: path,
			Message:   fmt.Sprintf("circular reference to %s", prev),
			Err:       ir.ErrUnsupportedValue,
		}
	}
	m.visited[addr] = path
	defer delete(m.visited, addr)
	return f()
}

func (m *mapper) slice(val reflect.Value, path string, depth int) (*ir.Node, error) {
	n := val.Len()
	vals := make([]*ir.Node, n)
	for i := range n {
		v, err := m.toIR(val.Index(i), ir.PathIndex(path, i), depth+1)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return ir.FromSlice(vals), nil
}

func (m *mapper) goMap(val reflect.Value, path string, depth int) (*ir.Node, error) {
	kvs := make([]ir.KeyVal, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		k, err := m.key(iter.Key(), path, depth)
		if err != nil {
			return nil, err
		}
		v, err := m.toIR(iter.Value(), ir.PathKey(path, k), depth+1)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: k, Val: v})
	}
	slices.SortFunc(kvs, func(a, b ir.KeyVal) int {
		return ir.Compare(a.Key, b.Key)
	})
	if debug.Map() {
		debug.Logf("map %s: %d entries sorted\n", path, len(kvs))
	}
	return ir.FromKeyVals(kvs), nil
}

func (m *mapper) mapSlice(ms yaml.MapSlice, path string, depth int) (*ir.Node, error) {
	kvs := make([]ir.KeyVal, len(ms))
	seen := make(map[string]bool, len(ms))
	for i, item := range ms {
		k, err := m.key(reflect.ValueOf(item.Key), path, depth)
		if err != nil {
			return nil, err
		}
		kPath := ir.PathKey(path, k)
		id := ir.KeyID(k)
		if seen[id] {
			return nil, &MarshalError{
				FieldPath: kPath,
				Message:   "duplicate key",
				Err:       ir.ErrDuplicateKey,
			}
		}
		seen[id] = true
		v, err := m.toIR(reflect.ValueOf(item.Value), kPath, depth+1)
		if err != nil {
			return nil, err
		}
		kvs[i] = ir.KeyVal{Key: k, Val: v}
	}
	return ir.FromKeyVals(kvs), nil
}

func (m *mapper) key(val reflect.Value, path string, depth int) (*ir.Node, error) {
	k, err := m.toIR(val, path, depth+1)
	if err != nil {
		return nil, err
	}
	if !k.Type.IsScalar() {
		return nil, unsupported(path, "%s mapping key", k.Type)
	}
	return k, nil
}

func (m *mapper) structure(val reflect.Value, path string, depth int) (*ir.Node, error) {
	fields := structFields(val.Type())
	kvs := make([]ir.KeyVal, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		fv, err := val.FieldByIndexErr(f.index)
		if err != nil {
			// nil embedded pointer
			continue
		}
		if f.omitEmpty && fv.IsZero() {
			continue
		}
		fPath := ir.PathField(path, f.name)
		if seen[f.name] {
			return nil, &MarshalError{
				FieldPath: fPath,
				Message:   "duplicate field name",
				Err:       ir.ErrDuplicateKey,
			}
		}
		seen[f.name] = true
		v, err := m.toIR(fv, fPath, depth+1)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(f.name), Val: v})
	}
	return ir.FromKeyVals(kvs), nil
}

func marshalText(val reflect.Value, path string) (*ir.Node, error) {
	text, err := val.Interface().(encoding.TextMarshaler).MarshalText()
	if err != nil {
		return nil, &MarshalError{FieldPath: path, Message: err.Error(), Err: err}
	}
	return ir.FromString(string(text)), nil
}

func unsupported(path, format string, args ...any) error {
	return &MarshalError{
		FieldPath: path,
		Message:   fmt.Sprintf(format, args...),
		Err:       ir.ErrUnsupportedValue,
	}
}
