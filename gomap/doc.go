// Package gomap maps native Go values to IR nodes and back.
//
// # Usage
//
//	node, err := gomap.ToIR(map[string]any{"b": 1, "a": []int{1, 2}})
//
//	// ordered mappings
//	node, err := gomap.ToIR(yaml.MapSlice{{Key: "b", Value: 1}, {Key: "a", Value: 2}})
//
//	// reject structs
//	node, err := gomap.ToIR(v, gomap.ObjectsAsMaps(false))
//
// Go maps have no order of their own, so their entries are sorted by key.
// Ordered mappings come from github.com/goccy/go-yaml MapSlice values or
// from *ir.Node values, which are cloned as is.
//
// # Related Packages
//
//   - github.com/signadot/clean-yaml/ir - IR representation
//   - github.com/signadot/clean-yaml/encode - Dump IR to YAML
package gomap
