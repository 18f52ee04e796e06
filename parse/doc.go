// Package parse reads YAML or JSON text into IR nodes.
//
// YAML is read with the gopkg.in/yaml.v3 node API so that key order,
// tags and the spelling of numbers and timestamps are preserved. Core
// schema tags such as !!str or !!int only select the node type and are
// not kept; any other tag is kept on the node. Aliases are expanded.
//
// JSON is decoded with github.com/goccy/go-yaml into ordered values and
// mapped with gomap.
//
// # Usage
//
//	node, err := parse.Parse(data)
//	docs, err := parse.ParseAll(data)
//	node, err := parse.Parse(data, parse.ParseJSON())
//
// # Related Packages
//
//   - github.com/signadot/clean-yaml/ir - IR representation
//   - github.com/signadot/clean-yaml/encode - Dump IR to YAML
package parse
