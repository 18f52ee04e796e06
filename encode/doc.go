// Package encode dumps IR nodes to diff-stable YAML.
//
// Every node is rendered exactly once, bottom up. A container is written
// in flow form ({ k: v } or [ a, b ]) only when all of its children came
// back single-line and the result fits the remaining width; otherwise it
// is expanded to block form. Strings with embedded line breaks become
// literal blocks whose lines follow the source data, so editing one line
// of a value changes one line of output.
//
// # Usage
//
//	out, err := encode.Dump(node)
//
//	// narrower output, 4 space indent
//	out, err := encode.Dump(node, encode.Width(80), encode.Indent(4))
//
//	// dump a Go value
//	out, err := encode.DumpValue(map[string]any{"a": []int{1, 2}})
//
// # Related Packages
//
//   - github.com/signadot/clean-yaml/ir - IR representation
//   - github.com/signadot/clean-yaml/parse - Parse text to IR
//   - github.com/signadot/clean-yaml/token - Scalar quoting
package encode
