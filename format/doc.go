// Package format names the input formats clean-yaml can read.
//
// Output is always YAML block format; the input format only selects
// which decoder the parse package uses.
//
// # Related Packages
//
//   - github.com/signadot/clean-yaml/parse - Parse text to IR
//   - github.com/signadot/clean-yaml/encode - Dump IR to text
package format
