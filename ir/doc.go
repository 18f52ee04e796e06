// Package ir provides the in-memory tree that clean-yaml dumps.
//
// A Node is a closed variant over the YAML data model, discriminated by
// its Type:
//
//   - NullType, BoolType, NumberType, StringType, TimestampType: scalars
//   - ArrayType: a sequence, held in Values
//   - ObjectType: a mapping, held in the parallel slices Fields (keys)
//     and Values, in insertion order
//
// Any node may carry a Tag. A tagged scalar or a tagged empty container
// is still a leaf; a tagged non-empty container is not.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("name"), Val: ir.FromString("alice")},
//	    {Key: ir.FromString("tags"), Val: ir.FromSlice(nil)},
//	})
//
// # Related Packages
//
//   - github.com/signadot/clean-yaml/encode - Dump IR to text
//   - github.com/signadot/clean-yaml/parse - Parse text to IR
//   - github.com/signadot/clean-yaml/gomap - Map Go values to IR
package ir
