package parse

import "github.com/signadot/clean-yaml/format"

// DefaultMaxDepth bounds nesting, counting expanded aliases.
const DefaultMaxDepth = 10000

// DefaultMaxNodes bounds the number of nodes produced by alias expansion.
const DefaultMaxNodes = 1 << 20

type parseOpts struct {
	format   format.Format
	maxDepth int
	maxNodes int
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// MaxNodes bounds the number of nodes created while expanding aliases.
func MaxNodes(n int) ParseOption {
	return func(o *parseOpts) { o.maxNodes = n }
}

func newParseOpts(opts ...ParseOption) *parseOpts {
	o := &parseOpts{
		format:   format.YAMLFormat,
		maxDepth: DefaultMaxDepth,
		maxNodes: DefaultMaxNodes,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
