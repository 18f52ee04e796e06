package parse

import (
	"fmt"

	goyaml "github.com/goccy/go-yaml"
	"github.com/signadot/clean-yaml/gomap"
	"github.com/signadot/clean-yaml/ir"
)

// parseJSON decodes data keeping object key order.
func parseJSON(data []byte, o *parseOpts) (*ir.Node, error) {
	var v any
	if err := goyaml.UnmarshalWithOptions(data, &v, goyaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ir.ErrParse, err)
	}
	node, err := gomap.ToIR(v, gomap.MaxDepth(o.maxDepth))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ir.ErrParse, err)
	}
	return node, nil
}
