package encode

import "fmt"

const (
	DefaultWidth    = 120
	DefaultIndent   = 2
	DefaultMaxDepth = 10000
)

// FlowConfig controls how the inline scalar encoder treats values whose
// spelling is a matter of convention.
type FlowConfig struct {
	// TreatObjectsAsMaps maps Go structs to mappings in DumpValue. When
	// false, structs are unsupported values.
	TreatObjectsAsMaps bool
	// EmptyArraysAsSequences spells an empty sequence as [  ]. When
	// false it is spelled {  }, like an empty mapping.
	EmptyArraysAsSequences bool
}

// DefaultFlowConfig is used at every depth unless overridden with Flow.
func DefaultFlowConfig() FlowConfig {
	return FlowConfig{
		TreatObjectsAsMaps:     true,
		EmptyArraysAsSequences: true,
	}
}

type EncodeOption func(*EncState)

// Width sets the line width budget used to decide between flow and block
// form.
func Width(n int) EncodeOption {
	return func(es *EncState) { es.width = n }
}

// Indent sets the number of spaces per nesting level, 1 through 9.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func Flow(cfg FlowConfig) EncodeOption {
	return func(es *EncState) { es.flow = cfg }
}

// MaxDepth bounds the nesting depth of the tree being dumped.
func MaxDepth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}

type EncState struct {
	width, indent int
	maxDepth      int
	flow          FlowConfig
}

func newEncState(opts ...EncodeOption) (*EncState, error) {
	es := &EncState{
		width:    DefaultWidth,
		indent:   DefaultIndent,
		maxDepth: DefaultMaxDepth,
		flow:     DefaultFlowConfig(),
	}
	for _, opt := range opts {
		opt(es)
	}
	// the literal block indentation indicator is a single digit
	if es.indent < 1 || es.indent > 9 {
		return nil, fmt.Errorf("%w: %d not in 1..9", ErrBadIndent, es.indent)
	}
	if es.width < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadWidth, es.width)
	}
	return es, nil
}
