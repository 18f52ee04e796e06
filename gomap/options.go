package gomap

// DefaultMaxDepth bounds the nesting depth of mapped values.
const DefaultMaxDepth = 10000

// Option configures ToIR.
type Option func(*mapConfig)

type mapConfig struct {
	objectsAsMaps bool
	maxDepth      int
}

func newMapConfig(opts ...Option) *mapConfig {
	cfg := &mapConfig{
		objectsAsMaps: true,
		maxDepth:      DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// ObjectsAsMaps controls whether structs are mapped to mappings. When
// false, a struct is an unsupported value.
func ObjectsAsMaps(v bool) Option {
	return func(c *mapConfig) { c.objectsAsMaps = v }
}

// MaxDepth bounds the nesting depth of the mapped value.
func MaxDepth(n int) Option {
	return func(c *mapConfig) { c.maxDepth = n }
}
