package encode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/signadot/clean-yaml/ir"
	"github.com/signadot/clean-yaml/token"
)

const (
	emptyMap = "{  }"
	emptySeq = "[  ]"
)

// encodeFlow returns the single line spelling of a leaf, including its
// tag.
func encodeFlow(node *ir.Node, cfg FlowConfig) (string, error) {
	v, err := flowValue(node, cfg)
	if err != nil {
		return "", err
	}
	if node.Tag != "" {
		return node.Tag + " " + v, nil
	}
	return v, nil
}

func flowValue(node *ir.Node, cfg FlowConfig) (string, error) {
	switch node.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		return strconv.FormatBool(node.Bool), nil
	case ir.NumberType:
		return formatNumber(node)
	case ir.StringType:
		if !utf8.ValidString(node.String) {
			return "", fmt.Errorf("%w: %w", ir.ErrUnsupportedValue, token.ErrBadUTF8)
		}
		return token.Flow(node.String), nil
	case ir.TimestampType:
		return formatTime(node)
	case ir.ArrayType:
		if len(node.Values) != 0 {
			return "", fmt.Errorf("%w: non-empty sequence in flow position", ir.ErrUnsupportedValue)
		}
		if cfg.EmptyArraysAsSequences {
			return emptySeq, nil
		}
		return emptyMap, nil
	case ir.ObjectType:
		if len(node.Fields) != 0 {
			return "", fmt.Errorf("%w: non-empty mapping in flow position", ir.ErrUnsupportedValue)
		}
		return emptyMap, nil
	}
	return "", fmt.Errorf("%w: node type %d", ir.ErrUnsupportedValue, int(node.Type))
}

// encodeKey returns the spelling of a mapping key. Keys are restricted to
// scalars.
func encodeKey(k *ir.Node, cfg FlowConfig) (string, error) {
	if k == nil {
		return "", fmt.Errorf("%w: nil mapping key", ir.ErrUnsupportedValue)
	}
	if !k.Type.IsScalar() {
		return "", fmt.Errorf("%w: %s mapping key", ir.ErrUnsupportedValue, k.Type)
	}
	if err := checkTag(k.Tag); err != nil {
		return "", err
	}
	return encodeFlow(k, cfg)
}

func formatNumber(node *ir.Node) (string, error) {
	switch {
	case node.Number != "":
		return node.Number, nil
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10), nil
	case node.Float64 != nil:
		return formatFloat(*node.Float64), nil
	}
	return "", fmt.Errorf("%w: number without a value", ir.ErrUnsupportedValue)
}

// formatFloat spells f so that it reads back as a float, never as an int.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	v := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(v, ".e") {
		v += ".0"
	}
	return v
}

func formatTime(node *ir.Node) (string, error) {
	if node.String != "" {
		return node.String, nil
	}
	if node.Time == nil {
		return "", fmt.Errorf("%w: timestamp without a value", ir.ErrUnsupportedValue)
	}
	t := *node.Time
	if t.Location() == time.UTC && t.Equal(t.Truncate(24*time.Hour)) {
		return t.Format(time.DateOnly), nil
	}
	return t.Format(time.RFC3339Nano), nil
}

// checkTag rejects tags that would not read back as a single tag token.
// Verbatim tags, !<...>, may contain flow indicators.
func checkTag(tag string) error {
	if tag == "" {
		return nil
	}
	bad := " \t\r\n,[]{}"
	if strings.HasPrefix(tag, "!<") && strings.HasSuffix(tag, ">") {
		bad = " \t\r\n"
	}
	if tag[0] != '!' || tag == "!" || strings.ContainsAny(tag, bad) {
		return fmt.Errorf("%w: bad tag %q", ir.ErrUnsupportedValue, tag)
	}
	return nil
}
